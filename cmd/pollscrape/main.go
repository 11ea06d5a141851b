package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pollwatch/pollscrape/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		inputPath   string
		outputPath  string
		chartPath   string
		summaryPath string
		llmBaseURL  string
		llmModel    string
		llmKey      string
		configPath  string
		verbose     bool
	)

	flag.StringVar(&inputPath, "input", app.InputDefault, "Path to the HTML document to extract from")
	flag.StringVar(&outputPath, "output", app.OutputDefault, "Path to write the CSV output")
	flag.StringVar(&chartPath, "chart", "", "Optional path to write a PDF chart of the series")
	flag.StringVar(&summaryPath, "summary", "", "Optional path to write an LLM trend summary (requires llm.model)")
	flag.StringVar(&llmBaseURL, "llm.base", os.Getenv("LLM_BASE_URL"), "OpenAI-compatible base URL for the summary")
	flag.StringVar(&llmModel, "llm.model", os.Getenv("LLM_MODEL"), "Model name for the summary")
	flag.StringVar(&llmKey, "llm.key", os.Getenv("LLM_API_KEY"), "API key for the OpenAI-compatible server")
	flag.StringVar(&configPath, "config", "", "Optional YAML or JSON config file")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := app.Config{
		InputPath:   inputPath,
		OutputPath:  outputPath,
		ChartPath:   chartPath,
		SummaryPath: summaryPath,
		LLMBaseURL:  llmBaseURL,
		LLMModel:    llmModel,
		LLMAPIKey:   llmKey,
		Verbose:     verbose,
	}

	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Fatal().Err(err).Str("config", configPath).Msg("load config file")
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := app.ValidateConfig(cfg); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		// Exit code policy: a run that produced no usable output exits
		// non-zero; anything else already wrote what it could.
		if errors.Is(err, app.ErrNoPollData) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}

func run(cfg app.Config) error {
	return app.Run(context.Background(), cfg)
}
