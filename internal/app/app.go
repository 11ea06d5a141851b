// Package app wires the extraction pipeline together: read one HTML
// document, recover poll records from its hydration payload (or from
// rendered markup when no payload exists), and emit CSV plus the optional
// chart and summary artifacts.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/pollwatch/pollscrape/internal/hydrate"
	"github.com/pollwatch/pollscrape/internal/normalize"
	"github.com/pollwatch/pollscrape/internal/report"
	"github.com/pollwatch/pollscrape/internal/summary"
	"github.com/pollwatch/pollscrape/internal/table"
)

// ErrNoPollData is returned when neither the hydration payload nor the
// rendered markup yields any poll rows. Per the exit code policy this is
// the one condition that makes the process exit non-zero.
var ErrNoPollData = errors.New("no poll data found")

// summaryTimeout bounds the optional LLM call so a stalled endpoint cannot
// hang an otherwise finished run.
const summaryTimeout = 60 * time.Second

// Run executes one extraction over cfg.InputPath.
func Run(ctx context.Context, cfg Config) error {
	raw, err := os.ReadFile(cfg.InputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	text := string(raw)
	log.Info().Str("input", cfg.InputPath).Int("bytes", len(text)).Msg("loaded document")

	records, err := hydrate.ExtractAll(text)
	if err != nil {
		// Boundary or decode faults abort the hydration scan but earlier
		// arrays were recovered intact, so the run continues with those.
		log.Error().Err(err).Int("recovered", len(records)).Msg("embedded extraction aborted")
	}

	if len(records) > 0 {
		rows := normalize.Normalize(records)
		log.Info().Int("rows", len(rows)).Msg("extracted embedded poll records")
		if err := writeCSV(cfg.OutputPath, normalize.Header, rowFields(rows)); err != nil {
			return err
		}
		log.Info().Str("output", cfg.OutputPath).Msg("wrote csv")

		if cfg.ChartPath != "" {
			if err := report.WriteChart(rows, cfg.ChartPath); err != nil {
				return fmt.Errorf("write chart: %w", err)
			}
			log.Info().Str("chart", cfg.ChartPath).Msg("wrote chart")
		}
		if cfg.SummaryPath != "" {
			writeSummary(ctx, cfg, rows)
		}
		return nil
	}

	// Fallback: the page may render the table as real markup.
	headers, rows, err := table.ExtractPollTable(text)
	if err != nil {
		return fmt.Errorf("fallback table extraction: %w", err)
	}
	if len(rows) == 0 {
		return ErrNoPollData
	}
	log.Info().Int("rows", len(rows)).Msg("extracted rendered table rows")
	if err := writeCSV(cfg.OutputPath, headers, rows); err != nil {
		return err
	}
	log.Info().Str("output", cfg.OutputPath).Msg("wrote csv")
	return nil
}

// writeSummary is best-effort: a summarizer failure is logged and the run
// still succeeds on the strength of the CSV output.
func writeSummary(ctx context.Context, cfg Config, rows []normalize.Row) {
	ctx, cancel := context.WithTimeout(ctx, summaryTimeout)
	defer cancel()

	clientCfg := openai.DefaultConfig(cfg.LLMAPIKey)
	if cfg.LLMBaseURL != "" {
		clientCfg.BaseURL = cfg.LLMBaseURL
	}
	s := summary.Summarizer{
		Client: openai.NewClientWithConfig(clientCfg),
		Model:  cfg.LLMModel,
	}
	text, err := s.Summarize(ctx, rows)
	if err != nil {
		log.Warn().Err(err).Msg("trend summary failed; continuing")
		return
	}
	if err := os.WriteFile(cfg.SummaryPath, []byte(text+"\n"), 0o644); err != nil {
		log.Warn().Err(err).Msg("write summary failed; continuing")
		return
	}
	log.Info().Str("summary", cfg.SummaryPath).Msg("wrote trend summary")
}

func rowFields(rows []normalize.Row) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = r.Fields()
	}
	return out
}
