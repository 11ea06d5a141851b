package app

// Config carries the resolved settings for one extraction run. Flags, the
// environment, and an optional config file all funnel into this struct
// before Run starts.
type Config struct {
	// InputPath is the HTML document to extract from.
	InputPath string
	// OutputPath receives the CSV rows.
	OutputPath string
	// ChartPath, when set, receives a rendered PDF chart.
	ChartPath string
	// SummaryPath, when set together with the LLM settings, receives a
	// short model-written trend summary.
	SummaryPath string

	LLMBaseURL string
	LLMModel   string
	LLMAPIKey  string

	Verbose bool
}
