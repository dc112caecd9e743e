package config

import "citeprep/internal/input"

// Defaults applied when a field is not configured.
const (
	DefaultInputPath  = "Rough data.csv"
	DefaultOutputDir  = "."
	DefaultJSONOutput = "enhanced_data.json"
	DefaultCSVOutput  = "enhanced_data.csv"
)

// Default returns the configuration used when no config file exists.
func Default() Config {
	cfg := Config{Version: 1}
	Normalize(&cfg)
	return cfg
}

// InputOptions converts the input section into loader options.
func (cfg Config) InputOptions() input.Options {
	return input.Options{
		Encoding: cfg.Input.Encoding,
		Sheet:    cfg.Input.Sheet,
		Columns: input.Columns{
			Question:         cfg.Input.Columns.Question,
			Response:         cfg.Input.Columns.Response,
			CitationSnippets: cfg.Input.Columns.CitationSnippets,
			Documents:        cfg.Input.Columns.Documents,
		},
	}
}
