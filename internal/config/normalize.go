package config

import (
	"path/filepath"
	"strings"

	"citeprep/internal/input"
)

// Normalize trims values and fills defaults for unset fields.
func Normalize(cfg *Config) {
	cfg.Input.Path = strings.TrimSpace(cfg.Input.Path)
	if cfg.Input.Path == "" {
		cfg.Input.Path = DefaultInputPath
	}
	cfg.Input.Encoding = strings.TrimSpace(cfg.Input.Encoding)
	if cfg.Input.Encoding == "" {
		cfg.Input.Encoding = input.DefaultEncoding
	} else if canonical, err := input.NormalizeEncoding(cfg.Input.Encoding); err == nil {
		cfg.Input.Encoding = canonical
	}
	cfg.Input.Sheet = strings.TrimSpace(cfg.Input.Sheet)

	columns := input.DefaultColumns()
	cfg.Input.Columns.Question = defaultString(cfg.Input.Columns.Question, columns.Question)
	cfg.Input.Columns.Response = defaultString(cfg.Input.Columns.Response, columns.Response)
	cfg.Input.Columns.CitationSnippets = defaultString(cfg.Input.Columns.CitationSnippets, columns.CitationSnippets)
	cfg.Input.Columns.Documents = defaultString(cfg.Input.Columns.Documents, columns.Documents)

	cfg.Output.Dir = defaultString(strings.TrimSpace(cfg.Output.Dir), DefaultOutputDir)
	cfg.Output.JSON = defaultString(strings.TrimSpace(cfg.Output.JSON), DefaultJSONOutput)
	cfg.Output.CSV = defaultString(strings.TrimSpace(cfg.Output.CSV), DefaultCSVOutput)
	cfg.Output.HTML = strings.TrimSpace(cfg.Output.HTML)
	cfg.Output.DuckDB = strings.TrimSpace(cfg.Output.DuckDB)
}

// ResolvePaths makes the input path and output dir absolute relative to baseDir.
func ResolvePaths(cfg *Config, baseDir string) {
	if baseDir == "" {
		return
	}
	cfg.Input.Path = resolve(baseDir, cfg.Input.Path)
	cfg.Output.Dir = resolve(baseDir, cfg.Output.Dir)
}

// OutputPath resolves an output file name against the output directory.
func (cfg Config) OutputPath(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(cfg.Output.Dir, name)
}

func resolve(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// defaultString keeps column names verbatim; only blank values are replaced.
func defaultString(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
