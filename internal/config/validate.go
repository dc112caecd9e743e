package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"citeprep/internal/input"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// issueCollector accumulates validation issues.
type issueCollector struct {
	issues []Issue
}

func (c *issueCollector) add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}

var supportedInputExts = map[string]bool{".csv": true, ".tsv": true, ".xlsx": true}

// Validate checks a normalized config for correctness.
func Validate(cfg *Config) error {
	c := &issueCollector{}

	if cfg.Version == 0 {
		c.add("version", "is required")
	} else if cfg.Version != 1 {
		c.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if cfg.Input.Path == "" {
		c.add("input.path", "is required")
	} else if ext := strings.ToLower(filepath.Ext(cfg.Input.Path)); !supportedInputExts[ext] {
		c.add("input.path", fmt.Sprintf("unsupported file type %q (want .csv, .tsv or .xlsx)", ext))
	}
	if _, err := input.NormalizeEncoding(cfg.Input.Encoding); err != nil {
		c.add("input.encoding", fmt.Sprintf("unsupported encoding %q", cfg.Input.Encoding))
	}

	columns := map[string]string{
		"input.columns.question":          cfg.Input.Columns.Question,
		"input.columns.response":          cfg.Input.Columns.Response,
		"input.columns.citation_snippets": cfg.Input.Columns.CitationSnippets,
		"input.columns.documents":         cfg.Input.Columns.Documents,
	}
	seen := map[string]string{}
	for _, field := range []string{
		"input.columns.question",
		"input.columns.response",
		"input.columns.citation_snippets",
		"input.columns.documents",
	} {
		name := columns[field]
		if name == "" {
			c.add(field, "is required")
			continue
		}
		if other, exists := seen[name]; exists {
			c.add(field, fmt.Sprintf("duplicates %s (%q)", other, name))
			continue
		}
		seen[name] = field
	}

	outputs := map[string]string{}
	for _, entry := range []struct {
		field string
		name  string
	}{
		{"output.json", cfg.Output.JSON},
		{"output.csv", cfg.Output.CSV},
		{"output.html", cfg.Output.HTML},
		{"output.duckdb", cfg.Output.DuckDB},
	} {
		if entry.name == "" {
			if entry.field == "output.json" || entry.field == "output.csv" {
				c.add(entry.field, "is required")
			}
			continue
		}
		target := filepath.Clean(cfg.OutputPath(entry.name))
		if other, exists := outputs[target]; exists {
			c.add(entry.field, fmt.Sprintf("same path as %s", other))
			continue
		}
		outputs[target] = entry.field
	}

	return c.result()
}
