package config

import (
	"fmt"
	"os"
)

const defaultConfig = `version: 1

input:
  path: "Rough data.csv"
  # iso-8859-1, windows-1252 or utf-8; ignored for .xlsx
  encoding: "iso-8859-1"
  # sheet: "Data"
  columns:
    question: "Question"
    response: "Response"
    citation_snippets: "Citation Snippets"
    documents: "Original Documents"

output:
  dir: "."
  json: "enhanced_data.json"
  csv: "enhanced_data.csv"
  # html: "enhanced_data.html"
  # duckdb: "enhanced_data.duckdb"
`

// Scaffold writes the default config to path. An existing file is only
// replaced when force is set.
func Scaffold(path string, force bool) error {
	if path == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", path)
		}
		if !force {
			return fmt.Errorf("config file already exists at %q", path)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
