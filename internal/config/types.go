package config

// Config is the citeprep.yml schema.
type Config struct {
	Version int          `yaml:"version"`
	Input   InputConfig  `yaml:"input"`
	Output  OutputConfig `yaml:"output"`
}

// InputConfig locates and decodes the source table.
type InputConfig struct {
	Path     string        `yaml:"path"`
	Encoding string        `yaml:"encoding"`
	Sheet    string        `yaml:"sheet"`
	Columns  ColumnsConfig `yaml:"columns"`
}

// ColumnsConfig maps record fields to header names in the source table.
type ColumnsConfig struct {
	Question         string `yaml:"question"`
	Response         string `yaml:"response"`
	CitationSnippets string `yaml:"citation_snippets"`
	Documents        string `yaml:"documents"`
}

// OutputConfig names the files a run produces. Relative names resolve
// against Dir; empty HTML or DuckDB disables that output.
type OutputConfig struct {
	Dir    string `yaml:"dir"`
	JSON   string `yaml:"json"`
	CSV    string `yaml:"csv"`
	HTML   string `yaml:"html"`
	DuckDB string `yaml:"duckdb"`
}
