package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"citeprep/internal/input"

	"github.com/xuri/excelize/v2"
)

// fixtureConfig defines the JSON config for generating a synthetic input table.
type fixtureConfig struct {
	Name                  string `json:"name"`
	Rows                  int    `json:"rows"`
	StatementsPerRow      int    `json:"statements_per_row"`
	CitationsPerStatement int    `json:"citations_per_statement"`
}

func main() {
	configPath := flag.String("config", "", "path to fixture config JSON")
	outPath := flag.String("out", "", "output table path (.csv or .xlsx)")
	flag.Parse()
	if *configPath == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: generate_input --config <path> --out <table file>")
		os.Exit(2)
	}
	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir output dir: %v\n", err)
		os.Exit(1)
	}
	if err := generateFixture(*outPath, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "generate fixture: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (fixtureConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fixtureConfig{}, err
	}
	var cfg fixtureConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fixtureConfig{}, err
	}
	if cfg.Rows <= 0 {
		return fixtureConfig{}, fmt.Errorf("rows must be positive")
	}
	if cfg.StatementsPerRow <= 0 {
		cfg.StatementsPerRow = 1
	}
	return cfg, nil
}

func generateFixture(path string, cfg fixtureConfig) error {
	rows := fixtureRows(cfg)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return writeCSV(path, rows)
	case ".xlsx":
		return writeWorkbook(path, rows)
	default:
		return fmt.Errorf("%w: %s", input.ErrUnsupportedFormat, filepath.Base(path))
	}
}

// fixtureRows builds a header plus deterministic data rows. Marker numbers
// restart per row; every second statement carries a decimal number.
func fixtureRows(cfg fixtureConfig) [][]string {
	columns := input.DefaultColumns()
	rows := [][]string{{columns.Question, columns.Response, columns.CitationSnippets, columns.Documents}}
	for i := 0; i < cfg.Rows; i++ {
		var statements, snippets []string
		marker := 1
		for s := 0; s < cfg.StatementsPerRow; s++ {
			text := fmt.Sprintf("Statement %d of %s row %d", s+1, cfg.Name, i+1)
			if s%2 == 1 {
				text += fmt.Sprintf(" measured %d.%d units", s, i%10)
			}
			for c := 0; c < cfg.CitationsPerStatement; c++ {
				text += fmt.Sprintf(" ?%d?", marker)
				snippets = append(snippets, fmt.Sprintf("?%d? snippet for marker %d", marker, marker))
				marker++
			}
			statements = append(statements, text+".")
		}
		rows = append(rows, []string{
			fmt.Sprintf("Question %d?", i+1),
			strings.Join(statements, " "),
			strings.Join(snippets, "\n"),
			fmt.Sprintf("Document body %d", i+1),
		})
	}
	return rows
}

func writeCSV(path string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	writer := csv.NewWriter(file)
	if err := writer.WriteAll(rows); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

func writeWorkbook(path string, rows [][]string) error {
	book := excelize.NewFile()
	defer func() { _ = book.Close() }()
	sheet := book.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]any, len(row))
		for j, value := range row {
			values[j] = value
		}
		if err := book.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}
	return book.SaveAs(path)
}
