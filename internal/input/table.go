package input

import (
	"fmt"

	"citeprep/internal/record"
)

// table is a header row plus data rows, all as decoded strings.
type table struct {
	header []string
	rows   [][]string
}

// columnIndex locates the configured columns in the header. The first
// occurrence wins when a header name repeats.
func (t table) columnIndex(columns Columns) (map[string]int, error) {
	positions := make(map[string]int, len(t.header))
	for i, name := range t.header {
		if _, exists := positions[name]; !exists {
			positions[name] = i
		}
	}
	required := []string{columns.Question, columns.Response, columns.CitationSnippets, columns.Documents}
	index := make(map[string]int, len(required))
	var missing []string
	for _, name := range required {
		pos, ok := positions[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		index[name] = pos
	}
	if len(missing) > 0 {
		return nil, &ColumnError{Missing: missing, Header: t.header}
	}
	return index, nil
}

// records converts rows into input records using the configured columns.
func (t table) records(columns Columns) ([]record.InputRecord, error) {
	index, err := t.columnIndex(columns)
	if err != nil {
		return nil, err
	}
	out := make([]record.InputRecord, 0, len(t.rows))
	for i, row := range t.rows {
		cell := func(name string) (string, error) {
			pos := index[name]
			if pos >= len(row) {
				return "", fmt.Errorf("row %d: column %q: %w", i+1, name, ErrMissingColumn)
			}
			return row[pos], nil
		}
		var rec record.InputRecord
		if rec.Question, err = cell(columns.Question); err != nil {
			return nil, err
		}
		if rec.Response, err = cell(columns.Response); err != nil {
			return nil, err
		}
		if rec.CitationSnippets, err = cell(columns.CitationSnippets); err != nil {
			return nil, err
		}
		if rec.Documents, err = cell(columns.Documents); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
