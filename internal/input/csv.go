package input

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// parseDelimited parses decoded CSV or TSV content into a table.
func parseDelimited(content []byte, comma rune) (table, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.Comma = comma
	reader.LazyQuotes = true
	reader.ReuseRecord = false

	allRows, err := reader.ReadAll()
	if err != nil {
		return table{}, fmt.Errorf("parse delimited input: %w", err)
	}
	if len(allRows) == 0 {
		return table{}, ErrEmptyTable
	}
	return table{header: allRows[0], rows: allRows[1:]}, nil
}
