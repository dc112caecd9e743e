package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"citeprep/internal/record"
)

// WriteCSV writes a header row and one row per record. Sequence fields are
// rendered as compact JSON arrays.
func WriteCSV(w io.Writer, records []record.OutputRecord) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(record.Fields()); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i, rec := range normalize(records) {
		citations, err := listText(rec.Citations)
		if err != nil {
			return fmt.Errorf("record %d citations: %w", i+1, err)
		}
		snippets, err := listText(rec.Snippets)
		if err != nil {
			return fmt.Errorf("record %d snippets: %w", i+1, err)
		}
		row := []string{
			rec.Question,
			rec.Response,
			rec.ContextID,
			strconv.Itoa(rec.StatementIndex),
			rec.Statement,
			citations,
			snippets,
			rec.Documents,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv record %d: %w", i+1, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func listText(values []string) (string, error) {
	data, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
