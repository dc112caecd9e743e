package output

import (
	"encoding/json"
	"fmt"
	"io"

	"citeprep/internal/record"
)

// jsonIndent matches the four-space layout consumers of enhanced_data.json expect.
const jsonIndent = "    "

// WriteJSON writes records as an indented JSON array.
func WriteJSON(w io.Writer, records []record.OutputRecord) error {
	if records == nil {
		records = []record.OutputRecord{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", jsonIndent)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(normalize(records)); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// normalize replaces nil sequences so they serialize as [] rather than null.
func normalize(records []record.OutputRecord) []record.OutputRecord {
	out := make([]record.OutputRecord, len(records))
	for i, rec := range records {
		if rec.Citations == nil {
			rec.Citations = []string{}
		}
		if rec.Snippets == nil {
			rec.Snippets = []string{}
		}
		out[i] = rec
	}
	return out
}
