package output

import (
	"context"
	"fmt"
	"io"

	"citeprep/internal/record"
)

//go:generate templ generate -f statements.templ

// contextGroup holds the statements that share a context id.
type contextGroup struct {
	ContextID string
	Question  string
	Records   []record.OutputRecord
}

// groupByContext groups consecutive records by context id.
func groupByContext(records []record.OutputRecord) []contextGroup {
	var groups []contextGroup
	for _, rec := range records {
		if len(groups) == 0 || groups[len(groups)-1].ContextID != rec.ContextID {
			groups = append(groups, contextGroup{ContextID: rec.ContextID, Question: rec.Question})
		}
		last := &groups[len(groups)-1]
		last.Records = append(last.Records, rec)
	}
	return groups
}

// WriteHTML renders the statements preview page.
func WriteHTML(w io.Writer, records []record.OutputRecord) error {
	if err := StatementsPage(records).Render(context.Background(), w); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}
