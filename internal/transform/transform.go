package transform

import (
	"fmt"

	"citeprep/internal/record"
)

// ContextID returns the identifier shared by every statement of the row at
// 0-based position idx: "Q" followed by idx+1, zero-padded to three digits.
func ContextID(idx int) string {
	return fmt.Sprintf("Q%03d", idx+1)
}

// TransformRow expands one input row into one output record per statement.
func TransformRow(idx int, row record.InputRecord) []record.OutputRecord {
	statements := SplitStatements(row.Response)
	out := make([]record.OutputRecord, 0, len(statements))
	if len(statements) == 0 {
		return out
	}
	contextID := ContextID(idx)
	snippetLines := SplitLines(row.CitationSnippets)
	for i, statement := range statements {
		citations := ExtractCitations(statement)
		out = append(out, record.OutputRecord{
			Question:       row.Question,
			Response:       row.Response,
			ContextID:      contextID,
			StatementIndex: i + 1,
			Statement:      statement,
			Citations:      citations,
			Snippets:       ResolveSnippets(citations, snippetLines),
			Documents:      row.Documents,
		})
	}
	return out
}

// Transform expands every input row, preserving row and statement order.
func Transform(rows []record.InputRecord) []record.OutputRecord {
	out := make([]record.OutputRecord, 0, len(rows))
	for idx, row := range rows {
		out = append(out, TransformRow(idx, row)...)
	}
	return out
}
