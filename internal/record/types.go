package record

// InputRecord is one row of the source dataset.
type InputRecord struct {
	Question         string
	Response         string
	CitationSnippets string
	Documents        string
}

// OutputRecord is one statement extracted from an input row.
type OutputRecord struct {
	Question       string   `json:"question"`
	Response       string   `json:"response"`
	ContextID      string   `json:"context_id"`
	StatementIndex int      `json:"statement_index"`
	Statement      string   `json:"statement"`
	Citations      []string `json:"citations"`
	Snippets       []string `json:"snippets"`
	Documents      string   `json:"documents"`
}

// Output field names, in serialization order.
const (
	FieldQuestion       = "question"
	FieldResponse       = "response"
	FieldContextID      = "context_id"
	FieldStatementIndex = "statement_index"
	FieldStatement      = "statement"
	FieldCitations      = "citations"
	FieldSnippets       = "snippets"
	FieldDocuments      = "documents"
)

// Fields returns the output field names in serialization order.
func Fields() []string {
	return []string{
		FieldQuestion,
		FieldResponse,
		FieldContextID,
		FieldStatementIndex,
		FieldStatement,
		FieldCitations,
		FieldSnippets,
		FieldDocuments,
	}
}
