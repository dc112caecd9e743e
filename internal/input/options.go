package input

import "strings"

// Default column names of the source dataset.
const (
	DefaultQuestionColumn         = "Question"
	DefaultResponseColumn         = "Response"
	DefaultCitationSnippetsColumn = "Citation Snippets"
	DefaultDocumentsColumn        = "Original Documents"
)

// DefaultEncoding is the text encoding assumed for delimited files.
const DefaultEncoding = EncodingLatin1

// Columns maps record fields to header names.
type Columns struct {
	Question         string
	Response         string
	CitationSnippets string
	Documents        string
}

// Options controls how a table is located and decoded.
type Options struct {
	// Encoding applies to .csv and .tsv input; .xlsx is always UTF-8.
	Encoding string
	// Sheet selects an xlsx worksheet; empty picks the first data sheet.
	Sheet   string
	Columns Columns
}

// DefaultColumns returns the column names used by the source dataset.
func DefaultColumns() Columns {
	return Columns{
		Question:         DefaultQuestionColumn,
		Response:         DefaultResponseColumn,
		CitationSnippets: DefaultCitationSnippetsColumn,
		Documents:        DefaultDocumentsColumn,
	}
}

// withDefaults fills blank option fields.
func (o Options) withDefaults() Options {
	if strings.TrimSpace(o.Encoding) == "" {
		o.Encoding = DefaultEncoding
	}
	defaults := DefaultColumns()
	if strings.TrimSpace(o.Columns.Question) == "" {
		o.Columns.Question = defaults.Question
	}
	if strings.TrimSpace(o.Columns.Response) == "" {
		o.Columns.Response = defaults.Response
	}
	if strings.TrimSpace(o.Columns.CitationSnippets) == "" {
		o.Columns.CitationSnippets = defaults.CitationSnippets
	}
	if strings.TrimSpace(o.Columns.Documents) == "" {
		o.Columns.Documents = defaults.Documents
	}
	return o
}
