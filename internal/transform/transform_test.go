package transform

import (
	"reflect"
	"testing"

	"citeprep/internal/record"
)

// TestContextID verifies zero padding and widening past three digits.
func TestContextID(t *testing.T) {
	cases := map[int]string{0: "Q001", 9: "Q010", 99: "Q100", 999: "Q1000"}
	for idx, want := range cases {
		if got := ContextID(idx); got != want {
			t.Fatalf("ContextID(%d) = %q, want %q", idx, got, want)
		}
	}
}

// TestTransformRowScenario verifies the canonical two-statement row.
func TestTransformRowScenario(t *testing.T) {
	row := record.InputRecord{
		Question:         "Q1",
		Response:         "The sky is blue ?1?. It rained 3.5 inches ?2?.",
		CitationSnippets: "?1? sky fact\n?2? rain fact",
		Documents:        "doc text",
	}
	got := TransformRow(0, row)
	want := []record.OutputRecord{
		{
			Question:       "Q1",
			Response:       row.Response,
			ContextID:      "Q001",
			StatementIndex: 1,
			Statement:      "The sky is blue ?1?",
			Citations:      []string{"?1?"},
			Snippets:       []string{"?1? sky fact"},
			Documents:      "doc text",
		},
		{
			Question:       "Q1",
			Response:       row.Response,
			ContextID:      "Q001",
			StatementIndex: 2,
			Statement:      "It rained 3.5 inches ?2?",
			Citations:      []string{"?2?"},
			Snippets:       []string{"?2? rain fact"},
			Documents:      "doc text",
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected records:\n got %+v\nwant %+v", got, want)
	}
}

// TestTransformRowEmptyResponse verifies empty responses yield no records.
func TestTransformRowEmptyResponse(t *testing.T) {
	got := TransformRow(3, record.InputRecord{Question: "Q", Response: "", CitationSnippets: "?1? x"})
	if len(got) != 0 {
		t.Fatalf("expected no records, got %+v", got)
	}
}

// TestTransformRowDuplicateMarkers verifies a shared snippet line is collected
// once per marker.
func TestTransformRowDuplicateMarkers(t *testing.T) {
	got := TransformRow(0, record.InputRecord{
		Response:         "Both ?1? and ?1? again",
		CitationSnippets: "?1? only line",
	})
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	if !reflect.DeepEqual(got[0].Snippets, []string{"?1? only line", "?1? only line"}) {
		t.Fatalf("unexpected snippets: %q", got[0].Snippets)
	}
}

// TestTransformRowDocumentsUntouched verifies documents pass through verbatim.
func TestTransformRowDocumentsUntouched(t *testing.T) {
	docs := "?1? doc line\nunrelated line\n"
	got := TransformRow(0, record.InputRecord{Response: "Claim ?1?", Documents: docs})
	if len(got) != 1 || got[0].Documents != docs {
		t.Fatalf("documents changed: %+v", got)
	}
	if len(got[0].Snippets) != 0 {
		t.Fatalf("expected no snippets without a snippet block, got %q", got[0].Snippets)
	}
}

// TestTransformContextIDsFollowRows verifies ids track rows, not statements.
func TestTransformContextIDsFollowRows(t *testing.T) {
	rows := []record.InputRecord{
		{Response: "One. Two. Three."},
		{Response: ""},
		{Response: "Only"},
	}
	got := Transform(rows)
	ids := make([]string, 0, len(got))
	indexes := make([]int, 0, len(got))
	for _, rec := range got {
		ids = append(ids, rec.ContextID)
		indexes = append(indexes, rec.StatementIndex)
	}
	if !reflect.DeepEqual(ids, []string{"Q001", "Q001", "Q001", "Q003"}) {
		t.Fatalf("unexpected context ids: %v", ids)
	}
	if !reflect.DeepEqual(indexes, []int{1, 2, 3, 1}) {
		t.Fatalf("unexpected statement indexes: %v", indexes)
	}
}

// TestTransformSnippetBound verifies snippets never exceed citations x lines.
func TestTransformSnippetBound(t *testing.T) {
	row := record.InputRecord{
		Response:         "A ?1? ?2? ?1?. B ?3?. C",
		CitationSnippets: "?1? a\n?2? b\n?1??2? ab\nnone",
	}
	lines := len(SplitLines(row.CitationSnippets))
	for _, rec := range TransformRow(0, row) {
		if len(rec.Snippets) > len(rec.Citations)*lines {
			t.Fatalf("snippets exceed bound for %q: %d", rec.Statement, len(rec.Snippets))
		}
		if len(rec.Citations) == 0 && len(rec.Snippets) != 0 {
			t.Fatalf("snippets without citations for %q", rec.Statement)
		}
	}
}
