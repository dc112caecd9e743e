package input

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"

	"citeprep/internal/record"
)

const sampleCSV = "Question,Response,Citation Snippets,Original Documents\n" +
	"Q1,\"The sky is blue ?1?. It rained 3.5 inches ?2?.\",\"?1? sky fact\n?2? rain fact\",doc text\n" +
	"Q2,,,\n"

// writeFile writes test content into a temp directory.
func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// TestLoadCSV verifies rows map onto input records in order.
func TestLoadCSV(t *testing.T) {
	path := writeFile(t, "rough.csv", []byte(sampleCSV))
	rows, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []record.InputRecord{
		{
			Question:         "Q1",
			Response:         "The sky is blue ?1?. It rained 3.5 inches ?2?.",
			CitationSnippets: "?1? sky fact\n?2? rain fact",
			Documents:        "doc text",
		},
		{Question: "Q2"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

// TestLoadCSVLatin1 verifies single-byte input is decoded to UTF-8.
func TestLoadCSVLatin1(t *testing.T) {
	content := []byte("Question,Response,Citation Snippets,Original Documents\nCaf\xe9?,Cr\xe8me ?1?.,?1? x,\xa9 doc\n")
	path := writeFile(t, "latin.csv", content)
	rows, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if rows[0].Question != "Café?" || rows[0].Response != "Crème ?1?." || rows[0].Documents != "© doc" {
		t.Fatalf("unexpected decoding: %+v", rows[0])
	}
}

// TestLoadCSVCRLF verifies CRLF line breaks inside quoted cells load as "\n".
func TestLoadCSVCRLF(t *testing.T) {
	content := "Question,Response,Citation Snippets,Original Documents\r\n" +
		"Q1,\"First ?1?.\r\nSecond ?2?.\",\"?1? a\r\n?2? b\",\"doc line one\r\ndoc line two\"\r\n"
	path := writeFile(t, "crlf.csv", []byte(content))
	rows, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []record.InputRecord{{
		Question:         "Q1",
		Response:         "First ?1?.\nSecond ?2?.",
		CitationSnippets: "?1? a\n?2? b",
		Documents:        "doc line one\ndoc line two",
	}}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("unexpected rows: %q", rows)
	}
}

// TestLoadCSVUTF8BOM verifies the byte order mark is dropped for UTF-8 input.
func TestLoadCSVUTF8BOM(t *testing.T) {
	content := append([]byte("\xef\xbb\xbf"), []byte(sampleCSV)...)
	path := writeFile(t, "bom.csv", content)
	rows, err := Load(path, Options{Encoding: "UTF8"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(rows) != 2 || rows[0].Question != "Q1" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

// TestLoadTSVCustomColumns verifies tab input with renamed columns.
func TestLoadTSVCustomColumns(t *testing.T) {
	content := []byte("q\ta\tcites\tdocs\textra\nWhy?\tBecause ?1?.\t?1? reason\tbody\tignored\n")
	path := writeFile(t, "data.tsv", content)
	rows, err := Load(path, Options{Columns: Columns{Question: "q", Response: "a", CitationSnippets: "cites", Documents: "docs"}})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := record.InputRecord{Question: "Why?", Response: "Because ?1?.", CitationSnippets: "?1? reason", Documents: "body"}
	if len(rows) != 1 || rows[0] != want {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

// TestLoadMissingColumns verifies every missing column is reported.
func TestLoadMissingColumns(t *testing.T) {
	path := writeFile(t, "partial.csv", []byte("Question,Response\nQ,A\n"))
	_, err := Load(path, Options{})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("expected missing column error, got %v", err)
	}
	var columnErr *ColumnError
	if !errors.As(err, &columnErr) {
		t.Fatalf("expected column error, got %T", err)
	}
	want := []string{DefaultCitationSnippetsColumn, DefaultDocumentsColumn}
	if !reflect.DeepEqual(columnErr.Missing, want) {
		t.Fatalf("unexpected missing columns: %v", columnErr.Missing)
	}
	if !reflect.DeepEqual(columnErr.Header, []string{"Question", "Response"}) {
		t.Fatalf("unexpected header: %v", columnErr.Header)
	}
}

// TestLoadRaggedRow verifies a malformed row fails the whole load.
func TestLoadRaggedRow(t *testing.T) {
	path := writeFile(t, "ragged.csv", []byte("Question,Response,Citation Snippets,Original Documents\nQ,A,S,D\nQ2,A2\n"))
	rows, err := Load(path, Options{})
	if err == nil {
		t.Fatalf("expected error")
	}
	if rows != nil {
		t.Fatalf("expected no partial rows, got %+v", rows)
	}
}

// TestLoadErrors covers unreadable files and bad options.
func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.csv"), Options{}); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not exist error, got %v", err)
	}
	if _, err := Load(filepath.Join(dir, "data.json"), Options{}); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected unsupported format, got %v", err)
	}
	path := writeFile(t, "data.csv", []byte(sampleCSV))
	if _, err := Load(path, Options{Encoding: "ebcdic"}); !errors.Is(err, ErrUnsupportedEncoding) {
		t.Fatalf("expected unsupported encoding, got %v", err)
	}
	empty := writeFile(t, "empty.csv", nil)
	if _, err := Load(empty, Options{}); !errors.Is(err, ErrEmptyTable) {
		t.Fatalf("expected empty table error, got %v", err)
	}
}

// TestLoadXLSX verifies workbook input matches the equivalent CSV.
func TestLoadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rough.xlsx")
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	if _, err := f.NewSheet("Data"); err != nil {
		t.Fatalf("new sheet: %v", err)
	}
	if err := f.SetSheetName("Sheet1", "readme"); err != nil {
		t.Fatalf("rename sheet: %v", err)
	}
	rows := [][]interface{}{
		{"Question", "Response", "Citation Snippets", "Original Documents"},
		{"Q1", "The sky is blue ?1?. It rained 3.5 inches ?2?.", "?1? sky fact\n?2? rain fact", "doc text"},
		{"Q2"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow("Data", cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}

	got, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("load xlsx: %v", err)
	}
	want, err := Load(writeFile(t, "rough.csv", []byte(sampleCSV)), Options{})
	if err != nil {
		t.Fatalf("load csv: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("xlsx rows differ from csv rows:\n got %+v\nwant %+v", got, want)
	}

	if _, err := Load(path, Options{Sheet: "Missing"}); err == nil {
		t.Fatalf("expected missing sheet error")
	}
}

// TestSelectSheet verifies metadata sheets are skipped.
func TestSelectSheet(t *testing.T) {
	got, err := selectSheet([]string{"Info", "Answers", "Notes"}, "")
	if err != nil || got != "Answers" {
		t.Fatalf("expected Answers, got %q (%v)", got, err)
	}
	got, err = selectSheet([]string{"Info", "Notes"}, "")
	if err != nil || got != "Notes" {
		t.Fatalf("expected last sheet, got %q (%v)", got, err)
	}
}
