package transform

import (
	"math/rand"
	"reflect"
	"regexp"
	"strings"
	"testing"
	"testing/quick"
)

// TestExtractCitations verifies marker order and multiplicity.
func TestExtractCitations(t *testing.T) {
	cases := []struct {
		statement string
		want      []string
	}{
		{statement: "no markers here", want: []string{}},
		{statement: "The sky is blue ?1?", want: []string{"?1?"}},
		{statement: "?2? then ?10? then ?2?", want: []string{"?2?", "?10?", "?2?"}},
		{statement: "adjacent ?1??2?", want: []string{"?1?", "?2?"}},
		{statement: "shared edge ?1?2?", want: []string{"?1?"}},
		{statement: "not a marker ?? or ?a1?", want: []string{}},
	}
	for _, tc := range cases {
		got := ExtractCitations(tc.statement)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("ExtractCitations(%q) = %q, want %q", tc.statement, got, tc.want)
		}
	}
}

// TestExtractCitationsMatchesPattern compares against a plain ASCII pattern.
func TestExtractCitationsMatchesPattern(t *testing.T) {
	reference := regexp.MustCompile(`\?[0-9]+\?`)
	alphabet := []string{"?", "?", "1", "23", "a", " ", "."}
	cfg := &quick.Config{MaxCount: 300, Rand: rand.New(rand.NewSource(3))}
	property := func(seed int64) bool {
		rng := rand.New(rand.NewSource(seed))
		var builder strings.Builder
		for i := 0; i < rng.Intn(30); i++ {
			builder.WriteString(alphabet[rng.Intn(len(alphabet))])
		}
		statement := builder.String()
		want := reference.FindAllString(statement, -1)
		if want == nil {
			want = []string{}
		}
		return reflect.DeepEqual(ExtractCitations(statement), want)
	}
	if err := quick.Check(property, cfg); err != nil {
		t.Fatalf("pattern property failed: %v", err)
	}
}

// TestResolveSnippets verifies marker-then-line ordering without dedup.
func TestResolveSnippets(t *testing.T) {
	lines := []string{"?1? sky fact", "?2? rain fact", "?1? ?2? both"}
	got := ResolveSnippets([]string{"?2?", "?1?"}, lines)
	want := []string{"?2? rain fact", "?1? ?2? both", "?1? sky fact", "?1? ?2? both"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected snippets: %q", got)
	}
}

// TestResolveSnippetsDuplicates verifies repeated markers collect lines again.
func TestResolveSnippetsDuplicates(t *testing.T) {
	got := ResolveSnippets([]string{"?1?", "?1?"}, []string{"?1? fact"})
	if len(got) != 2 || got[0] != "?1? fact" || got[1] != "?1? fact" {
		t.Fatalf("expected the line twice, got %q", got)
	}
}

// TestResolveSnippetsEmpty verifies empty and unmatched inputs yield nothing.
func TestResolveSnippetsEmpty(t *testing.T) {
	if got := ResolveSnippets(nil, []string{"?1? fact"}); len(got) != 0 {
		t.Fatalf("expected no snippets, got %q", got)
	}
	if got := ResolveSnippets([]string{"?9?"}, []string{"?1? fact"}); len(got) != 0 {
		t.Fatalf("expected no snippets, got %q", got)
	}
}

// TestSplitLines covers the supported line boundaries.
func TestSplitLines(t *testing.T) {
	cases := []struct {
		name  string
		block string
		want  []string
	}{
		{name: "empty", block: "", want: []string{}},
		{name: "single", block: "one", want: []string{"one"}},
		{name: "trailing newline", block: "one\ntwo\n", want: []string{"one", "two"}},
		{name: "crlf", block: "one\r\ntwo", want: []string{"one", "two"}},
		{name: "bare cr", block: "one\rtwo", want: []string{"one", "two"}},
		{name: "blank lines kept", block: "one\n\ntwo", want: []string{"one", "", "two"}},
		{name: "next line", block: "one\u0085two", want: []string{"one", "two"}},
		{name: "separators", block: "a\x1cb\x1dc\x1ed\ve\ff", want: []string{"a", "b", "c", "d", "e", "f"}},
		{name: "unicode separators", block: "a\u2028b\u2029", want: []string{"a", "b"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitLines(tc.block)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("SplitLines(%q) = %q, want %q", tc.block, got, tc.want)
			}
		})
	}
}
