package record

import (
	"encoding/json"
	"strings"
	"testing"
)

// TestOutputRecordJSONKeyOrder verifies JSON keys follow the field order.
func TestOutputRecordJSONKeyOrder(t *testing.T) {
	data, err := json.Marshal(OutputRecord{
		Question:       "Q1",
		Response:       "A.",
		ContextID:      "Q001",
		StatementIndex: 1,
		Statement:      "A",
		Citations:      []string{},
		Snippets:       []string{},
		Documents:      "doc",
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	payload := string(data)
	last := -1
	for _, field := range Fields() {
		pos := strings.Index(payload, `"`+field+`"`)
		if pos == -1 {
			t.Fatalf("missing key %q in %s", field, payload)
		}
		if pos < last {
			t.Fatalf("key %q out of order in %s", field, payload)
		}
		last = pos
	}
}
