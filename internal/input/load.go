package input

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"citeprep/internal/record"
)

// Load reads the whole table at path and returns its rows as input records.
// Any failure aborts the load; no partial result is returned.
func Load(path string, opts Options) ([]record.InputRecord, error) {
	opts = opts.withDefaults()
	tbl, err := readTable(path, opts)
	if err != nil {
		return nil, err
	}
	records, err := tbl.records(opts.Columns)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return records, nil
}

func readTable(path string, opts Options) (table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readDelimited(path, opts.Encoding, ',')
	case ".tsv":
		return readDelimited(path, opts.Encoding, '\t')
	case ".xlsx":
		if _, err := os.Stat(path); err != nil {
			return table{}, fmt.Errorf("read input: %w", err)
		}
		return parseWorkbook(path, opts.Sheet)
	default:
		return table{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	}
}

func readDelimited(path, encodingName string, comma rune) (table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return table{}, fmt.Errorf("read input: %w", err)
	}
	decoded, err := decodeText(data, encodingName)
	if err != nil {
		return table{}, err
	}
	return parseDelimited(decoded, comma)
}
