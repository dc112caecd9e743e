package input

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingColumn indicates the header lacks a required column.
	ErrMissingColumn = errors.New("missing required column")
	// ErrUnsupportedFormat indicates the file extension is not a known table format.
	ErrUnsupportedFormat = errors.New("unsupported input format")
	// ErrUnsupportedEncoding indicates an unknown text encoding name.
	ErrUnsupportedEncoding = errors.New("unsupported encoding")
	// ErrEmptyTable indicates the file has no header row.
	ErrEmptyTable = errors.New("input has no header row")
)

// ColumnError lists every required column absent from the header.
type ColumnError struct {
	Missing []string
	Header  []string
}

// Error returns a readable message naming the missing columns.
func (err *ColumnError) Error() string {
	quoted := make([]string, 0, len(err.Missing))
	for _, name := range err.Missing {
		quoted = append(quoted, fmt.Sprintf("%q", name))
	}
	return fmt.Sprintf("%s: %s (header: %s)", ErrMissingColumn, strings.Join(quoted, ", "), strings.Join(err.Header, ", "))
}

// Is reports whether target is ErrMissingColumn.
func (err *ColumnError) Is(target error) bool {
	return target == ErrMissingColumn
}
