//go:build cucumber
// +build cucumber

package cucumber

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"citeprep/internal/record"

	"github.com/cucumber/godog"
)

// theOutputListsCommands asserts the output contains expected command names.
func (s *featureState) theOutputListsCommands(table *godog.Table) error {
	output := s.stdout.String()
	for _, row := range table.Rows {
		for _, cell := range row.Cells {
			command := strings.TrimSpace(cell.Value)
			if command == "" {
				continue
			}
			if !strings.Contains(output, command) {
				return fmt.Errorf("expected command %q in output", command)
			}
		}
	}
	return nil
}

func (s *featureState) theExitCodeIs(code int) error {
	if s.exitCode != code {
		return fmt.Errorf("expected exit code %d, got %d (stderr %q)", code, s.exitCode, s.stderr.String())
	}
	return nil
}

// theExitCodeIsNonZero asserts that the CLI returned an error code.
func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected non-zero exit code")
	}
	return nil
}

func (s *featureState) theOutputMentions(text string) error {
	if !strings.Contains(s.stdout.String(), text) {
		return fmt.Errorf("expected %q in output, got %q", text, s.stdout.String())
	}
	return nil
}

func (s *featureState) theErrorOutputMentions(text string) error {
	if !strings.Contains(s.stderr.String(), text) {
		return fmt.Errorf("expected %q in error output, got %q", text, s.stderr.String())
	}
	return nil
}

func (s *featureState) fileHoldsStatements(name string, count int) error {
	records, err := s.readRecords(name)
	if err != nil {
		return err
	}
	if len(records) != count {
		return fmt.Errorf("expected %d statements in %s, got %d", count, name, len(records))
	}
	return nil
}

func (s *featureState) statementIs(position int, name, text, contextID string) error {
	rec, err := s.statementAt(name, position)
	if err != nil {
		return err
	}
	if rec.Statement != text || rec.ContextID != contextID {
		return fmt.Errorf("statement %d: got %q for %s", position, rec.Statement, rec.ContextID)
	}
	return nil
}

// statementCites compares the comma separated marker list.
func (s *featureState) statementCites(position int, name, markers string) error {
	rec, err := s.statementAt(name, position)
	if err != nil {
		return err
	}
	if got := strings.Join(rec.Citations, ","); got != markers {
		return fmt.Errorf("statement %d: expected citations %q, got %q", position, markers, got)
	}
	return nil
}

func (s *featureState) statementHasSnippets(position int, name string, count int) error {
	rec, err := s.statementAt(name, position)
	if err != nil {
		return err
	}
	if len(rec.Snippets) != count {
		return fmt.Errorf("statement %d: expected %d snippets, got %d", position, count, len(rec.Snippets))
	}
	return nil
}

func (s *featureState) csvFileHasRows(name string, count int) error {
	file, err := os.Open(filepath.Join(s.workDir, name))
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer func() { _ = file.Close() }()
	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	if len(rows) != count {
		return fmt.Errorf("expected %d rows in %s, got %d", count, name, len(rows))
	}
	return nil
}

func (s *featureState) theFileDoesNotExist(name string) error {
	if _, err := os.Stat(filepath.Join(s.workDir, name)); !os.IsNotExist(err) {
		return fmt.Errorf("expected %s to be absent (stat: %v)", name, err)
	}
	return nil
}

func (s *featureState) theFileExists(name string) error {
	if _, err := os.Stat(filepath.Join(s.workDir, name)); err != nil {
		return fmt.Errorf("expected %s to exist: %w", name, err)
	}
	return nil
}

// statementAt returns the 1-based statement from a JSON output file.
func (s *featureState) statementAt(name string, position int) (record.OutputRecord, error) {
	records, err := s.readRecords(name)
	if err != nil {
		return record.OutputRecord{}, err
	}
	if position < 1 || position > len(records) {
		return record.OutputRecord{}, fmt.Errorf("statement %d out of range (%d statements)", position, len(records))
	}
	return records[position-1], nil
}

func (s *featureState) readRecords(name string) ([]record.OutputRecord, error) {
	data, err := os.ReadFile(filepath.Join(s.workDir, name))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	var records []record.OutputRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return records, nil
}
