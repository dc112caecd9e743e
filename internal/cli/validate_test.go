package cli

import (
	"bytes"
	"strings"
	"testing"

	"citeprep/internal/config"
	"citeprep/internal/testutil"
)

// TestValidateCommandSuccess verifies validate command success path.
func TestValidateCommandSuccess(t *testing.T) {
	dir := t.TempDir()
	testutil.Chdir(t, dir)
	testutil.WriteFile(t, dir, config.DefaultInputPath, sampleCSV)

	var out, err bytes.Buffer
	code := Run([]string{"validate"}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, err.String())
	}
	if err.Len() != 0 {
		t.Fatalf("expected no stderr output, got %q", err.String())
	}
	if !strings.Contains(out.String(), "Input OK: 1 rows") {
		t.Fatalf("expected success message, got %q", out.String())
	}
}

// TestValidateCommandMissingColumn verifies header problems are reported.
func TestValidateCommandMissingColumn(t *testing.T) {
	dir := t.TempDir()
	inputPath := testutil.WriteFile(t, dir, "in.csv", "Question,Response\nQ,A\n")

	var out, err bytes.Buffer
	code := Run([]string{"validate", "--input", inputPath}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no stdout output, got %q", out.String())
	}
	for _, name := range []string{"Citation Snippets", "Original Documents"} {
		if !strings.Contains(err.String(), name) {
			t.Fatalf("expected %q in error, got %q", name, err.String())
		}
	}
}

// TestValidateCommandBadConfig verifies config issues are reported.
func TestValidateCommandBadConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := testutil.WriteFile(t, dir, config.ConfigFileName, "version: 2\n")

	var out, err bytes.Buffer
	code := Run([]string{"validate", "--config", configPath}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(err.String(), "Validation failed") || !strings.Contains(err.String(), "version") {
		t.Fatalf("expected version issue, got %q", err.String())
	}
}
