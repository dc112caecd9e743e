package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"citeprep/internal/config"
	"citeprep/internal/testutil"
)

func TestInitWritesConfig(t *testing.T) {
	dir := t.TempDir()
	testutil.Chdir(t, dir)

	var out, errOut bytes.Buffer
	if code := Run([]string{"init"}, &out, &errOut); code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, errOut.String())
	}
	target := filepath.Join(dir, config.ConfigFileName)
	if _, err := config.Load(target); err != nil {
		t.Fatalf("scaffolded config should load: %v", err)
	}
	if !strings.Contains(out.String(), "Wrote ") {
		t.Fatalf("expected write message, got %q", out.String())
	}
}

func TestInitRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	testutil.Chdir(t, dir)
	testutil.WriteFile(t, dir, config.ConfigFileName, "custom\n")

	var out, errOut bytes.Buffer
	if code := Run([]string{"init"}, &out, &errOut); code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut.String(), "already exists") {
		t.Fatalf("expected exists error, got %q", errOut.String())
	}

	out.Reset()
	errOut.Reset()
	if code := Run([]string{"init", "--force"}, &out, &errOut); code != ExitOK {
		t.Fatalf("expected exit %d with --force, got %d", ExitOK, code)
	}
	data, err := os.ReadFile(filepath.Join(dir, config.ConfigFileName))
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !strings.HasPrefix(string(data), "version: 1") {
		t.Fatalf("expected default config, got %q", string(data))
	}
}
