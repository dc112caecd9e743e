package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"citeprep/internal/record"
)

// Renderer serializes records to a writer.
type Renderer func(w io.Writer, records []record.OutputRecord) error

// WriteFile renders records into path, replacing any existing file. The
// content is written to a temp file in the same directory and renamed into
// place, so a failed write leaves the previous file untouched.
func WriteFile(path string, records []record.OutputRecord, render Renderer) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", filepath.Base(path), err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	buf := bufio.NewWriterSize(tmp, 64*1024)
	if err := render(buf, records); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := buf.Flush(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}
	return nil
}
