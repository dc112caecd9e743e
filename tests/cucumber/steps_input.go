//go:build cucumber
// +build cucumber

package cucumber

import (
	"fmt"
	"os"
	"path/filepath"

	"citeprep/internal/config"

	"github.com/cucumber/godog"
)

// aRoughDataFile writes the default input table into the working directory.
func (s *featureState) aRoughDataFile(body *godog.DocString) error {
	return s.aFile(config.DefaultInputPath, body)
}

// aFile writes a doc string to a path inside the working directory.
func (s *featureState) aFile(name string, body *godog.DocString) error {
	if s.workDir == "" {
		if err := s.anEmptyWorkingDirectory(); err != nil {
			return err
		}
	}
	path := filepath.Join(s.workDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", name, err)
	}
	if err := os.WriteFile(path, []byte(body.Content+"\n"), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
