//go:build cucumber
// +build cucumber

package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/cucumber/godog"
)

// featureState holds scenario state for cucumber CLI tests.
type featureState struct {
	workDir    string
	previousWD string
	stdout     bytes.Buffer
	stderr     bytes.Buffer
	exitCode   int
}

// InitializeScenario wires cucumber steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^an empty working directory$`, state.anEmptyWorkingDirectory)
	ctx.Step(`^a rough data file:$`, state.aRoughDataFile)
	ctx.Step(`^a file "([^"]+)":$`, state.aFile)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the output lists these commands:$`, state.theOutputListsCommands)
	ctx.Step(`^the exit code is (\d+)$`, state.theExitCodeIs)
	ctx.Step(`^the exit code is non-zero$`, state.theExitCodeIsNonZero)
	ctx.Step(`^the output mentions "([^"]+)"$`, state.theOutputMentions)
	ctx.Step(`^the error output mentions "([^"]+)"$`, state.theErrorOutputMentions)
	ctx.Step(`^"([^"]+)" holds (\d+) statements?$`, state.fileHoldsStatements)
	ctx.Step(`^statement (\d+) in "([^"]+)" is "([^"]*)" for context "([^"]+)"$`, state.statementIs)
	ctx.Step(`^statement (\d+) in "([^"]+)" cites "([^"]*)"$`, state.statementCites)
	ctx.Step(`^statement (\d+) in "([^"]+)" has (\d+) snippets?$`, state.statementHasSnippets)
	ctx.Step(`^the CSV file "([^"]+)" has (\d+) rows$`, state.csvFileHasRows)
	ctx.Step(`^the file "([^"]+)" does not exist$`, state.theFileDoesNotExist)
	ctx.Step(`^the file "([^"]+)" exists$`, state.theFileExists)
}

// reset clears buffers before each scenario.
func (s *featureState) reset() {
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
	s.workDir = ""
	s.previousWD = ""
}

// cleanup restores the working directory and removes temporary files.
func (s *featureState) cleanup() {
	if s.previousWD != "" {
		_ = os.Chdir(s.previousWD)
	}
	if s.workDir != "" {
		_ = os.RemoveAll(s.workDir)
	}
}

// anEmptyWorkingDirectory switches into a fresh temp directory.
func (s *featureState) anEmptyWorkingDirectory() error {
	dir, err := os.MkdirTemp("", "citeprep-cucumber-*")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	previous, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("chdir: %w", err)
	}
	s.workDir = dir
	s.previousWD = previous
	return nil
}
