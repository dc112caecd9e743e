package runner

import (
	"context"
	"fmt"
	"io"
	"time"

	"citeprep/internal/config"
	"citeprep/internal/duckdb"
	"citeprep/internal/input"
	"citeprep/internal/output"
	"citeprep/internal/record"
	"citeprep/internal/transform"
)

// Dependencies are the clock and id sources of a run.
type Dependencies struct {
	RunID func() (string, error)
	Now   func() time.Time
}

// Params controls diagnostics for a run.
type Params struct {
	Verbose          bool
	VerboseWriter    io.Writer
	VerboseLogWriter io.Writer
	NoColor          bool
	Deps             Dependencies
}

// Summary describes a completed run.
type Summary struct {
	RunID      string
	InputPath  string
	Rows       int
	EmptyRows  int
	Statements int
	Citations  int
	Snippets   int
	Outputs    []string
	Duration   time.Duration
}

// Run loads the input table, transforms every row, and writes the outputs.
// Nothing is written until the whole table has been transformed, and any
// error aborts the run.
func Run(ctx context.Context, cfg config.Config, params Params) (Summary, error) {
	runID, err := ensureRunID(params.Deps.RunID)
	if err != nil {
		return Summary{}, err
	}
	now := params.Deps.Now
	if now == nil {
		now = time.Now
	}
	startedAt := now()
	logger := newVerboseLogger(params)

	logger.logf(stylePhase, "run %s: loading %s (%s)", runID, cfg.Input.Path, cfg.Input.Encoding)
	rows, err := input.Load(cfg.Input.Path, cfg.InputOptions())
	if err != nil {
		logger.logf(styleError, "load failed: %v", err)
		return Summary{}, fmt.Errorf("load input: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}

	records := transform.Transform(rows)
	summary := summarize(runID, cfg.Input.Path, rows, records)
	logger.logf(styleMetrics, "rows=%d statements=%d citations=%d snippets=%d empty_rows=%d",
		summary.Rows, summary.Statements, summary.Citations, summary.Snippets, summary.EmptyRows)
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}

	for _, target := range outputTargets(cfg) {
		logger.logf(stylePhase, "writing %s", target.path)
		if err := output.WriteFile(target.path, records, target.render); err != nil {
			logger.logf(styleError, "write failed: %v", err)
			return Summary{}, fmt.Errorf("write output: %w", err)
		}
		summary.Outputs = append(summary.Outputs, target.path)
	}

	if cfg.Output.DuckDB != "" {
		path := cfg.OutputPath(cfg.Output.DuckDB)
		logger.logf(stylePhase, "storing statements in %s", path)
		if err := storeRun(ctx, path, duckdb.RunInput{
			RunKey:      runID,
			InputPath:   cfg.Input.Path,
			Rows:        rows,
			Records:     records,
			CollectedAt: startedAt.UTC(),
		}); err != nil {
			logger.logf(styleError, "store failed: %v", err)
			return Summary{}, fmt.Errorf("store duckdb: %w", err)
		}
		summary.Outputs = append(summary.Outputs, path)
	}

	summary.Duration = now().Sub(startedAt)
	logger.logf(stylePhase, "run %s finished in %s", runID, summary.Duration.Round(time.Millisecond))
	return summary, nil
}

// Check loads the configured input without writing anything and returns
// the number of rows.
func Check(cfg config.Config) (int, error) {
	rows, err := input.Load(cfg.Input.Path, cfg.InputOptions())
	if err != nil {
		return 0, fmt.Errorf("load input: %w", err)
	}
	return len(rows), nil
}

type outputTarget struct {
	path   string
	render output.Renderer
}

// outputTargets lists the file outputs in write order: JSON, CSV, then HTML.
func outputTargets(cfg config.Config) []outputTarget {
	targets := []outputTarget{
		{path: cfg.OutputPath(cfg.Output.JSON), render: output.WriteJSON},
		{path: cfg.OutputPath(cfg.Output.CSV), render: output.WriteCSV},
	}
	if cfg.Output.HTML != "" {
		targets = append(targets, outputTarget{path: cfg.OutputPath(cfg.Output.HTML), render: output.WriteHTML})
	}
	return targets
}

func storeRun(ctx context.Context, path string, run duckdb.RunInput) error {
	db, err := duckdb.Open(ctx, path)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	_, err = duckdb.Store(ctx, db, run)
	return err
}

func summarize(runID, inputPath string, rows []record.InputRecord, records []record.OutputRecord) Summary {
	summary := Summary{
		RunID:      runID,
		InputPath:  inputPath,
		Rows:       len(rows),
		Statements: len(records),
	}
	withStatements := map[string]struct{}{}
	for _, rec := range records {
		summary.Citations += len(rec.Citations)
		summary.Snippets += len(rec.Snippets)
		withStatements[rec.ContextID] = struct{}{}
	}
	summary.EmptyRows = len(rows) - len(withStatements)
	return summary
}

// ensureRunID uses the provided generator or falls back to NewRunID.
func ensureRunID(generator func() (string, error)) (string, error) {
	if generator != nil {
		return generator()
	}
	return NewRunID()
}
