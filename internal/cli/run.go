package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"citeprep/internal/config"
	"citeprep/internal/runner"
)

var runPipeline = runner.Run

func runRun(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file (default: search for citeprep.yml)")
		inputPath := fs.String("input", "", "Override the input table path")
		outputDir := fs.String("output-dir", "", "Override output directory")
		htmlPath := fs.String("html", "", "Also write an HTML preview to this path")
		duckdbPath := fs.String("duckdb", "", "Also store statements in this DuckDB file")
		verbose := fs.Bool("verbose", false, "Verbose logging")
		logPath := fs.String("log", "", "Write verbose logs to a file")
		noColor := fs.Bool("no-color", false, "Disable ANSI colors in verbose logs")
		if err := fs.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, err := loadConfig(*configPath, *inputPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		if strings.TrimSpace(*outputDir) != "" {
			cfg.Output.Dir = *outputDir
		}
		if strings.TrimSpace(*htmlPath) != "" {
			cfg.Output.HTML = *htmlPath
		}
		if strings.TrimSpace(*duckdbPath) != "" {
			cfg.Output.DuckDB = *duckdbPath
		}
		if err := config.Validate(&cfg); err != nil {
			fmt.Fprintf(stderr, "Invalid options: %v\n", err)
			return ExitError
		}

		var logFile io.WriteCloser
		if strings.TrimSpace(*logPath) != "" {
			dir := filepath.Dir(*logPath)
			if dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					fmt.Fprintf(stderr, "Failed to create log directory: %v\n", err)
					return ExitError
				}
			}
			file, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to open log file: %v\n", err)
				return ExitError
			}
			logFile = file
			defer func() { _ = logFile.Close() }()
		}

		summary, err := runPipeline(context.Background(), cfg, runner.Params{
			Verbose:          *verbose,
			VerboseWriter:    stdout,
			VerboseLogWriter: logFile,
			NoColor:          *noColor,
		})
		if err != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "Run %s completed\n", summary.RunID)
		fmt.Fprintf(stdout, "Rows: %d (%d without statements)\n", summary.Rows, summary.EmptyRows)
		fmt.Fprintf(stdout, "Statements: %d\n", summary.Statements)
		for _, path := range summary.Outputs {
			fmt.Fprintf(stdout, "Wrote %s\n", path)
		}
		return ExitOK
	}
}
