package runner

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const verbosePrefix = "[verbose]"

type verboseStyle int

const (
	styleDefault verboseStyle = iota
	stylePhase
	styleMetrics
	styleError
)

var styleColors = map[verboseStyle]lipgloss.Color{
	stylePhase:   lipgloss.Color("33"),
	styleMetrics: lipgloss.Color("34"),
	styleError:   lipgloss.Color("160"),
}

// verboseLogger writes prefixed diagnostic lines to the console and an
// optional log file. Styling is decided per writer.
type verboseLogger struct {
	enabled bool
	writers []io.Writer
	noColor bool
}

func newVerboseLogger(params Params) verboseLogger {
	logger := verboseLogger{enabled: params.Verbose, noColor: params.NoColor}
	if params.Verbose && params.VerboseWriter != nil {
		logger.writers = append(logger.writers, params.VerboseWriter)
	}
	if params.VerboseLogWriter != nil {
		logger.enabled = true
		logger.writers = append(logger.writers, params.VerboseLogWriter)
	}
	return logger
}

func (l verboseLogger) logf(style verboseStyle, format string, args ...any) {
	if !l.enabled {
		return
	}
	line := fmt.Sprintf(format, args...)
	for _, writer := range l.writers {
		palette := paletteFor(writer, l.noColor)
		fmt.Fprintf(writer, "%s %s\n", palette.prefix(verbosePrefix), palette.apply(style, line))
	}
}

type verbosePalette struct {
	enabled bool
}

func paletteFor(writer io.Writer, noColor bool) verbosePalette {
	if noColor {
		return verbosePalette{enabled: false}
	}
	return verbosePalette{enabled: shouldUseStyling(writer)}
}

// shouldUseStyling reports whether ANSI styling should be enabled.
func shouldUseStyling(writer io.Writer) bool {
	if writer == nil {
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	if strings.EqualFold(os.Getenv("CLICOLOR"), "0") {
		return false
	}
	if fder, ok := writer.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}

func (p verbosePalette) prefix(text string) string {
	if !p.enabled {
		return text
	}
	return lipgloss.NewStyle().Faint(true).Render(text)
}

func (p verbosePalette) apply(style verboseStyle, text string) string {
	if !p.enabled {
		return text
	}
	color, ok := styleColors[style]
	if !ok {
		return text
	}
	rendered := lipgloss.NewStyle().Foreground(color)
	if style == styleError {
		rendered = rendered.Bold(true)
	}
	return rendered.Render(text)
}
