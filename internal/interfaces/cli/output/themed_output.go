// Package output formats lint results and CLI status messages.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ThemedOutput prints status messages to the CLI, separating presentation
// from business logic the way the teacher's command layer always has.
// It no longer resolves a named, user-selectable color theme: gomdlint
// ships one consistent style, toggled only by WithColors.
type ThemedOutput struct {
	writer       io.Writer
	errorWriter  io.Writer
	enableColors bool
}

var (
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	styleWarning = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	styleInfo    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	styleCyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	styleMagenta = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
)

// NewThemedOutput creates a themed output writing to stdout/stderr with
// colors enabled.
func NewThemedOutput() *ThemedOutput {
	return &ThemedOutput{
		writer:       os.Stdout,
		errorWriter:  os.Stderr,
		enableColors: true,
	}
}

// WithWriter sets the output writer.
func (to *ThemedOutput) WithWriter(writer io.Writer) *ThemedOutput {
	next := *to
	next.writer = writer
	return &next
}

// WithErrorWriter sets the error output writer.
func (to *ThemedOutput) WithErrorWriter(writer io.Writer) *ThemedOutput {
	next := *to
	next.errorWriter = writer
	return &next
}

// WithColors enables or disables color output.
func (to *ThemedOutput) WithColors(enable bool) *ThemedOutput {
	next := *to
	next.enableColors = enable
	return &next
}

func (to *ThemedOutput) Success(format string, args ...interface{}) {
	to.printWithSymbol(to.errorWriter, "✓", fmt.Sprintf(format, args...), styleSuccess)
}

func (to *ThemedOutput) Error(format string, args ...interface{}) {
	to.printWithSymbol(to.errorWriter, "✗", fmt.Sprintf(format, args...), styleError)
}

func (to *ThemedOutput) Warning(format string, args ...interface{}) {
	to.printWithSymbol(to.errorWriter, "⚠", fmt.Sprintf(format, args...), styleWarning)
}

func (to *ThemedOutput) Info(format string, args ...interface{}) {
	to.printWithSymbol(to.errorWriter, "ℹ", fmt.Sprintf(format, args...), styleInfo)
}

func (to *ThemedOutput) Processing(format string, args ...interface{}) {
	to.printWithSymbol(to.errorWriter, "⟳", fmt.Sprintf(format, args...), styleCyan)
}

func (to *ThemedOutput) FileFound(format string, args ...interface{}) {
	to.printWithSymbol(to.errorWriter, "\U0001F4C4", fmt.Sprintf(format, args...), lipgloss.NewStyle())
}

func (to *ThemedOutput) FileSaved(format string, args ...interface{}) {
	to.printWithSymbol(to.errorWriter, "\U0001F4BE", fmt.Sprintf(format, args...), styleSuccess)
}

func (to *ThemedOutput) Benchmark(format string, args ...interface{}) {
	to.printWithSymbol(to.writer, "⏱", fmt.Sprintf(format, args...), styleMagenta)
}

func (to *ThemedOutput) Performance(format string, args ...interface{}) {
	to.printWithSymbol(to.writer, "\U0001F4CA", fmt.Sprintf(format, args...), styleInfo)
}

func (to *ThemedOutput) Winner(format string, args ...interface{}) {
	to.printWithSymbol(to.writer, "\U0001F3C6", fmt.Sprintf(format, args...), styleWarning)
}

func (to *ThemedOutput) Results(format string, args ...interface{}) {
	to.printWithSymbol(to.writer, "\U0001F4CB", fmt.Sprintf(format, args...), styleSuccess)
}

func (to *ThemedOutput) Search(format string, args ...interface{}) {
	to.printWithSymbol(to.errorWriter, "\U0001F50D", fmt.Sprintf(format, args...), lipgloss.NewStyle())
}

func (to *ThemedOutput) Launch(format string, args ...interface{}) {
	to.printWithSymbol(to.writer, "\U0001F680", fmt.Sprintf(format, args...), styleMagenta)
}

// Plain prints a message without any theming.
func (to *ThemedOutput) Plain(format string, args ...interface{}) {
	fmt.Fprint(to.writer, fmt.Sprintf(format, args...))
}

// PlainError prints a message to the error writer without any theming.
func (to *ThemedOutput) PlainError(format string, args ...interface{}) {
	fmt.Fprint(to.errorWriter, fmt.Sprintf(format, args...))
}

func (to *ThemedOutput) printWithSymbol(writer io.Writer, symbol, message string, style lipgloss.Style) {
	var line strings.Builder
	if symbol != "" {
		line.WriteString(symbol)
		line.WriteString(" ")
	}
	line.WriteString(message)

	out := line.String()
	if to.enableColors {
		out = style.Render(out)
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	fmt.Fprint(writer, out)
}
