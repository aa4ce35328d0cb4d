// Package status prints severity-coloured, user-facing status lines.
//
// Status lines are the node's only feedback channel towards the person
// running the graph; diagnostic detail belongs in the logger instead.
package status

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

//go:generate mockgen -source=status.go -destination=../mock/status_reporter_mock.go -package=mock

// Reporter emits one line per call, coloured by severity.
type Reporter interface {
	// Info reports progress (blue).
	Info(format string, args ...any)
	// Success reports a completed step (green).
	Success(format string, args ...any)
	// Warn reports a recoverable condition (yellow).
	Warn(format string, args ...any)
	// Error reports a failed step (red).
	Error(format string, args ...any)
}

// Level is the severity of a status line.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarn
	LevelError
)

// ConsoleReporter writes status lines to an io.Writer. Colours are dropped
// automatically when the writer is not a terminal.
type ConsoleReporter struct {
	mu     sync.Mutex
	out    io.Writer
	styles map[Level]lipgloss.Style
}

// NewConsoleReporter returns a Reporter writing to out.
func NewConsoleReporter(out io.Writer) *ConsoleReporter {
	r := lipgloss.NewRenderer(out)
	return &ConsoleReporter{
		out: out,
		styles: map[Level]lipgloss.Style{
			LevelInfo:    r.NewStyle().Foreground(lipgloss.Color("12")),
			LevelSuccess: r.NewStyle().Foreground(lipgloss.Color("10")),
			LevelWarn:    r.NewStyle().Foreground(lipgloss.Color("11")),
			LevelError:   r.NewStyle().Foreground(lipgloss.Color("9")),
		},
	}
}

func (c *ConsoleReporter) Info(format string, args ...any) {
	c.print(LevelInfo, format, args...)
}

func (c *ConsoleReporter) Success(format string, args ...any) {
	c.print(LevelSuccess, format, args...)
}

func (c *ConsoleReporter) Warn(format string, args ...any) {
	c.print(LevelWarn, format, args...)
}

func (c *ConsoleReporter) Error(format string, args ...any) {
	c.print(LevelError, format, args...)
}

func (c *ConsoleReporter) print(level Level, format string, args ...any) {
	line := c.styles[level].Render(fmt.Sprintf(format, args...))

	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, line)
}

// Nop returns a Reporter that discards every line.
func Nop() Reporter {
	return nopReporter{}
}

type nopReporter struct{}

func (nopReporter) Info(string, ...any)    {}
func (nopReporter) Success(string, ...any) {}
func (nopReporter) Warn(string, ...any)    {}
func (nopReporter) Error(string, ...any)   {}
