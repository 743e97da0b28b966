// Package notify provides Notifier sinks: a styled console sink for
// the CLI, an slog-backed sink, and a recording sink for tests.
package notify

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"

	"github.com/AbdullahNaeem1090/vidflow-final/internal/domain"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Console writes styled notifications to a writer.
type Console struct {
	out io.Writer
}

// NewConsole creates a console sink writing to out.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) Notify(severity domain.Severity, message string) {
	switch severity {
	case domain.SeverityError:
		fmt.Fprintln(c.out, errorStyle.Render("✗ "+message))
	default:
		fmt.Fprintln(c.out, successStyle.Render("✓ "+message))
	}
}

// Log forwards notifications to a structured logger.
type Log struct {
	logger *slog.Logger
}

// NewLog creates an slog-backed sink.
func NewLog(logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.Default()
	}
	return &Log{logger: logger}
}

func (l *Log) Notify(severity domain.Severity, message string) {
	if severity == domain.SeverityError {
		l.logger.Warn("notification", "severity", severity.String(), "message", message)
		return
	}
	l.logger.Info("notification", "severity", severity.String(), "message", message)
}

// Recorded is one captured notification.
type Recorded struct {
	Severity domain.Severity
	Message  string
}

// Recorder captures notifications for assertions in tests.
type Recorder struct {
	Notifications []Recorded
}

func (r *Recorder) Notify(severity domain.Severity, message string) {
	r.Notifications = append(r.Notifications, Recorded{Severity: severity, Message: message})
}

// Last returns the most recent notification, or false when none.
func (r *Recorder) Last() (Recorded, bool) {
	if len(r.Notifications) == 0 {
		return Recorded{}, false
	}
	return r.Notifications[len(r.Notifications)-1], true
}

// Reset drops everything captured so far.
func (r *Recorder) Reset() {
	r.Notifications = nil
}
