// Package logger implements a logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"go.trai.ch/restyle/internal/core/ports"
	"golang.org/x/term"
)

var _ ports.Logger = (*Logger)(nil)

// Logger implements ports.Logger on log/slog. It writes either colored lines
// for a person at a terminal or slog's key=value text for everything else.
type Logger struct {
	// mu serializes reconfiguration; logging itself only loads current.
	mu      sync.Mutex
	out     io.Writer
	pretty  bool
	level   slog.LevelVar
	current atomic.Pointer[sink]
}

// sink is a configured slog.Logger together with the format it writes.
type sink struct {
	*slog.Logger
	pretty bool
}

// New creates a Logger writing to stderr at info level, pretty-printed when
// stderr is a terminal.
func New() ports.Logger {
	l := &Logger{
		out:    os.Stderr,
		pretty: term.IsTerminal(int(os.Stderr.Fd())),
	}
	l.install()
	return l
}

// SetOutput redirects output to w, or to stderr when w is nil.
func (l *Logger) SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
	l.install()
}

// SetPretty switches between the colored format and slog's text format.
func (l *Logger) SetPretty(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pretty = enable
	l.install()
}

// SetLevel sets the minimum level that is written. It takes effect
// immediately for both formats.
func (l *Logger) SetLevel(level slog.Level) {
	l.level.Set(level)
}

// install publishes a slog.Logger for the current settings. Callers must
// hold mu, except during construction.
func (l *Logger) install() {
	opts := &slog.HandlerOptions{Level: &l.level}
	var handler slog.Handler = slog.NewTextHandler(l.out, opts)
	if l.pretty {
		handler = NewPrettyHandler(l.out, opts)
	}
	l.current.Store(&sink{Logger: slog.New(handler), pretty: l.pretty})
}

// Debug logs a diagnostic message, shown with --verbose.
func (l *Logger) Debug(msg string) { l.current.Load().Debug(msg) }

// Info logs an informational message.
func (l *Logger) Info(msg string) { l.current.Load().Info(msg) }

// Warn logs a warning message.
func (l *Logger) Warn(msg string) { l.current.Load().Warn(msg) }

// Error logs err. The pretty format lists the cause chain one level per line
// with any attached metadata; the text format hands err to slog, which
// renders zerr metadata through its LogValue.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	s := l.current.Load()
	if !s.pretty {
		s.Error("operation failed", "error", err)
		return
	}
	s.Error(render(unchain(err)))
}
