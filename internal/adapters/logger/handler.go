package logger

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/restyle/internal/ui/output"
	"go.trai.ch/restyle/internal/ui/style"
)

// PrettyHandler is a slog.Handler writing one colored line per record:
// the level glyph, the message, then key=value attributes.
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	prefix string
	// attrs is pre-rendered, with the group prefix in effect when each
	// attribute was added.
	attrs string
}

// NewPrettyHandler creates a new PrettyHandler writing to w.
// The level is read on every record, so a *slog.LevelVar can be changed later.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	h := &PrettyHandler{out: output.New(w), level: slog.LevelInfo}
	if opts != nil && opts.Level != nil {
		h.level = opts.Level
	}
	return h
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	mark := style.ForLevel(r.Level)

	var b strings.Builder
	b.WriteString(mark.Prefix(r.Message))
	b.WriteString(h.attrs)
	r.Attrs(func(attr slog.Attr) bool {
		appendAttr(&b, h.prefix, attr)
		return true
	})

	line := h.out.String(b.String()).Foreground(h.out.Color(string(mark.Color)))
	_, err := io.WriteString(h.out, line.String()+"\n")
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var b strings.Builder
	b.WriteString(h.attrs)
	for _, attr := range attrs {
		appendAttr(&b, h.prefix, attr)
	}

	clone := *h
	clone.attrs = b.String()
	return &clone
}

// WithGroup returns a new Handler qualifying later attributes with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

func appendAttr(b *strings.Builder, prefix string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}

	if attr.Value.Kind() == slog.KindGroup {
		if attr.Key != "" {
			prefix += attr.Key + "."
		}
		for _, member := range attr.Value.Group() {
			appendAttr(b, prefix, member)
		}
		return
	}

	value := attr.Value.String()
	if strings.ContainsAny(value, " \t\n\"=") {
		value = strconv.Quote(value)
	}

	b.WriteByte(' ')
	b.WriteString(prefix)
	b.WriteString(attr.Key)
	b.WriteByte('=')
	b.WriteString(value)
}
