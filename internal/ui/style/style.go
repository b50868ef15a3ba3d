// Package style holds the palette and glyphs restyle prints with.
package style

import (
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/restyle/internal/core/domain"
)

// Palette.
var (
	Muted   = lipgloss.Color("#667085")
	Success = lipgloss.Color("#22A06B")
	Failure = lipgloss.Color("#D93025")
	Caution = lipgloss.Color("#F59E0B")
)

// Glyphs.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Dot     = "·"
)

// Mark is the glyph and color a line is decorated with.
// An empty Glyph means the line carries no prefix.
type Mark struct {
	Glyph string
	Color lipgloss.Color
}

// Prefix returns text preceded by the glyph, if any.
func (m Mark) Prefix(text string) string {
	if m.Glyph == "" {
		return text
	}
	return m.Glyph + " " + text
}

// ForLevel returns the mark used for log records at level.
func ForLevel(level slog.Level) Mark {
	switch {
	case level >= slog.LevelError:
		return Mark{Glyph: Cross, Color: Failure}
	case level >= slog.LevelWarn:
		return Mark{Glyph: Warning, Color: Caution}
	case level < slog.LevelInfo:
		return Mark{Glyph: Tilde, Color: Muted}
	default:
		return Mark{Color: Muted}
	}
}

// ForOutcome returns the mark shown next to a compiled unit.
func ForOutcome(outcome domain.Outcome) Mark {
	switch outcome {
	case domain.OutcomeRecompiled:
		return Mark{Glyph: Check, Color: Success}
	case domain.OutcomeSkippedFresh:
		return Mark{Glyph: Dot, Color: Muted}
	default:
		return Mark{Glyph: Cross, Color: Failure}
	}
}
