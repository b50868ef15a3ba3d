package style_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/restyle/internal/core/domain"
	"go.trai.ch/restyle/internal/ui/style"
)

func TestForOutcome(t *testing.T) {
	tests := []struct {
		outcome domain.Outcome
		want    style.Mark
	}{
		{domain.OutcomeRecompiled, style.Mark{Glyph: style.Check, Color: style.Success}},
		{domain.OutcomeSkippedFresh, style.Mark{Glyph: style.Dot, Color: style.Muted}},
		{domain.OutcomeFailed, style.Mark{Glyph: style.Cross, Color: style.Failure}},
	}

	for _, tt := range tests {
		t.Run(tt.outcome.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, style.ForOutcome(tt.outcome))
		})
	}
}

func TestForLevel(t *testing.T) {
	assert.Equal(t, style.Cross, style.ForLevel(slog.LevelError+4).Glyph)
	assert.Equal(t, style.Warning, style.ForLevel(slog.LevelWarn).Glyph)
	assert.Equal(t, style.Tilde, style.ForLevel(slog.LevelDebug).Glyph)
	assert.Empty(t, style.ForLevel(slog.LevelInfo).Glyph)
}

func TestMark_Prefix(t *testing.T) {
	assert.Equal(t, "✓ main.css", style.Mark{Glyph: style.Check}.Prefix("main.css"))
	assert.Equal(t, "main.css", style.Mark{}.Prefix("main.css"))
}
