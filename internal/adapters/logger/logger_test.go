package logger_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/restyle/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a pretty logger writing to a buffer without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	lg.SetPretty(true)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Info("compiled 3 stylesheets")

	g := goldie.New(t)
	g.Assert(t, "info_basic", buf.Bytes())
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("imported file not found")

	g := goldie.New(t)
	g.Assert(t, "warn_basic", buf.Bytes())
}

func TestLogger_Debug(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		goldenName string
	}{
		{name: "filtered at info", level: slog.LevelInfo, goldenName: "debug_filtered"},
		{name: "shown when verbose", level: slog.LevelDebug, goldenName: "debug_verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.SetLevel(tt.level)
			lg.Debug("graph refreshed")

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "plain error",
			err:        errors.New("permission denied"),
			goldenName: "error_simple",
		},
		{
			name:       "multiline error",
			err:        errors.New("yaml: unmarshal errors:\n  line 3: cannot unmarshal"),
			goldenName: "error_multiline",
		},
		{
			name: "zerr chain",
			err: zerr.Wrap(
				zerr.Wrap(errors.New("no such file or directory"), "failed to read file"),
				"failed to compile stylesheet",
			),
			goldenName: "error_chain_zerr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_StdlibChain(t *testing.T) {
	// fmt.Errorf chains are printed whole.
	inner := errors.New("connection refused")
	outer := fmt.Errorf("failed to serve: %w", inner)

	lg, buf := newTestLogger(t)
	lg.Error(outer)

	assert.Equal(t, "✗ Error: failed to serve: connection refused\n", buf.String())
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_TextMode(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetPretty(false)

	lg.Warn("slow compile")
	lg.Error(zerr.Wrap(errors.New("boom"), "transform failed"))

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, `msg="slow compile"`)
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "transform failed")
	assert.NotContains(t, out, "✗")
}

func TestLogger_SetOutput_Nil(t *testing.T) {
	require.NotPanics(t, func() {
		lg := logger.New().(*logger.Logger)
		lg.SetOutput(nil)
	})
}

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func TestLogger_ConcurrentAccess(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	out := &lockedBuffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(out)

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Go(func() {
			lg.Info(fmt.Sprintf("message %d", i))
		})
	}
	wg.Go(func() {
		lg.SetPretty(true)
	})
	wg.Wait()

	assert.Equal(t, 10, bytes.Count(out.buf.Bytes(), []byte("\n")))
}

func TestLogger_Error_Metadata(t *testing.T) {
	lg, buf := newTestLogger(t)

	err := zerr.With(zerr.Wrap(errors.New("address already in use"), "failed to listen"), "addr", ":8080")
	lg.Error(err)

	assert.Equal(t, "✗ Error: failed to listen (addr=:8080)\n\n  Caused by:\n    → address already in use\n", buf.String())
}

func TestUnchain(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "zerr chain",
			err:  zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle layer"), "outer layer"),
			want: []string{"outer layer", "middle layer", "root cause"},
		},
		{
			name: "plain",
			err:  errors.New("plain"),
			want: []string{"plain"},
		},
		{
			name: "metadata sorted by key",
			err: zerr.With(zerr.With(zerr.New("compile failed"), "source", "a.css"), "jobs", 2),
			want: []string{"compile failed (jobs=2, source=a.css)"},
		},
		{
			name: "metadata on a plain error moves to it",
			err:  zerr.Wrap(zerr.With(errors.New("denied"), "path", "/out"), "write failed"),
			want: []string{"write failed", "denied (path=/out)"},
		},
		{
			name: "joined branches",
			err: errors.Join(
				zerr.Wrap(errors.New("boom"), "failed to compile a.css"),
				errors.New("source file not found"),
			),
			want: []string{"failed to compile a.css", "boom", "source file not found"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.Unchain(tt.err))
		})
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		messages []string
		want     string
	}{
		{
			name:     "single",
			messages: []string{"single error"},
			want:     "Error: single error",
		},
		{
			name:     "with causes",
			messages: []string{"outer", "inner", "root"},
			want:     "Error: outer\n\n  Caused by:\n    → inner\n    → root",
		},
		{
			name:     "multiline cause",
			messages: []string{"main", "cause line1\ncause line2"},
			want:     "Error: main\n\n  Caused by:\n    → cause line1\n      cause line2",
		},
		{
			name:     "empty",
			messages: nil,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.Render(tt.messages))
		})
	}
}
