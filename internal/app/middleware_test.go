package app_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/restyle/internal/adapters/fs"
	"go.trai.ch/restyle/internal/adapters/graphcache"
	"go.trai.ch/restyle/internal/adapters/stylesheet"
	"go.trai.ch/restyle/internal/adapters/telemetry"
	"go.trai.ch/restyle/internal/app"
	"go.trai.ch/restyle/internal/core/domain"
	"go.trai.ch/restyle/internal/core/ports/mocks"
	"go.trai.ch/restyle/internal/engine/compiler"
	"go.trai.ch/restyle/internal/engine/staleness"
	"go.uber.org/mock/gomock"
)

func TestApp_Handler(t *testing.T) {
	f := newFixture(t, stylesheet.InlinePluginName)
	f.source(t, "main.css", "@import \"_sub\";\n.a{color:red}\n")
	f.source(t, "_sub.css", ".b{color:blue}\n")

	handler, err := f.app.Handler(f.cfg)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/css/main.css", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ".a{color:red}")
	assert.Contains(t, rec.Body.String(), ".b{color:blue}")
	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)

	t.Run("conditional request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/css/main.css", nil)
		req.Header.Set("If-None-Match", etag)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotModified, rec.Code)
	})

	t.Run("missing source", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/css/missing.css", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, f.logged.Errors())
	})

	t.Run("outside prefix", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/main.css", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

type failingTransform struct{}

func (failingTransform) Name() string { return "broken" }

func (failingTransform) Apply(_ context.Context, _, _, _ string) (string, error) {
	return "", errors.New("boom")
}

func newMiddleware(t *testing.T, transforms ...domain.Transform) (*app.Middleware, *domain.Config, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	root := t.TempDir()
	cfg := &domain.Config{
		Root: root,
		Src:  filepath.Join(root, "src"),
		Dest: filepath.Join(root, "dest"),
	}
	require.NoError(t, os.MkdirAll(cfg.Src, domain.DirPerm))

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	files := fs.NewFiles()
	graph := graphcache.New()
	comp := compiler.New(files, fs.NewOracle(), stylesheet.NewExtractor(), graph, staleness.New(fs.NewOracle(), graph, log),
		telemetry.NewNoOpTracer(), log)
	return app.NewMiddleware(comp, fs.NewHasher(), log, cfg, transforms), cfg, log
}

// recorder is a terminal handler that notes whether it ran.
type recorder struct {
	called bool
}

func (r *recorder) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	r.called = true
	w.WriteHeader(http.StatusTeapot)
}

func TestMiddleware_PassThrough(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
	}{
		{"non stylesheet", http.MethodGet, "/index.html"},
		{"post", http.MethodPost, "/main.css"},
		{"delete", http.MethodDelete, "/main.css"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw, cfg, _ := newMiddleware(t)
			next := &recorder{}

			rec := httptest.NewRecorder()
			mw.Wrap(next).ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))

			assert.True(t, next.called)
			assert.Equal(t, http.StatusTeapot, rec.Code)
			assert.NoDirExists(t, cfg.Dest)
		})
	}
}

func TestMiddleware_Compiles(t *testing.T) {
	mw, cfg, _ := newMiddleware(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Src, "main.css"), []byte(".a{}"), domain.FilePerm))
	next := &recorder{}

	rec := httptest.NewRecorder()
	mw.Wrap(next).ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/nested/path/main.css", nil))

	assert.True(t, next.called)
	assert.NotEmpty(t, rec.Header().Get("ETag"))
	data, err := os.ReadFile(filepath.Join(cfg.Dest, "main.css"))
	require.NoError(t, err)
	assert.Equal(t, ".a{}", string(data))
}

func TestMiddleware_TransformFailure(t *testing.T) {
	mw, cfg, log := newMiddleware(t, failingTransform{})
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Src, "main.css"), []byte(".a{}"), domain.FilePerm))
	log.EXPECT().Error(gomock.Any()).Times(1)
	next := &recorder{}

	rec := httptest.NewRecorder()
	mw.Wrap(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/main.css", nil))

	assert.False(t, next.called)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NoFileExists(t, filepath.Join(cfg.Dest, "main.css"))
}
