package app

import (
	"errors"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"go.trai.ch/restyle/internal/core/domain"
	"go.trai.ch/restyle/internal/core/ports"
	"go.trai.ch/zerr"
)

// Middleware compiles stylesheets on request before the wrapped handler
// serves them from the destination directory.
type Middleware struct {
	compiler   UnitCompiler
	etags      ETagger
	logger     ports.Logger
	src        string
	dest       string
	root       string
	transforms []domain.Transform
}

// NewMiddleware creates a Middleware for the project described by cfg.
func NewMiddleware(
	compiler UnitCompiler,
	etags ETagger,
	logger ports.Logger,
	cfg *domain.Config,
	transforms []domain.Transform,
) *Middleware {
	return &Middleware{
		compiler:   compiler,
		etags:      etags,
		logger:     logger,
		src:        cfg.Src,
		dest:       cfg.Dest,
		root:       cfg.Root,
		transforms: transforms,
	}
}

// Wrap returns a handler that compiles the requested stylesheet, if any,
// and then delegates to next.
//
// Only GET and HEAD requests for paths ending in ".css" trigger a compile.
// The unit is derived from the base name of the request path. A missing
// source yields 404 and any other failure 500.
func (m *Middleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.triggers(r) {
			next.ServeHTTP(w, r)
			return
		}

		base := path.Base(r.URL.Path)
		unit := domain.CompileUnit{
			Source:     filepath.Join(m.src, base),
			Output:     filepath.Join(m.dest, base),
			Dir:        m.root,
			Transforms: m.transforms,
		}

		outcome, err := m.compiler.Compile(r.Context(), unit)
		if err != nil {
			if errors.Is(err, domain.ErrSourceNotFound) {
				http.NotFound(w, r)
				return
			}
			if r.Context().Err() != nil {
				// The client is gone; the shared compile carries on without it.
				return
			}
			m.logger.Error(zerr.With(zerr.Wrap(err, "failed to compile requested stylesheet"), "path", r.URL.Path))
			http.Error(w, "stylesheet compilation failed", http.StatusInternalServerError)
			return
		}
		m.logger.Debug(r.Method + " " + r.URL.Path + ": " + outcome.String())

		if tag, err := m.etags.ETag(unit.Output); err == nil {
			w.Header().Set("ETag", tag)
		}

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) triggers(r *http.Request) bool {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		return false
	}
	return strings.HasSuffix(r.URL.Path, domain.StylesheetExt)
}
