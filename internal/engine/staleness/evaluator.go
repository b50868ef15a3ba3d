// Package staleness decides whether a compiled stylesheet must be rebuilt.
package staleness

import (
	"context"
	"time"

	"go.trai.ch/restyle/internal/core/domain"
	"go.trai.ch/restyle/internal/core/ports"
	"go.trai.ch/zerr"
)

// StaleReason names the first condition that made an output stale.
type StaleReason uint8

const (
	// ReasonFresh means the output is up to date.
	ReasonFresh StaleReason = iota
	// ReasonOutputMissing means the output file does not exist.
	ReasonOutputMissing
	// ReasonSourceNewer means the source was modified after the output.
	ReasonSourceNewer
	// ReasonUnscanned means a file in the import graph was never scanned.
	ReasonUnscanned
	// ReasonImportNewer means a direct or transitive import was modified after the output.
	ReasonImportNewer
)

func (r StaleReason) String() string {
	switch r {
	case ReasonOutputMissing:
		return "output missing"
	case ReasonSourceNewer:
		return "source newer than output"
	case ReasonUnscanned:
		return "imports never scanned"
	case ReasonImportNewer:
		return "import newer than output"
	default:
		return "fresh"
	}
}

// Verdict is the result of an evaluation. Path names the file that decided
// it and is empty when the output is fresh.
type Verdict struct {
	Stale  bool
	Reason StaleReason
	Path   string
}

func stale(reason StaleReason, path string) Verdict {
	return Verdict{Stale: true, Reason: reason, Path: path}
}

// Evaluator compares modification times across a source, its transitive
// imports as recorded in the graph cache, and its output.
type Evaluator struct {
	oracle ports.TimestampOracle
	graph  ports.DependencyGraphCache
	logger ports.Logger
}

// New creates a new Evaluator.
func New(oracle ports.TimestampOracle, graph ports.DependencyGraphCache, logger ports.Logger) *Evaluator {
	return &Evaluator{oracle: oracle, graph: graph, logger: logger}
}

// IsStale reports whether output must be regenerated from source.
func (e *Evaluator) IsStale(ctx context.Context, source, output string) (bool, error) {
	v, err := e.Explain(ctx, source, output)
	return v.Stale, err
}

// Explain evaluates staleness and reports why.
// A missing source is domain.ErrSourceNotFound. Other I/O failures are
// wrapped in domain.ErrStalenessCheckFailed.
func (e *Evaluator) Explain(ctx context.Context, source, output string) (Verdict, error) {
	outMtime, ok, err := e.modTime(output)
	if err != nil {
		return Verdict{}, err
	}
	if !ok {
		return stale(ReasonOutputMissing, output), nil
	}

	srcMtime, ok, err := e.modTime(source)
	if err != nil {
		return Verdict{}, err
	}
	if !ok {
		return Verdict{}, zerr.With(domain.ErrSourceNotFound, "path", source)
	}
	if srcMtime.After(outMtime) {
		return stale(ReasonSourceNewer, source), nil
	}

	return e.importsChanged(ctx, source, outMtime, make(map[string]struct{}))
}

// importsChanged walks the cached import graph below file depth first.
// A file already in visited contributes nothing, which ends cycles.
func (e *Evaluator) importsChanged(
	ctx context.Context,
	file string,
	outMtime time.Time,
	visited map[string]struct{},
) (Verdict, error) {
	if _, seen := visited[file]; seen {
		return Verdict{}, nil
	}
	visited[file] = struct{}{}

	imports, scanned := e.graph.Get(file)
	if !scanned {
		return stale(ReasonUnscanned, file), nil
	}

	for _, imp := range imports {
		if err := ctx.Err(); err != nil {
			return Verdict{}, zerr.Wrap(err, domain.ErrStalenessCheckFailed.Error())
		}

		mtime, ok, err := e.modTime(imp)
		if err != nil {
			return Verdict{}, err
		}
		if !ok {
			e.logger.Warn("imported file not found, skipping: " + imp + " (imported by " + file + ")")
			continue
		}
		if mtime.After(outMtime) {
			return stale(ReasonImportNewer, imp), nil
		}

		v, err := e.importsChanged(ctx, imp, outMtime, visited)
		if err != nil || v.Stale {
			return v, err
		}
	}

	return Verdict{}, nil
}

func (e *Evaluator) modTime(path string) (time.Time, bool, error) {
	mtime, ok, err := e.oracle.ModTime(path)
	if err != nil {
		return time.Time{}, false, zerr.With(zerr.Wrap(err, domain.ErrStalenessCheckFailed.Error()), "path", path)
	}
	return mtime, ok, nil
}
