// Package compiler orchestrates incremental stylesheet compilation.
package compiler

import (
	"context"
	"errors"
	iofs "io/fs"
	"path/filepath"
	"runtime"
	"time"

	"go.trai.ch/restyle/internal/core/domain"
	"go.trai.ch/restyle/internal/core/ports"
	"go.trai.ch/restyle/internal/engine/staleness"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// ImportScanner extracts the resolved imports of a stylesheet.
type ImportScanner interface {
	ImportsOf(path, text string) ([]string, error)
}

// Compiler decides per unit whether to rebuild, refreshes the import graph
// when it does, runs the transform chain and writes the output.
type Compiler struct {
	files     ports.FileSystem
	oracle    ports.TimestampOracle
	scanner   ImportScanner
	graph     ports.DependencyGraphCache
	evaluator *staleness.Evaluator
	tracer    ports.Tracer
	logger    ports.Logger

	flight singleflight.Group
}

// New creates a new Compiler.
func New(
	files ports.FileSystem,
	oracle ports.TimestampOracle,
	scanner ImportScanner,
	graph ports.DependencyGraphCache,
	evaluator *staleness.Evaluator,
	tracer ports.Tracer,
	logger ports.Logger,
) *Compiler {
	return &Compiler{
		files:     files,
		oracle:    oracle,
		scanner:   scanner,
		graph:     graph,
		evaluator: evaluator,
		tracer:    tracer,
		logger:    logger,
	}
}

// Compile brings unit.Output up to date with unit.Source. Relative paths in
// unit are taken relative to unit.Dir.
//
// Concurrent calls for the same output share one execution. The shared work
// does not observe any caller's cancellation: a caller whose ctx ends gets
// ctx.Err() at once, and the compile still finishes for the callers that
// remain.
func (c *Compiler) Compile(ctx context.Context, unit domain.CompileUnit) (domain.Outcome, error) {
	return c.do(ctx, unit, false)
}

// Rebuild compiles unit without consulting staleness. The import graph is
// still refreshed. It never joins an in-flight Compile of the same output.
func (c *Compiler) Rebuild(ctx context.Context, unit domain.CompileUnit) (domain.Outcome, error) {
	return c.do(ctx, unit, true)
}

func (c *Compiler) do(ctx context.Context, unit domain.CompileUnit, force bool) (domain.Outcome, error) {
	if err := ctx.Err(); err != nil {
		return domain.OutcomeFailed, err
	}

	unit = anchor(unit)
	key := filepath.Clean(unit.Output)
	if force {
		key = "rebuild:" + key
	}

	detached := context.WithoutCancel(ctx)
	results := c.flight.DoChan(key, func() (any, error) {
		return c.compile(detached, unit, force)
	})

	select {
	case <-ctx.Done():
		return domain.OutcomeFailed, ctx.Err()
	case res := <-results:
		if res.Shared {
			c.logger.Debug("joined in-flight compile of " + unit.Output)
		}
		outcome, _ := res.Val.(domain.Outcome)
		return outcome, res.Err
	}
}

// anchor resolves relative source and output paths against unit.Dir.
func anchor(unit domain.CompileUnit) domain.CompileUnit {
	if unit.Dir == "" {
		return unit
	}
	if !filepath.IsAbs(unit.Source) {
		unit.Source = filepath.Join(unit.Dir, unit.Source)
	}
	if !filepath.IsAbs(unit.Output) {
		unit.Output = filepath.Join(unit.Dir, unit.Output)
	}
	return unit
}

func (c *Compiler) compile(ctx context.Context, unit domain.CompileUnit, force bool) (outcome domain.Outcome, err error) {
	ctx, span := c.tracer.Start(ctx, "compile",
		ports.WithAttribute("source", unit.Source),
		ports.WithAttribute("output", unit.Output),
		ports.WithAttribute("dir", unit.Dir),
	)
	defer func() {
		span.SetAttribute("outcome", outcome.String())
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	// Taken before the read so an edit landing mid-compile is detectable.
	readFrom, _, err := c.oracle.ModTime(unit.Source)
	if err != nil {
		return domain.OutcomeFailed, err
	}

	text, err := c.files.ReadFile(unit.Source)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return domain.OutcomeFailed, errors.Join(domain.ErrSourceNotFound, err)
		}
		return domain.OutcomeFailed, err
	}

	if !force {
		verdict, err := c.evaluator.Explain(ctx, unit.Source, unit.Output)
		if err != nil {
			return domain.OutcomeFailed, err
		}
		if !verdict.Stale {
			return domain.OutcomeSkippedFresh, nil
		}
		c.logger.Debug("stale: " + unit.Source + ": " + verdict.Reason.String() + " (" + verdict.Path + ")")
	}

	if err := c.refreshGraph(unit.Source, text); err != nil {
		return domain.OutcomeFailed, zerr.With(zerr.Wrap(err, domain.ErrGraphRefreshFailed.Error()), "source", unit.Source)
	}

	if err := c.files.EnsureDir(filepath.Dir(unit.Output)); err != nil {
		return domain.OutcomeFailed, err
	}

	for _, t := range unit.Transforms {
		text, err = t.Apply(ctx, text, unit.Source, unit.Output)
		if err != nil {
			return domain.OutcomeFailed, zerr.With(zerr.Wrap(err, domain.ErrTransformFailed.Error()), "plugin", t.Name())
		}
	}

	if err := c.files.WriteFile(unit.Output, text); err != nil {
		return domain.OutcomeFailed, err
	}
	if err := c.settle(unit, readFrom); err != nil {
		return domain.OutcomeFailed, err
	}

	return domain.OutcomeRecompiled, nil
}

// settle backdates the output when the source was modified after it was
// read. The output then holds the earlier content with an mtime older than
// the source, so the next compile sees it as stale.
func (c *Compiler) settle(unit domain.CompileUnit, readFrom time.Time) error {
	now, ok, err := c.oracle.ModTime(unit.Source)
	if err != nil || !ok || now.Equal(readFrom) {
		return err
	}

	stamp := readFrom
	if now.Before(stamp) {
		stamp = now
	}
	c.logger.Debug("source changed during compile, output left stale: " + unit.Source)
	return c.files.SetModTime(unit.Output, stamp.Add(-time.Second))
}

// refreshGraph rescans source and every file reachable from it, replacing
// their cache entries. Missing imported files are skipped.
func (c *Compiler) refreshGraph(source, text string) error {
	imports, err := c.scanner.ImportsOf(source, text)
	if err != nil {
		return err
	}
	c.graph.Set(source, imports)

	visited := map[string]struct{}{filepath.Clean(source): {}}
	worklist := append([]string(nil), imports...)

	for len(worklist) > 0 {
		file := worklist[0]
		worklist = worklist[1:]

		if _, seen := visited[file]; seen {
			continue
		}
		visited[file] = struct{}{}

		content, err := c.files.ReadFile(file)
		if err != nil {
			if errors.Is(err, iofs.ErrNotExist) {
				c.logger.Warn("imported file not found, skipping: " + file)
				continue
			}
			return err
		}

		nested, err := c.scanner.ImportsOf(file, content)
		if err != nil {
			return err
		}
		c.graph.Set(file, nested)
		worklist = append(worklist, nested...)
	}

	return nil
}

// CompileAll compiles units with at most parallelism running at once.
// A failing unit is recorded in the report and never stops the others.
// Results are in the order of units.
func (c *Compiler) CompileAll(ctx context.Context, units []domain.CompileUnit, parallelism int) domain.Report {
	return c.compileAll(ctx, units, parallelism, c.Compile)
}

// RebuildAll is CompileAll without staleness checks.
func (c *Compiler) RebuildAll(ctx context.Context, units []domain.CompileUnit, parallelism int) domain.Report {
	return c.compileAll(ctx, units, parallelism, c.Rebuild)
}

func (c *Compiler) compileAll(
	ctx context.Context,
	units []domain.CompileUnit,
	parallelism int,
	compile func(context.Context, domain.CompileUnit) (domain.Outcome, error),
) domain.Report {
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}

	results := make([]domain.Result, len(units))

	var g errgroup.Group
	g.SetLimit(parallelism)

	for i, unit := range units {
		g.Go(func() error {
			start := time.Now()
			outcome, err := compile(ctx, unit)
			results[i] = domain.Result{
				Unit:     unit,
				Outcome:  outcome,
				Err:      err,
				Duration: time.Since(start),
			}
			return nil
		})
	}
	_ = g.Wait()

	return domain.Report{Results: results}
}
