// Package app implements the application layer for restyle.
package app

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/restyle/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/restyle/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/restyle/internal/core/domain"
	"go.trai.ch/restyle/internal/core/ports"
	"go.trai.ch/restyle/internal/ui/style"
	"go.trai.ch/zerr"
)

const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 30 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 60 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// UnitCompiler compiles stylesheets. It is implemented by *compiler.Compiler.
type UnitCompiler interface {
	Compile(ctx context.Context, unit domain.CompileUnit) (domain.Outcome, error)
	CompileAll(ctx context.Context, units []domain.CompileUnit, parallelism int) domain.Report
	RebuildAll(ctx context.Context, units []domain.CompileUnit, parallelism int) domain.Report
}

// ETagger computes HTTP entity tags for compiled stylesheets.
type ETagger interface {
	ETag(path string) (string, error)
}

// ImportIndex is the mutable side of the import graph shared with the
// compiler. It is implemented by *graphcache.Cache.
type ImportIndex interface {
	// Forget drops path so it is treated as never scanned.
	Forget(path string)
	// Importers returns the scanned files importing path directly.
	Importers(path string) []string
	// Len returns the number of scanned files.
	Len() int
}

// WatcherFactory opens a watcher for one watch session.
type WatcherFactory func() (ports.Watcher, error)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	resolver     ports.SourceResolver
	registry     ports.TransformRegistry
	compiler     UnitCompiler
	files        ports.FileSystem
	etags        ETagger
	newWatcher   WatcherFactory
	logger       ports.Logger
	processors   []sdktrace.SpanProcessor
	imports      ImportIndex
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	resolver ports.SourceResolver,
	registry ports.TransformRegistry,
	compiler UnitCompiler,
	files ports.FileSystem,
	etags ETagger,
	newWatcher WatcherFactory,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		resolver:     resolver,
		registry:     registry,
		compiler:     compiler,
		files:        files,
		etags:        etags,
		newWatcher:   newWatcher,
		logger:       logger,
	}
}

// WithSpanProcessors returns the app with span processors that are installed
// on a tracer provider for the duration of each command.
func (a *App) WithSpanProcessors(processors ...sdktrace.SpanProcessor) *App {
	a.processors = append(a.processors, processors...)
	return a
}

// WithImportIndex returns the app with the import graph watch mode keeps
// current as files are removed or renamed.
func (a *App) WithImportIndex(imports ImportIndex) *App {
	a.imports = imports
	return a
}

// BuildOptions configures a build.
type BuildOptions struct {
	// ConfigPath names an explicit config file. Empty means discover it.
	ConfigPath string
	// Force recompiles every unit regardless of staleness.
	Force bool
	// Jobs limits parallel compiles. Zero or less means one per CPU.
	Jobs int
}

// WatchOptions configures watch mode.
type WatchOptions struct {
	ConfigPath string
	Jobs       int
}

// ServeOptions configures the HTTP server.
type ServeOptions struct {
	ConfigPath string
	// Addr overrides the configured listen address.
	Addr string
}

// SetVerbose enables debug logging when the logger supports levels.
func (a *App) SetVerbose(verbose bool) {
	leveled, ok := a.logger.(interface{ SetLevel(slog.Level) })
	if !ok {
		return
	}
	if verbose {
		leveled.SetLevel(slog.LevelDebug)
		return
	}
	leveled.SetLevel(slog.LevelInfo)
}

// Build compiles the named files, or every discovered stylesheet when files
// is empty. It returns an error wrapping domain.ErrBuildFailed when any unit failed.
func (a *App) Build(ctx context.Context, files []string, opts BuildOptions) error {
	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	shutdown := a.setupTelemetry()
	defer shutdown()

	units, err := a.units(cfg, files)
	if err != nil {
		return err
	}
	if len(units) == 0 {
		a.logger.Warn("no stylesheets found in " + cfg.Src)
		return nil
	}

	report := a.run(ctx, cfg, units, opts.Force, opts.Jobs)
	if err := report.Err(); err != nil {
		return errors.Join(domain.ErrBuildFailed, err)
	}
	return nil
}

// Watch builds once, then rebuilds on every debounced batch of source
// changes until ctx is done.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	shutdown := a.setupTelemetry()
	defer shutdown()

	w, err := a.newWatcher()
	if err != nil {
		return err
	}
	defer func() {
		if err := w.Stop(); err != nil {
			a.logger.Warn("failed to stop watcher: " + err.Error())
		}
	}()

	if err := w.Start(ctx, cfg.Src); err != nil {
		return err
	}

	var mu sync.Mutex
	rebuild := func() {
		mu.Lock()
		defer mu.Unlock()
		if ctx.Err() != nil {
			return
		}
		if err := a.rebuildAll(ctx, cfg, opts.Jobs); err != nil {
			a.logger.Error(err)
		}
	}

	rebuild()
	a.logger.Info("watching " + cfg.Src)

	batcher := watcher.NewBatcher(cfg.Watch.Debounce, func(batch []ports.WatchEvent) {
		changes := make([]string, len(batch))
		for i, event := range batch {
			changes[i] = displayName(cfg.Src, event.Path) + " (" + event.Operation.String() + ")"
		}
		a.logger.Debug(fmt.Sprintf("%d changed: %s", len(batch), strings.Join(changes, ", ")))
		a.track(cfg, batch)
		rebuild()
	})

	for event := range w.Events() {
		if within(cfg.Dest, event.Path) {
			continue
		}
		batcher.Add(event)
	}
	batcher.Stop()

	// Wait for an in-flight rebuild.
	mu.Lock()
	defer mu.Unlock()
	return nil
}

// track updates the import graph for a batch of changes. Removed and renamed
// files are forgotten, so a file later recreated at the same path is scanned
// afresh. For a changed partial the stylesheets depending on it are logged.
func (a *App) track(cfg *domain.Config, batch []ports.WatchEvent) {
	if a.imports == nil {
		return
	}

	for _, event := range batch {
		if event.Operation == ports.OpRemove || event.Operation == ports.OpRename {
			a.imports.Forget(event.Path)
		}
		if !strings.HasPrefix(filepath.Base(event.Path), domain.PartialPrefix) {
			continue
		}
		if dependents := a.dependents(event.Path); len(dependents) > 0 {
			names := make([]string, len(dependents))
			for i, d := range dependents {
				names[i] = displayName(cfg.Src, d)
			}
			a.logger.Debug(displayName(cfg.Src, event.Path) + " affects " + strings.Join(names, ", "))
		}
	}
}

// dependents returns, sorted, the non-partial stylesheets that import path
// directly or through other files.
func (a *App) dependents(path string) []string {
	seen := map[string]struct{}{filepath.Clean(path): {}}
	queue := []string{path}
	var out []string

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, importer := range a.imports.Importers(current) {
			if _, ok := seen[importer]; ok {
				continue
			}
			seen[importer] = struct{}{}
			queue = append(queue, importer)
			if !strings.HasPrefix(filepath.Base(importer), domain.PartialPrefix) {
				out = append(out, importer)
			}
		}
	}

	slices.Sort(out)
	return out
}

// Serve runs an HTTP server that compiles stylesheets on request until ctx is done.
func (a *App) Serve(ctx context.Context, opts ServeOptions) error {
	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	shutdown := a.setupTelemetry()
	defer shutdown()

	handler, err := a.Handler(cfg)
	if err != nil {
		return err
	}

	addr := cmp.Or(opts.Addr, cfg.Serve.Addr)
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to listen"), "addr", addr)
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	a.logger.Info("serving " + cfg.Dest + " at http://" + ln.Addr().String() + cfg.Serve.Prefix)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return zerr.Wrap(err, "http server failed")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return zerr.Wrap(err, "failed to shut down http server")
	}
	return nil
}

// Handler returns the HTTP handler used by Serve: stylesheets under the
// configured prefix are compiled on request and served from dest.
func (a *App) Handler(cfg *domain.Config) (http.Handler, error) {
	chain, err := a.registry.Chain(cfg.Plugins)
	if err != nil {
		return nil, err
	}
	if err := a.files.EnsureDir(cfg.Dest); err != nil {
		return nil, err
	}

	mw := NewMiddleware(a.compiler, a.etags, a.logger, cfg, chain)
	files := http.FileServer(http.Dir(cfg.Dest))

	mux := http.NewServeMux()
	mux.Handle(cfg.Serve.Prefix, http.StripPrefix(strings.TrimSuffix(cfg.Serve.Prefix, "/"), mw.Wrap(files)))
	return mux, nil
}

func (a *App) loadConfig(path string) (*domain.Config, error) {
	if path != "" {
		return a.configLoader.LoadFile(path)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to get working directory")
	}
	return a.configLoader.Load(cwd)
}

func (a *App) setupTelemetry() func() {
	if len(a.processors) == 0 {
		return func() {}
	}

	shutdown := telemetry.Install(a.processors...)
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdown(ctx); err != nil {
			a.logger.Warn("failed to shut down tracer provider: " + err.Error())
		}
	}
}

// units maps sources to compile units. Named files are taken relative to
// cfg.Src; with no names every discovered stylesheet is used. Outputs mirror
// the source layout below cfg.Dest.
func (a *App) units(cfg *domain.Config, files []string) ([]domain.CompileUnit, error) {
	chain, err := a.registry.Chain(cfg.Plugins)
	if err != nil {
		return nil, err
	}

	sources := make([]string, 0, len(files))
	if len(files) == 0 {
		sources, err = a.resolver.Resolve(cfg.Src, cfg.Include)
		if err != nil {
			return nil, err
		}
	}
	for _, f := range files {
		if !filepath.IsAbs(f) {
			f = filepath.Join(cfg.Src, f)
		}
		sources = append(sources, filepath.Clean(f))
	}

	units := make([]domain.CompileUnit, 0, len(sources))
	for _, source := range sources {
		rel, err := filepath.Rel(cfg.Src, source)
		if err != nil || !local(rel) {
			rel = filepath.Base(source)
		}
		units = append(units, domain.CompileUnit{
			Source:     source,
			Output:     filepath.Join(cfg.Dest, rel),
			Dir:        cfg.Root,
			Transforms: chain,
		})
	}
	return units, nil
}

func (a *App) rebuildAll(ctx context.Context, cfg *domain.Config, jobs int) error {
	units, err := a.units(cfg, nil)
	if err != nil {
		return err
	}
	// Unit failures are reported by run; watch mode keeps going.
	a.run(ctx, cfg, units, false, jobs)
	if a.imports != nil {
		a.logger.Debug(fmt.Sprintf("import graph holds %d files", a.imports.Len()))
	}
	return nil
}

func (a *App) run(ctx context.Context, cfg *domain.Config, units []domain.CompileUnit, force bool, jobs int) domain.Report {
	start := time.Now()

	var report domain.Report
	if force {
		report = a.compiler.RebuildAll(ctx, units, jobs)
	} else {
		report = a.compiler.CompileAll(ctx, units, jobs)
	}

	a.summarize(cfg, report, time.Since(start))
	return report
}

func (a *App) summarize(cfg *domain.Config, report domain.Report, elapsed time.Duration) {
	for _, res := range report.Results {
		name := displayName(cfg.Src, res.Unit.Source)
		mark := style.ForOutcome(res.Outcome)
		switch res.Outcome {
		case domain.OutcomeRecompiled:
			a.logger.Info(mark.Prefix(fmt.Sprintf("%s (%s)", name, res.Duration.Round(time.Millisecond))))
		case domain.OutcomeSkippedFresh:
			a.logger.Debug(mark.Prefix(name + " is up to date"))
		default:
			a.logger.Error(zerr.Wrap(res.Err, "failed to compile "+name))
		}
	}

	counts := report.Counts()
	a.logger.Info(fmt.Sprintf("%d recompiled, %d fresh, %d failed in %s",
		counts[domain.OutcomeRecompiled],
		counts[domain.OutcomeSkippedFresh],
		counts[domain.OutcomeFailed],
		elapsed.Round(time.Millisecond),
	))
}

func displayName(src, source string) string {
	rel, err := filepath.Rel(src, source)
	if err != nil || !local(rel) {
		return source
	}
	return rel
}

// within reports whether path is dir or below it.
func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	return err == nil && local(rel)
}

func local(rel string) bool {
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) && !filepath.IsAbs(rel)
}
