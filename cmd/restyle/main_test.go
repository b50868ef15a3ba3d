package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/restyle/internal/adapters/fs"
	"go.trai.ch/restyle/internal/adapters/graphcache"
	"go.trai.ch/restyle/internal/adapters/stylesheet"
	"go.trai.ch/restyle/internal/adapters/telemetry"
	"go.trai.ch/restyle/internal/adapters/transform"
	"go.trai.ch/restyle/internal/app"
	"go.trai.ch/restyle/internal/core/domain"
	"go.trai.ch/restyle/internal/core/ports/mocks"
	"go.trai.ch/restyle/internal/engine/compiler"
	"go.trai.ch/restyle/internal/engine/staleness"
	"go.uber.org/mock/gomock"
)

func newApp(loader *mocks.MockConfigLoader, logger *mocks.MockLogger) *app.App {
	files := fs.NewFiles()
	graph := graphcache.New()
	comp := compiler.New(files, fs.NewOracle(), stylesheet.NewExtractor(), graph, staleness.New(fs.NewOracle(), graph, logger),
		telemetry.NewNoOpTracer(), logger)
	return app.New(loader, fs.NewResolver(fs.NewWalker()), transform.NewRegistry(), comp, files, fs.NewHasher(), nil, logger)
}

func provide(a *app.App, logger *mocks.MockLogger) ComponentProvider {
	return func(_ context.Context) (*app.Components, func(), error) {
		return app.NewComponents(a, logger), func() {}, nil
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)

	exitCode := run(context.Background(), []string{"version"}, stdout, stderr,
		provide(newApp(mocks.NewMockConfigLoader(ctrl), mockLogger), mockLogger))
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "restyle version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the error and returns 1 when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	mockLoader.EXPECT().LoadFile("missing.yaml").Return(nil, domain.ErrConfigNotFound)
	mockLogger.EXPECT().Error(domain.ErrConfigNotFound).Times(1)

	exitCode := run(context.Background(), []string{"build", "-c", "missing.yaml"}, new(bytes.Buffer), new(bytes.Buffer),
		provide(newApp(mockLoader, mockLogger), mockLogger))

	assert.Equal(t, 1, exitCode)
}

// TestRun_BuildFailure verifies that failed units exit 1 without being logged twice.
func TestRun_BuildFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	root := t.TempDir()
	cfg := &domain.Config{
		Root: root,
		Src:  filepath.Join(root, "src"),
		Dest: filepath.Join(root, "dest"),
	}
	assert.NoError(t, os.MkdirAll(cfg.Src, domain.DirPerm))

	mockLoader.EXPECT().LoadFile("restyle.yaml").Return(cfg, nil)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	// Once from the build summary, never from run.
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	exitCode := run(context.Background(), []string{"build", "-c", "restyle.yaml", "missing.css"},
		new(bytes.Buffer), new(bytes.Buffer), provide(newApp(mockLoader, mockLogger), mockLogger))

	assert.Equal(t, 1, exitCode)
}
