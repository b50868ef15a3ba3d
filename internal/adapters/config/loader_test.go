package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/restyle/internal/adapters/config"
	"go.trai.ch/restyle/internal/core/domain"
	"go.trai.ch/restyle/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func newLoader(t *testing.T) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	return config.NewLoader(mockLogger), mockLogger
}

func TestLoader_LoadFile_Full(t *testing.T) {
	loader, _ := newLoader(t)
	rootDir := t.TempDir()

	path := createFile(t, rootDir, domain.ConfigFileName, `
version: "1"
root: site
src: styles
dest: /var/www/css
include: ["*.css", "**/*.css"]
plugins: [inline, minify]
serve:
  addr: "127.0.0.1:9000"
  prefix: css
watch:
  debounce: 200ms
`)

	cfg, err := loader.LoadFile(path)
	require.NoError(t, err)

	site := filepath.Join(rootDir, "site")
	assert.Equal(t, site, cfg.Root)
	assert.Equal(t, filepath.Join(site, "styles"), cfg.Src)
	assert.Equal(t, "/var/www/css", cfg.Dest)
	assert.Equal(t, []string{"*.css", "**/*.css"}, cfg.Include)
	assert.Equal(t, []string{"inline", "minify"}, cfg.Plugins)
	assert.Equal(t, "127.0.0.1:9000", cfg.Serve.Addr)
	assert.Equal(t, "/css/", cfg.Serve.Prefix)
	assert.Equal(t, 200*time.Millisecond, cfg.Watch.Debounce)
}

func TestLoader_LoadFile_Defaults(t *testing.T) {
	loader, _ := newLoader(t)
	rootDir := t.TempDir()

	path := createFile(t, rootDir, domain.ConfigFileName, "src: styles\ndest: public\n")

	cfg, err := loader.LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, rootDir, cfg.Root)
	assert.Equal(t, filepath.Join(rootDir, "styles"), cfg.Src)
	assert.Equal(t, filepath.Join(rootDir, "public"), cfg.Dest)
	assert.Equal(t, []string{domain.DefaultInclude}, cfg.Include)
	assert.Empty(t, cfg.Plugins)
	assert.Equal(t, domain.DefaultServeAddr, cfg.Serve.Addr)
	assert.Equal(t, domain.DefaultServePrefix, cfg.Serve.Prefix)
	assert.Equal(t, domain.DefaultDebounce, cfg.Watch.Debounce)
}

func TestLoader_LoadFile_Validation(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		expectedErr error
	}{
		{
			name:        "missing src",
			content:     "dest: public\n",
			expectedErr: domain.ErrMissingSrc,
		},
		{
			name:        "missing dest",
			content:     "src: styles\n",
			expectedErr: domain.ErrMissingDest,
		},
		{
			name:        "bad debounce",
			content:     "src: styles\ndest: public\nwatch:\n  debounce: soon\n",
			expectedErr: domain.ErrInvalidDebounce,
		},
		{
			name:        "negative debounce",
			content:     "src: styles\ndest: public\nwatch:\n  debounce: -1s\n",
			expectedErr: domain.ErrInvalidDebounce,
		},
		{
			name:        "malformed yaml",
			content:     "src: [unclosed\n",
			expectedErr: domain.ErrConfigParseFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, _ := newLoader(t)
			path := createFile(t, t.TempDir(), domain.ConfigFileName, tt.content)

			_, err := loader.LoadFile(path)
			require.Error(t, err)
			require.ErrorContains(t, err, tt.expectedErr.Error())
		})
	}
}

func TestLoader_LoadFile_Missing(t *testing.T) {
	loader, _ := newLoader(t)

	_, err := loader.LoadFile(filepath.Join(t.TempDir(), domain.ConfigFileName))
	require.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
}

func TestLoader_LoadFile_UnknownVersionWarns(t *testing.T) {
	loader, mockLogger := newLoader(t)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	path := createFile(t, t.TempDir(), domain.ConfigFileName, "version: \"2\"\nsrc: s\ndest: d\n")

	_, err := loader.LoadFile(path)
	require.NoError(t, err)
}

func TestLoader_Load_Discovery(t *testing.T) {
	loader, _ := newLoader(t)
	rootDir := t.TempDir()
	createFile(t, rootDir, domain.ConfigFileName, "src: styles\ndest: public\n")

	nested := filepath.Join(rootDir, "styles", "components")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))

	cfg, err := loader.Load(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(rootDir, "styles"), cfg.Src)
}

func TestLoader_Load_NotFound(t *testing.T) {
	loader, _ := newLoader(t)

	_, err := loader.Load(t.TempDir())
	require.ErrorContains(t, err, domain.ErrConfigNotFound.Error())
}
