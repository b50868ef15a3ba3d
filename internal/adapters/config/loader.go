// Package config provides the configuration loader for restyle.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/restyle/internal/core/domain"
	"go.trai.ch/restyle/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the config schema version this loader understands.
const SupportedVersion = "1"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds restyle.yaml in cwd or its nearest ancestor and resolves it.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	configPath, err := findConfiguration(cwd)
	if err != nil {
		return nil, err
	}
	return l.LoadFile(configPath)
}

// LoadFile reads the config file at path, applies defaults, resolves paths
// to absolute and validates the result.
func (l *Loader) LoadFile(path string) (*domain.Config, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	// #nosec G304 -- path is the user's config file
	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", absPath)
	}

	var file Restylefile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", absPath)
	}

	if file.Version != "" && file.Version != SupportedVersion {
		l.Logger.Warn("unsupported config version " + file.Version + " in " + absPath + ", reading it as version " + SupportedVersion)
	}

	return buildConfig(&file, filepath.Dir(absPath))
}

func buildConfig(file *Restylefile, configDir string) (*domain.Config, error) {
	if strings.TrimSpace(file.Src) == "" {
		return nil, domain.ErrMissingSrc
	}
	if strings.TrimSpace(file.Dest) == "" {
		return nil, domain.ErrMissingDest
	}

	root := resolvePath(configDir, file.Root)

	cfg := &domain.Config{
		Root:    root,
		Src:     resolvePath(root, file.Src),
		Dest:    resolvePath(root, file.Dest),
		Include: file.Include,
		Plugins: file.Plugins,
		Serve: domain.ServeConfig{
			Addr:   file.Serve.Addr,
			Prefix: file.Serve.Prefix,
		},
		Watch: domain.WatchConfig{Debounce: domain.DefaultDebounce},
	}

	if len(cfg.Include) == 0 {
		cfg.Include = []string{domain.DefaultInclude}
	}
	if cfg.Plugins == nil {
		cfg.Plugins = []string{}
	}
	if cfg.Serve.Addr == "" {
		cfg.Serve.Addr = domain.DefaultServeAddr
	}
	cfg.Serve.Prefix = normalizePrefix(cfg.Serve.Prefix)

	if file.Watch.Debounce != "" {
		d, err := time.ParseDuration(file.Watch.Debounce)
		if err != nil || d < 0 {
			return nil, zerr.With(domain.ErrInvalidDebounce, "debounce", file.Watch.Debounce)
		}
		cfg.Watch.Debounce = d
	}

	return cfg, nil
}

// findConfiguration walks up from cwd looking for restyle.yaml.
func findConfiguration(cwd string) (string, error) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
	}

	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

// resolvePath returns p relative to base unless p is absolute.
func resolvePath(base, p string) string {
	if p == "" {
		return filepath.Clean(base)
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}

// normalizePrefix makes prefix start and end with a slash.
func normalizePrefix(prefix string) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return domain.DefaultServePrefix
	}
	return "/" + prefix + "/"
}
