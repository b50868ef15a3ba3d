package domain

import "time"

// Config is the resolved project configuration. All paths are absolute.
type Config struct {
	// Root is the directory the config was resolved against.
	Root string
	// Src is the directory containing source stylesheets.
	Src string
	// Dest is the directory compiled stylesheets are written to.
	Dest string
	// Include lists glob patterns, relative to Src, selecting the sources to compile.
	Include []string
	// Plugins is the ordered list of transform plugin names.
	Plugins []string
	// Serve configures the HTTP trigger.
	Serve ServeConfig
	// Watch configures watch mode.
	Watch WatchConfig
}

// ServeConfig configures the serve command.
type ServeConfig struct {
	Addr   string
	Prefix string
}

// WatchConfig configures the watch command.
type WatchConfig struct {
	Debounce time.Duration
}
