package domain

import "go.trai.ch/zerr"

var (
	// ErrSourceNotFound is returned when a compile unit names a source file that does not exist.
	ErrSourceNotFound = zerr.New("source file not found")

	// ErrPathStatFailed is returned when stating a path fails for a reason other than absence.
	ErrPathStatFailed = zerr.New("failed to stat path")

	// ErrFileReadFailed is returned when a stylesheet cannot be read.
	ErrFileReadFailed = zerr.New("failed to read file")

	// ErrFileWriteFailed is returned when compiled output cannot be written.
	ErrFileWriteFailed = zerr.New("failed to write file")

	// ErrDirCreateFailed is returned when the output directory cannot be created.
	ErrDirCreateFailed = zerr.New("failed to create output directory")

	// ErrImportParseFailed is returned when a stylesheet cannot be tokenized while extracting imports.
	ErrImportParseFailed = zerr.New("failed to parse imports")

	// ErrStalenessCheckFailed is returned when the staleness evaluation hits an I/O error.
	ErrStalenessCheckFailed = zerr.New("failed to evaluate staleness")

	// ErrGraphRefreshFailed is returned when the import graph of a source cannot be rescanned.
	ErrGraphRefreshFailed = zerr.New("failed to refresh import graph")

	// ErrTransformFailed is returned when a transform plugin fails.
	ErrTransformFailed = zerr.New("transform failed")

	// ErrUnknownPlugin is returned when the configuration names a plugin that is not registered.
	ErrUnknownPlugin = zerr.New("unknown plugin")

	// ErrBuildFailed is returned when at least one compile unit of a build failed.
	ErrBuildFailed = zerr.New("build failed")

	// ErrConfigNotFound is returned when no config file can be found.
	ErrConfigNotFound = zerr.New("could not find restyle.yaml")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrMissingSrc is returned when the configuration has no source directory.
	ErrMissingSrc = zerr.New("config requires a src directory (base for finding input css files)")

	// ErrMissingDest is returned when the configuration has no destination directory.
	ErrMissingDest = zerr.New("config requires a dest directory")

	// ErrInvalidDebounce is returned when the watch debounce window is not a valid duration.
	ErrInvalidDebounce = zerr.New("invalid watch debounce duration")

	// ErrGlobFailed is returned when an include pattern is malformed.
	ErrGlobFailed = zerr.New("failed to glob sources")

	// ErrWatcherFailed is returned when the file watcher cannot be started.
	ErrWatcherFailed = zerr.New("failed to start file watcher")
)
