package domain

import "time"

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "restyle.yaml"

	// StylesheetExt is the extension appended to extensionless imports.
	StylesheetExt = ".css"

	// PartialPrefix marks stylesheets that are only meant to be imported.
	PartialPrefix = "_"

	// DefaultInclude is the glob used to discover sources when none is configured.
	DefaultInclude = "*.css"

	// DefaultServeAddr is the listen address of the serve command.
	DefaultServeAddr = ":8080"

	// DefaultServePrefix is the URL prefix under which compiled stylesheets are served.
	DefaultServePrefix = "/"

	// DefaultDebounce is the default time window for coalescing file events.
	DefaultDebounce = 50 * time.Millisecond

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
