// Package output builds the termenv outputs restyle writes its log lines to.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Getenv looks up an environment variable, returning "" when it is unset.
type Getenv func(key string) string

// Profile picks a color profile from the environment.
//
// NO_COLOR disables color and takes precedence over FORCE_COLOR, which
// enables 256 colors even when stderr is not a terminal. TERM=dumb also
// disables color. Anything else is left to termenv's detection.
func Profile(getenv Getenv) termenv.Profile {
	if getenv == nil {
		getenv = os.Getenv
	}

	switch {
	case getenv("NO_COLOR") != "":
		return termenv.Ascii
	case getenv("FORCE_COLOR") != "":
		return termenv.ANSI256
	case getenv("TERM") == "dumb":
		return termenv.Ascii
	default:
		return termenv.EnvColorProfile()
	}
}

// New returns an output writing to w, or to stderr when w is nil, colored
// according to the process environment.
func New(w io.Writer) *termenv.Output {
	return NewWithEnv(w, os.Getenv)
}

// NewWithEnv is New with an explicit environment lookup.
func NewWithEnv(w io.Writer, getenv Getenv) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w, termenv.WithProfile(Profile(getenv)), termenv.WithTTY(true))
}
