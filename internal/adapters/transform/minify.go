package transform

import (
	"context"

	"github.com/tdewolff/minify/v2"
	mincss "github.com/tdewolff/minify/v2/css"
	"go.trai.ch/restyle/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// MinifyPluginName is the configuration name of the Minifier.
	MinifyPluginName = "minify"

	cssMediaType = "text/css"
)

var _ domain.Transform = (*Minifier)(nil)

// Minifier removes whitespace, comments and redundant syntax from a stylesheet.
type Minifier struct {
	m *minify.M
}

// NewMinifier creates a new Minifier.
func NewMinifier() *Minifier {
	m := minify.New()
	m.AddFunc(cssMediaType, mincss.Minify)
	return &Minifier{m: m}
}

// Name returns the plugin name.
func (mf *Minifier) Name() string {
	return MinifyPluginName
}

// Apply returns the minified form of cssText.
func (mf *Minifier) Apply(ctx context.Context, cssText, from, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	out, err := mf.m.String(cssMediaType, cssText)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "minify failed"), "path", from)
	}
	return out, nil
}
