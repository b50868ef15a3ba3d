package transform

import (
	"context"
	"path/filepath"
)

// BannerPluginName is the configuration name of the Banner.
const BannerPluginName = "banner"

// Banner prepends a comment naming the source file.
type Banner struct{}

// NewBanner creates a new Banner.
func NewBanner() *Banner {
	return &Banner{}
}

// Name returns the plugin name.
func (b *Banner) Name() string {
	return BannerPluginName
}

// Apply prepends the banner to cssText.
func (b *Banner) Apply(_ context.Context, cssText, from, _ string) (string, error) {
	return "/* generated by restyle from " + filepath.Base(from) + " */\n" + cssText, nil
}
