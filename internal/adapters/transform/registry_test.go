package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/restyle/internal/adapters/transform"
	"go.trai.ch/restyle/internal/core/domain"
)

func TestRegistry_Chain(t *testing.T) {
	minifier := transform.NewMinifier()
	banner := transform.NewBanner()
	registry := transform.NewRegistry(minifier, banner)

	chain, err := registry.Chain([]string{"banner", "minify", "banner"})
	require.NoError(t, err)
	assert.Equal(t, []domain.Transform{banner, minifier, banner}, chain)
}

func TestRegistry_Chain_Empty(t *testing.T) {
	registry := transform.NewRegistry(transform.NewBanner())

	chain, err := registry.Chain(nil)
	require.NoError(t, err)
	assert.Empty(t, chain)
}

func TestRegistry_Chain_Unknown(t *testing.T) {
	registry := transform.NewRegistry(transform.NewBanner())

	_, err := registry.Chain([]string{"banner", "sass"})
	require.ErrorContains(t, err, domain.ErrUnknownPlugin.Error())
}
