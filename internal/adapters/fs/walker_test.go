package fs_test

import (
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/restyle/internal/adapters/fs"
)

func TestWalker_Match(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, "main.css", "theme/dark.css", "theme/dark.scss", "README.md")

	files := slices.Collect(fs.NewWalker().Match(tmpDir, "*.css"))

	assert.Equal(t, []string{
		filepath.Join(tmpDir, "main.css"),
		filepath.Join(tmpDir, "theme", "dark.css"),
	}, files)
}

func TestWalker_Match_PrunesHiddenAndDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir,
		".git/objects/x.css",
		".cache/build.css",
		"node_modules/normalize.css/normalize.css",
		"vendor/reset.css",
		"src/main.css",
	)

	files := slices.Collect(fs.NewWalker().Match(tmpDir, "*.css"))

	assert.Equal(t, []string{filepath.Join(tmpDir, "src", "main.css")}, files)
}

func TestWalker_Match_CustomPrune(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, "legacy/old.css", "vendor/reset.css", "main.css")

	files := slices.Collect(fs.NewWalker("legacy").Match(tmpDir, "*.css"))

	assert.Equal(t, []string{
		filepath.Join(tmpDir, "main.css"),
		filepath.Join(tmpDir, "vendor", "reset.css"),
	}, files)
}

func TestWalker_Match_HiddenRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), ".styles")
	writeFiles(t, root, "main.css")

	files := slices.Collect(fs.NewWalker().Match(root, "*.css"))

	assert.Equal(t, []string{filepath.Join(root, "main.css")}, files)
}

func TestWalker_Match_StopsEarly(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, "a.css", "b.css", "c.css")

	count := 0
	for range fs.NewWalker().Match(tmpDir, "*.css") {
		count++
		break
	}

	assert.Equal(t, 1, count)
}

func TestWalker_Match_MissingRoot(t *testing.T) {
	files := slices.Collect(fs.NewWalker().Match(filepath.Join(t.TempDir(), "missing"), "*.css"))
	assert.Empty(t, files)
}
