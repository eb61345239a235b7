package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viennacmp/dga/slogger"
)

const validManifest = `
lattice:
  hr_input: [1.0, -0.2, 0.1]
`

const invalidManifest = `
lattice:
  hr_input: [1.0, -0.2, 0.1]
self_consistency:
  mixing: 1.5
`

func writeManifest(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateManifest(t *testing.T) {
	dir := t.TempDir()
	good := writeManifest(t, dir, "good.yaml", validManifest)
	bad := writeManifest(t, dir, "bad.yaml", invalidManifest)

	require.NoError(t, validateManifest(good))
	require.Error(t, validateManifest(bad))
	require.Error(t, validateManifest(filepath.Join(dir, "missing.yaml")))
}

func TestExpandPatterns(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "a.yaml", validManifest)
	writeManifest(t, dir, "b.yaml", validManifest)
	sub := filepath.Join(dir, "runs")
	require.NoError(t, os.MkdirAll(sub, 0755))
	writeManifest(t, sub, "c.yaml", validManifest)

	files, err := expandPatterns([]string{filepath.Join(dir, "**", "*.yaml")})
	require.NoError(t, err)
	assert.Len(t, files, 3)

	// Duplicates across patterns collapse.
	files, err = expandPatterns([]string{
		filepath.Join(dir, "*.yaml"),
		filepath.Join(dir, "a.yaml"),
	})
	require.NoError(t, err)
	assert.Len(t, files, 2)

	// A non-matching literal path is passed through so the caller reports it.
	files, err = expandPatterns([]string{filepath.Join(dir, "missing.yaml")})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "missing.yaml")}, files)
}

func TestLoadResolved(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "dga.yaml", `
lattice:
  hr_input: [1.0, -0.2, 0.1]
  nk: [8, 8, 1]
output:
  output_path: out
`)

	cfg, err := loadResolved([]string{path})
	require.NoError(t, err)
	// Paths are resolved against the manifest directory and the q-grid
	// defaults to the k-grid.
	assert.Equal(t, filepath.Join(dir, "out"), cfg.Output.OutputPath)
	assert.Equal(t, []int{8, 8, 1}, cfg.Lattice.Nq)

	bad := writeManifest(t, dir, "bad.yaml", invalidManifest)
	_, err = loadResolved([]string{bad})
	require.Error(t, err)
}

func TestHandleFileEventDebouncesOnlyRevalidations(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "dga.yaml", validManifest)

	mw := &ManifestWatcher{
		options:   WatchOptions{Patterns: []string{path}, Debounce: time.Hour},
		logger:    slogger.NewDevNullLogger(),
		debouncer: make(map[string]time.Time),
	}

	// A Chmod (editors often emit one right before the save) must not start
	// the debounce window.
	mw.handleFileEvent(fsnotify.Event{Name: path, Op: fsnotify.Chmod})
	assert.Empty(t, mw.debouncer)

	// The Write that follows is handled and starts the window.
	mw.handleFileEvent(fsnotify.Event{Name: path, Op: fsnotify.Write})
	assert.Contains(t, mw.debouncer, path)

	// A second Write inside the window keeps the original timestamp.
	first := mw.debouncer[path]
	mw.handleFileEvent(fsnotify.Event{Name: path, Op: fsnotify.Write})
	assert.Equal(t, first, mw.debouncer[path])
}

func TestResolvedYAMLDiffersForDifferentManifests(t *testing.T) {
	dir := t.TempDir()
	a := writeManifest(t, dir, "a.yaml", validManifest)
	b := writeManifest(t, dir, "b.yaml", `
lattice:
  hr_input: [1.0, -0.2, 0.1]
self_consistency:
  max_iter: 99
`)

	docA, err := resolvedYAML(a)
	require.NoError(t, err)
	docB, err := resolvedYAML(b)
	require.NoError(t, err)
	assert.NotEqual(t, docA, docB)

	docA2, err := resolvedYAML(a)
	require.NoError(t, err)
	assert.Equal(t, docA, docA2)
}
