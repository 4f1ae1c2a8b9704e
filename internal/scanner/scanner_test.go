package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates a file with parent directories.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestWalk_MissingRoot(t *testing.T) {
	assert.Empty(t, Walk(filepath.Join(t.TempDir(), "nope"), nil))
}

func TestWalk_SkipsDotfilesAndVendorDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.go"), "x")
	writeFile(t, filepath.Join(root, ".hidden"), "x")
	writeFile(t, filepath.Join(root, ".git", "config"), "x")
	writeFile(t, filepath.Join(root, "node_modules", "pkg", "index.js"), "x")
	writeFile(t, filepath.Join(root, "vendor", "dep.go"), "x")
	writeFile(t, filepath.Join(root, "sub", "b.md"), "x")

	var rels []string
	for _, e := range Walk(root, nil) {
		rels = append(rels, e.RelPath)
	}
	sort.Strings(rels)
	assert.Equal(t, []string{"a.go", "sub/b.md"}, rels)
}

func TestWalk_ExtensionFilter(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.go"), "x")
	writeFile(t, filepath.Join(root, "b.md"), "x")
	writeFile(t, filepath.Join(root, "c.txt"), "x")

	entries := Walk(root, []string{".md"})
	require.Len(t, entries, 1)
	assert.Equal(t, "b.md", entries[0].RelPath)
}

func TestPluginDirs(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "plugin-alpha"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "plugin-beta"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "shared"), 0755))
	writeFile(t, filepath.Join(root, "plugin-not-a-dir.txt"), "x")

	dirs := PluginDirs(root)
	sort.Strings(dirs)
	assert.Equal(t, []string{
		filepath.Join(root, "plugin-alpha"),
		filepath.Join(root, "plugin-beta"),
	}, dirs)
}

func TestPluginDirs_MissingRoot(t *testing.T) {
	assert.Empty(t, PluginDirs(filepath.Join(t.TempDir(), "nope")))
}

func TestRecentChanges_WindowAndOrder(t *testing.T) {
	root := t.TempDir()
	now := time.Now()

	writeFile(t, filepath.Join(root, "old.md"), "x")
	require.NoError(t, os.Chtimes(filepath.Join(root, "old.md"), now.Add(-240*time.Hour), now.Add(-240*time.Hour)))

	writeFile(t, filepath.Join(root, "yesterday.md"), "x")
	require.NoError(t, os.Chtimes(filepath.Join(root, "yesterday.md"), now.Add(-26*time.Hour), now.Add(-26*time.Hour)))

	writeFile(t, filepath.Join(root, "today.md"), "x")

	changes := RecentChanges([]string{root}, []string{".md"}, 7*24*time.Hour, 20, now)
	require.Len(t, changes, 2)
	assert.Contains(t, changes[0].File, "today.md")
	assert.Equal(t, 0, changes[0].DaysAgo)
	assert.Contains(t, changes[1].File, "yesterday.md")
	assert.Equal(t, 1, changes[1].DaysAgo)
}

func TestRecentChanges_Cap(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a.md", "b.md", "c.md"} {
		writeFile(t, filepath.Join(root, name), "x")
	}

	changes := RecentChanges([]string{root}, []string{".md"}, 7*24*time.Hour, 2, time.Now())
	assert.Len(t, changes, 2)
}

func TestCountFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "one.ts"), "x")
	writeFile(t, filepath.Join(dir, "two.ts"), "x")
	writeFile(t, filepath.Join(dir, "two.test.ts"), "x")
	writeFile(t, filepath.Join(dir, "notes.md"), "x")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0755))

	got := CountFiles(dir, []string{".ts"}, func(name string) bool {
		return strings.Contains(name, ".test.")
	})
	assert.Equal(t, 2, got)
}

func TestCountFiles_MissingDir(t *testing.T) {
	assert.Equal(t, 0, CountFiles(filepath.Join(t.TempDir(), "nope"), nil, nil))
}

func TestNewestModTime_Empty(t *testing.T) {
	assert.True(t, NewestModTime(t.TempDir(), nil).IsZero())
}
