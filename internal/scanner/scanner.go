// Package scanner enumerates the filesystem surfaces radard reads: plugin
// roots, knowledge trees, and document directories.
//
// All functions tolerate missing roots by returning empty results. Entries
// carry paths relative to the walked root; enumeration order follows the
// filesystem and is not guaranteed stable across platforms.
package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// PluginPrefix is the directory naming convention for plugins.
const PluginPrefix = "plugin-"

// skipDirs are dependency and build directories never descended into.
// Dotted directories are skipped separately.
var skipDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
	"target":       true,
}

// Entry is one enumerated file.
type Entry struct {
	// RelPath is the path relative to the walked root, using slashes.
	RelPath string

	// AbsPath is the full path on disk.
	AbsPath string

	// ModTime is the file's last modification time.
	ModTime time.Time
}

// Change is one recently modified file.
type Change struct {
	File    string `json:"file"`
	DaysAgo int    `json:"days_ago"`
}

// Walk recursively enumerates files under root, skipping dotfiles, dotted
// directories, and dependency directories. Only files whose extension is in
// exts are returned; a nil or empty exts returns every file. A missing root
// yields an empty slice.
func Walk(root string, exts []string) []Entry {
	var entries []Entry
	walk(root, "", exts, &entries)
	return entries
}

func walk(dir, prefix string, exts []string, out *[]Entry) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, de := range dirEntries {
		name := de.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		full := filepath.Join(dir, name)
		rel := name
		if prefix != "" {
			rel = prefix + "/" + name
		}

		if de.IsDir() {
			if skipDirs[name] {
				continue
			}
			walk(full, rel, exts, out)
			continue
		}

		if !matchesExt(name, exts) {
			continue
		}

		info, err := de.Info()
		if err != nil {
			continue
		}

		*out = append(*out, Entry{
			RelPath: rel,
			AbsPath: full,
			ModTime: info.ModTime(),
		})
	}
}

// matchesExt reports whether name carries one of the given extensions.
func matchesExt(name string, exts []string) bool {
	if len(exts) == 0 {
		return true
	}
	for _, ext := range exts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// PluginDirs returns the plugin directories directly under root, one level
// deep, matching the plugin-* naming convention. A missing root yields an
// empty slice.
func PluginDirs(root string) []string {
	dirEntries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}

	var dirs []string
	for _, de := range dirEntries {
		if de.IsDir() && strings.HasPrefix(de.Name(), PluginPrefix) {
			dirs = append(dirs, filepath.Join(root, de.Name()))
		}
	}
	return dirs
}

// RecentChanges returns files under the given roots modified within the
// window, most recent first, capped at limit. Paths are prefixed with the
// root's base name so changes from different trees stay distinguishable.
func RecentChanges(roots []string, exts []string, window time.Duration, limit int, now time.Time) []Change {
	cutoff := now.Add(-window)

	type timedChange struct {
		change  Change
		modTime time.Time
	}
	var changes []timedChange

	for _, root := range roots {
		base := filepath.Base(root)
		for _, e := range Walk(root, exts) {
			if e.ModTime.Before(cutoff) {
				continue
			}
			days := int(now.Sub(e.ModTime).Hours() / 24)
			changes = append(changes, timedChange{
				change:  Change{File: base + "/" + e.RelPath, DaysAgo: days},
				modTime: e.ModTime,
			})
		}
	}

	sort.SliceStable(changes, func(i, j int) bool {
		return changes[i].modTime.After(changes[j].modTime)
	})

	if limit > 0 && len(changes) > limit {
		changes = changes[:limit]
	}

	out := make([]Change, 0, len(changes))
	for _, c := range changes {
		out = append(out, c.change)
	}
	return out
}

// NewestModTime returns the most recent modification time among files with
// the given extensions under root. The zero time means no files were found.
func NewestModTime(root string, exts []string) time.Time {
	var newest time.Time
	for _, e := range Walk(root, exts) {
		if e.ModTime.After(newest) {
			newest = e.ModTime
		}
	}
	return newest
}

// CountFiles returns the number of files directly inside dir (no recursion)
// that match the extension filter and are not excluded by the skip
// predicate. A missing dir counts as zero.
func CountFiles(dir string, exts []string, skip func(name string) bool) int {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}

	count := 0
	for _, de := range dirEntries {
		if de.IsDir() || strings.HasPrefix(de.Name(), ".") {
			continue
		}
		if !matchesExt(de.Name(), exts) {
			continue
		}
		if skip != nil && skip(de.Name()) {
			continue
		}
		count++
	}
	return count
}
