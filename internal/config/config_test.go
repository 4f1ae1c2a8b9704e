package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Repo.Root)
	assert.Equal(t, "src/plugins", cfg.Repo.PluginsDir)
	assert.Equal(t, 7*24*time.Hour, cfg.Scan.StaleAfter)
	assert.Equal(t, 20, cfg.Scan.RecentLimit)
	assert.Equal(t, 50, cfg.Scan.TodoLimit)
	assert.Equal(t, 10, cfg.Scan.ListLimit)
	assert.Equal(t, "progress.txt", cfg.Scan.ProgressFile)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
repo:
  root: /srv/project
  plugins_dir: plugins
  deliverables:
    - name: Weekly essay
      owner: content
      dir: essays
    - name: Trade notes
      owner: research
      dir: trades
scan:
  stale_after: 48h
  recent_limit: 5
log:
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/project", cfg.Repo.Root)
	assert.Equal(t, "plugins", cfg.Repo.PluginsDir)
	assert.Equal(t, 48*time.Hour, cfg.Scan.StaleAfter)
	assert.Equal(t, 5, cfg.Scan.RecentLimit)
	assert.Equal(t, "json", cfg.Log.Format)

	// Untouched keys keep their defaults.
	assert.Equal(t, "docs", cfg.Repo.DocsDir)
	assert.Equal(t, 50, cfg.Scan.TodoLimit)

	require.Len(t, cfg.Repo.Deliverables, 2)
	assert.Equal(t, Deliverable{Name: "Weekly essay", Owner: "content", Dir: "essays"}, cfg.Repo.Deliverables[0])
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("repo:\n  root: /from/file\n"), 0o600))

	t.Setenv("RADARD_REPO_ROOT", "/from/env")
	t.Setenv("RADARD_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.Repo.Root)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.Repo.Root)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("repo: [unclosed"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"empty root", func(c *Config) { c.Repo.Root = "" }, false},
		{"zero stale", func(c *Config) { c.Scan.StaleAfter = 0 }, false},
		{"negative limit", func(c *Config) { c.Scan.TodoLimit = -1 }, false},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestCachePaths(t *testing.T) {
	cfg := Default()
	cfg.Cache.Dir = "/tmp/cache"
	assert.Equal(t, "/tmp/cache/project-state.json", cfg.SnapshotPath())
	assert.Equal(t, "/tmp/cache/impact-history.json", cfg.HistoryPath())
	assert.Equal(t, "/tmp/cache/scan.lock", cfg.LockPath())
}

func TestRepoPath(t *testing.T) {
	cfg := Default()
	cfg.Repo.Root = "/srv/project"
	assert.Equal(t, "/srv/project/docs", cfg.RepoPath("docs"))
	assert.Equal(t, "/abs/path", cfg.RepoPath("/abs/path"))
}
