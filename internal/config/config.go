// Package config provides configuration loading for radard.
//
// Configuration is loaded from a YAML file, overridden by environment
// variables, with hardcoded defaults for everything else.
package config

import (
	"fmt"
	"path/filepath"
	"time"
)

// Config holds the complete radard configuration.
type Config struct {
	Repo          RepoConfig          `koanf:"repo"`
	Scan          ScanConfig          `koanf:"scan"`
	Cache         CacheConfig         `koanf:"cache"`
	Observability ObservabilityConfig `koanf:"observability"`
	Log           LogConfig           `koanf:"log"`
}

// RepoConfig describes the repository layout being scanned. All paths are
// relative to Root unless absolute.
type RepoConfig struct {
	Root            string `koanf:"root"`
	PluginsDir      string `koanf:"plugins_dir"`
	KnowledgeDir    string `koanf:"knowledge_dir"`
	DocsDir         string `koanf:"docs_dir"`
	TasksDir        string `koanf:"tasks_dir"`
	DeliverablesDir string `koanf:"deliverables_dir"`

	// KeyDocs are root-level documents always included in a scan.
	KeyDocs []string `koanf:"key_docs"`

	// InternalDocs is a small curated list of high-value documents scanned
	// in addition to the docs and tasks directories.
	InternalDocs []string `koanf:"internal_docs"`

	LessonsFile string `koanf:"lessons_file"`
	ImproveFile string `koanf:"improve_file"`

	// ExpectedKnowledge lists knowledge categories whose absence is
	// reported as a gap.
	ExpectedKnowledge []string `koanf:"expected_knowledge"`

	// Deliverables are the tracked north-star outputs.
	Deliverables []Deliverable `koanf:"deliverables"`
}

// Deliverable is one tracked north-star output directory.
type Deliverable struct {
	Name  string `koanf:"name"`
	Owner string `koanf:"owner"`
	Dir   string `koanf:"dir"`
}

// ScanConfig holds scan tunables.
type ScanConfig struct {
	ProgressFile string        `koanf:"progress_file"`
	StaleAfter   time.Duration `koanf:"stale_after"`
	RecentWindow time.Duration `koanf:"recent_window"`
	RecentLimit  int           `koanf:"recent_limit"`
	TodoLimit    int           `koanf:"todo_limit"`
	ListLimit    int           `koanf:"list_limit"`

	// SourceExts are the file extensions that count as source for
	// freshness and recent-change tracking.
	SourceExts []string `koanf:"source_exts"`
}

// CacheConfig locates the persisted snapshot and history files.
type CacheConfig struct {
	Dir string `koanf:"dir"`
}

// ObservabilityConfig holds OpenTelemetry configuration.
type ObservabilityConfig struct {
	EnableTelemetry bool   `koanf:"enable_telemetry"`
	ServiceName     string `koanf:"service_name"`
	OTLPEndpoint    string `koanf:"otlp_endpoint"`
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Repo: RepoConfig{
			Root:            ".",
			PluginsDir:      "src/plugins",
			KnowledgeDir:    "knowledge",
			DocsDir:         "docs",
			TasksDir:        "tasks",
			DeliverablesDir: "deliverables",
			KeyDocs:         []string{"README.md", "STATUS.md", "ROADMAP.md", "TODO.md"},
			LessonsFile:     "tasks/lessons.md",
			ImproveFile:     "tasks/improve-next.md",
		},
		Scan: ScanConfig{
			ProgressFile: "progress.txt",
			StaleAfter:   7 * 24 * time.Hour,
			RecentWindow: 7 * 24 * time.Hour,
			RecentLimit:  20,
			TodoLimit:    50,
			ListLimit:    10,
			SourceExts:   []string{".ts", ".tsx", ".js", ".go", ".py", ".md"},
		},
		Cache: CacheConfig{
			Dir: ".radard-cache",
		},
		Observability: ObservabilityConfig{
			EnableTelemetry: false,
			ServiceName:     "radard",
			OTLPEndpoint:    "localhost:4317",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// RepoPath resolves a configured path against the repository root.
func (c *Config) RepoPath(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(c.Repo.Root, rel)
}

// SnapshotPath is the project-state cache file.
func (c *Config) SnapshotPath() string {
	return filepath.Join(c.Cache.Dir, "project-state.json")
}

// HistoryPath is the suggestion history cache file.
func (c *Config) HistoryPath() string {
	return filepath.Join(c.Cache.Dir, "impact-history.json")
}

// LockPath is the advisory scan lock file.
func (c *Config) LockPath() string {
	return filepath.Join(c.Cache.Dir, "scan.lock")
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Repo.Root == "" {
		return fmt.Errorf("repo.root is required")
	}
	if c.Scan.StaleAfter <= 0 {
		return fmt.Errorf("scan.stale_after must be positive")
	}
	if c.Scan.RecentWindow <= 0 {
		return fmt.Errorf("scan.recent_window must be positive")
	}
	if c.Scan.RecentLimit < 0 || c.Scan.TodoLimit < 0 || c.Scan.ListLimit < 0 {
		return fmt.Errorf("scan limits must not be negative")
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", c.Log.Format)
	}
	return nil
}
