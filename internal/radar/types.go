// Package radar assembles the full project-state snapshot: plugin health,
// progress ledgers, knowledge coverage, deliverable freshness, document
// signals, and recent filesystem changes, merged into one ProjectState per
// scan.
package radar

import (
	"time"

	"github.com/fyrsmithlabs/radard/internal/extraction"
	"github.com/fyrsmithlabs/radard/internal/plugin"
	"github.com/fyrsmithlabs/radard/internal/scanner"
)

// KnowledgeCategory is one knowledge subdirectory's coverage.
type KnowledgeCategory struct {
	Name        string    `json:"name"`
	FileCount   int       `json:"file_count"`
	LastUpdated time.Time `json:"last_updated"`
}

// Deliverable freshness states.
const (
	DeliverableActive  = "active"
	DeliverableStale   = "stale"
	DeliverableMissing = "missing"
)

// DeliverableStatus is the freshness of one tracked north-star output.
type DeliverableStatus struct {
	Name       string `json:"name"`
	Owner      string `json:"owner,omitempty"`
	Dir        string `json:"dir"`
	Status     string `json:"status"`
	LastOutput string `json:"last_output,omitempty"`
}

// ProjectState is the single unit of truth for one scan. It is fully
// replaced on every re-scan and persisted as one JSON document.
type ProjectState struct {
	ScannedAt time.Time `json:"scanned_at"`

	Plugins       []plugin.Status `json:"plugins"`
	TotalActions  int             `json:"total_actions"`
	TotalServices int             `json:"total_services"`

	Completed  []plugin.ProgressItem `json:"completed"`
	InProgress []plugin.ProgressItem `json:"in_progress"`
	Blocked    []plugin.ProgressItem `json:"blocked"`
	Planned    []plugin.ProgressItem `json:"planned"`

	KnowledgeCategories []KnowledgeCategory `json:"knowledge_categories"`
	KnowledgeGaps       []string            `json:"knowledge_gaps"`

	NorthStarDeliverables []DeliverableStatus `json:"north_star_deliverables"`

	RecentChanges []scanner.Change `json:"recent_changes"`

	DocInsights []extraction.DocInsight `json:"doc_insights"`

	// AllTodos holds unchecked todos only, capped by config.
	AllTodos []extraction.TodoItem `json:"all_todos"`

	// TopPriorities and CriticalBlockers are deduplicated in order of
	// first appearance and capped by config.
	TopPriorities    []string `json:"top_priorities"`
	CriticalBlockers []string `json:"critical_blockers"`

	RoadmapItems []extraction.RoadmapItem   `json:"roadmap_items"`
	Lessons      []extraction.LessonLearned `json:"lessons_learned"`
}
