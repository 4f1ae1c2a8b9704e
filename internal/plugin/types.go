// Package plugin evaluates plugin directories: maintenance health from
// file counts and recency, and typed progress records parsed from each
// plugin's free-text progress ledger.
package plugin

import "time"

// Status describes one plugin's shape at scan time. Statuses are created
// per scan, never mutated, and superseded wholesale on the next scan.
type Status struct {
	Name         string    `json:"name"`
	Path         string    `json:"path"`
	ActionCount  int       `json:"action_count"`
	ServiceCount int       `json:"service_count"`
	HasTests     bool      `json:"has_tests"`
	LastModified time.Time `json:"last_modified"`

	// HealthScore is a bounded [50,100] proxy for maintenance
	// completeness (has actions/services/tests), not a correctness
	// measure. Derived on every scan, never persisted independently.
	HealthScore int `json:"health_score"`
}

// ProgressStatus is the lifecycle state of one ledger item.
type ProgressStatus string

const (
	StatusCompleted  ProgressStatus = "completed"
	StatusInProgress ProgressStatus = "in-progress"
	StatusBlocked    ProgressStatus = "blocked"

	// StatusPlanned is carried for forward compatibility; no current
	// ledger shape yields it.
	StatusPlanned ProgressStatus = "planned"
)

// ProgressItem is one typed record from a plugin's progress ledger.
type ProgressItem struct {
	Version string         `json:"version"`
	Title   string         `json:"title"`
	Status  ProgressStatus `json:"status"`
	Date    string         `json:"date,omitempty"`
	Plugin  string         `json:"plugin,omitempty"`
}
