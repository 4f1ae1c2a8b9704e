// Package extraction converts markdown prose into typed signal records:
// todos, priority lines, blockers, summaries, roadmap items, and lessons.
//
// Each signal type is one independent pass over the same text; passes are
// additive and never mutually exclusive. A document with none of the
// expected shapes degrades to empty fields, never an error. New signal
// types are added as new passes.
package extraction

// Priority is the inferred urgency of a todo.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// TodoItem is one checkbox-list line.
type TodoItem struct {
	Text     string   `json:"text"`
	Source   string   `json:"source"`
	Priority Priority `json:"priority"`
	Checked  bool     `json:"checked"`
}

// RoadmapItem is one entry from a roadmap-vocabulary section.
type RoadmapItem struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Source      string `json:"source"`
	Status      string `json:"status,omitempty"`
}

// LessonLearned pairs an observed pattern with the recommended action.
type LessonLearned struct {
	Pattern string `json:"pattern"`
	Action  string `json:"action"`
	Source  string `json:"source"`
}

// DocInsight is everything extracted from one document. Insights are never
// merged across documents.
type DocInsight struct {
	Source     string     `json:"source"`
	Summary    string     `json:"summary,omitempty"`
	Todos      []TodoItem `json:"todos,omitempty"`
	Priorities []string   `json:"priorities,omitempty"`
	Blockers   []string   `json:"blockers,omitempty"`
}
