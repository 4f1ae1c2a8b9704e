// Package impact scores work items with a RICE-style heuristic and ranks
// them. Scoring is a pure function of the item's text plus fixed keyword
// tables, so the same item always produces the same score.
package impact

import "time"

// Category classifies a work item.
type Category string

const (
	CategoryFeature  Category = "feature"
	CategoryFix      Category = "fix"
	CategoryInfra    Category = "infra"
	CategoryContent  Category = "content"
	CategoryResearch Category = "research"
	CategoryOps      Category = "ops"
)

// WorkItem is one candidate piece of work, either hand-authored or
// synthesized from project-state signals.
type WorkItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	Plugin      string    `json:"plugin,omitempty"`
	SuggestedBy string    `json:"suggested_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ImpactScore holds the scored dimensions and computed totals for one
// work item. All dimensions are on a 1-10 scale.
type ImpactScore struct {
	WorkItemID string `json:"work_item_id"`

	Reach      int `json:"reach"`
	Impact     int `json:"impact"`
	Confidence int `json:"confidence"`
	Effort     int `json:"effort"`

	RevenueAlignment   int `json:"revenue_alignment"`
	NorthStarAlignment int `json:"north_star_alignment"`
	TechDebtReduction  int `json:"tech_debt_reduction"`

	RICEScore      float64 `json:"rice_score"`
	StrategicScore float64 `json:"strategic_score"`
	TotalScore     float64 `json:"total_score"`

	ScoredAt time.Time `json:"scored_at"`
	ScoredBy string    `json:"scored_by"`
	Notes    string    `json:"notes,omitempty"`
}

// RankedItem pairs a work item with its score after ranking.
type RankedItem struct {
	Item  WorkItem    `json:"item"`
	Score ImpactScore `json:"score"`
}
