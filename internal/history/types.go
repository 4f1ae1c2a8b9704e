// Package history keeps the suggestion feedback loop: an append-only log of
// past suggestions and their outcomes, aggregated into acceptance rates and
// advisory learnings. Matching an outcome back to its suggestion is a
// best-effort text heuristic, not an exact key lookup, because suggestions
// are free text.
package history

import "time"

// Outcome is the recorded fate of a suggestion.
type Outcome string

const (
	OutcomePending  Outcome = "pending"
	OutcomeAccepted Outcome = "accepted"
	OutcomeRejected Outcome = "rejected"
	OutcomeDeferred Outcome = "deferred"
)

// Entry is one logged suggestion. The ID is assigned at record time and is
// advisory; outcome updates match on suggestion text.
type Entry struct {
	ID           string     `json:"id"`
	Suggestion   string     `json:"suggestion"`
	Category     string     `json:"category"`
	SuggestedAt  time.Time  `json:"suggested_at"`
	Outcome      Outcome    `json:"outcome"`
	OutcomeAt    *time.Time `json:"outcome_at,omitempty"`
	OutcomeNotes string     `json:"outcome_notes,omitempty"`
}

// Rate is the acceptance summary for one category. Pending entries do not
// count toward the total.
type Rate struct {
	Accepted int `json:"accepted"`
	Total    int `json:"total"`
	Percent  int `json:"rate"`
}
