package impact

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scoredAt = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func item(id, title, desc string) WorkItem {
	return WorkItem{ID: id, Title: title, Description: desc, Category: CategoryFeature, CreatedAt: scoredAt}
}

func TestScoreBaseline(t *testing.T) {
	// No keyword matches anywhere.
	s := Score(item("w1", "improve the thing", "general work"), scoredAt)

	assert.Equal(t, 5, s.Reach)
	assert.Equal(t, 5, s.Impact)
	assert.Equal(t, 5, s.Confidence)
	assert.Equal(t, 5, s.Effort)
	assert.Equal(t, 3, s.RevenueAlignment)
	assert.Equal(t, 5, s.NorthStarAlignment)
	assert.Equal(t, 3, s.TechDebtReduction)

	// rice 5*5*5/5 = 25, strategic 3.8, total 9.5
	assert.Equal(t, 25.0, s.RICEScore)
	assert.Equal(t, 3.8, s.StrategicScore)
	assert.Equal(t, 9.5, s.TotalScore)
	assert.Equal(t, "auto", s.ScoredBy)
	assert.Equal(t, "w1", s.WorkItemID)
}

func TestScoreUrgentBlocker(t *testing.T) {
	s := Score(item("w1", "urgent blocker: fix production", ""), scoredAt)

	assert.GreaterOrEqual(t, s.Impact, 7)
	assert.GreaterOrEqual(t, s.Confidence, 6)
	assert.Equal(t, 8, s.Impact)
	assert.Equal(t, 6, s.Confidence)
	assert.Equal(t, 6, s.Reach)
}

func TestScoreLowPriorityCleanup(t *testing.T) {
	s := Score(item("w1", "nice to have minor cleanup refactor", ""), scoredAt)

	assert.LessOrEqual(t, s.Impact, 4)
	assert.Equal(t, 1, s.Impact)
	assert.Equal(t, 2, s.Confidence)
	assert.Equal(t, 3, s.Effort)
	assert.Equal(t, 6, s.TechDebtReduction)
}

func TestScoreMarketResearchAlignment(t *testing.T) {
	s := Score(item("w1", "24/7 market research pipeline", ""), scoredAt)

	// Two high-impact matches plus the once-per-group strategic nudge.
	assert.Equal(t, 9, s.Impact)
	assert.Equal(t, 6, s.RevenueAlignment)
	assert.Equal(t, 8, s.NorthStarAlignment)
}

func TestScoreDimensionsInRange(t *testing.T) {
	items := []WorkItem{
		item("a", "urgent critical blocked revenue money profit alpha signal live user customer", "24/7 market research trading"),
		item("b", "nice to have later maybe consider cleanup refactor style docs", ""),
		item("c", "", ""),
		item("d", "large major rewrite of a new plugin and new service", ""),
	}
	for _, it := range items {
		s := Score(it, scoredAt)
		for _, dim := range []int{s.Reach, s.Impact, s.Confidence, s.Effort,
			s.RevenueAlignment, s.NorthStarAlignment, s.TechDebtReduction} {
			assert.GreaterOrEqual(t, dim, 1)
			assert.LessOrEqual(t, dim, 10)
		}
		assert.GreaterOrEqual(t, s.TotalScore, 0.0)
	}
}

func TestScoreEffortNudges(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  int
	}{
		{"quick fix", "quick fix", 3},
		{"major rewrite", "major rewrite", 8},
		{"new service", "add a new service", 7},
		{"compound", "large rewrite of a new plugin", 10},
		{"plain", "do the work", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Score(item("w", tt.title, ""), scoredAt)
			assert.Equal(t, tt.want, s.Effort)
		})
	}
}

func TestScoreDeterministic(t *testing.T) {
	it := item("w1", "urgent signal work", "for users")
	assert.Equal(t, Score(it, scoredAt), Score(it, scoredAt))
}

func TestRankStableDescending(t *testing.T) {
	// Identical text scores identically; ties keep input order.
	items := []WorkItem{
		item("low", "routine maintenance", ""),
		item("tie-1", "urgent blocker: fix production", ""),
		item("tie-2", "urgent blocker: fix production", ""),
		item("mid", "dashboard polish", ""),
	}
	ranked := Rank(items, scoredAt)
	require.Len(t, ranked, 4)

	assert.Equal(t, "tie-1", ranked[0].Item.ID)
	assert.Equal(t, "tie-2", ranked[1].Item.ID)
	assert.Equal(t, ranked[0].Score.TotalScore, ranked[1].Score.TotalScore)
	for i := 1; i < len(ranked); i++ {
		assert.LessOrEqual(t, ranked[i].Score.TotalScore, ranked[i-1].Score.TotalScore)
	}
}

func TestFormatScore(t *testing.T) {
	s := Score(item("w1", "urgent blocker: fix production", ""), scoredAt)
	text := FormatScore(s)

	assert.Contains(t, text, "Score: 21.9")
	assert.Contains(t, text, "RICE: 57.6")
	assert.Contains(t, text, "Impact: 8/10")
	assert.Contains(t, text, "Tech Debt: 3/10")
}
