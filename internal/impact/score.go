package impact

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// deltas is one adjustment applied to the scoring dimensions.
type deltas struct {
	reach      float64
	impact     float64
	confidence float64
	effort     float64
	revenue    float64
	northStar  float64
	techDebt   float64
}

// scoreRule applies its deltas when the item text contains any of its
// keywords. With perMatch set, the deltas apply once per matching keyword
// instead of once per rule.
type scoreRule struct {
	keywords []string
	perMatch bool
	delta    deltas
}

var highImpactKeywords = []string{
	"revenue", "money", "profit",
	"alpha", "edge", "signal",
	"24/7", "market research",
	"paper trading", "live",
	"user", "customer", "adoption",
	"blocked", "critical", "urgent",
}

var lowPriorityKeywords = []string{
	"nice to have", "later", "maybe", "consider",
	"cleanup", "refactor", "style", "docs",
}

// scoreRules is the whole heuristic: a keyword-boost pass, a keyword-penalty
// pass, once-per-group strategic nudges, and effort estimates from scope
// words. Order matters only for readability; the passes are additive.
var scoreRules = []scoreRule{
	{keywords: highImpactKeywords, perMatch: true, delta: deltas{impact: 1, reach: 0.5}},
	{keywords: lowPriorityKeywords, perMatch: true, delta: deltas{impact: -1, confidence: -1}},

	{keywords: []string{"24/7", "market research"}, delta: deltas{revenue: 3, northStar: 3, impact: 2}},
	{keywords: []string{"trading", "signal", "alpha"}, delta: deltas{revenue: 2, impact: 1}},
	{keywords: []string{"user", "ux", "dashboard"}, delta: deltas{reach: 2}},
	{keywords: []string{"tech debt", "refactor", "cleanup"}, delta: deltas{techDebt: 3, impact: -1}},
	{keywords: []string{"blocked", "critical", "urgent"}, delta: deltas{impact: 2, confidence: 1}},

	{keywords: []string{"small", "quick", "minor"}, delta: deltas{effort: -2}},
	{keywords: []string{"large", "major", "rewrite"}, delta: deltas{effort: 3}},
	{keywords: []string{"new plugin", "new service"}, delta: deltas{effort: 2}},
}

// Score evaluates one work item against the rule tables.
func Score(item WorkItem, now time.Time) ImpactScore {
	text := strings.ToLower(item.Title + " " + item.Description)

	d := deltas{reach: 5, impact: 5, confidence: 5, effort: 5, revenue: 3, northStar: 5, techDebt: 3}
	for _, rule := range scoreRules {
		for _, kw := range rule.keywords {
			if !strings.Contains(text, kw) {
				continue
			}
			d.add(rule.delta)
			if !rule.perMatch {
				break
			}
		}
	}

	score := ImpactScore{
		WorkItemID:         item.ID,
		Reach:              clampDim(d.reach),
		Impact:             clampDim(d.impact),
		Confidence:         clampDim(d.confidence),
		Effort:             clampDim(d.effort),
		RevenueAlignment:   clampDim(d.revenue),
		NorthStarAlignment: clampDim(d.northStar),
		TechDebtReduction:  clampDim(d.techDebt),
		ScoredAt:           now,
		ScoredBy:           "auto",
	}

	rice := float64(score.Reach*score.Impact*score.Confidence) / float64(score.Effort)
	strategic := float64(score.RevenueAlignment)*0.4 +
		float64(score.NorthStarAlignment)*0.4 +
		float64(score.TechDebtReduction)*0.2
	score.RICEScore = round1(rice)
	score.StrategicScore = round1(strategic)
	score.TotalScore = round1(rice * (strategic / 10))
	return score
}

// Rank scores every item and sorts descending by total score. The sort is
// stable, so equal scores keep their input order.
func Rank(items []WorkItem, now time.Time) []RankedItem {
	ranked := make([]RankedItem, len(items))
	for i, item := range items {
		ranked[i] = RankedItem{Item: item, Score: Score(item, now)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score.TotalScore > ranked[j].Score.TotalScore
	})
	return ranked
}

// FormatScore renders one score as display text.
func FormatScore(score ImpactScore) string {
	var marker string
	switch {
	case score.TotalScore >= 50:
		marker = "🔥"
	case score.TotalScore >= 30:
		marker = "🟢"
	case score.TotalScore >= 15:
		marker = "🟡"
	default:
		marker = "⚪"
	}
	return fmt.Sprintf(
		"%s **Score: %v** (RICE: %v, Strategic: %v)\n"+
			"• Reach: %d/10, Impact: %d/10, Confidence: %d/10, Effort: %d/10\n"+
			"• Revenue: %d/10, North Star: %d/10, Tech Debt: %d/10",
		marker, score.TotalScore, score.RICEScore, score.StrategicScore,
		score.Reach, score.Impact, score.Confidence, score.Effort,
		score.RevenueAlignment, score.NorthStarAlignment, score.TechDebtReduction,
	)
}

func (d *deltas) add(o deltas) {
	d.reach += o.reach
	d.impact += o.impact
	d.confidence += o.confidence
	d.effort += o.effort
	d.revenue += o.revenue
	d.northStar += o.northStar
	d.techDebt += o.techDebt
}

func clampDim(v float64) int {
	r := int(math.Round(v))
	if r < 1 {
		return 1
	}
	if r > 10 {
		return 10
	}
	return r
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
