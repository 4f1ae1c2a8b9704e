package extraction

import "regexp"

// highPriorityWords and lowPriorityWords drive todo priority inference.
// Matching is case-insensitive substring; neither set matching means medium.
var highPriorityWords = []string{
	"urgent",
	"critical",
	"blocker",
	"asap",
	"top priority",
}

var lowPriorityWords = []string{
	"nice to have",
	"later",
	"maybe",
	"low priority",
}

// prioritySectionWords mark headings whose list lines count as priorities.
var prioritySectionWords = []string{
	"priorities",
	"priority",
	"top priority",
	"what's next",
	"whats next",
	"next steps",
	"roadmap",
	"todo",
}

var (
	// todoRe matches markdown checkbox lines, capturing checked state and text.
	todoRe = regexp.MustCompile(`(?m)^\s*[-*]\s*\[( |x|X)\]\s*(.+)$`)

	// headingRe matches any markdown heading line.
	headingRe = regexp.MustCompile(`^#{1,6}\s`)

	// listLineRe matches bullet or numbered list lines, capturing the text.
	listLineRe = regexp.MustCompile(`^\s*(?:[-*]|\d+[.)])\s+(.+)$`)

	// blockerRes match "something is blocking this" phrasings anywhere in a line.
	blockerRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)blocked\s+(?:by|on)[:\s]+(.+)`),
		regexp.MustCompile(`(?i)blocker[:\s]+(.+)`),
		regexp.MustCompile(`(?i)waiting\s+(?:on|for)[:\s]+(.+)`),
		regexp.MustCompile(`(?i)depends\s+on[:\s]+(.+)`),
	}

	// lessonRe matches the "**Pattern:** Action" line shape of the lessons file.
	lessonRe = regexp.MustCompile(`(?m)^\s*[-*]?\s*\*\*(.+?)[:：]?\*\*[:\s]+(.+)$`)
)
