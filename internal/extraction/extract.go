package extraction

import (
	"os"
	"strings"
)

const (
	maxDocPriorities = 5
	maxPriorityLen   = 200
	maxBlockerLen    = 100
	maxSummaryLen    = 200
	summaryLineCount = 3
)

// Extract runs every signal pass over one document and returns its insight.
// The source name is recorded on every extracted record so aggregate views
// stay attributable after merging.
func Extract(source, content string) *DocInsight {
	return &DocInsight{
		Source:     source,
		Summary:    extractSummary(content),
		Todos:      ExtractTodos(source, content),
		Priorities: extractPriorities(content),
		Blockers:   extractBlockers(content),
	}
}

// FromFile reads and extracts a single document. A missing file is not an
// error; it yields no insight.
func FromFile(path, source string) (*DocInsight, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return Extract(source, string(data)), nil
}

// ExtractTodos returns every checkbox-list line with its checked state and
// inferred priority.
func ExtractTodos(source, content string) []TodoItem {
	var todos []TodoItem
	for _, m := range todoRe.FindAllStringSubmatch(content, -1) {
		text := strings.TrimSpace(m[2])
		if text == "" {
			continue
		}
		todos = append(todos, TodoItem{
			Text:     text,
			Source:   source,
			Priority: InferPriority(text),
			Checked:  m[1] != " ",
		})
	}
	return todos
}

// InferPriority classifies todo text by keyword substring. High-priority
// words win over low-priority words; no match defaults to medium.
func InferPriority(text string) Priority {
	lower := strings.ToLower(text)
	for _, w := range highPriorityWords {
		if strings.Contains(lower, w) {
			return PriorityHigh
		}
	}
	for _, w := range lowPriorityWords {
		if strings.Contains(lower, w) {
			return PriorityLow
		}
	}
	return PriorityMedium
}

// extractPriorities collects list lines under priority-vocabulary headings,
// at most maxDocPriorities per document.
func extractPriorities(content string) []string {
	var priorities []string
	inSection := false
	for _, line := range strings.Split(content, "\n") {
		if headingRe.MatchString(line) {
			inSection = isPriorityHeading(line)
			continue
		}
		if !inSection || len(priorities) >= maxDocPriorities {
			continue
		}
		m := listLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		text := strings.TrimSpace(m[1])
		if text == "" || len(text) > maxPriorityLen {
			continue
		}
		priorities = append(priorities, text)
	}
	return priorities
}

func isPriorityHeading(line string) bool {
	lower := strings.ToLower(line)
	for _, w := range prioritySectionWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// extractBlockers collects lines matching any blocked-by phrasing, each
// truncated to maxBlockerLen characters.
func extractBlockers(content string) []string {
	var blockers []string
	for _, line := range strings.Split(content, "\n") {
		for _, re := range blockerRes {
			m := re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			text := strings.TrimSpace(m[1])
			if text == "" {
				break
			}
			blockers = append(blockers, truncate(text, maxBlockerLen))
			break
		}
	}
	return blockers
}

// extractSummary concatenates the first few plain prose lines. Headings,
// list lines, table rows, and code fences never contribute.
func extractSummary(content string) string {
	var parts []string
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || headingRe.MatchString(trimmed) {
			continue
		}
		if listLineRe.MatchString(trimmed) || strings.HasPrefix(trimmed, "|") ||
			strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, ">") {
			continue
		}
		parts = append(parts, trimmed)
		if len(parts) >= summaryLineCount {
			break
		}
	}
	return truncate(strings.Join(parts, " "), maxSummaryLen)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
