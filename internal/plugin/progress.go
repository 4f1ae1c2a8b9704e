package plugin

import (
	"regexp"
	"strings"
)

// completionMarker flags a ledger header as done. Its presence takes
// precedence over the in-progress header shape so an ambiguous header is
// never double-counted.
const completionMarker = "✅"

var (
	// headerRe matches version headers like "## V4.35 - Title (date)".
	headerRe = regexp.MustCompile(`^##\s*(V[\d.]+)\s*-\s*([^(\n]+?)\s*(?:\(([^)]*)\))?\s*` + completionMarker + `?\s*$`)

	// blockedSectionRe captures the body of a "=== BLOCKED ===" section,
	// ending at the next separator or end of text.
	blockedSectionRe = regexp.MustCompile(`(?is)={3,}\s*BLOCKED\s*={3,}(.*?)(?:={3,}|$)`)

	// bulletRe matches one bullet line inside a blocked section.
	bulletRe = regexp.MustCompile(`(?m)^\s*[-*]\s+(.+)$`)
)

// ParseProgress converts a plugin's free-text progress ledger into typed
// records. Three passes run independently: completed headers, in-progress
// headers, and blocked-section bullets. Empty content yields an empty
// slice; text matching no shape is simply skipped.
func ParseProgress(content, pluginName string) []ProgressItem {
	if content == "" {
		return nil
	}

	var items []ProgressItem

	for _, line := range strings.Split(content, "\n") {
		m := headerRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		status := StatusInProgress
		if strings.Contains(line, completionMarker) {
			status = StatusCompleted
		}

		items = append(items, ProgressItem{
			Version: m[1],
			Title:   strings.TrimSpace(m[2]),
			Status:  status,
			Date:    strings.TrimSpace(m[3]),
			Plugin:  pluginName,
		})
	}

	if section := blockedSectionRe.FindStringSubmatch(content); section != nil {
		for _, bullet := range bulletRe.FindAllStringSubmatch(section[1], -1) {
			items = append(items, ProgressItem{
				Title:  strings.TrimSpace(bullet[1]),
				Status: StatusBlocked,
				Plugin: pluginName,
			})
		}
	}

	return items
}
