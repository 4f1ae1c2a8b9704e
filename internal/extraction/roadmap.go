package extraction

import "strings"

// ExtractRoadmap returns list entries found under roadmap-labelled headings.
// A "Title - description" or "Title: description" line splits into both
// fields; anything else becomes a bare title.
func ExtractRoadmap(source, content string) []RoadmapItem {
	var items []RoadmapItem
	inSection := false
	for _, line := range strings.Split(content, "\n") {
		if headingRe.MatchString(line) {
			inSection = strings.Contains(strings.ToLower(line), "roadmap")
			continue
		}
		if !inSection {
			continue
		}
		m := listLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		text := strings.TrimSpace(m[1])
		if text == "" {
			continue
		}
		item := RoadmapItem{Title: text, Source: source}
		for _, sep := range []string{" - ", ": "} {
			if title, desc, ok := strings.Cut(text, sep); ok {
				item.Title = strings.TrimSpace(title)
				item.Description = strings.TrimSpace(desc)
				break
			}
		}
		if strings.Contains(text, "✅") {
			item.Status = "completed"
		}
		items = append(items, item)
	}
	return items
}
