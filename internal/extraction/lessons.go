package extraction

import (
	"os"
	"strings"
)

// ParseLessons reads the lessons file shape: bullet lines of the form
// "**Pattern:** recommended action". Lines that do not match are ignored.
func ParseLessons(source, content string) []LessonLearned {
	var lessons []LessonLearned
	for _, m := range lessonRe.FindAllStringSubmatch(content, -1) {
		pattern := strings.TrimSpace(strings.TrimSuffix(m[1], ":"))
		action := strings.TrimSpace(m[2])
		if pattern == "" || action == "" {
			continue
		}
		lessons = append(lessons, LessonLearned{
			Pattern: pattern,
			Action:  action,
			Source:  source,
		})
	}
	return lessons
}

// LessonsFromFile parses the lessons file at path. A missing file yields
// no lessons.
func LessonsFromFile(path, source string) ([]LessonLearned, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return ParseLessons(source, string(data)), nil
}

// ParseNumberedList returns the text of every numbered or bulleted line,
// for documents that are a plain ranked list of improvements.
func ParseNumberedList(content string) []string {
	var items []string
	for _, line := range strings.Split(content, "\n") {
		m := listLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		text := strings.TrimSpace(m[1])
		if text == "" {
			continue
		}
		items = append(items, text)
	}
	return items
}
