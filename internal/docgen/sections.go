package docgen

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"archdoc/internal/model"
)

// TagSection is one named tagged section of a doc comment.
type TagSection struct {
	Name string
	Body []string
}

// Sections is a doc comment split into the general description and its
// tagged sections, in first-appearance order.
type Sections struct {
	Description []string
	Tags        []TagSection
}

func (s Sections) Empty() bool {
	return len(s.Description) == 0 && len(s.Tags) == 0
}

// Recognized tag names, lowercased. Anything else on a '# ...' line is
// ordinary body text.
var recognizedTags = map[string]bool{
	"arguments": true,
	"example":   true,
	"examples":  true,
	"returns":   true,
	"errors":    true,
	"panics":    true,
	"safety":    true,
}

var tagCaser = cases.Title(language.English)

// Classify runs the line classifier over a doc comment. It starts in the
// description state and switches to a tag's body state on each recognized
// tag line; the tag line itself is consumed by the transition. A repeated
// tag continues its earlier section rather than opening a second one.
func Classify(doc model.DocComment) Sections {
	var s Sections
	byName := make(map[string]int)
	cur := &s.Description

	for _, line := range doc.Lines {
		if name, ok := tagLine(line); ok {
			idx, seen := byName[name]
			if !seen {
				idx = len(s.Tags)
				byName[name] = idx
				s.Tags = append(s.Tags, TagSection{Name: name})
			}
			cur = &s.Tags[idx].Body
			continue
		}
		*cur = append(*cur, line)
	}

	s.Description = trimBlank(s.Description)
	for i := range s.Tags {
		s.Tags[i].Body = trimBlank(s.Tags[i].Body)
	}
	return s
}

// tagLine reports whether a line is a recognized tag heading like
// "# Arguments" and returns the canonical title-cased name.
func tagLine(line string) (string, bool) {
	t := strings.TrimSpace(line)
	if !strings.HasPrefix(t, "#") {
		return "", false
	}
	name := strings.TrimSpace(t[1:])
	if name == "" || strings.HasPrefix(name, "#") {
		return "", false
	}
	lower := strings.ToLower(name)
	if !recognizedTags[lower] {
		return "", false
	}
	return tagCaser.String(lower), true
}

// trimBlank drops leading and trailing blank lines, keeping interior ones.
func trimBlank(lines []string) []string {
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	end := len(lines)
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	if start == end {
		return nil
	}
	return lines[start:end]
}
