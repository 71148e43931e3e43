package docgen

import "strings"

type asciidocDialect struct{}

func (asciidocDialect) heading(b *strings.Builder, level int, text string) {
	b.WriteString(strings.Repeat("=", level))
	b.WriteByte(' ')
	b.WriteString(text)
}

func (asciidocDialect) inlineDiagram(b *strings.Builder, diagram string) {
	b.WriteString("[plantuml]\n----\n")
	b.WriteString(diagram)
	b.WriteString("\n----")
}

func (asciidocDialect) diagramRef(b *strings.Builder, title, ref string) {
	_ = title
	b.WriteString("plantuml::")
	b.WriteString(ref)
	b.WriteString("[]")
}

// body converts markdown code fences in doc comments into source listings;
// everything else passes through.
func (asciidocDialect) body(b *strings.Builder, lines []string) {
	inFence := false
	first := true
	emit := func(line string) {
		if !first {
			b.WriteByte('\n')
		}
		first = false
		b.WriteString(line)
	}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			if !inFence {
				if lang := strings.TrimPrefix(trimmed, "```"); lang != "" {
					emit("[source," + lang + "]")
				}
				emit("----")
				inFence = true
			} else {
				emit("----")
				inFence = false
			}
			continue
		}
		emit(line)
	}
}
