package docgen

import "strings"

// dialect abstracts the two output markups. Writers emit complete blocks;
// the assembler separates blocks with blank lines.
type dialect interface {
	heading(b *strings.Builder, level int, text string)
	inlineDiagram(b *strings.Builder, diagram string)
	diagramRef(b *strings.Builder, title, ref string)
	body(b *strings.Builder, lines []string)
}

type markdownDialect struct{}

func (markdownDialect) heading(b *strings.Builder, level int, text string) {
	b.WriteString(strings.Repeat("#", level))
	b.WriteByte(' ')
	b.WriteString(text)
}

func (markdownDialect) inlineDiagram(b *strings.Builder, diagram string) {
	b.WriteString("```plantuml\n")
	b.WriteString(diagram)
	b.WriteString("\n```")
}

func (markdownDialect) diagramRef(b *strings.Builder, title, ref string) {
	b.WriteString("![")
	if title != "" {
		b.WriteString(title)
		b.WriteByte(' ')
	}
	b.WriteString("diagram](")
	b.WriteString(ref)
	b.WriteByte(')')
}

// body writes doc lines verbatim; markdown in doc comments is already
// markdown.
func (markdownDialect) body(b *strings.Builder, lines []string) {
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
	}
}
