package docgen

import (
	"strings"

	"archdoc/internal/model"
)

// Assemble builds the architecture document for a model and its rendered
// diagram. Every item gets a section in model order: heading, embed
// directive, general description, then one subsection per field and per
// method. Member subsections are always emitted, even with an empty body,
// so document structure mirrors the diagram. In reference mode the diagram
// buffer is returned alongside the document instead of being embedded.
func Assemble(m *model.StructuralModel, diagram string, opts Options) Output {
	var d dialect = markdownDialect{}
	if opts.Format == FormatAsciiDoc {
		d = asciidocDialect{}
	}

	w := blockWriter{d: d}

	if m.Empty() {
		// A content-empty document still carries the diagram directive.
		w.embed(opts, "", diagram)
	}

	for _, it := range m.Items() {
		w.headingBlock(2, it.DisplayName())
		w.embed(opts, it.DisplayName(), diagram)
		w.sections(Classify(it.Doc), 3)

		for _, f := range it.Fields {
			w.headingBlock(3, f.Name)
			w.sections(Classify(f.Doc), 4)
		}
		for _, mt := range it.Methods {
			w.headingBlock(3, mt.Signature())
			w.sections(Classify(mt.Doc), 4)
		}
	}

	out := Output{Document: w.String()}
	if opts.Embed == EmbedReference {
		out.Diagram = diagram
	}
	return out
}

// blockWriter accumulates blank-line separated blocks and normalizes the
// trailing newline.
type blockWriter struct {
	d dialect
	b strings.Builder
}

func (w *blockWriter) sep() {
	if w.b.Len() > 0 {
		w.b.WriteString("\n\n")
	}
}

func (w *blockWriter) headingBlock(level int, text string) {
	w.sep()
	w.d.heading(&w.b, level, text)
}

func (w *blockWriter) embed(opts Options, title, diagram string) {
	w.sep()
	if opts.Embed == EmbedReference {
		w.d.diagramRef(&w.b, title, opts.diagramRef())
		return
	}
	w.d.inlineDiagram(&w.b, diagram)
}

// sections writes a classified doc comment: the description block first,
// then one heading per tagged section at the given level.
func (w *blockWriter) sections(s Sections, tagLevel int) {
	if len(s.Description) > 0 {
		w.sep()
		w.d.body(&w.b, s.Description)
	}
	for _, tag := range s.Tags {
		w.headingBlock(tagLevel, tag.Name)
		if len(tag.Body) > 0 {
			w.sep()
			w.d.body(&w.b, tag.Body)
		}
	}
}

func (w *blockWriter) String() string {
	if w.b.Len() == 0 {
		return ""
	}
	return w.b.String() + "\n"
}
