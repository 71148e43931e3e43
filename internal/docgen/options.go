// Package docgen assembles the architecture document for a structural model.
// Assembly is pure: it consumes the model and the already-rendered diagram
// text and returns in-memory buffers, never touching the filesystem.
package docgen

import "fmt"

// Format selects the output markup dialect.
type Format uint8

const (
	FormatMarkdown Format = iota
	FormatAsciiDoc
)

func (f Format) String() string {
	switch f {
	case FormatAsciiDoc:
		return "asciidoc"
	default:
		return "markdown"
	}
}

// ParseFormat maps a user-facing name to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "markdown", "md":
		return FormatMarkdown, nil
	case "asciidoc", "adoc":
		return FormatAsciiDoc, nil
	}
	return FormatMarkdown, fmt.Errorf("unknown document format %q (want markdown or asciidoc)", s)
}

// EmbedMode selects how the diagram enters the document.
type EmbedMode uint8

const (
	// EmbedInline places the diagram markup directly in the document.
	EmbedInline EmbedMode = iota
	// EmbedReference points at a separately emitted diagram buffer.
	EmbedReference
)

func (m EmbedMode) String() string {
	switch m {
	case EmbedReference:
		return "reference"
	default:
		return "inline"
	}
}

// ParseEmbedMode maps a user-facing name to an EmbedMode.
func ParseEmbedMode(s string) (EmbedMode, error) {
	switch s {
	case "inline":
		return EmbedInline, nil
	case "reference", "ref":
		return EmbedReference, nil
	}
	return EmbedInline, fmt.Errorf("unknown embed mode %q (want inline or reference)", s)
}

// Options configures one assembly run.
type Options struct {
	Format Format
	Embed  EmbedMode
	// DiagramRef is the name the document uses to point at the diagram
	// buffer in reference mode. Empty defaults to "diagram.puml".
	DiagramRef string
}

func (o Options) diagramRef() string {
	if o.DiagramRef == "" {
		return "diagram.puml"
	}
	return o.DiagramRef
}

// Output is the result of assembly. Diagram is empty in inline mode; in
// reference mode it carries the diagram buffer the document points at.
type Output struct {
	Document string
	Diagram  string
}
