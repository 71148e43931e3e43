package diag

import (
	"archdoc/internal/source"
)

// Note is a secondary span with additional context.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is a single finding produced by the lexer, parser, or resolver.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}
