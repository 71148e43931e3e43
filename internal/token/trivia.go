package token

import "archdoc/internal/source"

// TriviaKind classifies whitespace and comments between significant tokens.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
	// TriviaDocLine is a '///' documentation line; the extractor attaches
	// contiguous runs of these to the following declaration.
	TriviaDocLine
	// TriviaInnerDocLine is a '//!' module documentation line.
	TriviaInnerDocLine
)

// Trivia is a non-significant source fragment carried on the next token.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}

// IsDoc reports whether the trivia is an outer doc line.
func (tr Trivia) IsDoc() bool { return tr.Kind == TriviaDocLine }
