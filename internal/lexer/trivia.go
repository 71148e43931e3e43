package lexer

import (
	"archdoc/internal/diag"
	"archdoc/internal/token"
)

// collectLeadingTrivia gathers whitespace and comments preceding the next
// significant token:
//   - runs of ' ' and '\t' coalesce into one TriviaSpace
//   - runs of '\n' coalesce into one TriviaNewline
//   - "//..."  -> TriviaLineComment
//   - "//!..." -> TriviaInnerDocLine
//   - "///..." -> TriviaDocLine
//   - "/* ... */" -> TriviaBlockComment (nesting supported; unterminated
//     comments are reported and truncated at EOF)
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' {
			for {
				b2 := lx.cursor.Peek()
				if b2 != ' ' && b2 != '\t' {
					break
				}
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaSpace, start)
			continue
		}

		if b == '\n' {
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaNewline, start)
			continue
		}

		if b == '/' {
			if lx.scanCommentIntoHold() {
				continue
			}
		}

		break
	}
}

func (lx *Lexer) pushTrivia(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	})
}

// scanCommentIntoHold consumes "//", "///", "//!", or "/* */" comment forms.
// Returns false if the '/' was not actually a comment opener.
func (lx *Lexer) scanCommentIntoHold() bool {
	start := lx.cursor.Mark()
	if !lx.cursor.Eat('/') {
		return false
	}
	b := lx.cursor.Peek()
	switch b {
	case '/': // "//", "///", or "//!"
		lx.cursor.Bump()
		kind := token.TriviaLineComment
		switch lx.cursor.Peek() {
		case '/':
			// "////..." stays a plain comment, rustdoc-style.
			_, b1, ok := lx.cursor.Peek2()
			lx.cursor.Bump()
			if !ok || b1 != '/' {
				kind = token.TriviaDocLine
			}
		case '!':
			kind = token.TriviaInnerDocLine
			lx.cursor.Bump()
		}
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		lx.pushTrivia(kind, start)
		return true

	case '*': // "/* ... */" with nesting
		lx.cursor.Bump()
		depth := 1
		for !lx.cursor.EOF() && depth > 0 {
			if b0, b1, ok := lx.cursor.Peek2(); ok {
				if b0 == '/' && b1 == '*' {
					lx.cursor.Bump()
					lx.cursor.Bump()
					depth++
					continue
				}
				if b0 == '*' && b1 == '/' {
					lx.cursor.Bump()
					lx.cursor.Bump()
					depth--
					continue
				}
			}
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		if depth > 0 {
			lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
		}
		lx.pushTrivia(token.TriviaBlockComment, start)
		return true

	default:
		// Not a comment; rewind and let it scan as an operator.
		lx.cursor.Reset(start)
		return false
	}
}
