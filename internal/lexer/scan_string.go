package lexer

import (
	"archdoc/internal/diag"
	"archdoc/internal/token"
)

// scanString scans a double-quoted string literal with backslash escapes.
// String contents only show up inside attributes, so escapes are consumed
// but not decoded.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'

	terminated := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Bump()
		if b == '\\' {
			lx.cursor.Bump() // escaped byte, whatever it is
			continue
		}
		if b == '"' {
			terminated = true
			break
		}
	}

	sp := lx.cursor.SpanFrom(start)
	if !terminated {
		lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	}
	return token.Token{
		Kind: token.StringLit,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

// scanLifetime scans 'a style lifetime markers. A bare quote that is not
// followed by an identifier is reported as an unknown character.
func (lx *Lexer) scanLifetime() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '\''

	if !isIdentStartByte(lx.cursor.Peek()) {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnknownChar, sp, "expected lifetime name after '''")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.Lifetime,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}
