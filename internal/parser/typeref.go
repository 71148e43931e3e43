package parser

import (
	"strings"

	"archdoc/internal/diag"
	"archdoc/internal/model"
	"archdoc/internal/token"
)

// parseTypeRef consumes a type reference up to (not including) any of the
// stop kinds at nesting depth zero. It records the normalized source text
// and every path-tail identifier it mentions, so "Vec<Person>" yields names
// ["Vec", "Person"] and "std::fmt::Display" yields ["Display"].
func (p *Parser) parseTypeRef(stops ...token.Kind) (model.TypeRef, bool) {
	isStop := func(k token.Kind) bool {
		for _, s := range stops {
			if s == k {
				return true
			}
		}
		return false
	}

	if p.at(token.EOF) || isStop(p.lx.Peek().Kind) {
		p.err(diag.SynExpectType, "expected type reference")
		return model.TypeRef{}, false
	}

	var (
		b     strings.Builder
		names []string
		prev  token.Token
		depth int
	)

	for !p.at(token.EOF) {
		tok := p.lx.Peek()
		if depth == 0 && isStop(tok.Kind) {
			break
		}

		switch tok.Kind {
		case token.Lt, token.LParen, token.LBracket:
			depth++
		case token.Gt, token.RParen, token.RBracket:
			if depth == 0 {
				// A stray closer belongs to the enclosing construct.
				goto done
			}
			depth--
		}

		if b.Len() > 0 && needsSpace(prev, tok) {
			b.WriteByte(' ')
		}
		b.WriteString(tokenText(tok))
		prev = tok
		p.advance()

		if tok.Kind == token.Ident && !p.at(token.ColonColon) {
			names = append(names, tok.Text)
		}
	}

done:
	if b.Len() == 0 {
		p.err(diag.SynExpectType, "expected type reference")
		return model.TypeRef{}, false
	}
	return model.TypeRef{Text: b.String(), Names: names}, true
}

// tokenText returns the surface form of a token for reassembled type text.
func tokenText(tok token.Token) string {
	if tok.Text != "" {
		return tok.Text
	}
	return tok.Kind.String()
}

// needsSpace decides whether the normalized type text separates two adjacent
// tokens: always after a comma, and between two word-like tokens ("dyn
// Display", "mut T").
func needsSpace(prev, next token.Token) bool {
	if prev.Kind == token.Comma || prev.Kind == token.Colon {
		return true
	}
	return wordy(prev.Kind) && wordy(next.Kind)
}

func wordy(k token.Kind) bool {
	switch k {
	case token.Ident, token.IntLit, token.StringLit, token.Lifetime, token.Underscore:
		return true
	}
	return k >= token.KwStruct && k <= token.KwCrate
}
