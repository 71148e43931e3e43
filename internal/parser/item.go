package parser

import (
	"fmt"

	"archdoc/internal/diag"
	"archdoc/internal/model"
	"archdoc/internal/token"
)

// parseItem dispatches one top-level declaration. The doc comment is taken
// from the very first token of the item, before any attributes, so a block
// like "/// doc \n #[derive(Debug)] \n struct S" still documents S.
func (p *Parser) parseItem() bool {
	first := p.lx.Peek()
	doc := docFromLeading(first.Leading)

	p.skipAttributes()
	vis := p.parseVisibility()

	switch p.lx.Peek().Kind {
	case token.KwStruct:
		return p.parseStruct(doc, vis)
	case token.KwEnum:
		return p.parseEnum(doc, vis)
	case token.KwTrait:
		return p.parseTrait(doc, vis)
	case token.KwImpl:
		return p.parseImpl()
	default:
		tok := p.lx.Peek()
		p.warnAt(diag.ExtUnsupportedConstruct, tok.Span,
			fmt.Sprintf("unsupported top-level construct %q skipped", tok.Text))
		p.skipConstruct()
		return true
	}
}

// skipAttributes consumes any number of '#[...]' attribute groups.
func (p *Parser) skipAttributes() {
	for p.at(token.Pound) {
		p.advance()
		if p.at(token.Bang) { // inner attribute '#![...]'
			p.advance()
		}
		p.skipBalanced(token.LBracket, token.RBracket)
	}
}

// parseVisibility consumes 'pub' with an optional restriction like
// 'pub(crate)'. Everything else is private.
func (p *Parser) parseVisibility() model.Visibility {
	if !p.at(token.KwPub) {
		return model.VisPrivate
	}
	p.advance()
	if p.at(token.LParen) {
		p.skipBalanced(token.LParen, token.RParen)
	}
	return model.VisPublic
}

// skipConstruct consumes an unrecognized declaration: everything up to a
// ';' at depth zero or through one balanced brace block.
func (p *Parser) skipConstruct() {
	for !p.at(token.EOF) {
		switch p.lx.Peek().Kind {
		case token.Semicolon:
			p.advance()
			return
		case token.LBrace:
			p.skipBalanced(token.LBrace, token.RBrace)
			return
		default:
			p.advance()
		}
	}
}

// parseGenericParams consumes an optional '<...>' parameter list and
// returns the declared type parameter names. Lifetimes and const params are
// consumed but not recorded; bounds after ':' are skipped.
func (p *Parser) parseGenericParams() []string {
	if !p.at(token.Lt) {
		return nil
	}
	p.advance()
	var names []string
	depth := 1
	expectParam := true
	for depth > 0 && !p.at(token.EOF) {
		tok := p.lx.Peek()
		switch tok.Kind {
		case token.Lt:
			depth++
			p.advance()
		case token.Gt:
			depth--
			p.advance()
		case token.Comma:
			if depth == 1 {
				expectParam = true
			}
			p.advance()
		case token.Colon:
			expectParam = false
			p.advance()
		case token.Ident:
			if depth == 1 && expectParam {
				names = append(names, tok.Text)
				expectParam = false
			}
			p.advance()
		default:
			p.advance()
		}
	}
	return names
}

// skipWhereClause consumes a 'where' clause up to (not including) the
// following '{' or ';'.
func (p *Parser) skipWhereClause() {
	if !p.at(token.KwWhere) {
		return
	}
	p.advance()
	depth := 0
	for !p.at(token.EOF) {
		switch p.lx.Peek().Kind {
		case token.Lt:
			depth++
		case token.Gt:
			if depth > 0 {
				depth--
			}
		case token.LBrace, token.Semicolon:
			if depth == 0 {
				return
			}
		}
		p.advance()
	}
}
