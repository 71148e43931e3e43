package parser

import (
	"fmt"

	"archdoc/internal/diag"
	"archdoc/internal/model"
	"archdoc/internal/token"
)

// parseTrait parses a capability declaration. Required and default methods
// both contribute signatures; associated types and constants are consumed
// without entering the model.
func (p *Parser) parseTrait(doc model.DocComment, vis model.Visibility) bool {
	p.advance() // trait

	name, ok := p.expectIdent("expected capability name after 'trait'")
	if !ok {
		return false
	}
	generics := p.parseGenericParams()
	if p.at(token.Colon) { // supertrait bounds
		p.advance()
		for !p.at(token.LBrace) && !p.at(token.KwWhere) && !p.at(token.EOF) {
			p.advance()
		}
	}
	p.skipWhereClause()

	item := &model.SourceItem{
		Name:       name.Text,
		Kind:       model.KindCapability,
		Visibility: vis,
		Generics:   generics,
		Doc:        doc,
		Span:       name.Span,
	}

	if _, ok := p.expect(token.LBrace, diag.SynExpectBody, fmt.Sprintf("expected '{' after trait %q", name.Text)); !ok {
		return false
	}

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		first := p.lx.Peek()
		memberDoc := docFromLeading(first.Leading)
		p.skipAttributes()
		p.parseVisibility()

		switch p.lx.Peek().Kind {
		case token.KwFn:
			m, ok := p.parseFnSig(memberDoc, model.VisPublic)
			if !ok {
				return false
			}
			item.Methods = append(item.Methods, m)
		case token.KwType, token.KwConst:
			p.skipConstruct()
		default:
			tok := p.lx.Peek()
			p.warnAt(diag.ExtUnsupportedConstruct, tok.Span,
				fmt.Sprintf("unsupported trait member %q skipped", tok.Text))
			p.skipConstruct()
		}
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' closing the trait body"); !ok {
		return false
	}

	p.items = append(p.items, item)
	return true
}
