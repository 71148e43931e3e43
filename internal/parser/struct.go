package parser

import (
	"fmt"

	"archdoc/internal/diag"
	"archdoc/internal/model"
	"archdoc/internal/token"
)

// parseStruct parses a record declaration. Named-field bodies become fields;
// a trailing ';' declares a unit record with no members. Tuple bodies are
// not representable in the model and are skipped with a warning.
func (p *Parser) parseStruct(doc model.DocComment, vis model.Visibility) bool {
	kw := p.advance() // struct

	name, ok := p.expectIdent("expected record name after 'struct'")
	if !ok {
		return false
	}
	generics := p.parseGenericParams()
	p.skipWhereClause()

	item := &model.SourceItem{
		Name:       name.Text,
		Kind:       model.KindRecord,
		Visibility: vis,
		Generics:   generics,
		Doc:        doc,
		Span:       name.Span,
	}

	switch p.lx.Peek().Kind {
	case token.Semicolon:
		p.advance()
	case token.LParen:
		p.warnAt(diag.ExtUnsupportedConstruct, kw.Span,
			fmt.Sprintf("tuple record %q skipped", name.Text))
		p.skipBalanced(token.LParen, token.RParen)
		p.skipWhereClause()
		if p.at(token.Semicolon) {
			p.advance()
		}
		return true
	case token.LBrace:
		p.advance()
		if !p.parseFieldList(item) {
			return false
		}
	default:
		p.err(diag.SynExpectBody, fmt.Sprintf("expected '{' or ';' after record %q", name.Text))
		return false
	}

	p.items = append(p.items, item)
	return true
}

// parseFieldList parses "name: Type" members up to the closing '}'.
// Consumes the closing brace.
func (p *Parser) parseFieldList(item *model.SourceItem) bool {
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		first := p.lx.Peek()
		fieldDoc := docFromLeading(first.Leading)
		p.skipAttributes()
		fieldVis := p.parseVisibility()

		name, ok := p.expectIdent("expected field name")
		if !ok {
			return false
		}
		if _, ok := p.expect(token.Colon, diag.SynExpectColon, fmt.Sprintf("expected ':' after field %q", name.Text)); !ok {
			return false
		}
		typ, ok := p.parseTypeRef(token.Comma, token.RBrace)
		if !ok {
			return false
		}

		item.Fields = append(item.Fields, model.Field{
			Name:       name.Text,
			Type:       typ,
			Visibility: fieldVis,
			Doc:        fieldDoc,
			Span:       name.Span,
		})

		if p.at(token.Comma) {
			p.advance()
		}
	}
	_, ok := p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' closing the member list")
	return ok
}
