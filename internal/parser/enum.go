package parser

import (
	"fmt"
	"strings"

	"archdoc/internal/diag"
	"archdoc/internal/model"
	"archdoc/internal/token"
)

// parseEnum parses an enumeration. Variants become fields of the item; a
// payload ("(String)" or "{ code: u32 }") is kept as the variant's type
// text, discriminants ("= 3") are dropped.
func (p *Parser) parseEnum(doc model.DocComment, vis model.Visibility) bool {
	p.advance() // enum

	name, ok := p.expectIdent("expected enumeration name after 'enum'")
	if !ok {
		return false
	}
	generics := p.parseGenericParams()
	p.skipWhereClause()

	item := &model.SourceItem{
		Name:       name.Text,
		Kind:       model.KindEnum,
		Visibility: vis,
		Generics:   generics,
		Doc:        doc,
		Span:       name.Span,
	}

	if _, ok := p.expect(token.LBrace, diag.SynExpectBody, fmt.Sprintf("expected '{' after enum %q", name.Text)); !ok {
		return false
	}

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		first := p.lx.Peek()
		variantDoc := docFromLeading(first.Leading)
		p.skipAttributes()

		vname, ok := p.expectIdent("expected variant name")
		if !ok {
			return false
		}

		var payload model.TypeRef
		switch p.lx.Peek().Kind {
		case token.LParen:
			payload = p.captureDelimited(token.LParen, token.RParen)
		case token.LBrace:
			payload = p.captureDelimited(token.LBrace, token.RBrace)
		}
		if p.at(token.Eq) {
			for !p.at(token.Comma) && !p.at(token.RBrace) && !p.at(token.EOF) {
				p.advance()
			}
		}

		item.Fields = append(item.Fields, model.Field{
			Name:       vname.Text,
			Type:       payload,
			Visibility: model.VisPublic,
			Doc:        variantDoc,
			Span:       vname.Span,
		})

		if p.at(token.Comma) {
			p.advance()
		}
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' closing the variant list"); !ok {
		return false
	}

	p.items = append(p.items, item)
	return true
}

// captureDelimited consumes a balanced delimiter region and returns it as a
// type reference, text and mentioned names included. Used for enum variant
// payloads.
func (p *Parser) captureDelimited(open, close token.Kind) model.TypeRef {
	var (
		b     strings.Builder
		names []string
		prev  token.Token
		depth int
	)
	for !p.at(token.EOF) {
		tok := p.advance()
		switch tok.Kind {
		case open, token.Lt:
			depth++
		case close, token.Gt:
			depth--
		}

		if b.Len() > 0 && needsSpace(prev, tok) {
			b.WriteByte(' ')
		}
		b.WriteString(tokenText(tok))
		prev = tok

		if tok.Kind == token.Ident && !p.at(token.ColonColon) {
			names = append(names, tok.Text)
		}
		if depth == 0 {
			break
		}
	}
	return model.TypeRef{Text: b.String(), Names: names}
}
