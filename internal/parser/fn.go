package parser

import (
	"fmt"

	"archdoc/internal/diag"
	"archdoc/internal/model"
	"archdoc/internal/token"
)

// parseFnSig parses a function signature starting at 'fn'. The receiver
// ("&mut self" in any of its spellings) is consumed but never recorded as a
// parameter. A default body, when present, is skipped; only the signature
// enters the model.
func (p *Parser) parseFnSig(doc model.DocComment, vis model.Visibility) (model.Method, bool) {
	p.advance() // fn

	name, ok := p.expectIdent("expected function name after 'fn'")
	if !ok {
		return model.Method{}, false
	}
	p.parseGenericParams()

	if _, ok := p.expect(token.LParen, diag.SynExpectBody, fmt.Sprintf("expected '(' after function %q", name.Text)); !ok {
		return model.Method{}, false
	}

	m := model.Method{
		Name:       name.Text,
		Visibility: vis,
		Doc:        doc,
		Span:       name.Span,
	}

	for !p.at(token.RParen) && !p.at(token.EOF) {
		if !p.parseParam(&m) {
			return model.Method{}, false
		}
		if p.at(token.Comma) {
			p.advance()
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' closing the parameter list"); !ok {
		return model.Method{}, false
	}

	if p.at(token.Arrow) {
		p.advance()
		ret, ok := p.parseTypeRef(token.LBrace, token.Semicolon, token.KwWhere)
		if !ok {
			return model.Method{}, false
		}
		m.Return = ret
	}
	p.skipWhereClause()

	switch p.lx.Peek().Kind {
	case token.Semicolon:
		p.advance()
	case token.LBrace:
		p.skipBalanced(token.LBrace, token.RBrace)
	default:
		p.err(diag.SynExpectBody, fmt.Sprintf("expected ';' or '{' after function %q", name.Text))
		return model.Method{}, false
	}
	return m, true
}

// parseParam parses one parameter or the receiver.
func (p *Parser) parseParam(m *model.Method) bool {
	// Receiver forms: self, &self, &'a self, &mut self, mut self.
	ref := false
	for p.at(token.Amp) || p.at(token.Lifetime) {
		p.advance()
		ref = true
	}
	if p.at(token.KwMut) {
		p.advance()
	}
	if p.at(token.KwSelfValue) {
		p.advance()
		return true
	}
	if ref {
		p.err(diag.SynUnexpectedToken, "expected 'self' in receiver position")
		return false
	}

	name, ok := p.expectIdent("expected parameter name")
	if !ok {
		return false
	}
	if _, ok := p.expect(token.Colon, diag.SynExpectColon, fmt.Sprintf("expected ':' after parameter %q", name.Text)); !ok {
		return false
	}
	typ, ok := p.parseTypeRef(token.Comma, token.RParen)
	if !ok {
		return false
	}
	m.Params = append(m.Params, model.Param{Name: name.Text, Type: typ})
	return true
}
