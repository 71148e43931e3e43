package parser

import (
	"fmt"

	"archdoc/internal/diag"
	"archdoc/internal/model"
	"archdoc/internal/token"
)

// parseImpl parses an implementation block. An inherent block ("impl Type")
// contributes its method signatures to the named item; a capability block
// ("impl Trait for Type") contributes only the relationship, so its body is
// consumed without inspection.
func (p *Parser) parseImpl() bool {
	kw := p.advance() // impl
	p.parseGenericParams()

	first, ok := p.parseTypeRef(token.LBrace, token.KwFor, token.KwWhere)
	if !ok {
		return false
	}

	block := model.ImplBlock{Span: kw.Span}
	if p.at(token.KwFor) {
		p.advance()
		target, ok := p.parseTypeRef(token.LBrace, token.KwWhere)
		if !ok {
			return false
		}
		block.TraitName = baseName(first)
		block.TypeName = baseName(target)
	} else {
		block.TypeName = baseName(first)
	}
	p.skipWhereClause()

	if _, ok := p.expect(token.LBrace, diag.SynExpectBody, fmt.Sprintf("expected '{' after impl %q", block.TypeName)); !ok {
		return false
	}

	if block.TraitName != "" {
		p.skipBody()
	} else if !p.parseImplBody(&block) {
		return false
	}

	p.impls = append(p.impls, block)
	return true
}

// parseImplBody collects method signatures until the closing '}'. The
// opening brace has already been consumed.
func (p *Parser) parseImplBody(block *model.ImplBlock) bool {
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		first := p.lx.Peek()
		memberDoc := docFromLeading(first.Leading)
		p.skipAttributes()
		vis := p.parseVisibility()

		switch p.lx.Peek().Kind {
		case token.KwFn:
			m, ok := p.parseFnSig(memberDoc, vis)
			if !ok {
				return false
			}
			block.Methods = append(block.Methods, m)
		case token.KwConst, token.KwType:
			p.skipConstruct()
		default:
			tok := p.lx.Peek()
			p.warnAt(diag.ExtUnsupportedConstruct, tok.Span,
				fmt.Sprintf("unsupported impl member %q skipped", tok.Text))
			p.skipConstruct()
		}
	}
	_, ok := p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' closing the impl body")
	return ok
}

// skipBody consumes tokens through the '}' matching an already-consumed '{'.
func (p *Parser) skipBody() {
	depth := 1
	for depth > 0 && !p.at(token.EOF) {
		switch p.advance().Kind {
		case token.LBrace:
			depth++
		case token.RBrace:
			depth--
		}
	}
}

// baseName returns the item name a type reference resolves to: the first
// path tail before any generic arguments ("Stack" for "Stack<T>").
func baseName(t model.TypeRef) string {
	if len(t.Names) > 0 {
		return t.Names[0]
	}
	return t.Text
}
