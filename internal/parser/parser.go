// Package parser implements the source model extractor: it turns one source
// file into an immutable model.StructuralModel, or fails with a SyntaxError
// carrying line and column. Unsupported top-level constructs are skipped
// with a recorded warning; extraction continues past them.
package parser

import (
	"fmt"

	"archdoc/internal/diag"
	"archdoc/internal/lexer"
	"archdoc/internal/model"
	"archdoc/internal/source"
	"archdoc/internal/token"
)

// SyntaxError is a fatal parse failure at a concrete source position.
type SyntaxError struct {
	Path    string
	Line    uint32
	Col     uint32
	Message string
}

func (e *SyntaxError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s:%d:%d: %s", e.Path, e.Line, e.Col, e.Message)
	}
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Message)
}

// Options configures a parse run.
type Options struct {
	MaxErrors uint
	Reporter  diag.Reporter

	currentErrors uint
}

func (o *Options) enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.currentErrors >= o.MaxErrors
}

// Result is the outcome of parsing one file.
type Result struct {
	Model *model.StructuralModel
	Bag   *diag.Bag
}

// Err converts the first error diagnostic into a *SyntaxError, or returns
// nil when extraction succeeded. A failed extraction exposes no model.
func (r Result) Err(fs *source.FileSet) error {
	if r.Bag == nil || !r.Bag.HasErrors() {
		return nil
	}
	d, _ := r.Bag.FirstError()
	start, _ := fs.Resolve(d.Primary)
	return &SyntaxError{
		Path:    fs.Get(d.Primary.File).Path,
		Line:    start.Line,
		Col:     start.Col,
		Message: d.Message,
	}
}

// Parser holds the state for parsing a single file.
type Parser struct {
	lx       *lexer.Lexer
	fs       *source.FileSet
	opts     Options
	lastSpan source.Span

	items []*model.SourceItem
	impls []model.ImplBlock
}

// ParseFile is the entry point for extracting one file. It requires an
// already constructed lexer over a source.File. Empty input is valid and
// yields an empty model.
func ParseFile(fs *source.FileSet, lx *lexer.Lexer, opts Options) Result {
	p := &Parser{
		lx:       lx,
		fs:       fs,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}

	p.parseItems()

	reporter := opts.Reporter
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	m := model.Build(p.items, p.impls, reporter)

	var bag *diag.Bag
	if br, ok := opts.Reporter.(diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{Model: m, Bag: bag}
}

// Extract is the one-call convenience wrapper: lex, parse, resolve, and
// convert error diagnostics into a SyntaxError. On error the model is nil.
func Extract(fs *source.FileSet, id source.FileID, maxDiagnostics int) (*model.StructuralModel, *diag.Bag, error) {
	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: reporter})
	res := ParseFile(fs, lx, Options{Reporter: reporter})
	if err := res.Err(fs); err != nil {
		return nil, bag, err
	}
	return res.Model, bag, nil
}

// parseItems is the top-level loop: parseItem until EOF, resyncing past
// malformed regions.
func (p *Parser) parseItems() {
	for !p.at(token.EOF) {
		if !p.parseItem() {
			p.resyncTop()
		}
	}
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

// advance consumes the next token and remembers its span for diagnostics.
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

// diagnosticSpan returns the best span for a diagnostic at the current
// position. At EOF it points just past the last consumed token.
func (p *Parser) diagnosticSpan() source.Span {
	peek := p.lx.Peek()
	if peek.Kind == token.EOF && peek.Span.Empty() && p.lastSpan.End > 0 {
		return source.Span{
			File:  p.lastSpan.File,
			Start: p.lastSpan.End,
			End:   p.lastSpan.End,
		}
	}
	return peek.Span
}

// expect consumes the expected token or reports an error.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	sp := p.diagnosticSpan()
	p.report(code, diag.SevError, sp, msg)
	return token.Token{Kind: token.Invalid, Span: sp, Text: p.lx.Peek().Text}, false
}

func (p *Parser) expectIdent(msg string) (token.Token, bool) {
	return p.expect(token.Ident, diag.SynExpectIdentifier, msg)
}

func (p *Parser) err(code diag.Code, msg string) {
	p.report(code, diag.SevError, p.diagnosticSpan(), msg)
}

func (p *Parser) warnAt(code diag.Code, sp source.Span, msg string) {
	p.report(code, diag.SevWarning, sp, msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if sev == diag.SevError {
		p.opts.currentErrors++
	}
	if p.opts.Reporter != nil && !p.opts.enough() {
		p.opts.Reporter.Report(code, sev, sp, msg, nil)
	}
}

// resyncTop skips tokens until the next plausible top-level starter,
// keeping brace depth balanced so we do not resync into a body.
func (p *Parser) resyncTop() {
	depth := 0
	for !p.at(token.EOF) {
		tok := p.lx.Peek()
		if depth == 0 && tok.StartsItem() {
			return
		}
		p.advance()
		switch tok.Kind {
		case token.LBrace:
			depth++
		case token.RBrace:
			if depth > 0 {
				depth--
			}
			if depth == 0 {
				return
			}
		case token.Semicolon:
			if depth == 0 {
				return
			}
		}
	}
}

// skipBalanced consumes an already-peeked open delimiter and everything up
// to its matching close delimiter.
func (p *Parser) skipBalanced(open, close token.Kind) {
	if !p.at(open) {
		return
	}
	p.advance()
	depth := 1
	for depth > 0 && !p.at(token.EOF) {
		switch p.advance().Kind {
		case open:
			depth++
		case close:
			depth--
		}
	}
	if depth > 0 {
		p.err(diag.SynUnclosedDelimiter, fmt.Sprintf("unclosed %q", open.String()))
	}
}
