package lexer

import (
	"archdoc/internal/diag"
	"archdoc/internal/source"
)

// Options configures a Lexer. Reporter may be nil; errors are then dropped
// but lexing still continues.
type Options struct {
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
