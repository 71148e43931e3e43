package diag

import (
	"fmt"
)

// Code is a compact, stable identifier for a diagnostic kind.
type Code uint16

const (
	// UnknownCode is the fallback for unclassified diagnostics.
	UnknownCode Code = 0

	// Lexical codes.
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003

	// Syntactic codes.
	SynUnexpectedToken    Code = 2001
	SynExpectIdentifier   Code = 2002
	SynExpectColon        Code = 2003
	SynExpectBody         Code = 2004
	SynUnclosedDelimiter  Code = 2005
	SynExpectType         Code = 2006
	SynDuplicateItem      Code = 2007
	SynUnexpectedTopLevel Code = 2008

	// Extraction codes (model resolution).
	ExtUnsupportedConstruct Code = 3001
	ExtUnknownImplTarget    Code = 3002
	ExtUnknownCapability    Code = 3003

	// Driver-level I/O codes.
	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "unknown diagnostic",
	LexUnknownChar:              "unknown character",
	LexUnterminatedString:       "unterminated string literal",
	LexUnterminatedBlockComment: "unterminated block comment",
	SynUnexpectedToken:          "unexpected token",
	SynExpectIdentifier:         "expected identifier",
	SynExpectColon:              "expected ':'",
	SynExpectBody:               "expected declaration body",
	SynUnclosedDelimiter:        "unclosed delimiter",
	SynExpectType:               "expected type reference",
	SynDuplicateItem:            "duplicate declaration name",
	SynUnexpectedTopLevel:       "unexpected top-level construct",
	ExtUnsupportedConstruct:     "unsupported construct skipped",
	ExtUnknownImplTarget:        "impl target is not declared in this source",
	ExtUnknownCapability:        "capability is not declared in this source",
	IOLoadFileError:             "failed to load file",
}

// ID returns the short stable form, e.g. "SYN2001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("EXT%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	default:
		return fmt.Sprintf("DIAG%04d", ic)
	}
}

// Title returns the human-readable description of the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
