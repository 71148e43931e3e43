package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// IntLit represents an integer literal token.
	IntLit
	// StringLit represents a string literal token.
	StringLit
	// Lifetime represents a lifetime token ('a).
	Lifetime

	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwTrait represents the 'trait' keyword.
	KwTrait // trait
	// KwImpl represents the 'impl' keyword.
	KwImpl // impl
	// KwFn represents the 'fn' keyword.
	KwFn // fn
	// KwPub represents the 'pub' keyword.
	KwPub // pub
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwWhere represents the 'where' keyword.
	KwWhere // where
	// KwSelfValue represents the 'self' keyword.
	KwSelfValue // self
	// KwSelfType represents the 'Self' keyword.
	KwSelfType // Self
	// KwMut represents the 'mut' keyword.
	KwMut // mut
	// KwDyn represents the 'dyn' keyword.
	KwDyn // dyn
	// KwUse represents the 'use' keyword.
	KwUse // use
	// KwMod represents the 'mod' keyword.
	KwMod // mod
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwStatic represents the 'static' keyword.
	KwStatic // static
	// KwType represents the 'type' keyword.
	KwType // type
	// KwAs represents the 'as' keyword.
	KwAs // as
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwRef represents the 'ref' keyword.
	KwRef // ref
	// KwUnsafe represents the 'unsafe' keyword.
	KwUnsafe // unsafe
	// KwAsync represents the 'async' keyword.
	KwAsync // async
	// KwCrate represents the 'crate' keyword.
	KwCrate // crate

	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }
	// LBracket represents '['.
	LBracket // [
	// RBracket represents ']'.
	RBracket // ]
	// Lt represents '<'.
	Lt // <
	// Gt represents '>'.
	Gt // >
	// Comma represents ','.
	Comma // ,
	// Colon represents ':'.
	Colon // :
	// ColonColon represents '::'.
	ColonColon // ::
	// Semicolon represents ';'.
	Semicolon // ;
	// Arrow represents '->'.
	Arrow // ->
	// FatArrow represents '=>'.
	FatArrow // =>
	// Amp represents '&'.
	Amp // &
	// Star represents '*'.
	Star // *
	// Plus represents '+'.
	Plus // +
	// Minus represents '-'.
	Minus // -
	// Slash represents '/'.
	Slash // /
	// Percent represents '%'.
	Percent // %
	// Eq represents '='.
	Eq // =
	// Bang represents '!'.
	Bang // !
	// Question represents '?'.
	Question // ?
	// Pound represents '#'.
	Pound // #
	// Pipe represents '|'.
	Pipe // |
	// At represents '@'.
	At // @
	// Dot represents '.'.
	Dot // .
	// DotDot represents '..'.
	DotDot // ..
	// Underscore represents '_'.
	Underscore // _
)

var kindNames = map[Kind]string{
	Invalid:     "Invalid",
	EOF:         "EOF",
	Ident:       "Ident",
	IntLit:      "IntLit",
	StringLit:   "StringLit",
	Lifetime:    "Lifetime",
	KwStruct:    "struct",
	KwEnum:      "enum",
	KwTrait:     "trait",
	KwImpl:      "impl",
	KwFn:        "fn",
	KwPub:       "pub",
	KwFor:       "for",
	KwWhere:     "where",
	KwSelfValue: "self",
	KwSelfType:  "Self",
	KwMut:       "mut",
	KwDyn:       "dyn",
	KwUse:       "use",
	KwMod:       "mod",
	KwConst:     "const",
	KwStatic:    "static",
	KwType:      "type",
	KwAs:        "as",
	KwLet:       "let",
	KwRef:       "ref",
	KwUnsafe:    "unsafe",
	KwAsync:     "async",
	KwCrate:     "crate",
	LParen:      "(",
	RParen:      ")",
	LBrace:      "{",
	RBrace:      "}",
	LBracket:    "[",
	RBracket:    "]",
	Lt:          "<",
	Gt:          ">",
	Comma:       ",",
	Colon:       ":",
	ColonColon:  "::",
	Semicolon:   ";",
	Arrow:       "->",
	FatArrow:    "=>",
	Amp:         "&",
	Star:        "*",
	Plus:        "+",
	Minus:       "-",
	Slash:       "/",
	Percent:     "%",
	Eq:          "=",
	Bang:        "!",
	Question:    "?",
	Pound:       "#",
	Pipe:        "|",
	At:          "@",
	Dot:         ".",
	DotDot:      "..",
	Underscore:  "_",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}
