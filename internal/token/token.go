package token

import (
	"archdoc/internal/source"
)

// Token represents a single source token with its location and leading trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsKeyword reports whether the token is a declaration-grammar keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwStruct, KwEnum, KwTrait, KwImpl, KwFn, KwPub, KwFor, KwWhere,
		KwSelfValue, KwSelfType, KwMut, KwDyn, KwUse, KwMod, KwConst,
		KwStatic, KwType, KwAs, KwLet, KwRef, KwUnsafe, KwAsync, KwCrate:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// StartsItem reports whether the token can open a top-level declaration.
func (t Token) StartsItem() bool {
	switch t.Kind {
	case KwStruct, KwEnum, KwTrait, KwImpl, KwPub, Pound:
		return true
	default:
		return false
	}
}
