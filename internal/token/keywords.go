package token

var keywords = map[string]Kind{
	"struct": KwStruct,
	"enum":   KwEnum,
	"trait":  KwTrait,
	"impl":   KwImpl,
	"fn":     KwFn,
	"pub":    KwPub,
	"for":    KwFor,
	"where":  KwWhere,
	"self":   KwSelfValue,
	"Self":   KwSelfType,
	"mut":    KwMut,
	"dyn":    KwDyn,
	"use":    KwUse,
	"mod":    KwMod,
	"const":  KwConst,
	"static": KwStatic,
	"type":   KwType,
	"as":     KwAs,
	"let":    KwLet,
	"ref":    KwRef,
	"unsafe": KwUnsafe,
	"async":  KwAsync,
	"crate":  KwCrate,
}

// LookupKeyword returns the keyword kind for an identifier, if any.
// Keywords are case-sensitive.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
