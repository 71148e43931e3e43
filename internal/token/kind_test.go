package token

import "testing"

func TestKindString(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{KwStruct, "struct"},
		{KwTrait, "trait"},
		{Arrow, "->"},
		{ColonColon, "::"},
		{EOF, "EOF"},
		{Kind(255), "Unknown"},
	}
	for _, tc := range cases {
		if got := tc.kind.String(); got != tc.want {
			t.Fatalf("String(%d) = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestLookupKeyword(t *testing.T) {
	if k, ok := LookupKeyword("struct"); !ok || k != KwStruct {
		t.Fatalf("expected struct keyword, got %v %v", k, ok)
	}
	if k, ok := LookupKeyword("Self"); !ok || k != KwSelfType {
		t.Fatalf("expected Self keyword, got %v %v", k, ok)
	}
	if _, ok := LookupKeyword("Struct"); ok {
		t.Fatalf("keywords must be case-sensitive")
	}
	if _, ok := LookupKeyword("person"); ok {
		t.Fatalf("unexpected keyword hit")
	}
}

func TestStartsItem(t *testing.T) {
	for _, k := range []Kind{KwStruct, KwEnum, KwTrait, KwImpl, KwPub, Pound} {
		if !(Token{Kind: k}).StartsItem() {
			t.Fatalf("%v should start an item", k)
		}
	}
	for _, k := range []Kind{Ident, KwFn, Semicolon, EOF} {
		if (Token{Kind: k}).StartsItem() {
			t.Fatalf("%v should not start an item", k)
		}
	}
}
