package source

import (
	"bytes"
	"testing"
)

func TestNormalizeCRLF(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		changed bool
	}{
		{"no newlines", "no newlines", false},
		{"a\r\nb\r\n", "a\nb\n", true},
		{"lone\rcarriage", "lone\rcarriage", false},
		{"mix\r\nand\rlone", "mix\nand\rlone", true},
	}
	for _, tc := range cases {
		got, changed := normalizeCRLF([]byte(tc.in))
		if string(got) != tc.want || changed != tc.changed {
			t.Fatalf("normalizeCRLF(%q) = %q, %v; want %q, %v", tc.in, got, changed, tc.want, tc.changed)
		}
	}
}

func TestRemoveBOM(t *testing.T) {
	withBOM := append([]byte{0xEF, 0xBB, 0xBF}, []byte("text")...)
	got, had := removeBOM(withBOM)
	if !had || !bytes.Equal(got, []byte("text")) {
		t.Fatalf("BOM not stripped: %q, %v", got, had)
	}
	plain := []byte("text")
	got, had = removeBOM(plain)
	if had || !bytes.Equal(got, plain) {
		t.Fatalf("unexpected BOM strip: %q, %v", got, had)
	}
}

func TestToLineCol(t *testing.T) {
	content := []byte("ab\ncd\n\nef")
	idx := buildLineIndex(content)

	cases := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{1, LineCol{1, 2}},
		{2, LineCol{1, 3}}, // the newline itself still sits on line 1
		{3, LineCol{2, 1}},
		{6, LineCol{3, 1}},
		{7, LineCol{4, 1}},
		{8, LineCol{4, 2}},
	}
	for _, tc := range cases {
		if got := toLineCol(idx, tc.off); got != tc.want {
			t.Fatalf("toLineCol(%d) = %v, want %v", tc.off, got, tc.want)
		}
	}
}

func TestToLineColSingleLine(t *testing.T) {
	if got := toLineCol(nil, 5); got != (LineCol{1, 6}) {
		t.Fatalf("expected 1:6, got %v", got)
	}
}
