package model

import "strings"

// DocComment is the documentation attached to a declaration: an ordered
// sequence of text lines with the comment markers already stripped. Absence
// of documentation is represented by an empty DocComment, never by nil
// semantics that callers must special-case.
type DocComment struct {
	Lines []string
}

func (d DocComment) Empty() bool {
	return len(d.Lines) == 0
}

// Text joins the lines with newlines, preserving line breaks exactly as they
// appeared in the source.
func (d DocComment) Text() string {
	return strings.Join(d.Lines, "\n")
}
