package plantuml

import "strings"

var memberEscaper = strings.NewReplacer("<", "~<", ">", "~>")

// escapeMember tilde-escapes angle brackets inside a member line so generic
// type text like "Vec<Person>" is not interpreted as creole markup.
func escapeMember(s string) string {
	return memberEscaper.Replace(s)
}
