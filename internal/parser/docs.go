package parser

import (
	"strings"

	"archdoc/internal/model"
	"archdoc/internal/token"
)

// docFromLeading extracts the doc comment attached to a declaration from the
// leading trivia of its first token. Every '///' line before the declaration
// attaches; ordinary comments, inner doc lines, and blank lines between the
// runs are transparent and never break attachment. Markers are stripped
// ("/// " and "///"), line breaks preserved.
func docFromLeading(leading []token.Trivia) model.DocComment {
	var lines []string
	for _, tr := range leading {
		if tr.Kind == token.TriviaDocLine {
			lines = append(lines, stripDocMarker(tr.Text))
		}
	}
	return model.DocComment{Lines: lines}
}

// stripDocMarker removes the '///' marker and at most one following space,
// keeping any further indentation (code in examples relies on it).
func stripDocMarker(line string) string {
	line = strings.TrimPrefix(line, "///")
	line = strings.TrimPrefix(line, " ")
	return strings.TrimRight(line, "\r")
}
