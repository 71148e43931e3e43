// Package plantuml renders a structural model as a PlantUML class diagram.
// Rendering is pure: same model in, byte-identical text out.
package plantuml

import (
	"strings"

	"archdoc/internal/model"
)

const indent = "    "

// Render produces the full diagram text. Items appear in declaration order,
// fields before methods inside each block, relationships after all blocks.
// An empty model still yields a well-formed diagram.
func Render(m *model.StructuralModel) string {
	var sections []string
	for _, it := range m.Items() {
		sections = append(sections, renderItem(it))
	}
	if rels := m.Relationships(); len(rels) > 0 {
		lines := make([]string, len(rels))
		for i, r := range rels {
			lines[i] = renderRelationship(r)
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}
	return "@startuml\n\n" + strings.Join(sections, "\n\n") + "\n\n@enduml"
}

func renderItem(it *model.SourceItem) string {
	var b strings.Builder
	b.WriteString(blockKeyword(it.Kind))
	b.WriteString(" \"")
	b.WriteString(it.DisplayName())
	b.WriteByte('"')
	if len(it.Generics) > 0 {
		// Relationship lines refer to the bare name, so alias it.
		b.WriteString(" as ")
		b.WriteString(it.Name)
	}
	b.WriteString(" {\n")

	for _, f := range it.Fields {
		b.WriteString(indent)
		if it.Kind == model.KindEnum {
			b.WriteString(variantLine(f))
		} else {
			b.WriteString(visibilityMarker(f.Visibility))
			b.WriteByte(' ')
			b.WriteString(f.Name)
			b.WriteString(": ")
			b.WriteString(escapeMember(f.Type.Text))
		}
		b.WriteByte('\n')
	}
	for _, mt := range it.Methods {
		b.WriteString(indent)
		b.WriteString(visibilityMarker(mt.Visibility))
		b.WriteByte(' ')
		b.WriteString(escapeMember(mt.Signature()))
		if !mt.Return.Empty() {
			b.WriteString(": ")
			b.WriteString(escapeMember(mt.Return.Text))
		}
		b.WriteByte('\n')
	}

	b.WriteByte('}')
	return b.String()
}

// variantLine renders an enum variant: the bare name, with a tuple payload
// appended. Struct-like payloads contain braces and cannot appear inside a
// block, so only the name survives.
func variantLine(f model.Field) string {
	if !f.Type.Empty() && strings.HasPrefix(f.Type.Text, "(") {
		return f.Name + escapeMember(f.Type.Text)
	}
	return f.Name
}

func renderRelationship(r model.Relationship) string {
	arrow := "*--"
	if r.Kind == model.RelCapabilityImpl {
		arrow = "..|>"
	}
	return `"` + r.Source + `" ` + arrow + ` "` + r.Target + `"`
}

func blockKeyword(k model.ItemKind) string {
	switch k {
	case model.KindEnum:
		return "enum"
	case model.KindCapability:
		return "interface"
	default:
		return "class"
	}
}

func visibilityMarker(v model.Visibility) string {
	if v == model.VisPublic {
		return "+"
	}
	return "-"
}
