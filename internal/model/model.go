package model

import (
	"strings"

	"archdoc/internal/source"
)

// TypeRef is a declared type reference as written in the source, plus the
// path-head names it mentions (used for composition inference).
type TypeRef struct {
	Text  string   // normalized source text, e.g. "Vec<Person>"
	Names []string // referenced head names in order, e.g. ["Vec", "Person"]
}

func (t TypeRef) Empty() bool {
	return t.Text == ""
}

// Param is a named method parameter.
type Param struct {
	Name string
	Type TypeRef
}

// Field is a named member of a record, or a variant of an enum (variants
// carry the payload type text and have no visibility of their own).
type Field struct {
	Name       string
	Type       TypeRef
	Visibility Visibility
	Doc        DocComment
	Span       source.Span
}

// Method is a callable member of an item.
type Method struct {
	Name       string
	Params     []Param
	Return     TypeRef // zero value means no return type
	Visibility Visibility
	Doc        DocComment
	Span       source.Span
}

// Signature renders "name(a: T, b: U)" the way member headings and diagram
// entries show methods.
func (m Method) Signature() string {
	var b strings.Builder
	b.WriteString(m.Name)
	b.WriteByte('(')
	for i, p := range m.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
		b.WriteString(": ")
		b.WriteString(p.Type.Text)
	}
	b.WriteByte(')')
	return b.String()
}

// SourceItem is a single top-level declaration.
type SourceItem struct {
	Name       string
	Kind       ItemKind
	Visibility Visibility
	Generics   []string // generic parameter names, e.g. ["T", "E"]
	Fields     []Field
	Methods    []Method
	Doc        DocComment
	Span       source.Span
}

// DisplayName is the item name with its generic parameter list, e.g.
// "Stack<T>".
func (it *SourceItem) DisplayName() string {
	if len(it.Generics) == 0 {
		return it.Name
	}
	return it.Name + "<" + strings.Join(it.Generics, ", ") + ">"
}

// Relationship links two items. Endpoints that do not name an item present
// in the model are flagged external rather than dropped, so downstream
// consumers never chase a dangling name.
type Relationship struct {
	Source         string
	Target         string
	Kind           RelKind
	SourceExternal bool
	TargetExternal bool
}

// StructuralModel is the immutable, fully-resolved representation of one
// source unit. Items preserve source declaration order; Relationships are
// deduplicated and sorted by source item position, then target name.
type StructuralModel struct {
	items         []*SourceItem
	index         map[string]int
	relationships []Relationship
}

// Items returns the items in source declaration order.
// Callers must not modify the returned slice.
func (m *StructuralModel) Items() []*SourceItem {
	return m.items
}

// Relationships returns the deduplicated, order-stable relationship list.
func (m *StructuralModel) Relationships() []Relationship {
	return m.relationships
}

// Lookup returns the item with the given name, if present.
func (m *StructuralModel) Lookup(name string) (*SourceItem, bool) {
	i, ok := m.index[name]
	if !ok {
		return nil, false
	}
	return m.items[i], true
}

// Len returns the number of items.
func (m *StructuralModel) Len() int {
	return len(m.items)
}

// Empty reports whether the model holds no items at all.
func (m *StructuralModel) Empty() bool {
	return len(m.items) == 0
}
