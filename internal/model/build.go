package model

import (
	"fmt"
	"sort"

	"archdoc/internal/diag"
	"archdoc/internal/source"
)

// ImplBlock is a parsed implementation block, not yet attached to its item.
// TraitName is empty for inherent impls.
type ImplBlock struct {
	TypeName  string
	TraitName string
	Methods   []Method
	Span      source.Span
}

// Build assembles the immutable model from parsed declarations. This is the
// second pass of extraction: the parser produced position-ordered items and
// detached impl blocks; here methods are attached to their owning items and
// relationships are inferred, deduplicated, and ordered. Non-fatal findings
// (duplicate names, impls over undeclared types) go to the reporter as
// warnings.
func Build(items []*SourceItem, impls []ImplBlock, reporter diag.Reporter) *StructuralModel {
	m := &StructuralModel{
		index: make(map[string]int, len(items)),
	}

	for _, it := range items {
		if _, dup := m.index[it.Name]; dup {
			diag.ReportWarning(reporter, diag.SynDuplicateItem, it.Span,
				fmt.Sprintf("duplicate declaration of %q skipped", it.Name))
			continue
		}
		m.index[it.Name] = len(m.items)
		m.items = append(m.items, it)
	}

	for _, impl := range impls {
		if impl.TraitName != "" {
			continue
		}
		it, ok := m.Lookup(impl.TypeName)
		if !ok {
			diag.ReportWarning(reporter, diag.ExtUnknownImplTarget, impl.Span,
				fmt.Sprintf("impl block for undeclared type %q skipped", impl.TypeName))
			continue
		}
		it.Methods = append(it.Methods, impl.Methods...)
	}

	m.relationships = inferRelationships(m, impls, reporter)
	return m
}

// relKey identifies a relationship for deduplication.
type relKey struct {
	source string
	target string
	kind   RelKind
}

func inferRelationships(m *StructuralModel, impls []ImplBlock, reporter diag.Reporter) []Relationship {
	type posRel struct {
		pos int // source item position; len(items) for external sources
		rel Relationship
	}

	seen := make(map[relKey]bool)
	var out []posRel

	add := func(pos int, rel Relationship) {
		key := relKey{rel.Source, rel.Target, rel.Kind}
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, posRel{pos: pos, rel: rel})
	}

	// Composition: a field's type reference names another item.
	for pos, it := range m.items {
		for _, f := range it.Fields {
			for _, name := range f.Type.Names {
				if _, ok := m.index[name]; !ok {
					continue
				}
				add(pos, Relationship{
					Source: it.Name,
					Target: name,
					Kind:   RelComposition,
				})
			}
		}
	}

	// Capability implementation: `impl Trait for Type`.
	for _, impl := range impls {
		if impl.TraitName == "" {
			continue
		}
		rel := Relationship{
			Source: impl.TypeName,
			Target: impl.TraitName,
			Kind:   RelCapabilityImpl,
		}
		pos, ok := m.index[impl.TypeName]
		if !ok {
			rel.SourceExternal = true
			pos = len(m.items)
			diag.ReportWarning(reporter, diag.ExtUnknownImplTarget, impl.Span,
				fmt.Sprintf("capability implementation for undeclared type %q", impl.TypeName))
		}
		if target, ok := m.Lookup(impl.TraitName); !ok {
			rel.TargetExternal = true
			diag.ReportWarning(reporter, diag.ExtUnknownCapability, impl.Span,
				fmt.Sprintf("capability %q is not declared in this source", impl.TraitName))
		} else if target.Kind != KindCapability {
			diag.ReportWarning(reporter, diag.ExtUnknownCapability, impl.Span,
				fmt.Sprintf("%q is not a capability declaration", impl.TraitName))
		}
		add(pos, rel)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].pos != out[j].pos {
			return out[i].pos < out[j].pos
		}
		if out[i].rel.Target != out[j].rel.Target {
			return out[i].rel.Target < out[j].rel.Target
		}
		return out[i].rel.Kind < out[j].rel.Kind
	})

	rels := make([]Relationship, len(out))
	for i, pr := range out {
		rels[i] = pr.rel
	}
	return rels
}
