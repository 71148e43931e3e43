package model

import (
	"testing"

	"archdoc/internal/diag"
)

func record(name string, fields ...Field) *SourceItem {
	return &SourceItem{Name: name, Kind: KindRecord, Fields: fields}
}

func capability(name string) *SourceItem {
	return &SourceItem{Name: name, Kind: KindCapability}
}

func fieldOf(name, typeText string, names ...string) Field {
	return Field{Name: name, Type: TypeRef{Text: typeText, Names: names}}
}

func TestBuildPreservesDeclarationOrder(t *testing.T) {
	m := Build([]*SourceItem{record("B"), record("A")}, nil, diag.NopReporter{})
	items := m.Items()
	if len(items) != 2 || items[0].Name != "B" || items[1].Name != "A" {
		t.Fatalf("unexpected order: %+v", items)
	}
	if _, ok := m.Lookup("A"); !ok {
		t.Fatalf("lookup failed")
	}
}

func TestBuildSkipsDuplicates(t *testing.T) {
	bag := diag.NewBag(8)
	m := Build(
		[]*SourceItem{record("A", fieldOf("x", "u32")), record("A")},
		nil,
		diag.BagReporter{Bag: bag},
	)
	if m.Len() != 1 {
		t.Fatalf("expected 1 item, got %d", m.Len())
	}
	if len(m.Items()[0].Fields) != 1 {
		t.Fatalf("first declaration must win")
	}
	if !bag.HasWarnings() {
		t.Fatalf("expected duplicate warning")
	}
}

func TestBuildAttachesInherentMethods(t *testing.T) {
	impl := ImplBlock{
		TypeName: "Person",
		Methods:  []Method{{Name: "introduce"}},
	}
	m := Build([]*SourceItem{record("Person")}, []ImplBlock{impl}, diag.NopReporter{})
	it, _ := m.Lookup("Person")
	if len(it.Methods) != 1 || it.Methods[0].Name != "introduce" {
		t.Fatalf("method not attached: %+v", it.Methods)
	}
}

func TestBuildWarnsOnUnknownImplTarget(t *testing.T) {
	bag := diag.NewBag(8)
	Build(nil, []ImplBlock{{TypeName: "Ghost", Methods: []Method{{Name: "boo"}}}}, diag.BagReporter{Bag: bag})
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.ExtUnknownImplTarget {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected unknown impl target warning")
	}
}

func TestCompositionInference(t *testing.T) {
	items := []*SourceItem{
		record("Person", fieldOf("home", "Address", "Address"), fieldOf("age", "u32", "u32")),
		record("Address"),
	}
	m := Build(items, nil, diag.NopReporter{})
	rels := m.Relationships()
	if len(rels) != 1 {
		t.Fatalf("expected 1 relationship, got %+v", rels)
	}
	r := rels[0]
	if r.Source != "Person" || r.Target != "Address" || r.Kind != RelComposition {
		t.Fatalf("unexpected relationship: %+v", r)
	}
	if r.SourceExternal || r.TargetExternal {
		t.Fatalf("endpoints must be internal")
	}
}

func TestCompositionThroughGenericArguments(t *testing.T) {
	items := []*SourceItem{
		record("Roster", fieldOf("members", "Vec<Person>", "Vec", "Person")),
		record("Person"),
	}
	m := Build(items, nil, diag.NopReporter{})
	rels := m.Relationships()
	if len(rels) != 1 || rels[0].Target != "Person" {
		t.Fatalf("expected Roster->Person composition, got %+v", rels)
	}
}

func TestCapabilityImplementation(t *testing.T) {
	items := []*SourceItem{record("Person"), capability("Greet")}
	impls := []ImplBlock{{TypeName: "Person", TraitName: "Greet"}}
	m := Build(items, impls, diag.NopReporter{})
	rels := m.Relationships()
	if len(rels) != 1 {
		t.Fatalf("expected 1 relationship, got %+v", rels)
	}
	r := rels[0]
	if r.Source != "Person" || r.Target != "Greet" || r.Kind != RelCapabilityImpl {
		t.Fatalf("unexpected relationship: %+v", r)
	}
}

func TestCapabilityImplementationExternalEndpoints(t *testing.T) {
	bag := diag.NewBag(8)
	m := Build(
		[]*SourceItem{record("Person")},
		[]ImplBlock{{TypeName: "Person", TraitName: "Display"}},
		diag.BagReporter{Bag: bag},
	)
	rels := m.Relationships()
	if len(rels) != 1 || !rels[0].TargetExternal || rels[0].SourceExternal {
		t.Fatalf("expected external target flag: %+v", rels)
	}
	if !bag.HasWarnings() {
		t.Fatalf("expected warning for undeclared capability")
	}
}

func TestRelationshipOrderIsStableUnderReordering(t *testing.T) {
	build := func(aFirst bool) []Relationship {
		a := record("A", fieldOf("b", "B", "B"), fieldOf("c", "C", "C"))
		b := record("B")
		c := record("C")
		items := []*SourceItem{b, c, a}
		if aFirst {
			items = []*SourceItem{a, b, c}
		}
		return Build(items, nil, diag.NopReporter{}).Relationships()
	}

	relsA := build(true)
	relsB := build(false)
	if len(relsA) != 2 || len(relsB) != 2 {
		t.Fatalf("expected 2 relationships: %+v / %+v", relsA, relsB)
	}
	for i := range relsA {
		if relsA[i].Source != relsB[i].Source || relsA[i].Target != relsB[i].Target || relsA[i].Kind != relsB[i].Kind {
			t.Fatalf("relationship kind/direction changed with declaration order: %+v vs %+v", relsA, relsB)
		}
	}
	if relsA[0].Target != "B" || relsA[1].Target != "C" {
		t.Fatalf("targets must sort by name: %+v", relsA)
	}
}

func TestRelationshipDeduplication(t *testing.T) {
	items := []*SourceItem{
		record("Pair", fieldOf("left", "Item", "Item"), fieldOf("right", "Item", "Item")),
		record("Item"),
	}
	m := Build(items, nil, diag.NopReporter{})
	if len(m.Relationships()) != 1 {
		t.Fatalf("duplicate composition not collapsed: %+v", m.Relationships())
	}
}

func TestMethodSignature(t *testing.T) {
	m := Method{
		Name: "new",
		Params: []Param{
			{Name: "name", Type: TypeRef{Text: "String"}},
			{Name: "age", Type: TypeRef{Text: "u32"}},
		},
	}
	if got := m.Signature(); got != "new(name: String, age: u32)" {
		t.Fatalf("signature = %q", got)
	}
	if got := (Method{Name: "introduce"}).Signature(); got != "introduce()" {
		t.Fatalf("signature = %q", got)
	}
}

func TestDisplayName(t *testing.T) {
	it := &SourceItem{Name: "Stack", Generics: []string{"T"}}
	if got := it.DisplayName(); got != "Stack<T>" {
		t.Fatalf("display name = %q", got)
	}
	if got := (&SourceItem{Name: "Person"}).DisplayName(); got != "Person" {
		t.Fatalf("display name = %q", got)
	}
}
