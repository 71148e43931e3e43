package docgen

import (
	"strings"
	"testing"

	"archdoc/internal/diag"
	"archdoc/internal/model"
)

func personModel(t *testing.T) *model.StructuralModel {
	t.Helper()
	items := []*model.SourceItem{
		{
			Name:       "Person",
			Kind:       model.KindRecord,
			Visibility: model.VisPublic,
			Doc:        docOf("A person with a name and an age."),
			Fields: []model.Field{
				{Name: "name", Type: model.TypeRef{Text: "String"}, Visibility: model.VisPublic, Doc: docOf("The person's name.")},
				{Name: "age", Type: model.TypeRef{Text: "u32"}, Doc: docOf("The person's age in years.")},
			},
			Methods: []model.Method{
				{
					Name: "new",
					Params: []model.Param{
						{Name: "name", Type: model.TypeRef{Text: "String"}},
						{Name: "age", Type: model.TypeRef{Text: "u32"}},
					},
					Return:     model.TypeRef{Text: "Person"},
					Visibility: model.VisPublic,
					Doc: docOf(
						"Create a new person.",
						"",
						"# Arguments",
						"- `name`: the person's name",
						"- `age`: the person's age",
					),
				},
			},
		},
		{
			Name:       "Greet",
			Kind:       model.KindCapability,
			Visibility: model.VisPublic,
			Doc:        docOf("Greeting behaviour."),
			Methods: []model.Method{
				{Name: "greeting", Return: model.TypeRef{Text: "String"}, Visibility: model.VisPublic},
			},
		},
	}
	return model.Build(items, nil, diag.NopReporter{})
}

const testDiagram = "@startuml\n\nclass \"Person\" {\n    + name: String\n}\n\n@enduml"

func TestAssembleMarkdownLayout(t *testing.T) {
	out := Assemble(personModel(t), testDiagram, Options{})
	doc := out.Document

	for _, want := range []string{
		"## Person\n",
		"```plantuml\n@startuml\n",
		"A person with a name and an age.\n",
		"### name\n",
		"The person's name.\n",
		"### age\n",
		"### new(name: String, age: u32)\n",
		"#### Arguments\n",
		"- `name`: the person's name\n",
		"## Greet\n",
		"### greeting()\n",
	} {
		if !strings.Contains(doc, want) {
			t.Fatalf("missing %q in document:\n%s", want, doc)
		}
	}
	if out.Diagram != "" {
		t.Fatalf("inline mode must not emit a separate diagram buffer")
	}

	// Every item appears exactly once as a section heading.
	if strings.Count(doc, "\n## ")+boolToInt(strings.HasPrefix(doc, "## ")) != 2 {
		t.Fatalf("item heading count wrong:\n%s", doc)
	}
	// Fields come before methods.
	if strings.Index(doc, "### age") > strings.Index(doc, "### new(") {
		t.Fatalf("fields must precede methods:\n%s", doc)
	}
}

func TestAssembleEmptyMemberSubsectionStillEmitted(t *testing.T) {
	out := Assemble(personModel(t), testDiagram, Options{})
	// "age" has a doc, "greeting()" does not; both headings must exist.
	if !strings.Contains(out.Document, "### greeting()") {
		t.Fatalf("undocumented member lost its subsection:\n%s", out.Document)
	}
}

func TestAssembleReferenceMode(t *testing.T) {
	out := Assemble(personModel(t), testDiagram, Options{Embed: EmbedReference, DiagramRef: "person.puml"})
	if strings.Contains(out.Document, "@startuml") {
		t.Fatalf("reference mode must not inline the diagram:\n%s", out.Document)
	}
	if !strings.Contains(out.Document, "![Person diagram](person.puml)") {
		t.Fatalf("missing reference directive:\n%s", out.Document)
	}
	if out.Diagram != testDiagram {
		t.Fatalf("diagram buffer = %q", out.Diagram)
	}
}

func TestAssembleAsciiDoc(t *testing.T) {
	out := Assemble(personModel(t), testDiagram, Options{Format: FormatAsciiDoc})
	doc := out.Document

	for _, want := range []string{
		"== Person\n",
		"[plantuml]\n----\n@startuml\n",
		"=== name\n",
		"==== Arguments\n",
	} {
		if !strings.Contains(doc, want) {
			t.Fatalf("missing %q in document:\n%s", want, doc)
		}
	}
	if strings.Contains(doc, "```") {
		t.Fatalf("markdown fences must not survive asciidoc output:\n%s", doc)
	}
}

func TestAssembleAsciiDocFenceConversion(t *testing.T) {
	items := []*model.SourceItem{{
		Name: "Sample",
		Kind: model.KindRecord,
		Methods: []model.Method{{
			Name: "run",
			Doc: docOf(
				"# Example",
				"```rust",
				"sample.run();",
				"```",
			),
		}},
	}}
	m := model.Build(items, nil, diag.NopReporter{})
	out := Assemble(m, testDiagram, Options{Format: FormatAsciiDoc})
	if !strings.Contains(out.Document, "[source,rust]\n----\nsample.run();\n----") {
		t.Fatalf("fence not converted:\n%s", out.Document)
	}
}

func TestAssembleEmptyModel(t *testing.T) {
	m := model.Build(nil, nil, diag.NopReporter{})
	emptyDiagram := "@startuml\n\n\n\n@enduml"
	out := Assemble(m, emptyDiagram, Options{})
	if out.Document == "" {
		t.Fatalf("empty model must still yield a structural document")
	}
	if !strings.Contains(out.Document, "```plantuml") {
		t.Fatalf("expected embed directive:\n%s", out.Document)
	}
	if strings.Contains(out.Document, "## ") {
		t.Fatalf("no headings expected for an empty model:\n%s", out.Document)
	}
}

func TestAssembleDeterministic(t *testing.T) {
	opts := Options{Format: FormatAsciiDoc, Embed: EmbedReference}
	a := Assemble(personModel(t), testDiagram, opts)
	b := Assemble(personModel(t), testDiagram, opts)
	if a != b {
		t.Fatalf("assembly differs between runs")
	}
}

func TestParseOptionNames(t *testing.T) {
	if f, err := ParseFormat("adoc"); err != nil || f != FormatAsciiDoc {
		t.Fatalf("adoc: %v %v", f, err)
	}
	if _, err := ParseFormat("latex"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
	if m, err := ParseEmbedMode("reference"); err != nil || m != EmbedReference {
		t.Fatalf("reference: %v %v", m, err)
	}
	if _, err := ParseEmbedMode("attach"); err == nil {
		t.Fatalf("expected error for unknown embed mode")
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
