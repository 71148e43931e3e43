package driver

import (
	"errors"
	"strings"
	"testing"

	"archdoc/internal/docgen"
	"archdoc/internal/parser"
)

const personSource = `/// A person with a name and an age.
pub struct Person {
    /// The person's name.
    pub name: String,
    age: u32,
}

/// Greeting behaviour.
pub trait Greet {
    fn greeting(&self) -> String;
}

impl Greet for Person {
    fn greeting(&self) -> String {
        format!("Hello, {}!", self.name)
    }
}
`

func TestGenerateSourceEndToEnd(t *testing.T) {
	res, err := GenerateSource("person.rs", []byte(personSource), Options{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(res.Diagram, `class "Person"`) || !strings.Contains(res.Diagram, `"Person" ..|> "Greet"`) {
		t.Fatalf("diagram:\n%s", res.Diagram)
	}
	if !strings.Contains(res.Document, "## Person") || !strings.Contains(res.Document, "### name") {
		t.Fatalf("document:\n%s", res.Document)
	}
	if res.Model.Len() != 2 {
		t.Fatalf("model items = %d", res.Model.Len())
	}
}

func TestGenerateIdempotent(t *testing.T) {
	opts := Options{Format: docgen.FormatAsciiDoc, Embed: docgen.EmbedReference}
	a, err := GenerateSource("person.rs", []byte(personSource), opts)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	b, err := GenerateSource("person.rs", []byte(personSource), opts)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if a.Document != b.Document || a.Diagram != b.Diagram {
		t.Fatalf("output differs between runs")
	}
}

func TestGenerateFailsWithoutPartialOutput(t *testing.T) {
	res, err := GenerateSource("broken.rs", []byte("struct {"), Options{})
	if err == nil {
		t.Fatalf("expected syntax error")
	}
	if res != nil {
		t.Fatalf("failed run must produce no output: %+v", res)
	}
	var se *parser.SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("expected *parser.SyntaxError, got %T", err)
	}
	if se.Path != "broken.rs" {
		t.Fatalf("error must carry the path: %+v", se)
	}
}

func TestGenerateEmptyInput(t *testing.T) {
	res, err := GenerateSource("empty.rs", nil, Options{})
	if err != nil {
		t.Fatalf("empty input must not fail: %v", err)
	}
	if res.Diagram != "@startuml\n\n\n\n@enduml" {
		t.Fatalf("diagram = %q", res.Diagram)
	}
	if res.Document == "" {
		t.Fatalf("document must be minimal, not empty")
	}
}
