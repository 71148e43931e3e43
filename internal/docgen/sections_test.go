package docgen

import (
	"reflect"
	"testing"

	"archdoc/internal/model"
)

func docOf(lines ...string) model.DocComment {
	return model.DocComment{Lines: lines}
}

func TestClassifyDescriptionOnly(t *testing.T) {
	s := Classify(docOf("Just a description.", "Second line."))
	if len(s.Tags) != 0 {
		t.Fatalf("unexpected tags: %+v", s.Tags)
	}
	if !reflect.DeepEqual(s.Description, []string{"Just a description.", "Second line."}) {
		t.Fatalf("description = %+v", s.Description)
	}
}

func TestClassifyTagIsolation(t *testing.T) {
	s := Classify(docOf(
		"Create a new person.",
		"",
		"# Arguments",
		"",
		"- `name`: the person's name",
		"- `age`: the person's age",
		"",
		"# Example",
		"",
		"```rust",
		"let p = Person::new(\"Ada\".into(), 36);",
		"```",
	))
	if !reflect.DeepEqual(s.Description, []string{"Create a new person."}) {
		t.Fatalf("description = %+v", s.Description)
	}
	if len(s.Tags) != 2 {
		t.Fatalf("expected 2 tags, got %+v", s.Tags)
	}
	if s.Tags[0].Name != "Arguments" || s.Tags[1].Name != "Example" {
		t.Fatalf("tag order: %+v", s.Tags)
	}
	wantArgs := []string{"- `name`: the person's name", "- `age`: the person's age"}
	if !reflect.DeepEqual(s.Tags[0].Body, wantArgs) {
		t.Fatalf("arguments body = %+v", s.Tags[0].Body)
	}
	wantExample := []string{"```rust", "let p = Person::new(\"Ada\".into(), 36);", "```"}
	if !reflect.DeepEqual(s.Tags[1].Body, wantExample) {
		t.Fatalf("example body = %+v", s.Tags[1].Body)
	}
}

func TestClassifyUnrecognizedTagStaysBodyText(t *testing.T) {
	s := Classify(docOf(
		"Intro.",
		"# Implementation Details",
		"stay in description",
		"# Returns",
		"a value",
	))
	want := []string{"Intro.", "# Implementation Details", "stay in description"}
	if !reflect.DeepEqual(s.Description, want) {
		t.Fatalf("description = %+v", s.Description)
	}
	if len(s.Tags) != 1 || s.Tags[0].Name != "Returns" {
		t.Fatalf("tags = %+v", s.Tags)
	}
}

func TestClassifyRepeatedTagContinuesSection(t *testing.T) {
	s := Classify(docOf(
		"# Errors",
		"first",
		"# Returns",
		"value",
		"# Errors",
		"second",
	))
	if len(s.Tags) != 2 {
		t.Fatalf("tags = %+v", s.Tags)
	}
	if !reflect.DeepEqual(s.Tags[0].Body, []string{"first", "second"}) {
		t.Fatalf("errors body = %+v", s.Tags[0].Body)
	}
}

func TestClassifyCaseAndSpacing(t *testing.T) {
	s := Classify(docOf("#   examples", "one"))
	if len(s.Tags) != 1 || s.Tags[0].Name != "Examples" {
		t.Fatalf("tags = %+v", s.Tags)
	}
}

func TestClassifyEmptyDoc(t *testing.T) {
	s := Classify(model.DocComment{})
	if !s.Empty() {
		t.Fatalf("expected empty sections: %+v", s)
	}
}
