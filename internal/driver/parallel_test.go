package driver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"archdoc/internal/diag"
	"archdoc/internal/docgen"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestGenerateDirSortedResults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.rs", "struct Beta;\n")
	writeFile(t, dir, "a.rs", "struct Alpha;\n")
	writeFile(t, dir, "notes.txt", "not a source file")

	_, results, err := GenerateDir(context.Background(), dir, Options{}, 2, nil, nil)
	if err != nil {
		t.Fatalf("generate dir: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if filepath.Base(results[0].Path) != "a.rs" || filepath.Base(results[1].Path) != "b.rs" {
		t.Fatalf("results not sorted: %q, %q", results[0].Path, results[1].Path)
	}
	if !strings.Contains(results[0].Result.Diagram, `class "Alpha"`) {
		t.Fatalf("alpha diagram:\n%s", results[0].Result.Diagram)
	}
}

func TestGenerateDirPerFileFailure(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.rs", "struct {")
	writeFile(t, dir, "good.rs", "struct Fine;\n")

	_, results, err := GenerateDir(context.Background(), dir, Options{}, 0, nil, nil)
	if err != nil {
		t.Fatalf("a broken file must not abort the run: %v", err)
	}
	if results[0].Err == nil || results[0].Result != nil {
		t.Fatalf("bad.rs: %+v", results[0])
	}
	if results[1].Err != nil || results[1].Result == nil {
		t.Fatalf("good.rs: %+v", results[1])
	}
}

func TestGenerateDirEmptyDirectory(t *testing.T) {
	fs, results, err := GenerateDir(context.Background(), t.TempDir(), Options{}, 0, nil, nil)
	if err != nil || len(results) != 0 {
		t.Fatalf("empty dir: %v, %+v", err, results)
	}
	if fs.Len() != 0 {
		t.Fatalf("file set must be empty")
	}
}

func TestGenerateDirEvents(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one.rs", "struct One;\n")
	writeFile(t, dir, "two.rs", "struct Two;\n")

	var events []Event
	_, _, err := GenerateDir(context.Background(), dir, Options{}, 1, nil, func(ev Event) {
		events = append(events, ev)
	})
	if err != nil {
		t.Fatalf("generate dir: %v", err)
	}

	done := 0
	for _, ev := range events {
		if ev.Total != 2 {
			t.Fatalf("event total = %d", ev.Total)
		}
		if ev.Stage == StageAssemble && ev.Err == nil {
			done++
		}
	}
	if done != 2 {
		t.Fatalf("expected 2 completion events, got %d (%+v)", done, events)
	}
}

func TestGenerateDirCanceled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one.rs", "struct One;\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := GenerateDir(ctx, dir, Options{}, 1, nil, nil)
	if err == nil {
		t.Fatalf("expected cancellation error")
	}
}

func TestGenerateDirReferenceRefsArePerFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "alpha.rs", "struct Thing;\n")
	writeFile(t, dir, "beta.rs", "struct Thing;\n")

	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	opts := Options{Embed: docgen.EmbedReference}

	// Identical content must still yield per-file diagram refs, warm cache
	// included: the derived ref is part of the cache key.
	_, results, err := GenerateDir(context.Background(), dir, opts, 1, cache, nil)
	if err != nil {
		t.Fatalf("generate dir: %v", err)
	}
	if !strings.Contains(results[0].Result.Document, "alpha.puml") {
		t.Fatalf("alpha document:\n%s", results[0].Result.Document)
	}
	if !strings.Contains(results[1].Result.Document, "beta.puml") {
		t.Fatalf("beta document:\n%s", results[1].Result.Document)
	}

	cached := 0
	_, results, err = GenerateDir(context.Background(), dir, opts, 1, cache, func(ev Event) {
		if ev.Cached {
			cached++
		}
	})
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if cached != 2 {
		t.Fatalf("expected 2 cache hits, got %d", cached)
	}
	if !strings.Contains(results[1].Result.Document, "beta.puml") {
		t.Fatalf("cached beta document:\n%s", results[1].Result.Document)
	}
}

func TestGenerateDirWarningsSurface(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "mixed.rs", "use std::fmt;\nstruct Kept;\n")

	_, results, err := GenerateDir(context.Background(), dir, Options{}, 0, nil, nil)
	if err != nil {
		t.Fatalf("generate dir: %v", err)
	}
	bag := results[0].Bag
	if bag == nil || !bag.HasWarnings() {
		t.Fatalf("expected skip warning in bag: %+v", results[0])
	}
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.ExtUnsupportedConstruct {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing unsupported construct warning: %+v", bag.Items())
	}
}
