// Package driver runs the documentation pipeline over files and
// directories: extraction, diagram rendering, document assembly, plus the
// disk cache and parallel directory mode. The core stages stay I/O free;
// all filesystem work lives here and in the CLI.
package driver

import (
	"path/filepath"
	"strings"

	"archdoc/internal/diag"
	"archdoc/internal/docgen"
	"archdoc/internal/model"
	"archdoc/internal/parser"
	"archdoc/internal/plantuml"
	"archdoc/internal/source"
)

// Options configures one pipeline run.
type Options struct {
	Format         docgen.Format
	Embed          docgen.EmbedMode
	DiagramRef     string
	MaxDiagnostics int
}

func (o Options) assembleOptions() docgen.Options {
	return docgen.Options{
		Format:     o.Format,
		Embed:      o.Embed,
		DiagramRef: o.DiagramRef,
	}
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return 64
	}
	return o.MaxDiagnostics
}

// effectiveFor resolves per-file option defaults. Cache keys must be derived
// from the same options the pipeline runs with, so the default diagram ref
// is filled in here rather than mid-pipeline.
func (o Options) effectiveFor(path string) Options {
	if o.Embed == docgen.EmbedReference && o.DiagramRef == "" {
		o.DiagramRef = DiagramRefFor(path)
	}
	return o
}

// Result is one file's pipeline output. On extraction failure the error is
// returned instead and no Result exists: later stages never see a partial
// model.
type Result struct {
	Path     string
	Model    *model.StructuralModel
	Diagram  string
	Document string
	Bag      *diag.Bag
	// FileSet resolves diagnostic spans in Bag.
	FileSet *source.FileSet
}

// Generate runs the full pipeline over one already-loaded file. In
// reference mode with no explicit ref name, the document points at
// "<stem>.puml" next to the source file.
func Generate(fs *source.FileSet, id source.FileID, opts Options) (*Result, error) {
	opts = opts.effectiveFor(fs.Get(id).Path)

	m, bag, err := parser.Extract(fs, id, opts.maxDiagnostics())
	if err != nil {
		return nil, err
	}

	diagram := plantuml.Render(m)
	out := docgen.Assemble(m, diagram, opts.assembleOptions())

	return &Result{
		Path:     fs.Get(id).Path,
		Model:    m,
		Diagram:  diagram,
		Document: out.Document,
		Bag:      bag,
		FileSet:  fs,
	}, nil
}

// GenerateSource runs the pipeline over an in-memory buffer (stdin input).
func GenerateSource(name string, src []byte, opts Options) (*Result, error) {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, src)
	return Generate(fs, id, opts)
}

// DiagramRefFor derives the default diagram file name for a source path:
// the basename with its extension swapped for ".puml".
func DiagramRefFor(path string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return base + ".puml"
}
