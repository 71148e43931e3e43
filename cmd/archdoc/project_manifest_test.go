package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "archdoc.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadProjectManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `[package]
name = "demo"

[docs]
source = "src"
format = "asciidoc"
`)

	manifest, ok, err := loadProjectManifest(dir)
	if err != nil {
		t.Fatalf("loadProjectManifest: %v", err)
	}
	if !ok {
		t.Fatal("expected manifest to be found")
	}
	if manifest.Root != dir {
		t.Errorf("Root = %q, want %q", manifest.Root, dir)
	}
	if manifest.Config.Package.Name != "demo" {
		t.Errorf("Package.Name = %q, want %q", manifest.Config.Package.Name, "demo")
	}
	if manifest.Config.Docs.Source != "src" {
		t.Errorf("Docs.Source = %q, want %q", manifest.Config.Docs.Source, "src")
	}
	if manifest.Config.Docs.Format != "asciidoc" {
		t.Errorf("Docs.Format = %q, want %q", manifest.Config.Docs.Format, "asciidoc")
	}
}

func TestLoadProjectManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `[package]
name = "demo"

[docs]
source = "src"
`)
	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	manifest, ok, err := loadProjectManifest(nested)
	if err != nil {
		t.Fatalf("loadProjectManifest: %v", err)
	}
	if !ok {
		t.Fatal("expected manifest to be found from nested directory")
	}
	if manifest.Root != root {
		t.Errorf("Root = %q, want %q", manifest.Root, root)
	}
}

func TestLoadProjectManifestMissing(t *testing.T) {
	dir := t.TempDir()
	_, ok, err := loadProjectManifest(dir)
	if err != nil {
		t.Fatalf("loadProjectManifest: %v", err)
	}
	if ok {
		t.Fatal("expected no manifest in an empty temp directory")
	}
}

func TestLoadProjectManifestValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing package",
			content: "[docs]\nsource = \"src\"\n",
			wantErr: "missing [package]",
		},
		{
			name:    "missing package name",
			content: "[package]\n\n[docs]\nsource = \"src\"\n",
			wantErr: "missing [package].name",
		},
		{
			name:    "missing docs",
			content: "[package]\nname = \"demo\"\n",
			wantErr: "missing [docs]",
		},
		{
			name:    "blank docs source",
			content: "[package]\nname = \"demo\"\n\n[docs]\nsource = \"  \"\n",
			wantErr: "missing [docs].source",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeManifest(t, dir, tt.content)
			_, ok, err := loadProjectManifest(dir)
			if !ok {
				t.Fatal("expected manifest to be found")
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
