package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new archdoc project",
	Long: `Initialize a new archdoc project by creating a project manifest
(archdoc.toml) and an example source file (src/lib.rs). If [path|name] is
omitted, initializes the current directory. If a non-existing name is
provided, a directory will be created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else {
		arg := args[0]
		if !filepath.IsAbs(arg) {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			target = filepath.Join(wd, arg)
		} else {
			target = arg
		}
	}

	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	name := filepath.Base(target)
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "archdoc-project"
	}

	manifestPath := filepath.Join(target, "archdoc.toml")
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("project already initialized: %s exists", manifestPath)
	}

	manifest := buildDefaultManifest(name)
	if err := os.WriteFile(manifestPath, []byte(manifest), os.FileMode(0o600)); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	srcDir := filepath.Join(target, "src")
	if err := os.MkdirAll(srcDir, 0o755); err != nil {
		return fmt.Errorf("failed to create src directory: %w", err)
	}
	examplePath := filepath.Join(srcDir, "lib.rs")
	createdExample := false
	if _, err := os.Stat(examplePath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(examplePath, []byte(defaultExampleSource()), 0o600); err != nil {
			return fmt.Errorf("failed to write src/lib.rs: %w", err)
		}
		createdExample = true
	}

	rel := target
	if wd, err := os.Getwd(); err == nil {
		if r, err2 := filepath.Rel(wd, target); err2 == nil {
			rel = r
		}
	}
	fmt.Fprintf(os.Stdout, "Initialized archdoc project in %s\n", rel)
	fmt.Fprintf(os.Stdout, "  - archdoc.toml\n")
	if createdExample {
		fmt.Fprintf(os.Stdout, "  - src/lib.rs\n")
	} else {
		fmt.Fprintf(os.Stdout, "  - src/lib.rs (existing)\n")
	}
	return nil
}

func buildDefaultManifest(name string) string {
	// Minimal TOML manifest used as a project marker.
	return fmt.Sprintf(`# archdoc project manifest
[package]
name = "%s"
version = "0.1.0"

[docs]
source = "src"
format = "markdown"
embed = "inline"
`, name)
}

func defaultExampleSource() string {
	return `/// A documented example type. Run "archdoc generate" to turn this
/// into an architecture document.
///
/// # Examples
/// ` + "```" + `rust
/// let greeter = Greeter::new("world");
/// ` + "```" + `
pub struct Greeter {
    /// Who the greeting addresses.
    name: String,
}

/// Builds greetings.
impl Greeter {
    /// Creates a greeter for the given name.
    pub fn new(name: String) -> Greeter;

    /// Returns the rendered greeting.
    ///
    /// # Returns
    /// The greeting text.
    pub fn greet(&self) -> String;
}
`
}
