package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"archdoc/internal/diag"
	"archdoc/internal/diagfmt"
	"archdoc/internal/docgen"
	"archdoc/internal/driver"
	"archdoc/internal/source"
)

// pipelineOptions builds driver options from the shared format flags.
func pipelineOptions(cmd *cobra.Command) (driver.Options, error) {
	formatName, err := cmd.Flags().GetString("format")
	if err != nil {
		return driver.Options{}, fmt.Errorf("failed to get format flag: %w", err)
	}
	format, err := docgen.ParseFormat(formatName)
	if err != nil {
		return driver.Options{}, err
	}

	embedName, err := cmd.Flags().GetString("embed")
	if err != nil {
		return driver.Options{}, fmt.Errorf("failed to get embed flag: %w", err)
	}
	embed, err := docgen.ParseEmbedMode(embedName)
	if err != nil {
		return driver.Options{}, err
	}

	diagramRef, err := cmd.Flags().GetString("diagram-ref")
	if err != nil {
		return driver.Options{}, fmt.Errorf("failed to get diagram-ref flag: %w", err)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return driver.Options{}, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	return driver.Options{
		Format:         format,
		Embed:          embed,
		DiagramRef:     diagramRef,
		MaxDiagnostics: maxDiagnostics,
	}, nil
}

// addFormatFlags registers the flags shared by generate, diagram, and
// document.
func addFormatFlags(cmd *cobra.Command) {
	cmd.Flags().String("format", "markdown", "document format (markdown|asciidoc)")
	cmd.Flags().String("embed", "inline", "diagram embedding (inline|reference)")
	cmd.Flags().String("diagram-ref", "", "diagram reference name (reference mode, default <stem>.puml)")
	cmd.Flags().StringP("output", "o", "", "output file or directory (default stdout)")
}

func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}

// reportDiagnostics prints a bag to stderr. Warnings are suppressed under
// --quiet; errors always show. Without a file set (load failures) the
// messages print bare.
func reportDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if quiet && !bag.HasErrors() {
		return
	}
	if fs == nil || fs.Len() == 0 {
		for _, d := range bag.Items() {
			fmt.Fprintf(os.Stderr, "%s [%s]: %s\n", d.Severity, d.Code.ID(), d.Message)
		}
		return
	}
	bag.Sort()
	diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
		Color:      useColor(cmd, os.Stderr),
		ShowSource: true,
		ShowNotes:  true,
	})
}

// readSource reads one input: a file path or "-" for stdin.
func readSource(path string) (string, []byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return "stdin.rs", data, nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- path is provided by the caller
	if err != nil {
		return "", nil, err
	}
	return path, data, nil
}

// writeOutput writes text to a file, or to stdout when path is empty. File
// output always ends with a newline.
func writeOutput(path, text string) error {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if path == "" {
		_, err := fmt.Fprint(os.Stdout, text)
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// documentExt is the output file extension for a format.
func documentExt(format docgen.Format) string {
	if format == docgen.FormatAsciiDoc {
		return ".adoc"
	}
	return ".md"
}

// documentNameFor derives the output document name for a source path.
func documentNameFor(srcPath string, format docgen.Format) string {
	base := filepath.Base(srcPath)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return base + documentExt(format)
}

// isDirectory reports whether path names an existing directory.
func isDirectory(path string) bool {
	st, err := os.Stat(path)
	return err == nil && st.IsDir()
}
