package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"archdoc/internal/docgen"
	"archdoc/internal/driver"
	"archdoc/internal/source"
)

var generateCmd = &cobra.Command{
	Use:   "generate [flags] [file.rs|dir|-]",
	Short: "Generate the architecture document with its diagram",
	Long: `Generate runs the full pipeline: extract the structural model, render
the class diagram, and assemble the document. A directory argument processes
every *.rs file under it in parallel; "-" reads from stdin. Without an
argument the source location comes from archdoc.toml.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	addFormatFlags(generateCmd)
	generateCmd.Flags().Int("jobs", 0, "parallel workers for directory mode (0 = all CPUs)")
	generateCmd.Flags().Bool("progress", false, "show interactive progress in directory mode")
	generateCmd.Flags().Bool("no-cache", false, "bypass the disk cache in directory mode")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	opts, err := pipelineOptions(cmd)
	if err != nil {
		return err
	}
	output, _ := cmd.Flags().GetString("output")

	target, err := resolveTarget(args)
	if err != nil {
		return err
	}

	if target != "-" && isDirectory(target) {
		return generateDirectory(cmd, target, output, opts)
	}
	return generateFile(cmd, target, output, opts)
}

// resolveTarget picks the input: the explicit argument, or the manifest's
// source location when the argument is omitted.
func resolveTarget(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	manifest, ok, err := loadProjectManifest(".")
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%s", noManifestMessage)
	}
	return filepath.Join(manifest.Root, filepath.FromSlash(manifest.Config.Docs.Source)), nil
}

func generateFile(cmd *cobra.Command, target, output string, opts driver.Options) error {
	name, data, err := readSource(target)
	if err != nil {
		return err
	}

	res, err := driver.GenerateSource(name, data, opts)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	reportDiagnostics(cmd, res.Bag, res.FileSet)

	if err := writeOutput(output, res.Document); err != nil {
		return err
	}
	if opts.Embed == docgen.EmbedReference {
		ref := opts.DiagramRef
		if ref == "" {
			ref = driver.DiagramRefFor(name)
		}
		if output != "" {
			ref = filepath.Join(filepath.Dir(output), ref)
		}
		return writeOutput(ref, res.Diagram)
	}
	return nil
}

func generateDirectory(cmd *cobra.Command, dir, output string, opts driver.Options) error {
	jobs, _ := cmd.Flags().GetInt("jobs")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	progress, _ := cmd.Flags().GetBool("progress")

	var cache *driver.DiskCache
	if !noCache {
		// A broken cache directory degrades to uncached generation.
		cache, _ = driver.OpenDiskCache("archdoc")
	}

	ctx := context.Background()
	var results []driver.DirResult
	var fileSet *source.FileSet
	var err error
	if progress && isTerminal(os.Stdout) {
		fileSet, results, err = runGenerateDirWithUI(ctx, dir, opts, jobs, cache)
	} else {
		fileSet, results, err = driver.GenerateDir(ctx, dir, opts, jobs, cache, nil)
	}
	if err != nil {
		return err
	}

	if output == "" {
		output = dir
	}
	if err := os.MkdirAll(output, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	failures := 0
	for _, r := range results {
		reportDiagnostics(cmd, r.Bag, fileSet)
		if r.Err != nil {
			failures++
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.Path, r.Err)
			continue
		}
		docPath := filepath.Join(output, documentNameFor(r.Path, opts.Format))
		if err := writeOutput(docPath, r.Result.Document); err != nil {
			return err
		}
		if opts.Embed == docgen.EmbedReference {
			refPath := filepath.Join(output, driver.DiagramRefFor(r.Path))
			if err := writeOutput(refPath, r.Result.Diagram); err != nil {
				return err
			}
		}
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet {
		fmt.Fprintf(os.Stdout, "generated %d document(s) in %s\n", len(results)-failures, output)
	}
	if failures > 0 {
		return fmt.Errorf("%d file(s) failed", failures)
	}
	return nil
}
