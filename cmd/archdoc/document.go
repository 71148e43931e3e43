package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"archdoc/internal/driver"
)

var documentCmd = &cobra.Command{
	Use:   "document [flags] <file.rs|->",
	Short: "Assemble only the architecture document",
	Long: `Document runs the full pipeline but writes only the assembled document.
In reference mode the diagram file is not written; the document still carries
the reference. "-" reads from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runDocument,
}

func init() {
	addFormatFlags(documentCmd)
}

func runDocument(cmd *cobra.Command, args []string) error {
	opts, err := pipelineOptions(cmd)
	if err != nil {
		return err
	}
	output, _ := cmd.Flags().GetString("output")

	name, data, err := readSource(args[0])
	if err != nil {
		return err
	}

	res, err := driver.GenerateSource(name, data, opts)
	if err != nil {
		return fmt.Errorf("document assembly failed: %w", err)
	}
	reportDiagnostics(cmd, res.Bag, res.FileSet)

	return writeOutput(output, res.Document)
}
