package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"archdoc/internal/driver"
)

var diagramCmd = &cobra.Command{
	Use:   "diagram [flags] <file.rs|->",
	Short: "Render only the PlantUML class diagram",
	Long: `Diagram runs extraction and rendering and prints the PlantUML source,
skipping document assembly. "-" reads from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runDiagram,
}

func init() {
	diagramCmd.Flags().StringP("output", "o", "", "output file (default stdout)")
}

func runDiagram(cmd *cobra.Command, args []string) error {
	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	output, _ := cmd.Flags().GetString("output")

	name, data, err := readSource(args[0])
	if err != nil {
		return err
	}

	res, err := driver.GenerateSource(name, data, driver.Options{MaxDiagnostics: maxDiagnostics})
	if err != nil {
		return fmt.Errorf("diagram rendering failed: %w", err)
	}
	reportDiagnostics(cmd, res.Bag, res.FileSet)

	return writeOutput(output, res.Diagram)
}
