package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"archdoc/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "archdoc",
	Short: "Architecture documentation generator for annotated source code",
	Long: `archdoc extracts the declared structure of annotated source files and
produces an architecture document with an embedded class diagram`,
}

// main registers subcommands and persistent flags, then executes the root
// command. Execution failures exit with status code 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(diagramCmd)
	rootCmd.AddCommand(documentCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
