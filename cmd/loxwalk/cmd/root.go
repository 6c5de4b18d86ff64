// Package cmd implements loxwalk's command-line surface: the REPL, the
// file runner, and debugging commands (`parse`, `resolve`, `version`).
//
// Grounded on the teacher's cmd/dwscript/cmd package shape — a cobra root
// command with version flags set via SetVersionTemplate and
// PersistentFlags shared by every subcommand.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information, set by build flags.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "loxwalk",
	Short: "A tree-walking interpreter for a small class-based scripting language",
	Long: `loxwalk scans, parses, resolves, and evaluates programs written in a
small dynamically-typed, class-based, lexically-scoped scripting language.

Run a file directly:
  loxwalk run script.lox

Or start a REPL with no arguments:
  loxwalk run`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to a loxwalk config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
