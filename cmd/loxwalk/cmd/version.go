package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/loxwalk/internal/nativefn"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display detailed version information including commit hash and build date.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("loxwalk version %s\n", Version)
		fmt.Printf("Git Commit: %s\n", GitCommit)
		fmt.Printf("Build Date: %s\n", BuildDate)
		fmt.Printf("Native functions: %s\n", strings.Join(nativefn.Names(), ", "))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
