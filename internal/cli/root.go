package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.3.0"

// Exit codes
const (
	ExitSuccess = 0
	ExitError   = 1
)

var rootCmd = &cobra.Command{
	Use:           "revu",
	Short:         "Pattern-based code review CLI",
	Long:          "Revu scans source trees for quality, security, performance, and best-practice issues and renders text, JSON, or HTML reports.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitError
	}
	return exitCode
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print revu version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "revu version %s\n", version)
	},
}
