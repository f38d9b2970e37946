// Ggadmin is a terminal client for the GoGevgelija admin backend.
//
// It provides backend discovery, an interactive record editor with language
// tabs for multilingual content, and direct commands for inspecting the
// backend's catalog. The client communicates with backends over HTTP and
// WebSocket.
//
// Usage:
//
//	ggadmin [command] [flags]
//
// Running without arguments launches the interactive editor.
// See 'ggadmin --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogevgelija/ggadmin/internal/logging"
	"github.com/gogevgelija/ggadmin/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ggadmin",
	Short: "GoGevgelija Admin Client",
	Long: `A terminal client for managing GoGevgelija content.

Provides backend discovery, an interactive editor with language tabs for
multilingual records, and direct commands for inspecting the catalog.

If no command is specified, the interactive editor will launch automatically.`,
	Version: version.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Silent unless GGADMIN_LOG_LEVEL is set; diagnostics go to stderr
		return logging.InitializeFromEnv()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the editor when no subcommand provided
		return runEdit(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ggadmin %s (commit: %s)\n", version.Version, version.Commit)
	},
}
