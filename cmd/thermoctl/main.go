// Thermoctl manages the SmartThermo configuration file.
//
// It loads the configuration (creating a default one when none exists),
// displays the device state, changes the operating mode or set point and
// writes the result back to the same file.
//
// Usage:
//
//	thermoctl [command] [flags]
//
// Running without arguments shows the current configuration.
// See 'thermoctl --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/smartthermo/internal/logging"
	"github.com/muurk/smartthermo/internal/thermoconfig"
	"github.com/muurk/smartthermo/internal/ui"
	"github.com/muurk/smartthermo/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.RenderFailure(thermoconfig.GetShortErrorMessage(err), err, thermoconfig.GetTroubleshootingHint(err)))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "thermoctl",
	Short: "SmartThermo Configuration Utility",
	Long: `A small utility for the SmartThermo configuration file.

Loads the configuration (writing a default file when none exists), shows the
device state, and updates the operating mode or set point in place.

If no command is specified, the current configuration is shown.`,
	Version:       version.Version,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		ui.SetPlain(plainOutput)
		return logging.Initialize(logLevel)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: show the configuration
		return runShow(cmd, args)
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "thermoctl %s (commit: %s, %s)\n", version.Version, version.Commit, version.Platform())
	},
}
