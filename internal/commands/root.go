// Package commands wires the application state, codecs, and derivation
// engine into the rentledger CLI.
package commands

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rentledger-dev/rentledger/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "rentledger",
		Short:   "Property management accounting calculator",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().String("dir", ".", "project directory")

	rootCmd.AddCommand(
		newInitCommand(),
		newAddCommand(),
		newEditCommand(),
		newDeleteCommand(),
		newListCommand(),
		newJournalCommand(),
		newExportCommand(),
		newImportCommand(),
		newShareCommand(),
		newReportCommand(),
		newStatsCommand(),
	)

	return rootCmd
}
