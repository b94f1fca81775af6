// Package cmd implements the atxreplay command-line tool, adapted from
// idefix/cmd: the same cobra root/subcommand layout and logging setup,
// restructured around file envelopes and normalised-object sinks
// instead of idefix's live network listener.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kvitre/atxreplay"
)

var (
	Verbose  bool
	JsonLogs bool
)

var rootCmd = &cobra.Command{
	Use:   "atxreplay",
	Short: "ASTERIX capture decoder and replay tool",
	Long: `atxreplay decodes recorded ASTERIX surveillance traffic - line-serial,
SASS-C IOSS, RFF, REC, and raw netto captures - into normalised
surveillance objects, and lists, exports, or summarises them.

It never re-encodes data back to the wire; this is a read-only replay
and analysis tool.`,
}

// Execute runs the root command. Called once from main.main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&JsonLogs, "json", false, "Log in JSON format")

	rootCmd.Flags().BoolP("version", "V", false, "Print version information")
	rootCmd.SetVersionTemplate("atxreplay v{{.Version}}\n")
	rootCmd.Version = atxreplay.Version
}
