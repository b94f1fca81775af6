package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/kvitre/atxreplay/asterix"
)

func init() {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List available ASTERIX categories and their versions",
		Long:  "Display every ASTERIX category this module can decode, along with its published reference versions.",
		Run:   runList,
	}
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) {
	logger := ConfigureLogger(Verbose, JsonLogs)
	logger.Info("available ASTERIX categories")

	for _, entry := range catalog {
		info := asterix.GetCategoryInfo(entry.Category)
		logger.Info("category",
			"name", info.Name,
			"description", info.Description,
			"versions", strings.Join(entry.AllVersions(), ", "),
			"latest", entry.Latest(),
		)
	}
}
