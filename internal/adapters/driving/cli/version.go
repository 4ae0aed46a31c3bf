package cli

import (
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	// Skip config loading so version works even with a broken config file.
	PersistentPreRun: func(*cobra.Command, []string) {},
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("bloodbank version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
