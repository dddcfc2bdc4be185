package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tux",
	Short: "Manage temporary voice channel records",
	Long: `tux manages the persistent records behind Discord temporary voice channels.

It tracks which voice channels are temporary, who owns each one, and the
cleanup deadline after an owner leaves, so an external job can reclaim
abandoned channels.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
