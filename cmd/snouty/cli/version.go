package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the snouty release version.
const Version = "0.3.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "snouty %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
