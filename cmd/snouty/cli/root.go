package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/antithesishq/snouty/slogger"
)

var logLevel = "warn"

var rootCmd = &cobra.Command{
	Use:           "snouty",
	Short:         "CLI for the Antithesis API",
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn",
		"Log level to use (debug, info, warn, error)")
}

// Execute runs the CLI. Any error is printed once to stderr and maps to
// exit code 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Sprint("error:"), err)
		os.Exit(1)
	}
}

func logger() slogger.Logger {
	return slogger.New(slogger.LevelFromString(logLevel))
}

// commandContext tolerates commands invoked outside Execute, as tests do.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
