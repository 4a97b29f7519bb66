package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/antithesishq/snouty/api"
	"github.com/antithesishq/snouty/schema"
)

var debugCmd = &cobra.Command{
	Use:   "debug [--stdin] [--key value ...]",
	Short: "Launch a debugging session",
	Long: `Launch a debugging session

Using CLI arguments:
  snouty debug \
    --antithesis.debugging.session_id f89d5c11f5e3bf5e4bb3641809800cee-44-22 \
    --antithesis.debugging.input_hash 6057726200491963783 \
    --antithesis.debugging.vtime 329.8037810830865

Using Moment.from (copy from a triage report):
  echo 'Moment.from({ session_id: "...", input_hash: "...", vtime: ... })' | snouty debug --stdin`,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags, err := splitLaunchFlags(args, false)
		if err != nil {
			return err
		}
		if flags.help {
			return cmd.Help()
		}

		p, err := collectParams(cmd.InOrStdin(), flags.rest, flags.useStdin, true)
		if err != nil {
			return err
		}
		if err := schema.DebuggingParams().ValidateError(p.WireValue()); err != nil {
			return err
		}
		if err := printParams(cmd.ErrOrStderr(), "Requesting the Antithesis multiverse debugger with params:", p); err != nil {
			return err
		}

		cfg, err := api.LoadConfig()
		if err != nil {
			return err
		}
		log := logger()
		log.Info("launching debugging session")

		client := api.New(cfg, api.WithLogger(log))
		body, err := client.LaunchDebugging(commandContext(cmd), p)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), body)
		printDebugETA(cmd.ErrOrStderr())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(debugCmd)
}
