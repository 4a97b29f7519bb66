package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/antithesishq/snouty/api"
	"github.com/antithesishq/snouty/params"
	"github.com/antithesishq/snouty/schema"
)

var runCmd = &cobra.Command{
	Use:   "run -w webhook [--stdin] [--key value ...]",
	Short: "Launch a test run",
	Long: `Launch a test run

Parameters are supplied as trailing --key value pairs, as a JSON object on
stdin with --stdin, or both; CLI values override stdin values per key.

Example:
  snouty run -w basic_test \
    --antithesis.description "nightly test run" \
    --antithesis.config_image config:latest \
    --antithesis.images app:latest \
    --antithesis.duration 30 \
    --antithesis.report.recipients "team@example.com"`,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags, err := splitLaunchFlags(args, true)
		if err != nil {
			return err
		}
		if flags.help {
			return cmd.Help()
		}
		if flags.webhook == "" {
			return fmt.Errorf("%w: required flag --webhook not set", params.ErrInvalidArguments)
		}

		p, err := collectParams(cmd.InOrStdin(), flags.rest, flags.useStdin, false)
		if err != nil {
			return err
		}
		if err := schema.TestParams().ValidateError(p.WireValue()); err != nil {
			return err
		}
		if err := printParams(cmd.ErrOrStderr(), "Requesting Antithesis test run with params:", p); err != nil {
			return err
		}

		cfg, err := api.LoadConfig()
		if err != nil {
			return err
		}
		log := logger()
		log.Info("launching test run", "webhook", flags.webhook)

		client := api.New(cfg, api.WithLogger(log))
		body, err := client.LaunchWebhook(commandContext(cmd), flags.webhook, p)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), body)
		printRunETA(cmd.ErrOrStderr(), p)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
