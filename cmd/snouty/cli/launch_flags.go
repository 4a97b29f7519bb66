package cli

import (
	"fmt"
	"strings"

	"github.com/antithesishq/snouty/params"
)

// launchFlags are the flags recognized ahead of the trailing parameter
// tokens. Cobra flag parsing is disabled on run and debug so that the
// `--key value` parameter pairs reach the command verbatim; the few real
// flags are picked out here instead.
type launchFlags struct {
	webhook  string
	useStdin bool
	help     bool
	rest     []string
}

func splitLaunchFlags(args []string, wantWebhook bool) (*launchFlags, error) {
	f := &launchFlags{}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help":
			f.help = true
		case arg == "--stdin":
			f.useStdin = true
		case wantWebhook && (arg == "-w" || arg == "--webhook"):
			if i+1 >= len(args) {
				return nil, fmt.Errorf("%w: missing value for --webhook", params.ErrInvalidArguments)
			}
			i++
			f.webhook = args[i]
		case wantWebhook && strings.HasPrefix(arg, "--webhook="):
			f.webhook = strings.TrimPrefix(arg, "--webhook=")
		case arg == "--log-level":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("%w: missing value for --log-level", params.ErrInvalidArguments)
			}
			i++
			logLevel = args[i]
		case strings.HasPrefix(arg, "--log-level="):
			logLevel = strings.TrimPrefix(arg, "--log-level=")
		default:
			f.rest = append(f.rest, arg)
		}
	}
	return f, nil
}
