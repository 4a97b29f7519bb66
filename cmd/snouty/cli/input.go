package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/flynn/json5"

	"github.com/antithesishq/snouty/moment"
	"github.com/antithesishq/snouty/params"
)

// collectParams gathers parameters for one invocation. Without --stdin the
// trailing `--key value` tokens are the only source. With --stdin the input
// is parsed first (JSON5, or Moment.from where allowed) and any trailing
// tokens are merged over it, CLI values winning per key.
func collectParams(stdin io.Reader, args []string, useStdin, allowMoment bool) (*params.Params, error) {
	if !useStdin {
		if len(args) == 0 {
			return nil, fmt.Errorf("%w: no parameters provided", params.ErrInvalidArguments)
		}
		return params.ParseArgs(args)
	}

	input, err := readStdin(stdin)
	if err != nil {
		return nil, err
	}
	base, err := parseInput(input, allowMoment)
	if err != nil {
		return nil, err
	}
	if len(args) > 0 {
		overlay, err := params.ParseArgs(args)
		if err != nil {
			return nil, err
		}
		base.Merge(overlay)
	}
	return base, nil
}

func readStdin(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read stdin: %v", params.ErrInvalidArguments, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// parseInput decodes a stdin blob. JSON parsing is JSON5-tolerant, so
// comments and trailing commas are fine.
func parseInput(input string, allowMoment bool) (*params.Params, error) {
	if allowMoment && moment.Detect(input) {
		return moment.Parse(input)
	}
	var v any
	if err := json5.Unmarshal([]byte(input), &v); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", params.ErrInvalidArguments, err)
	}
	return params.FromJSON(v)
}
