package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/antithesishq/snouty/params"
)

func TestCollectParamsFromArgs(t *testing.T) {
	p, err := collectParams(strings.NewReader(""), []string{"--antithesis.duration", "30"}, false, false)
	require.NoError(t, err)
	require.Equal(t, "30", p.GetString("antithesis.duration"))
}

func TestCollectParamsRequiresSomeInput(t *testing.T) {
	_, err := collectParams(strings.NewReader(""), nil, false, false)
	require.Error(t, err)
	require.ErrorIs(t, err, params.ErrInvalidArguments)
	require.Contains(t, err.Error(), "no parameters provided")
}

func TestCollectParamsStdinJSON(t *testing.T) {
	stdin := strings.NewReader(`{"antithesis.duration": "60", "antithesis.is_ephemeral": "true"}`)
	p, err := collectParams(stdin, nil, true, false)
	require.NoError(t, err)
	require.Equal(t, "60", p.GetString("antithesis.duration"))
	require.Equal(t, "true", p.GetString("antithesis.is_ephemeral"))
}

func TestCollectParamsStdinJSON5Tolerance(t *testing.T) {
	stdin := strings.NewReader(`{
		// nightly run settings
		"antithesis.duration": "60",
		"antithesis.description": "from stdin",
	}`)
	p, err := collectParams(stdin, nil, true, false)
	require.NoError(t, err)
	require.Equal(t, "60", p.GetString("antithesis.duration"))
	require.Equal(t, "from stdin", p.GetString("antithesis.description"))
}

func TestCollectParamsCLIArgsOverrideStdin(t *testing.T) {
	stdin := strings.NewReader(`{"antithesis.duration": "60", "antithesis.description": "from stdin"}`)
	p, err := collectParams(stdin, []string{"--antithesis.duration", "120"}, true, false)
	require.NoError(t, err)
	require.Equal(t, "120", p.GetString("antithesis.duration"))
	require.Equal(t, "from stdin", p.GetString("antithesis.description"))
}

func TestCollectParamsMomentOnStdin(t *testing.T) {
	moment := `Moment.from({ session_id: "sess", input_hash: "hash", vtime: 329.8037810830865 })`

	p, err := collectParams(strings.NewReader(moment), nil, true, true)
	require.NoError(t, err)
	require.Equal(t, "sess", p.GetString("antithesis.debugging.session_id"))
	require.Equal(t, "hash", p.GetString("antithesis.debugging.input_hash"))
	require.Equal(t, "329.8037810830865", p.GetString("antithesis.debugging.vtime"))

	// Where Moment.from is not accepted the same input is just bad JSON.
	_, err = collectParams(strings.NewReader(moment), nil, true, false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid JSON")
}

func TestCollectParamsMomentMergesCLIArgs(t *testing.T) {
	moment := `Moment.from({ session_id: "sess", input_hash: "hash", vtime: 12 })`
	args := []string{"--antithesis.report.recipients", "team@example.com"}

	p, err := collectParams(strings.NewReader(moment), args, true, true)
	require.NoError(t, err)
	require.Equal(t, 4, p.Len())
	require.Equal(t, "team@example.com", p.GetString("antithesis.report.recipients"))
}

func TestCollectParamsInvalidStdinJSON(t *testing.T) {
	_, err := collectParams(strings.NewReader("not valid json"), nil, true, false)
	require.Error(t, err)
	require.ErrorIs(t, err, params.ErrInvalidArguments)
	require.Contains(t, err.Error(), "invalid JSON")
}
