package params

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseArgsSimple(t *testing.T) {
	p, err := ParseArgs([]string{
		"--antithesis.duration", "30",
		"--antithesis.description", "test run",
	})
	require.NoError(t, err)
	require.Equal(t, 2, p.Len())
	require.Equal(t, "30", p.GetString("antithesis.duration"))
	require.Equal(t, "test run", p.GetString("antithesis.description"))
}

func TestParseArgsKeepsValuesAsStrings(t *testing.T) {
	p, err := ParseArgs([]string{
		"--count", "42",
		"--enabled", "true",
		"--ratio", "3.14",
	})
	require.NoError(t, err)

	// Values stay strings; the schema layer decides what they must parse as.
	require.Equal(t, "42", p.GetString("count"))
	require.Equal(t, "true", p.GetString("enabled"))
	require.Equal(t, "3.14", p.GetString("ratio"))
}

func TestParseArgsGroupsIntegrations(t *testing.T) {
	p, err := ParseArgs([]string{
		"--antithesis.integrations.github.token", "secret",
		"--antithesis.integrations.github.callback_url", "https://github.com/cb",
	})
	require.NoError(t, err)
	require.Equal(t, 1, p.Len())

	v, ok := p.Get("antithesis.integrations.github")
	require.True(t, ok)
	require.Equal(t, map[string]string{
		"token":        "secret",
		"callback_url": "https://github.com/cb",
	}, v)
}

func TestParseArgsErrors(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		errMsg string
	}{
		{"missing value", []string{"--antithesis.duration"}, "missing value"},
		{"missing flag marker", []string{"notaflag", "value"}, "unexpected argument"},
		{"empty key", []string{"--", "value"}, "empty key"},
		{"second pair malformed", []string{"--a", "1", "b", "2"}, "unexpected argument"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseArgs(tc.tokens)
			require.Error(t, err)
			require.ErrorIs(t, err, ErrInvalidArguments)
			require.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestFromJSON(t *testing.T) {
	p, err := FromJSON(map[string]any{
		"antithesis.duration":     "60",
		"antithesis.is_ephemeral": true,
		"antithesis.retries":      float64(3),
		"antithesis.integrations.github": map[string]any{
			"token": "secret",
		},
	})
	require.NoError(t, err)
	require.Equal(t, "60", p.GetString("antithesis.duration"))
	require.Equal(t, "true", p.GetString("antithesis.is_ephemeral"))
	require.Equal(t, "3", p.GetString("antithesis.retries"))

	v, ok := p.Get("antithesis.integrations.github")
	require.True(t, ok)
	require.Equal(t, map[string]string{"token": "secret"}, v)
}

func TestFromJSONRejectsNonObjects(t *testing.T) {
	for _, input := range []any{"a string", float64(4), []any{"x"}, nil} {
		_, err := FromJSON(input)
		require.Error(t, err)
		require.ErrorIs(t, err, ErrInvalidArguments)
	}
}

func TestFromJSONRejectsArrayValues(t *testing.T) {
	_, err := FromJSON(map[string]any{"key": []any{"a", "b"}})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidArguments)
}

func TestMergeIsRightBiased(t *testing.T) {
	base, err := ParseArgs([]string{
		"--antithesis.duration", "30",
		"--antithesis.description", "base description",
	})
	require.NoError(t, err)

	overlay, err := ParseArgs([]string{
		"--antithesis.duration", "60",
		"--antithesis.report.recipients", "team@example.com",
	})
	require.NoError(t, err)

	base.Merge(overlay)

	require.Equal(t, 3, base.Len())
	require.Equal(t, "60", base.GetString("antithesis.duration"))
	require.Equal(t, "base description", base.GetString("antithesis.description"))
	require.Equal(t, "team@example.com", base.GetString("antithesis.report.recipients"))
}

func TestMergeReplacesObjectValues(t *testing.T) {
	base, err := ParseArgs([]string{
		"--antithesis.integrations.github.token", "old",
		"--antithesis.integrations.github.callback_url", "https://example.com/cb",
	})
	require.NoError(t, err)

	overlay, err := ParseArgs([]string{
		"--antithesis.integrations.github.token", "new",
	})
	require.NoError(t, err)

	base.Merge(overlay)

	// No deep merge: the overlay object fully replaces the base object.
	v, ok := base.Get("antithesis.integrations.github")
	require.True(t, ok)
	require.Equal(t, map[string]string{"token": "new"}, v)
}

func TestRedactedMasksSensitiveValues(t *testing.T) {
	p, err := ParseArgs([]string{
		"--antithesis.duration", "30",
		"--antithesis.integrations.github.token", "secret_token_123",
		"--antithesis.integrations.github.callback_url", "https://example.com/callback",
		"--antithesis.report.recipients", "user@example.com;other@example.com",
		"--deploy.token", "another_secret",
	})
	require.NoError(t, err)

	redacted := p.Redacted()

	require.Equal(t, "30", redacted["antithesis.duration"])
	require.Equal(t, RedactedValue, redacted["antithesis.report.recipients"])
	require.Equal(t, RedactedValue, redacted["deploy.token"])
	require.Equal(t, map[string]string{
		"token":        RedactedValue,
		"callback_url": "https://example.com/callback",
	}, redacted["antithesis.integrations.github"])

	// The key set never changes and the original values are untouched.
	require.Len(t, redacted, p.Len())
	require.Equal(t, "secret_token_123",
		p.WireValue()["antithesis.integrations.github"].(map[string]string)["token"])
}

func TestRedactedIsIdempotent(t *testing.T) {
	p := New()
	p.Set("antithesis.report.recipients", RedactedValue)
	p.Set("a.token", RedactedValue)
	p.Set("plain", "value")

	redacted := p.Redacted()
	require.Equal(t, RedactedValue, redacted["antithesis.report.recipients"])
	require.Equal(t, RedactedValue, redacted["a.token"])
	require.Equal(t, "value", redacted["plain"])
}

func TestWireValueIsACopy(t *testing.T) {
	p, err := ParseArgs([]string{
		"--antithesis.duration", "30",
		"--antithesis.integrations.github.token", "secret",
	})
	require.NoError(t, err)

	wire := p.WireValue()
	wire["antithesis.duration"] = "999"
	wire["antithesis.integrations.github"].(map[string]string)["token"] = "tampered"

	require.Equal(t, "30", p.GetString("antithesis.duration"))
	v, _ := p.Get("antithesis.integrations.github")
	require.Equal(t, "secret", v.(map[string]string)["token"])
}

func TestKeysAreSorted(t *testing.T) {
	p, err := ParseArgs([]string{"--b", "2", "--a", "1", "--c", "3"})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, p.Keys())
}
