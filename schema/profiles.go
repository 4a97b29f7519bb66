package schema

// The two parameter profiles accepted by the launch API. Test runs are
// open: any custom dotted key outside the declared set passes through as
// metadata. Debugging sessions are closed: only the declared keys and the
// reserved antithesis namespace are accepted.

// TestParams returns the validation rules for launching a test run.
func TestParams() *Schema {
	return &Schema{
		Type: Object,
		Required: []string{
			"antithesis.duration",
		},
		Properties: map[string]*Property{
			"antithesis.duration": {
				Type: String, Format: FormatInteger,
				Description: "Test duration in minutes",
			},
			"antithesis.description": {
				Type:        String,
				Description: "Human-readable description of the run",
			},
			"antithesis.test_name": {
				Type:        String,
				Description: "Name of the test to run",
			},
			"antithesis.config_image": {
				Type:        String,
				Description: "Config image to launch with",
			},
			"antithesis.images": {
				Type:        String,
				Description: "Semicolon-separated list of images under test",
			},
			"antithesis.is_ephemeral": {
				Type: String, Format: FormatBoolean,
				Description: "Whether the environment is torn down after the run",
			},
			"antithesis.report.recipients": {
				Type:        String,
				Description: "Semicolon-separated report recipient emails",
			},
		},
		PatternProperties: map[string]*Property{
			`^antithesis\.integrations\.[A-Za-z0-9_-]+$`: {
				Type:        Object,
				Description: "Per-integration settings (callback_url, token, ...)",
			},
		},
		AdditionalProperties: boolPtr(true),
	}
}

// DebuggingParams returns the validation rules for launching a debugging
// session.
func DebuggingParams() *Schema {
	return &Schema{
		Type: Object,
		Required: []string{
			"antithesis.debugging.session_id",
			"antithesis.debugging.input_hash",
			"antithesis.debugging.vtime",
		},
		Properties: map[string]*Property{
			"antithesis.debugging.session_id": {
				Type:        String,
				Description: "Session to debug, from the triage report",
			},
			"antithesis.debugging.input_hash": {
				Type:        String,
				Description: "Input hash identifying the history to replay",
			},
			"antithesis.debugging.vtime": {
				Type: String, Format: FormatNumber,
				Description: "Virtual time of the moment to debug",
			},
		},
		PatternProperties: map[string]*Property{
			// Reserved namespace keys pass through unconstrained.
			`^antithesis\.`: {},
		},
		AdditionalProperties: boolPtr(false),
	}
}

func boolPtr(b bool) *bool {
	return &b
}
