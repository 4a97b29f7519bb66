// Package moment parses the Moment.from(...) literal that Antithesis triage
// reports use to identify a point in a test run. The literal is a JavaScript
// object literal wrapped in a Moment.from call, e.g.
//
//	Moment.from({ session_id: "f89d...-44-22", input_hash: "6057...", vtime: 329.8 })
//
// It is accepted only as debugging-session input; its keys are remapped into
// the antithesis.debugging namespace.
package moment

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/flynn/json5"

	"github.com/antithesishq/snouty/params"
)

const prefix = "Moment.from("

// debuggingKeys maps the literal's top-level keys to their dotted parameter
// names. Any other key is rejected.
var debuggingKeys = map[string]string{
	"session_id": "antithesis.debugging.session_id",
	"input_hash": "antithesis.debugging.input_hash",
	"vtime":      "antithesis.debugging.vtime",
}

// Detect reports whether the input looks like a Moment.from literal. This is
// a cheap shape check; it does not fully parse the body.
func Detect(input string) bool {
	s := strings.TrimSpace(input)
	return strings.HasPrefix(s, prefix) && strings.HasSuffix(s, ")")
}

// Parse decodes a Moment.from literal into debugging-session parameters.
// The object body follows relaxed JavaScript conventions: unquoted keys,
// single- or double-quoted strings, bare numbers, trailing commas. Numbers
// are stored as their shortest decimal string representation.
func Parse(input string) (*params.Params, error) {
	s := strings.TrimSpace(input)
	if !Detect(s) {
		return nil, fmt.Errorf("%w: not a Moment.from literal", params.ErrInvalidArguments)
	}
	body := strings.TrimSuffix(strings.TrimPrefix(s, prefix), ")")

	var obj map[string]any
	if err := json5.Unmarshal([]byte(body), &obj); err != nil {
		return nil, fmt.Errorf("%w: malformed Moment.from literal: %v", params.ErrInvalidArguments, err)
	}

	p := params.New()
	for key, value := range obj {
		target, ok := debuggingKeys[key]
		if !ok {
			return nil, fmt.Errorf("%w: unrecognized key %q in Moment.from input", params.ErrInvalidArguments, key)
		}
		s, err := stringify(value)
		if err != nil {
			return nil, fmt.Errorf("%w: key %q: %v", params.ErrInvalidArguments, key, err)
		}
		p.Set(target, s)
	}
	return p, nil
}

func stringify(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return "", fmt.Errorf("unsupported value of type %T", v)
	}
}
