package params

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidArguments indicates malformed parameter input, whether from CLI
// tokens or from stdin. Wrapped errors carry the specific cause.
var ErrInvalidArguments = errors.New("invalid arguments")

// RedactedValue replaces sensitive values in display output.
const RedactedValue = "[REDACTED]"

// Keys matching this pattern are grouped into a single object-valued entry
// keyed by the integration name, with the final segment as the member name.
var integrationKeyPattern = regexp.MustCompile(`^(antithesis\.integrations\.[A-Za-z0-9_-]+)\.([A-Za-z0-9_]+)$`)

// Params holds the parameters collected for one launch request. Keys are
// dotted strings. Values are strings, except for integration blocks which
// are string-valued objects. No type coercion happens at this layer; the
// schema profiles decide whether a value like "30" is acceptable.
type Params struct {
	values map[string]any
}

// New returns an empty Params.
func New() *Params {
	return &Params{values: make(map[string]any)}
}

// ParseArgs consumes `--key value` token pairs. Keys in the reserved
// integrations namespace are grouped into per-integration objects, e.g.
//
//	--antithesis.integrations.github.token t --antithesis.integrations.github.callback_url u
//
// becomes {"antithesis.integrations.github": {"token": "t", "callback_url": "u"}}.
// All other keys are stored flat with their values as raw strings.
func ParseArgs(tokens []string) (*Params, error) {
	p := New()
	for i := 0; i < len(tokens); i++ {
		arg := tokens[i]
		key, ok := strings.CutPrefix(arg, "--")
		if !ok {
			return nil, fmt.Errorf("%w: unexpected argument: %s", ErrInvalidArguments, arg)
		}
		if key == "" {
			return nil, fmt.Errorf("%w: empty key after --", ErrInvalidArguments)
		}
		if i+1 >= len(tokens) {
			return nil, fmt.Errorf("%w: missing value for --%s", ErrInvalidArguments, key)
		}
		i++
		p.Set(key, tokens[i])
	}
	return p, nil
}

// FromJSON builds Params from a decoded JSON value, which must be an object.
// Scalar members are stored as strings: numeric and boolean literals are
// converted to their literal string form so that stdin input validates the
// same way CLI input does. Object-valued members are kept as string-valued
// objects. Arrays and nulls are rejected.
func FromJSON(v any) (*Params, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrInvalidArguments)
	}
	p := New()
	for key, value := range obj {
		switch value := value.(type) {
		case map[string]any:
			block := make(map[string]string, len(value))
			for member, mv := range value {
				s, err := stringifyScalar(mv)
				if err != nil {
					return nil, fmt.Errorf("%w: property %q member %q: %v", ErrInvalidArguments, key, member, err)
				}
				block[member] = s
			}
			p.values[key] = block
		default:
			s, err := stringifyScalar(value)
			if err != nil {
				return nil, fmt.Errorf("%w: property %q: %v", ErrInvalidArguments, key, err)
			}
			p.values[key] = s
		}
	}
	return p, nil
}

func stringifyScalar(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return "", fmt.Errorf("unsupported value of type %T", v)
	}
}

// Set stores a string value under the given dotted key, grouping keys in
// the integrations namespace into their object-valued entry.
func (p *Params) Set(key, value string) {
	if m := integrationKeyPattern.FindStringSubmatch(key); m != nil {
		base, member := m[1], m[2]
		block, ok := p.values[base].(map[string]string)
		if !ok {
			block = make(map[string]string)
			p.values[base] = block
		}
		block[member] = value
		return
	}
	p.values[key] = value
}

// Get returns the value stored under key.
func (p *Params) Get(key string) (any, bool) {
	v, ok := p.values[key]
	return v, ok
}

// GetString returns the string value stored under key, or "" if the key is
// absent or object-valued.
func (p *Params) GetString(key string) string {
	s, _ := p.values[key].(string)
	return s
}

// Len returns the number of top-level keys.
func (p *Params) Len() int {
	return len(p.values)
}

// Keys returns the top-level keys in sorted order.
func (p *Params) Keys() []string {
	keys := make([]string, 0, len(p.values))
	for k := range p.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Merge overlays other onto p. The merge is right-biased and key-wise: a
// key present in other fully replaces the entry in p, including
// object-valued entries. Keys only present on either side are preserved.
func (p *Params) Merge(other *Params) {
	if other == nil {
		return
	}
	for key, value := range other.values {
		p.values[key] = value
	}
}

// WireValue returns the full, unredacted parameter object sent as the
// request body's "params" field. The result is a copy; mutating it does not
// affect p.
func (p *Params) WireValue() map[string]any {
	out := make(map[string]any, len(p.values))
	for key, value := range p.values {
		switch value := value.(type) {
		case map[string]string:
			block := make(map[string]string, len(value))
			for member, mv := range value {
				block[member] = mv
			}
			out[key] = block
		default:
			out[key] = value
		}
	}
	return out
}

// Redacted returns a copy for display with sensitive values masked. String
// values are masked when the key itself is sensitive; members of
// object-valued entries are masked when the composed "key.member" name is
// sensitive. The key set is never changed and masking is idempotent.
// The redacted view is for display only and is never sent to the API.
func (p *Params) Redacted() map[string]any {
	out := make(map[string]any, len(p.values))
	for key, value := range p.values {
		switch value := value.(type) {
		case map[string]string:
			block := make(map[string]string, len(value))
			for member, mv := range value {
				if isSensitiveKey(key + "." + member) {
					block[member] = RedactedValue
				} else {
					block[member] = mv
				}
			}
			out[key] = block
		case string:
			if isSensitiveKey(key) {
				out[key] = RedactedValue
			} else {
				out[key] = value
			}
		default:
			out[key] = value
		}
	}
	return out
}

func isSensitiveKey(key string) bool {
	return strings.HasSuffix(key, ".token") || key == "antithesis.report.recipients"
}
