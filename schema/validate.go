package schema

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// ValidationError carries the full list of schema violations found in one
// validation pass.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, ", ")
}

// Validate checks values against the schema and returns all violations
// found, in deterministic order. An empty result means the values are
// valid. Validation never mutates values and is not fail-fast: missing
// required properties, disallowed additional properties, and type/format
// mismatches are all collected in a single pass.
func (s *Schema) Validate(values map[string]any) []string {
	var violations []string

	for _, key := range s.Required {
		if _, ok := values[key]; !ok {
			violations = append(violations, fmt.Sprintf("missing required property %q", key))
		}
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		prop := s.propertyFor(key)
		if prop == nil {
			if s.AdditionalProperties == nil || *s.AdditionalProperties {
				continue
			}
			violations = append(violations, fmt.Sprintf("additional property %q is not allowed", key))
			continue
		}
		if msg := checkProperty(key, prop, values[key]); msg != "" {
			violations = append(violations, msg)
		}
	}
	return violations
}

// ValidateError is a convenience wrapper returning a *ValidationError when
// any violations are found.
func (s *Schema) ValidateError(values map[string]any) error {
	if violations := s.Validate(values); len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

func (s *Schema) propertyFor(key string) *Property {
	if prop, ok := s.Properties[key]; ok {
		return prop
	}
	for pattern, prop := range s.PatternProperties {
		if regexp.MustCompile(pattern).MatchString(key) {
			return prop
		}
	}
	return nil
}

func checkProperty(key string, prop *Property, value any) string {
	switch prop.Type {
	case Object:
		switch value.(type) {
		case map[string]any, map[string]string:
			return ""
		default:
			return fmt.Sprintf("property %q must be an object", key)
		}
	case String:
		s, ok := value.(string)
		if !ok {
			return fmt.Sprintf("property %q must be a string", key)
		}
		return checkFormat(key, prop.Format, s)
	default:
		return ""
	}
}

func checkFormat(key, format, value string) string {
	switch format {
	case FormatInteger:
		if _, err := strconv.Atoi(value); err != nil {
			return fmt.Sprintf("property %q must be an integer, got %q", key, value)
		}
	case FormatNumber:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return fmt.Sprintf("property %q must be a number, got %q", key, value)
		}
	case FormatBoolean:
		if value != "true" && value != "false" {
			return fmt.Sprintf("property %q must be %q or %q, got %q", key, "true", "false", value)
		}
	}
	return ""
}
