// Package neparse converts untyped form-field values into typed optional
// values. Absence and parse failure both collapse to nil; nothing at this
// layer is a fatal error.
package neparse

import (
	"strconv"
	"strings"
	"time"
)

// OptInt32 parses s as a 32-bit integer. Non-numeric input yields nil.
func OptInt32(s *string) *int32 {
	if s == nil {
		return nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(*s), 10, 32)
	if err != nil {
		return nil
	}
	v := int32(n)
	return &v
}

// OptString copies the value through when present.
func OptString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// StringList converts a slice of arbitrary values to strings, with a missing
// slice yielding an empty list. Non-string entries become "".
func StringList(values []any) []string {
	if values == nil {
		return []string{}
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		s, _ := v.(string)
		out = append(out, s)
	}
	return out
}

// OptStringList is StringList, except a missing slice stays nil.
func OptStringList(values []any) *[]string {
	if values == nil {
		return nil
	}
	out := StringList(values)
	return &out
}

// OptBool parses s as a boolean. Anything but true/false yields nil.
func OptBool(s *string) *bool {
	if s == nil {
		return nil
	}
	v, err := strconv.ParseBool(strings.TrimSpace(*s))
	if err != nil {
		return nil
	}
	return &v
}

// OptTime parses an RFC3339 string into a UTC timestamp. Parse failure
// yields nil.
func OptTime(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(*s))
	if err != nil {
		return nil
	}
	utc := t.UTC()
	return &utc
}

// FormatTime renders t as an RFC3339 UTC string truncated to whole seconds.
func FormatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Truncate(time.Second).Format(time.RFC3339)
	return &s
}

// InferValue classifies a raw form-field string into the narrowest
// JSON-compatible scalar. Order matters: a quoted literal stays a string,
// so `"true"` survives as the text true while an unquoted true becomes a
// boolean. Datetimes stay RFC3339 strings but are validated here so later
// binding can trust them.
func InferValue(raw string) any {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) >= 2 && strings.HasPrefix(trimmed, `"`) && strings.HasSuffix(trimmed, `"`) {
		return trimmed[1 : len(trimmed)-1]
	}
	if trimmed == "true" {
		return true
	}
	if trimmed == "false" {
		return false
	}
	if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return f
	}
	if _, err := time.Parse(time.RFC3339, trimmed); err == nil {
		return trimmed
	}
	return trimmed
}
