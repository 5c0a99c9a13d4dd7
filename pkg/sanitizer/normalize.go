package sanitizer

import (
	"reflect"
	"strings"

	"golang.org/x/text/cases"
)

// SplitDelimited splits a string on delim, trims every segment and drops the
// empty ones. Any other value, including an already split sequence, is
// returned unchanged.
func SplitDelimited(v any, delim string) any {
	s, ok := v.(string)
	if !ok || delim == "" {
		return v
	}

	parts := strings.Split(s, delim)
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}

// Splitter returns a Normalizer splitting on delim.
func Splitter(delim string) Normalizer {
	return func(v any) any { return SplitDelimited(v, delim) }
}

// PromoteToList wraps a non-sequence value into a single element sequence.
// Strings become []string, everything else []any. nil stays nil.
func PromoteToList(v any) any {
	if v == nil || IsSequence(v) {
		return v
	}
	if s, ok := v.(string); ok {
		return []string{s}
	}
	return []any{v}
}

// NormalizeEnum replaces a string that matches one of members, ignoring case,
// with the canonical member. Sequences are matched element by element.
// Whitespace is significant and unmatched values are left for type coercion
// to reject.
func NormalizeEnum(v any, members []string) any {
	if len(members) == 0 {
		return v
	}

	folder := cases.Fold()
	folded := make([]string, len(members))
	for i, m := range members {
		folded[i] = folder.String(m)
	}

	match := func(s string) string {
		key := folder.String(s)
		for i, f := range folded {
			if f == key {
				return members[i]
			}
		}
		return s
	}

	switch val := v.(type) {
	case string:
		return match(val)
	case []string:
		out := make([]string, len(val))
		for i, s := range val {
			out[i] = match(s)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			if s, ok := item.(string); ok {
				out[i] = match(s)
				continue
			}
			out[i] = item
		}
		return out
	default:
		return v
	}
}

// EnumMatcher returns a Normalizer for the closed set members.
func EnumMatcher(members []string) Normalizer {
	return func(v any) any { return NormalizeEnum(v, members) }
}

// IsSequence reports whether v is a slice or array.
func IsSequence(v any) bool {
	if v == nil {
		return false
	}
	switch v.(type) {
	case []string, []any:
		return true
	}
	k := reflect.TypeOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

// Len returns the number of elements of a sequence, 1 for any other non-nil
// value and 0 for nil.
func Len(v any) int {
	switch val := v.(type) {
	case nil:
		return 0
	case []string:
		return len(val)
	case []any:
		return len(val)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Len()
	default:
		return 1
	}
}
