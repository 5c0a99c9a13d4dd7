package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/cast"

	"github.com/dmitrymomot/hydroini/pkg/validator"
)

var (
	errNotMember = errors.New("not a member")
	errBlankItem = errors.New("blank value")
)

// coerce converts a normalized value to the Go representation of t:
// bool, int, float64 or string, and typed slices of those for sequences.
// present is false when the value carries nothing, such as a blank string
// for a numeric field.
func coerce(t Type, v any) (value any, present bool, err error) {
	if v == nil {
		return nil, false, nil
	}
	if !t.Sequence {
		return coerceScalar(t, v)
	}

	items, ok := toItems(v)
	if !ok {
		items = []any{v}
	}

	switch {
	case t.Enum != nil, t.Scalar == ScalarString, t.Scalar == ScalarPath:
		return coerceSlice[string](t, items)
	case t.Scalar == ScalarBool:
		return coerceSlice[bool](t, items)
	case t.Scalar == ScalarInt:
		return coerceSlice[int](t, items)
	default:
		return coerceSlice[float64](t, items)
	}
}

func coerceSlice[T any](t Type, items []any) (any, bool, error) {
	elem := Type{Scalar: t.Scalar, Enum: t.Enum}
	out := make([]T, 0, len(items))
	for i, item := range items {
		val, present, err := coerceScalar(elem, item)
		if err != nil {
			return nil, false, fmt.Errorf("item %d: %w", i, err)
		}
		if !present {
			return nil, false, fmt.Errorf("item %d: %w", i, errBlankItem)
		}
		out = append(out, val.(T))
	}
	return out, true, nil
}

func coerceScalar(t Type, v any) (any, bool, error) {
	if s, ok := v.(string); ok && !t.verbatim() {
		trimmed := strings.TrimSpace(s)
		if trimmed == "" {
			return nil, false, nil
		}
		// whitespace is significant for enum members
		if t.Enum == nil {
			v = trimmed
		}
	}

	switch {
	case t.Enum != nil:
		s, err := cast.ToStringE(v)
		if err != nil {
			return nil, false, err
		}
		if !t.Enum.Contains(s) {
			return nil, false, errNotMember
		}
		return s, true, nil
	case t.Scalar == ScalarBool:
		b, err := toBool(v)
		return b, err == nil, err
	case t.Scalar == ScalarInt:
		n, err := validator.ToInt(v)
		return n, err == nil, err
	case t.Scalar == ScalarFloat:
		f, err := cast.ToFloat64E(v)
		return f, err == nil, err
	default:
		s, err := cast.ToStringE(v)
		return s, err == nil, err
	}
}

// verbatim reports whether blank strings are values of t rather than absence.
func (t Type) verbatim() bool {
	return t.Enum == nil && (t.Scalar == ScalarString || t.Scalar == ScalarPath)
}

func toBool(v any) (bool, error) {
	if s, ok := v.(string); ok {
		switch strings.ToLower(s) {
		case "yes", "on":
			return true, nil
		case "no", "off":
			return false, nil
		}
	}
	return cast.ToBoolE(v)
}

func toItems(v any) ([]any, bool) {
	switch val := v.(type) {
	case []any:
		return val, true
	case []string:
		out := make([]any, len(val))
		for i, s := range val {
			out[i] = s
		}
		return out, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
