package validator

import (
	"maps"
	"strings"
)

// Values is the attribute mapping of one record, keyed by lower-cased field name.
type Values map[string]any

// Lookup returns the value stored for name and whether it is present and non-nil.
func (v Values) Lookup(name string) (any, bool) {
	val, ok := v[strings.ToLower(name)]
	if !ok || val == nil {
		return nil, false
	}
	return val, true
}

func (v Values) Has(name string) bool {
	_, ok := v.Lookup(name)
	return ok
}

func (v Values) Set(name string, val any) {
	v[strings.ToLower(name)] = val
}

func (v Values) Clone() Values {
	return maps.Clone(v)
}
