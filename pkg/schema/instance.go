package schema

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/hydroini/pkg/validator"
)

// Record is a validated instance of a record type. Known fields hold typed,
// normalized and defaulted values; keys the record type does not declare are
// kept opaquely as extensions.
//
// Set does not re-validate. Feed Raw back through the registry before writing
// a mutated record.
type Record struct {
	rt         *RecordType
	values     validator.Values
	extensions map[string]any
}

func newRecord(rt *RecordType, values validator.Values) *Record {
	rec := &Record{
		rt:         rt,
		values:     make(validator.Values, len(rt.fields)),
		extensions: make(map[string]any),
	}
	for k, v := range values {
		if _, known := rt.index[k]; known {
			rec.values[k] = v
		} else {
			rec.extensions[k] = v
		}
	}
	return rec
}

func (r *Record) Type() *RecordType { return r.rt }

// Identifier returns the value of the record type's identifier field, if any.
func (r *Record) Identifier() string {
	if r.rt.identifier == "" {
		return ""
	}
	v, ok := r.Get(r.rt.identifier)
	if !ok {
		return ""
	}
	return display(v)
}

// Get returns the value of a known field or extension key.
func (r *Record) Get(name string) (any, bool) {
	key := strings.ToLower(name)
	if v, ok := r.values.Lookup(key); ok {
		return v, true
	}
	v, ok := r.extensions[key]
	return v, ok && v != nil
}

func (r *Record) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

func (r *Record) String(name string) string {
	v, _ := r.Get(name)
	return cast.ToString(v)
}

func (r *Record) Float(name string) float64 {
	v, _ := r.Get(name)
	return cast.ToFloat64(v)
}

func (r *Record) Int(name string) int {
	v, _ := r.Get(name)
	return cast.ToInt(v)
}

func (r *Record) Bool(name string) bool {
	v, _ := r.Get(name)
	return cast.ToBool(v)
}

func (r *Record) Strings(name string) []string {
	v, _ := r.Get(name)
	return cast.ToStringSlice(v)
}

func (r *Record) Floats(name string) []float64 {
	v, _ := r.Get(name)
	if f, ok := v.([]float64); ok {
		return slices.Clone(f)
	}
	items, ok := toItems(v)
	if !ok {
		return nil
	}
	out := make([]float64, 0, len(items))
	for _, item := range items {
		out = append(out, cast.ToFloat64(item))
	}
	return out
}

// Set stores v under name. A nil value removes the key.
func (r *Record) Set(name string, v any) {
	key := strings.ToLower(name)
	target := r.extensions
	if _, known := r.rt.index[key]; known {
		target = r.values
	}
	if v == nil {
		delete(target, key)
		return
	}
	target[key] = v
}

// Extensions returns a copy of the keys the record type does not declare.
func (r *Record) Extensions() map[string]any {
	return maps.Clone(r.extensions)
}

// Raw returns every value keyed by lower-cased name, suitable for validating again.
func (r *Record) Raw() map[string]any {
	raw := make(map[string]any, len(r.values)+len(r.extensions))
	maps.Copy(raw, r.extensions)
	maps.Copy(raw, r.values)
	return raw
}

// Entry is one key of a record in write order.
type Entry struct {
	Key   string
	Field *Field
	Value any
}

// Entries lists known fields in declaration order, spelled by their alias,
// followed by extensions in key order.
func (r *Record) Entries() []Entry {
	entries := make([]Entry, 0, len(r.values)+len(r.extensions))
	for i := range r.rt.fields {
		f := &r.rt.fields[i]
		if v, ok := r.values.Lookup(f.Name); ok {
			entries = append(entries, Entry{Key: f.Alias, Field: f, Value: v})
		}
	}
	for _, k := range slices.Sorted(maps.Keys(r.extensions)) {
		if v := r.extensions[k]; v != nil {
			entries = append(entries, Entry{Key: k, Value: v})
		}
	}
	return entries
}

// MarshalYAML renders the record as an ordered mapping.
func (r *Record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range r.Entries() {
		var value yaml.Node
		if err := value.Encode(e.Value); err != nil {
			return nil, fmt.Errorf("encode %s: %w", e.Key, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key},
			&value,
		)
	}
	return node, nil
}

// Map returns the entries keyed by their written spelling.
func (r *Record) Map() map[string]any {
	m := make(map[string]any, len(r.values)+len(r.extensions))
	for _, e := range r.Entries() {
		m[e.Key] = e.Value
	}
	return m
}
