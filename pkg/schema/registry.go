package schema

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrymomot/hydroini/pkg/logger"
	"github.com/dmitrymomot/hydroini/pkg/sanitizer"
)

// Registry holds the record types known to a process. Types are registered
// once at startup; afterwards the registry is only read and validation is
// safe for concurrent use.
type Registry struct {
	types            map[string]*RecordType
	headers          map[string]*RecordType
	order            []*RecordType
	defaultDelimiter string
	logger           *slog.Logger
	observer         Observer
	mu               sync.RWMutex
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		types:            make(map[string]*RecordType),
		headers:          make(map[string]*RecordType),
		defaultDelimiter: DefaultDelimiter,
		logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register resolves the inheritance of def and adds the resulting record type.
// The parent must already be registered.
func (r *Registry) Register(def Definition) (*RecordType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := strings.TrimSpace(def.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrInvalidDefinition)
	}
	key := strings.ToLower(name)
	if _, exists := r.types[key]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateType, name)
	}

	rt := &RecordType{
		name:          name,
		header:        def.Header,
		discriminator: strings.ToLower(def.Discriminator),
		delimiter:     def.Delimiter,
		identifier:    strings.ToLower(def.Identifier),
		index:         make(map[string]int),
		origins:       make(map[string]string),
	}

	if def.Parent != "" {
		parent, ok := r.types[strings.ToLower(def.Parent)]
		if !ok {
			return nil, fmt.Errorf("%w: %s (parent of %s)", ErrUnknownParent, def.Parent, name)
		}
		inherit(rt, parent)
	}
	if rt.delimiter == "" {
		rt.delimiter = r.defaultDelimiter
	}

	if err := declareFields(rt, def.Fields); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDefinition, name, err)
	}
	if err := checkReferences(rt); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDefinition, name, err)
	}

	for i, rule := range def.Rules {
		if rule == nil {
			return nil, fmt.Errorf("%w: %s: rule %d is nil", ErrInvalidDefinition, name, i)
		}
		if v, ok := rule.(interface{ Validate() error }); ok {
			if err := v.Validate(); err != nil {
				return nil, fmt.Errorf("%w: %s: rule %d: %w", ErrInvalidDefinition, name, i, err)
			}
		}
		rt.rules = append(rt.rules, rule)
	}

	rt.normalizers = make([]sanitizer.Normalizer, len(rt.fields))
	for i, f := range rt.fields {
		rt.normalizers[i] = r.normalizer(rt, f)
	}

	r.types[key] = rt
	r.order = append(r.order, rt)
	if rt.header != "" {
		if _, taken := r.headers[strings.ToLower(rt.header)]; !taken {
			r.headers[strings.ToLower(rt.header)] = rt
		}
	}

	r.logger.Debug("record type registered",
		logger.RecordType(name),
		slog.String("parent", def.Parent),
		slog.Int("fields", len(rt.fields)),
		slog.Int("rules", len(rt.rules)),
	)
	return rt, nil
}

// MustRegister is like Register but panics on error.
// Intended for catalogs declared at startup.
func (r *Registry) MustRegister(def Definition) *RecordType {
	rt, err := r.Register(def)
	if err != nil {
		panic(err)
	}
	return rt
}

func inherit(rt, parent *RecordType) {
	rt.parent = parent
	rt.fields = slices.Clone(parent.fields)
	rt.index = maps.Clone(parent.index)
	rt.origins = maps.Clone(parent.origins)
	rt.rules = slices.Clone(parent.rules)
	if rt.header == "" {
		rt.header = parent.header
	}
	if rt.discriminator == "" {
		rt.discriminator = parent.discriminator
	}
	if rt.delimiter == "" {
		rt.delimiter = parent.delimiter
	}
	if rt.identifier == "" {
		rt.identifier = parent.identifier
	}
}

// declareFields appends new fields and applies overrides of inherited ones.
// An override keeps the inherited name and type and replaces the default.
func declareFields(rt *RecordType, fields []Field) error {
	own := make(map[string]bool, len(fields))

	for _, f := range fields {
		if f.Name == "" {
			f.Name = f.Alias
		}
		f.Name = strings.ToLower(f.Name)
		if f.Alias == "" {
			f.Alias = f.Name
		}
		if err := checkField(f); err != nil {
			return err
		}
		if own[f.Name] {
			return fmt.Errorf("field %s declared twice", f.Alias)
		}
		own[f.Name] = true

		if i, inherited := rt.index[f.Name]; inherited {
			base := rt.fields[i]
			if !base.Type.equal(f.Type) {
				return fmt.Errorf("field %s cannot change type from %s to %s", f.Alias, base.Type, f.Type)
			}
			base.Default = f.Default
			base.Required = base.Required || f.Required
			rt.fields[i] = base
			continue
		}

		rt.index[f.Name] = len(rt.fields)
		rt.fields = append(rt.fields, f)
		rt.origins[f.Name] = rt.name
	}

	for name := range own {
		f := rt.fields[rt.index[name]]
		if f.Default == nil {
			continue
		}
		if _, _, err := coerce(f.Type, f.Default); err != nil {
			return fmt.Errorf("default of field %s is not %s: %w", f.Alias, f.Type.describe(), err)
		}
	}
	return nil
}

func checkField(f Field) error {
	switch {
	case f.Name == "":
		return errors.New("field without name")
	case f.Delimiter != "" && !f.Type.Sequence:
		return fmt.Errorf("field %s: delimiter on a non-sequence field", f.Alias)
	case f.Repeated && !f.Type.Sequence:
		return fmt.Errorf("field %s: repeated non-sequence field", f.Alias)
	case f.Type.Enum != nil && len(f.Type.Enum.Members) == 0:
		return fmt.Errorf("field %s: enum %s has no members", f.Alias, f.Type.Enum.Name)
	}
	return nil
}

func checkReferences(rt *RecordType) error {
	if rt.discriminator != "" {
		if _, ok := rt.index[rt.discriminator]; !ok {
			return fmt.Errorf("discriminator %s is not a field", rt.discriminator)
		}
	}
	if rt.identifier != "" {
		if _, ok := rt.index[rt.identifier]; !ok {
			return fmt.Errorf("identifier %s is not a field", rt.identifier)
		}
	}
	return nil
}

// normalizer builds the per-field pipeline: split, promote, enum, subtype default.
func (r *Registry) normalizer(rt *RecordType, f Field) sanitizer.Normalizer {
	var steps []sanitizer.Normalizer
	if f.Type.Sequence {
		steps = append(steps, sanitizer.Splitter(rt.Delimiter(f.Name)), sanitizer.PromoteToList)
	}
	if f.Type.Enum != nil {
		steps = append(steps, sanitizer.EnumMatcher(f.Type.Enum.Members))
	}
	if f.FromSubtypes {
		origin, field := rt.origins[f.Name], f.Name
		steps = append(steps, func(v any) any {
			if d, ok := r.SubtypeDefault(origin, field, v); ok {
				return d
			}
			return v
		})
	}
	return sanitizer.Chain(steps...)
}

// Lookup returns the record type registered under name, ignoring case.
func (r *Registry) Lookup(name string) (*RecordType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rt, ok := r.types[strings.ToLower(name)]
	return rt, ok
}

// ByHeader returns the first record type registered for an INI section header.
func (r *Registry) ByHeader(header string) (*RecordType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rt, ok := r.headers[strings.ToLower(strings.TrimSpace(header))]
	return rt, ok
}

// Types lists the registered record types in registration order.
func (r *Registry) Types() []*RecordType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}

// Subtype finds the descendant of typeName whose default for field matches
// value, ignoring case. Descendants are searched in registration order.
func (r *Registry) Subtype(typeName, field string, value any) (*RecordType, bool) {
	s, ok := value.(string)
	if !ok {
		return nil, false
	}
	s = strings.TrimSpace(s)

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.order {
		if strings.EqualFold(t.name, typeName) || !t.IsA(typeName) {
			continue
		}
		f, ok := t.Field(field)
		if !ok || f.Default == nil {
			continue
		}
		if strings.EqualFold(fmt.Sprint(f.Default), s) {
			return t, true
		}
	}
	return nil, false
}

// SubtypeDefault resolves value against the defaults that descendants of
// typeName declare for field and returns the matching default.
func (r *Registry) SubtypeDefault(typeName, field string, value any) (any, bool) {
	t, ok := r.Subtype(typeName, field, value)
	if !ok {
		return nil, false
	}
	f, _ := t.Field(field)
	return f.Default, true
}

// Resolve picks the record type for a section. When the type registered for
// header has a discriminator, the subtype selected by the raw discriminator
// value is returned. Unrecognized values fall back to the header's type.
func (r *Registry) Resolve(header string, raw map[string]any) (*RecordType, error) {
	base, ok := r.ByHeader(header)
	if !ok {
		return nil, fmt.Errorf("%w: [%s]", ErrUnknownHeader, header)
	}
	if base.discriminator == "" {
		return base, nil
	}

	val, ok := lookupRaw(raw, base.discriminator)
	if !ok {
		return base, nil
	}
	if s, isString := val.(string); isString && strings.TrimSpace(s) == "" {
		return base, nil
	}

	if sub, found := r.Subtype(base.name, base.discriminator, val); found {
		return sub, nil
	}

	r.logger.Warn("unrecognized subtype, validating as base record type",
		logger.Section(header),
		logger.RecordType(base.name),
		logger.Field(base.discriminator),
		slog.Any("value", val),
	)
	return base, nil
}

func lookupRaw(raw map[string]any, name string) (any, bool) {
	if v, ok := raw[name]; ok && v != nil {
		return v, true
	}
	for k, v := range raw {
		if strings.EqualFold(k, name) && v != nil {
			return v, true
		}
	}
	return nil, false
}
