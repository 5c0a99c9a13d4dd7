package schema

import (
	"slices"
	"strings"

	"github.com/dmitrymomot/hydroini/pkg/sanitizer"
	"github.com/dmitrymomot/hydroini/pkg/validator"
)

// Definition declares a record type. Register turns it into a RecordType.
type Definition struct {
	Name string
	// Parent names a registered record type whose fields and rules are inherited.
	Parent string
	// Header is the INI section header the record type is read from.
	// Inherited from the parent when empty.
	Header string
	// Discriminator names the field that selects a subtype of this record
	// type, such as "type" for structures. Inherited from the parent when empty.
	Discriminator string
	// Delimiter splits sequence fields without their own delimiter.
	Delimiter string
	// Identifier names the field reports identify an instance by.
	Identifier string
	Fields     []Field
	Rules      []validator.Rule
}

// RecordType is a registered, immutable record type with its inheritance
// resolved.
type RecordType struct {
	name          string
	parent        *RecordType
	header        string
	discriminator string
	delimiter     string
	identifier    string
	fields        []Field
	index         map[string]int
	// origins maps a field name to the record type that first declared it.
	origins     map[string]string
	normalizers []sanitizer.Normalizer
	rules       []validator.Rule
}

func (rt *RecordType) Name() string { return rt.name }

// Parent returns the parent record type, or nil for a root type.
func (rt *RecordType) Parent() *RecordType { return rt.parent }

func (rt *RecordType) Header() string        { return rt.header }
func (rt *RecordType) Discriminator() string { return rt.discriminator }
func (rt *RecordType) Identifier() string    { return rt.identifier }

// Fields returns the effective fields in declaration order, parent fields first.
func (rt *RecordType) Fields() []Field {
	return slices.Clone(rt.fields)
}

// Field looks up a field by name, ignoring case.
func (rt *RecordType) Field(name string) (Field, bool) {
	i, ok := rt.index[strings.ToLower(name)]
	if !ok {
		return Field{}, false
	}
	return rt.fields[i], true
}

// Rules returns the effective rules, inherited rules first.
func (rt *RecordType) Rules() []validator.Rule {
	return slices.Clone(rt.rules)
}

// Delimiter returns the delimiter used to split the named sequence field.
func (rt *RecordType) Delimiter(field string) string {
	if f, ok := rt.Field(field); ok && f.Delimiter != "" {
		return f.Delimiter
	}
	return rt.delimiter
}

// IsA reports whether rt is the named record type or one of its descendants.
func (rt *RecordType) IsA(name string) bool {
	for t := rt; t != nil; t = t.parent {
		if strings.EqualFold(t.name, name) {
			return true
		}
	}
	return false
}

func (rt *RecordType) String() string { return rt.name }
