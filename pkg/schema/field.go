package schema

import "strings"

// Field describes one attribute of a record type.
type Field struct {
	// Name is the lower-cased key used for lookups.
	Name string
	// Alias is the spelling used when writing the field back.
	Alias string
	Type  Type
	// Default is applied when the field is absent. nil means no default.
	Default any
	// Delimiter splits string values of sequence fields. Empty falls back to
	// the record type delimiter.
	Delimiter string
	Required  bool
	// Repeated sequences are written as one key per element.
	Repeated bool
	// FromSubtypes resolves raw values against the defaults that subtypes
	// declare for this field.
	FromSubtypes bool
}

func newField(alias string, t Type) Field {
	return Field{Name: strings.ToLower(alias), Alias: alias, Type: t}
}

func String(alias string) Field { return newField(alias, Type{Scalar: ScalarString}) }
func Bool(alias string) Field   { return newField(alias, Type{Scalar: ScalarBool}) }
func Int(alias string) Field    { return newField(alias, Type{Scalar: ScalarInt}) }
func Float(alias string) Field  { return newField(alias, Type{Scalar: ScalarFloat}) }
func Path(alias string) Field   { return newField(alias, Type{Scalar: ScalarPath}) }

// EnumOf declares a field restricted to the members of e.
func EnumOf(alias string, e *Enum) Field {
	return newField(alias, Type{Scalar: ScalarString, Enum: e})
}

// ListOf declares a sequence field of scalar values.
func ListOf(alias string, scalar Scalar) Field {
	return newField(alias, Type{Scalar: scalar, Sequence: true})
}

// EnumListOf declares a sequence field whose elements belong to e.
func EnumListOf(alias string, e *Enum) Field {
	return newField(alias, Type{Scalar: ScalarString, Enum: e, Sequence: true})
}

func (f Field) WithDefault(v any) Field {
	f.Default = v
	return f
}

func (f Field) WithDelimiter(delim string) Field {
	f.Delimiter = delim
	return f
}

func (f Field) MarkRequired() Field {
	f.Required = true
	return f
}

func (f Field) MarkRepeated() Field {
	f.Repeated = true
	return f
}

func (f Field) ResolveFromSubtypes() Field {
	f.FromSubtypes = true
	return f
}
