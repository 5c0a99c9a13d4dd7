package schema

import (
	"fmt"
	"slices"
	"strings"
)

// Scalar is the kind of a single value.
type Scalar int

const (
	ScalarString Scalar = iota
	ScalarBool
	ScalarInt
	ScalarFloat
	// ScalarPath is a file reference. It is kept verbatim and never resolved.
	ScalarPath
)

func (s Scalar) String() string {
	switch s {
	case ScalarString:
		return "string"
	case ScalarBool:
		return "bool"
	case ScalarInt:
		return "int"
	case ScalarFloat:
		return "float"
	case ScalarPath:
		return "path"
	default:
		return fmt.Sprintf("Scalar(%d)", int(s))
	}
}

// Enum is a closed set of string values. Members hold the canonical spellings.
type Enum struct {
	Name    string
	Members []string
}

func NewEnum(name string, members ...string) *Enum {
	return &Enum{Name: name, Members: members}
}

// Contains reports whether v is spelled exactly like a member.
func (e *Enum) Contains(v string) bool {
	return slices.Contains(e.Members, v)
}

// Type is the semantic type of a field.
type Type struct {
	Scalar Scalar
	// Enum restricts string values to a closed set.
	Enum     *Enum
	Sequence bool
}

func (t Type) String() string {
	base := t.Scalar.String()
	if t.Enum != nil {
		base = "enum(" + t.Enum.Name + ")"
	}
	if t.Sequence {
		return "list[" + base + "]"
	}
	return base
}

func (t Type) equal(other Type) bool {
	if t.Scalar != other.Scalar || t.Sequence != other.Sequence {
		return false
	}
	if t.Enum == nil || other.Enum == nil {
		return t.Enum == other.Enum
	}
	return t.Enum.Name == other.Enum.Name
}

// describe renders the type for violation messages.
func (t Type) describe() string {
	if t.Enum != nil {
		base := "one of " + strings.Join(t.Enum.Members, ", ")
		if t.Sequence {
			return "a list of values " + base
		}
		return base
	}
	article := "a"
	if t.Scalar == ScalarInt {
		article = "an"
	}
	if t.Sequence {
		return "a list of " + t.Scalar.String() + " values"
	}
	return article + " " + t.Scalar.String()
}
