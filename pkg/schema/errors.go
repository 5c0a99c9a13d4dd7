package schema

import "errors"

var (
	// ErrInvalidDefinition is returned when a record type declaration is malformed.
	ErrInvalidDefinition = errors.New("invalid record type definition")

	// ErrDuplicateType is returned when a record type name is registered twice.
	ErrDuplicateType = errors.New("record type already registered")

	// ErrUnknownParent is returned when a definition names a parent that is not registered.
	ErrUnknownParent = errors.New("unknown parent record type")

	// ErrUnknownType is returned when validating against an unregistered record type.
	ErrUnknownType = errors.New("unknown record type")

	// ErrUnknownHeader is returned when no record type is registered for a section header.
	ErrUnknownHeader = errors.New("no record type for section header")
)
