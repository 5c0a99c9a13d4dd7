package validator

import "errors"

var (
	// ErrInvalidRule is returned when a rule is declared with inconsistent parameters.
	ErrInvalidRule = errors.New("invalid rule")

	// ErrNoLocationForm is returned when a location rule has every form disabled.
	ErrNoLocationForm = errors.New("location rule has no enabled form")

	// ErrNotInteger is returned by ToInt for values without an integer value.
	ErrNotInteger = errors.New("not an integer")
)
