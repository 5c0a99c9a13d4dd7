package validator

import (
	"fmt"

	"github.com/dmitrymomot/hydroini/pkg/sanitizer"
)

// ListLength checks that list fields hold exactly as many values as a
// counter field announces: max(count + Increment, Minimum).
// The rule is a no-op while the counter field is absent.
type ListLength struct {
	Fields     []string
	CountField string
	// Increment supports boundary conventions where n intervals need n + 1 values.
	Increment int
	Minimum   int
	// RequiredWithCount makes an absent list a violation when the required
	// length is positive.
	RequiredWithCount bool
}

// LengthOf declares a ListLength rule over fields counted by countField.
func LengthOf(countField string, fields ...string) ListLength {
	return ListLength{Fields: fields, CountField: countField}
}

func (r ListLength) Plus(n int) ListLength {
	r.Increment = n
	return r
}

func (r ListLength) AtLeast(n int) ListLength {
	r.Minimum = n
	return r
}

func (r ListLength) RequiredWithLength() ListLength {
	r.RequiredWithCount = true
	return r
}

func (r ListLength) Kind() RuleKind { return RuleListLength }

func (r ListLength) Check(values Values) error {
	raw, ok := values.Lookup(r.CountField)
	if !ok {
		return nil
	}

	count, err := ToInt(raw)
	if err != nil {
		return Violation{
			Fields:         []string{r.CountField},
			Kind:           KindType,
			Message:        fmt.Sprintf("%s should be an integer but was %v", r.CountField, raw),
			TranslationKey: "validation.integer",
			TranslationValues: map[string]any{
				"field": r.CountField,
				"value": raw,
			},
		}
	}

	required := max(count+r.Increment, r.Minimum)

	for _, field := range r.Fields {
		val, present := values.Lookup(field)
		if !present {
			if r.RequiredWithCount && required > 0 {
				return Violation{
					Fields:         []string{field, r.CountField},
					Kind:           KindPresence,
					Message:        fmt.Sprintf("List %s cannot be missing if %s is given.", field, r.CountField),
					TranslationKey: "validation.list_missing",
					TranslationValues: map[string]any{
						"field": field,
						"count": r.CountField,
					},
				}
			}
			continue
		}

		if actual := sanitizer.Len(val); actual != required {
			return Violation{
				Fields:         []string{field, r.CountField},
				Kind:           KindShape,
				Message:        r.lengthMessage(field, required, actual),
				TranslationKey: "validation.list_length",
				TranslationValues: map[string]any{
					"field":     field,
					"count":     r.CountField,
					"increment": r.Increment,
					"minimum":   r.Minimum,
					"expected":  required,
					"actual":    actual,
				},
			}
		}
	}

	return nil
}

func (r ListLength) lengthMessage(field string, required, actual int) string {
	incr := ""
	if r.Increment != 0 {
		incr = fmt.Sprintf(" + %d", r.Increment)
	}
	minimum := ""
	if r.Minimum > 0 {
		minimum = fmt.Sprintf(" (and at least %d)", r.Minimum)
	}
	return fmt.Sprintf("Number of values for %s should be equal to the %s value%s%s. Expected %d, got %d.",
		field, r.CountField, incr, minimum, required, actual)
}
