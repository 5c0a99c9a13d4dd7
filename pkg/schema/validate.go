package schema

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dmitrymomot/hydroini/pkg/logger"
	"github.com/dmitrymomot/hydroini/pkg/validator"
)

// Validate checks raw against the named record type.
// See ValidateType for the outcome.
func (r *Registry) Validate(typeName string, raw map[string]any) (*Record, error) {
	rt, ok := r.Lookup(typeName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, typeName)
	}
	return r.ValidateType(rt, raw)
}

// ValidateSection resolves the record type for an INI section and validates raw against it.
func (r *Registry) ValidateSection(header string, raw map[string]any) (*Record, error) {
	rt, err := r.Resolve(header, raw)
	if err != nil {
		return nil, err
	}
	return r.ValidateType(rt, raw)
}

// ValidateType runs the validation pipeline of rt over a copy of raw:
//
//  1. normalize every declared field in declaration order
//  2. coerce to the declared type
//  3. apply defaults and check required fields
//  4. run the structural rules, inherited rules first
//
// Every failure is collected. The result is either a *Record or a
// *validator.Report listing all violations; raw is never modified.
func (r *Registry) ValidateType(rt *RecordType, raw map[string]any) (*Record, error) {
	start := time.Now()

	values := make(validator.Values, len(raw))
	for k, v := range raw {
		values.Set(k, v)
	}

	var violations validator.Violations

	for i, f := range rt.fields {
		v, ok := values.Lookup(f.Name)
		if !ok {
			continue
		}
		v = rt.normalizers[i](v)

		typed, present, err := coerce(f.Type, v)
		if err != nil {
			violations.Add(typeViolation(f, v, err))
			delete(values, f.Name)
			continue
		}
		if !present {
			delete(values, f.Name)
			continue
		}
		values[f.Name] = typed
	}

	for _, f := range rt.fields {
		if values.Has(f.Name) {
			continue
		}
		if f.Default != nil {
			// registration checked that defaults coerce
			typed, _, _ := coerce(f.Type, f.Default)
			values[f.Name] = typed
			continue
		}
		if f.Required && !failed(violations, f) {
			violations.Add(validator.Violation{
				Fields:         []string{f.Alias},
				Kind:           validator.KindPresence,
				Message:        fmt.Sprintf("%s is required", f.Alias),
				TranslationKey: "validation.required",
				TranslationValues: map[string]any{
					"field": f.Alias,
				},
			})
		}
	}

	if err := validator.Apply(values, rt.rules...); err != nil {
		violations = append(violations, validator.ExtractViolations(err)...)
	}

	identifier := identify(rt, values, raw)
	r.observe(rt, len(violations), time.Since(start))

	if len(violations) > 0 {
		r.logger.Debug("record failed validation",
			logger.RecordType(rt.name),
			slog.String("id", identifier),
			logger.Violations(len(violations)),
		)
		return nil, &validator.Report{
			RecordType: rt.name,
			Identifier: identifier,
			Violations: violations,
		}
	}

	return newRecord(rt, values), nil
}

func (r *Registry) observe(rt *RecordType, violations int, elapsed time.Duration) {
	if r.observer != nil {
		r.observer.ObserveValidation(rt.name, violations, elapsed)
	}
}

func typeViolation(f Field, v any, err error) validator.Violation {
	msg := fmt.Sprintf("%s should be %s but was %v", f.Alias, f.Type.describe(), display(v))
	if !errors.Is(err, errNotMember) {
		msg += " (" + err.Error() + ")"
	}
	return validator.Violation{
		Fields:         []string{f.Alias},
		Kind:           validator.KindType,
		Message:        msg,
		TranslationKey: "validation.type",
		TranslationValues: map[string]any{
			"field": f.Alias,
			"type":  f.Type.String(),
			"value": v,
		},
	}
}

// failed reports whether f already has a type violation.
func failed(vs validator.Violations, f Field) bool {
	for _, v := range vs {
		if v.Kind == validator.KindType && v.Involves(f.Alias) {
			return true
		}
	}
	return false
}

func identify(rt *RecordType, values validator.Values, raw map[string]any) string {
	if rt.identifier == "" {
		return ""
	}
	v, ok := values.Lookup(rt.identifier)
	if !ok {
		v, ok = lookupRaw(raw, rt.identifier)
	}
	if !ok {
		return ""
	}
	return display(v)
}

func display(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []string:
		return strings.Join(val, " ")
	default:
		return fmt.Sprint(v)
	}
}
