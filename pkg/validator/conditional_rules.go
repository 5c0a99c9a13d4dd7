package validator

import "fmt"

// ConditionalRequired demands every field in Fields while When holds.
type ConditionalRequired struct {
	Fields []string
	When   Condition
}

// RequiredWhen declares fields that must be present while cond holds.
func RequiredWhen(cond Condition, fields ...string) ConditionalRequired {
	return ConditionalRequired{Fields: fields, When: cond}
}

func (r ConditionalRequired) Kind() RuleKind { return RuleConditionalRequired }

func (r ConditionalRequired) Check(values Values) error {
	if !r.When.Holds(values) {
		return nil
	}

	for _, field := range r.Fields {
		if values.Has(field) {
			continue
		}
		return Violation{
			Fields:            []string{field, r.When.Field},
			Kind:              KindPresence,
			Message:           fmt.Sprintf("%s should be provided when %s", field, r.When),
			TranslationKey:    "validation.required_when",
			TranslationValues: conditionValues(field, r.When),
		}
	}
	return nil
}

// ConditionalForbidden rejects every field in Fields while When holds.
// Presence is what counts: a zero or empty value is still present.
type ConditionalForbidden struct {
	Fields []string
	When   Condition
}

// ForbiddenWhen declares fields that must be absent while cond holds.
func ForbiddenWhen(cond Condition, fields ...string) ConditionalForbidden {
	return ConditionalForbidden{Fields: fields, When: cond}
}

func (r ConditionalForbidden) Kind() RuleKind { return RuleConditionalForbidden }

func (r ConditionalForbidden) Check(values Values) error {
	if !r.When.Holds(values) {
		return nil
	}

	for _, field := range r.Fields {
		if !values.Has(field) {
			continue
		}
		return Violation{
			Fields:            []string{field, r.When.Field},
			Kind:              KindPresence,
			Message:           fmt.Sprintf("%s is forbidden when %s", field, r.When),
			TranslationKey:    "validation.forbidden_when",
			TranslationValues: conditionValues(field, r.When),
		}
	}
	return nil
}

// ConditionalGuard runs Rule only while When holds.
type ConditionalGuard struct {
	Rule Rule
	When Condition
}

// Guard activates rule only while cond holds.
func Guard(cond Condition, rule Rule) ConditionalGuard {
	return ConditionalGuard{Rule: rule, When: cond}
}

func (r ConditionalGuard) Kind() RuleKind { return RuleConditionalGuard }

func (r ConditionalGuard) Check(values Values) error {
	if r.Rule == nil || !r.When.Holds(values) {
		return nil
	}
	if err := r.Rule.Check(values); err != nil {
		return withRuleErr(err, r.Rule.Kind())
	}
	return nil
}

// withRuleErr tags the violations of a wrapped rule with that rule's kind.
func withRuleErr(err error, kind RuleKind) error {
	switch e := err.(type) {
	case Violation:
		return withRule(e, kind)
	case Violations:
		out := make(Violations, len(e))
		for i, v := range e {
			out[i] = withRule(v, kind)
		}
		return out
	default:
		return err
	}
}

func conditionValues(field string, cond Condition) map[string]any {
	return map[string]any{
		"field":     field,
		"condition": cond.Field,
		"operator":  cond.Op.String(),
		"value":     cond.Value,
	}
}
