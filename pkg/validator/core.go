package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a violation.
type Kind string

const (
	// KindShape: a list length disagrees with its counter field.
	KindShape Kind = "shape"
	// KindPresence: a field is missing or present against a condition.
	KindPresence Kind = "presence"
	// KindAlternatives: none of the mutually exclusive forms was provided.
	KindAlternatives Kind = "alternatives"
	// KindConsistency: the fields of a chosen form disagree with each other.
	KindConsistency Kind = "consistency"
	// KindTypeTag: an explicit type tag conflicts with the implied one.
	KindTypeTag Kind = "type_tag"
	// KindType: a raw value could not be coerced to the declared type.
	KindType Kind = "type"
)

// Violation is a single structural failure of a record.
type Violation struct {
	Fields            []string
	Kind              Kind
	Rule              RuleKind
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

func (v Violation) Error() string {
	if len(v.Fields) == 0 {
		return v.Message
	}
	return strings.Join(v.Fields, ", ") + ": " + v.Message
}

// Involves reports whether field is one of the violation's fields.
func (v Violation) Involves(field string) bool {
	for _, f := range v.Fields {
		if strings.EqualFold(f, field) {
			return true
		}
	}
	return false
}

// Violations is an ordered collection of violations.
type Violations []Violation

func (vs Violations) Error() string {
	if len(vs) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		parts = append(parts, v.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (vs *Violations) Add(v Violation) {
	*vs = append(*vs, v)
}

func (vs Violations) Has(field string) bool {
	for _, v := range vs {
		if v.Involves(field) {
			return true
		}
	}
	return false
}

// Get returns the messages of all violations involving field.
func (vs Violations) Get(field string) []string {
	var messages []string
	for _, v := range vs {
		if v.Involves(field) {
			messages = append(messages, v.Message)
		}
	}
	return messages
}

func (vs Violations) ByKind(kind Kind) Violations {
	var out Violations
	for _, v := range vs {
		if v.Kind == kind {
			out = append(out, v)
		}
	}
	return out
}

// Fields lists every involved field once, in order of first appearance.
func (vs Violations) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, v := range vs {
		for _, f := range v.Fields {
			if !seen[f] {
				fields = append(fields, f)
				seen[f] = true
			}
		}
	}
	return fields
}

func (vs Violations) IsEmpty() bool {
	return len(vs) == 0
}

// Report is the failed validation outcome of one record instance.
type Report struct {
	RecordType string
	Identifier string
	Violations Violations
}

func (r *Report) Error() string {
	var b strings.Builder

	noun := "error"
	if len(r.Violations) != 1 {
		noun = "errors"
	}
	fmt.Fprintf(&b, "%d validation %s for %s", len(r.Violations), noun, r.RecordType)
	if r.Identifier != "" {
		fmt.Fprintf(&b, " (%s)", r.Identifier)
	}
	for _, v := range r.Violations {
		b.WriteString("\n  ")
		b.WriteString(v.Error())
		fmt.Fprintf(&b, " [%s]", v.Kind)
	}
	return b.String()
}

func (r *Report) Unwrap() error {
	return r.Violations
}

// Rule is a structural check over the attribute mapping of one record.
// A rule may write normalized values back into the mapping; rules registered
// after it observe those writes.
type Rule interface {
	Kind() RuleKind
	Check(values Values) error
}

// RuleKind names the variant of a Rule.
type RuleKind string

const (
	RuleListLength           RuleKind = "list_length"
	RuleConditionalRequired  RuleKind = "conditional_required"
	RuleConditionalForbidden RuleKind = "conditional_forbidden"
	RuleConditionalGuard     RuleKind = "conditional_guard"
	RuleLocation             RuleKind = "location"
)

// Apply runs every rule in order against values and collects the failures.
// A failing rule does not stop the ones after it.
func Apply(values Values, rules ...Rule) error {
	var violations Violations

	for _, rule := range rules {
		if rule == nil {
			continue
		}
		err := rule.Check(values)
		if err == nil {
			continue
		}

		var vs Violations
		var v Violation
		switch {
		case errors.As(err, &vs):
			for _, item := range vs {
				violations.Add(withRule(item, rule.Kind()))
			}
		case errors.As(err, &v):
			violations.Add(withRule(v, rule.Kind()))
		default:
			violations.Add(Violation{
				Kind:    KindConsistency,
				Rule:    rule.Kind(),
				Message: err.Error(),
			})
		}
	}

	if violations.IsEmpty() {
		return nil
	}
	return violations
}

func withRule(v Violation, kind RuleKind) Violation {
	if v.Rule == "" {
		v.Rule = kind
	}
	return v
}

// ExtractViolations extracts Violations from an error chain.
func ExtractViolations(err error) Violations {
	if err == nil {
		return nil
	}

	var vs Violations
	if errors.As(err, &vs) {
		return vs
	}

	var v Violation
	if errors.As(err, &v) {
		return Violations{v}
	}

	return nil
}

// ExtractReport extracts a *Report from an error chain.
func ExtractReport(err error) *Report {
	var r *Report
	if errors.As(err, &r) {
		return r
	}
	return nil
}

func IsViolation(err error) bool {
	return ExtractViolations(err) != nil
}
