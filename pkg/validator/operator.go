package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/cast"
)

// Operator is the binary comparison used by conditional rules.
type Operator int

const (
	Eq Operator = iota
	Ne
	Lt
	Le
	Gt
	Ge
)

// String renders the operator the way it appears in violation messages.
func (o Operator) String() string {
	switch o {
	case Eq:
		return "is"
	case Ne:
		return "is not"
	case Lt:
		return "is less than"
	case Le:
		return "is at most"
	case Gt:
		return "is greater than"
	case Ge:
		return "is at least"
	default:
		return fmt.Sprintf("Operator(%d)", int(o))
	}
}

// Compare evaluates "a <op> b". Numbers compare numerically, strings
// lexically; other operands only support Eq and Ne.
func (o Operator) Compare(a, b any) bool {
	cmp, ordered := compare(a, b)
	if !ordered {
		equal := reflect.DeepEqual(a, b) || fmt.Sprint(a) == fmt.Sprint(b)
		switch o {
		case Eq:
			return equal
		case Ne:
			return !equal
		default:
			return false
		}
	}

	switch o {
	case Eq:
		return cmp == 0
	case Ne:
		return cmp != 0
	case Lt:
		return cmp < 0
	case Le:
		return cmp <= 0
	case Gt:
		return cmp > 0
	case Ge:
		return cmp >= 0
	default:
		return false
	}
}

func compare(a, b any) (int, bool) {
	if isNumber(a) && isNumber(b) {
		x, errA := cast.ToFloat64E(a)
		y, errB := cast.ToFloat64E(b)
		if errA != nil || errB != nil {
			return 0, false
		}
		switch {
		case x < y:
			return -1, true
		case x > y:
			return 1, true
		default:
			return 0, true
		}
	}

	sa, okA := a.(string)
	sb, okB := b.(string)
	if okA && okB {
		return strings.Compare(sa, sb), true
	}
	return 0, false
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}

// Condition gates a rule on the current value of another field.
// A condition over an absent field never holds.
type Condition struct {
	Field string
	Op    Operator
	Value any
}

// Equals is the default condition: field == value.
func Equals(field string, value any) Condition {
	return Condition{Field: field, Op: Eq, Value: value}
}

func NotEquals(field string, value any) Condition {
	return Condition{Field: field, Op: Ne, Value: value}
}

func Compare(field string, op Operator, value any) Condition {
	return Condition{Field: field, Op: op, Value: value}
}

func (c Condition) Holds(values Values) bool {
	val, ok := values.Lookup(c.Field)
	if !ok {
		return false
	}
	return c.Op.Compare(val, c.Value)
}

func (c Condition) String() string {
	return fmt.Sprintf("%s %s %v", c.Field, c.Op, c.Value)
}
