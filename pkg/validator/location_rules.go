package validator

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/hydroini/pkg/sanitizer"
)

// LocationType1D is the tag implied by node and branch locations.
const LocationType1D = "1D"

// LocationConfig selects which location forms a record accepts.
type LocationConfig struct {
	Node                  bool
	Branch                bool
	Coordinates           bool
	CoordinatesWithCount  bool
	MinimumNumCoordinates int
}

// DefaultLocationConfig enables all four forms without a coordinate minimum.
func DefaultLocationConfig() LocationConfig {
	return LocationConfig{
		Node:                 true,
		Branch:               true,
		Coordinates:          true,
		CoordinatesWithCount: true,
	}
}

// LocationFields names the fields a location is spelled with.
// Lookups are case-insensitive; messages use the names as given.
// An empty LocationType disables tag handling.
type LocationFields struct {
	NodeID         string
	BranchID       string
	Chainage       string
	XCoordinates   string
	YCoordinates   string
	NumCoordinates string
	LocationType   string
}

func DefaultLocationFields() LocationFields {
	return LocationFields{
		NodeID:         "nodeId",
		BranchID:       "branchId",
		Chainage:       "chainage",
		XCoordinates:   "xCoordinates",
		YCoordinates:   "yCoordinates",
		NumCoordinates: "numCoordinates",
		LocationType:   "locationType",
	}
}

// LocationSpec accepts exactly one of four mutually exclusive ways of placing
// a record on the network, tried in order:
//
//  1. node id
//  2. branch id with chainage
//  3. x and y coordinates
//  4. x and y coordinates with their count
//
// The first form whose fields are present, with no field of another form
// present, is checked for internal consistency. A present coordinate list
// counts even when empty; only the plain coordinate form needs items. Node and branch forms also
// settle the location type tag. When no form matches, one violation lists
// every enabled alternative.
type LocationSpec struct {
	Config LocationConfig
	Fields LocationFields
}

// Location declares a LocationSpec with default field names.
func Location(cfg LocationConfig) LocationSpec {
	return LocationSpec{Config: cfg, Fields: DefaultLocationFields()}
}

func (r LocationSpec) WithFields(fields LocationFields) LocationSpec {
	r.Fields = fields
	return r
}

func (r LocationSpec) Kind() RuleKind { return RuleLocation }

// Validate checks the rule declaration itself.
func (r LocationSpec) Validate() error {
	c := r.Config
	if !c.Node && !c.Branch && !c.Coordinates && !c.CoordinatesWithCount {
		return ErrNoLocationForm
	}
	if c.MinimumNumCoordinates < 0 {
		return fmt.Errorf("%w: negative minimum number of coordinates", ErrInvalidRule)
	}
	return nil
}

type locationState struct {
	node, branch, chainage, x, y, num bool
}

func (r LocationSpec) Check(values Values) error {
	f := r.Fields
	has := locationState{
		node:     !isBlank(values, f.NodeID),
		branch:   !isBlank(values, f.BranchID),
		chainage: values.Has(f.Chainage),
		x:        values.Has(f.XCoordinates),
		y:        values.Has(f.YCoordinates),
		num:      values.Has(f.NumCoordinates),
	}

	var alternatives []string

	if r.Config.Node {
		if has.node && !(has.branch || has.chainage || has.x || has.y || has.num) {
			return r.settleLocationType(values)
		}
		alternatives = append(alternatives, f.NodeID)
	}

	if r.Config.Branch {
		if has.branch && has.chainage && !(has.node || has.x || has.y || has.num) {
			return r.settleLocationType(values)
		}
		alternatives = append(alternatives, fmt.Sprintf("%s and %s", f.BranchID, f.Chainage))
	}

	if r.Config.Coordinates {
		nonEmpty := hasItems(values, f.XCoordinates) && hasItems(values, f.YCoordinates)
		if nonEmpty && !(has.node || has.branch || has.chainage || has.num) {
			return r.checkCoordinates(values)
		}
		alternatives = append(alternatives, fmt.Sprintf("%s and %s", f.XCoordinates, f.YCoordinates))
	}

	if r.Config.CoordinatesWithCount {
		if has.x && has.y && has.num && !(has.node || has.branch || has.chainage) {
			return r.checkCoordinatesWithCount(values)
		}
		alternatives = append(alternatives,
			fmt.Sprintf("%s, %s and %s", f.XCoordinates, f.YCoordinates, f.NumCoordinates))
	}

	return Violation{
		Fields:         r.involvedFields(),
		Kind:           KindAlternatives,
		Message:        strings.Join(alternatives, " or ") + " should be provided",
		TranslationKey: "validation.location_alternatives",
		TranslationValues: map[string]any{
			"alternatives": alternatives,
		},
	}
}

func (r LocationSpec) checkCoordinates(values Values) error {
	f := r.Fields
	lenX := length(values, f.XCoordinates)
	lenY := length(values, f.YCoordinates)

	if lenX != lenY {
		return Violation{
			Fields:         []string{f.XCoordinates, f.YCoordinates},
			Kind:           KindConsistency,
			Message:        fmt.Sprintf("%s and %s should have an equal amount of coordinates", f.XCoordinates, f.YCoordinates),
			TranslationKey: "validation.location_coordinates_unequal",
			TranslationValues: map[string]any{
				"x": lenX,
				"y": lenY,
			},
		}
	}

	return r.checkMinimum(lenX)
}

func (r LocationSpec) checkCoordinatesWithCount(values Values) error {
	f := r.Fields
	lenX := length(values, f.XCoordinates)
	lenY := length(values, f.YCoordinates)
	raw, _ := values.Lookup(f.NumCoordinates)
	num, err := ToInt(raw)

	if err != nil || num != lenX || num != lenY {
		return Violation{
			Fields:         []string{f.NumCoordinates, f.XCoordinates, f.YCoordinates},
			Kind:           KindConsistency,
			Message:        fmt.Sprintf("%s should be equal to the amount of %s and %s", f.NumCoordinates, f.XCoordinates, f.YCoordinates),
			TranslationKey: "validation.location_count_mismatch",
			TranslationValues: map[string]any{
				"count": raw,
				"x":     lenX,
				"y":     lenY,
			},
		}
	}

	return r.checkMinimum(num)
}

func (r LocationSpec) checkMinimum(actual int) error {
	minimum := r.Config.MinimumNumCoordinates
	if actual >= minimum {
		return nil
	}

	f := r.Fields
	return Violation{
		Fields:         []string{f.XCoordinates, f.YCoordinates},
		Kind:           KindConsistency,
		Message:        fmt.Sprintf("%s and %s should have at least %d coordinate(s)", f.XCoordinates, f.YCoordinates, minimum),
		TranslationKey: "validation.location_min_coordinates",
		TranslationValues: map[string]any{
			"minimum": minimum,
			"actual":  actual,
		},
	}
}

// settleLocationType fills in the implied tag or rejects a conflicting one.
func (r LocationSpec) settleLocationType(values Values) error {
	field := r.Fields.LocationType
	if field == "" {
		return nil
	}

	if isBlank(values, field) {
		values.Set(field, LocationType1D)
		return nil
	}

	current, _ := values.Lookup(field)
	if fmt.Sprint(current) != LocationType1D {
		return Violation{
			Fields:         []string{field},
			Kind:           KindTypeTag,
			Message:        fmt.Sprintf("%s should be %s but was %v", field, LocationType1D, current),
			TranslationKey: "validation.location_type_mismatch",
			TranslationValues: map[string]any{
				"expected": LocationType1D,
				"actual":   current,
			},
		}
	}
	return nil
}

func (r LocationSpec) involvedFields() []string {
	f := r.Fields
	c := r.Config
	var fields []string
	if c.Node {
		fields = append(fields, f.NodeID)
	}
	if c.Branch {
		fields = append(fields, f.BranchID, f.Chainage)
	}
	if c.Coordinates || c.CoordinatesWithCount {
		fields = append(fields, f.XCoordinates, f.YCoordinates)
	}
	if c.CoordinatesWithCount {
		fields = append(fields, f.NumCoordinates)
	}
	return fields
}

func isBlank(values Values, field string) bool {
	val, ok := values.Lookup(field)
	if !ok {
		return true
	}
	if s, isString := val.(string); isString {
		return strings.TrimSpace(s) == ""
	}
	return false
}

func hasItems(values Values, field string) bool {
	val, ok := values.Lookup(field)
	return ok && sanitizer.Len(val) > 0
}

func length(values Values, field string) int {
	val, _ := values.Lookup(field)
	return sanitizer.Len(val)
}
