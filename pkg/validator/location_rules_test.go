package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hydroini/pkg/validator"
)

func TestLocationSpec_Forms(t *testing.T) {
	t.Parallel()

	rule := validator.Location(validator.DefaultLocationConfig())

	tests := []struct {
		name     string
		values   validator.Values
		wantKind validator.Kind
		wantMsg  string
		wantTag  string
	}{
		{
			name:    "node id",
			values:  validator.Values{"nodeid": "N1"},
			wantTag: "1D",
		},
		{
			name:    "branch with chainage",
			values:  validator.Values{"branchid": "B1", "chainage": 10.0},
			wantTag: "1D",
		},
		{
			name:   "coordinates",
			values: validator.Values{"xcoordinates": []float64{0, 1, 2}, "ycoordinates": []float64{0, 1, 2}},
		},
		{
			name: "coordinates with count",
			values: validator.Values{
				"xcoordinates":   []float64{0, 1},
				"ycoordinates":   []float64{3, 4},
				"numcoordinates": 2,
			},
		},
		{
			name:     "unequal coordinate lengths",
			values:   validator.Values{"xcoordinates": []float64{0, 1, 2}, "ycoordinates": []float64{0, 1}},
			wantKind: validator.KindConsistency,
			wantMsg:  "xCoordinates and yCoordinates should have an equal amount of coordinates",
		},
		{
			name: "count disagrees with coordinates",
			values: validator.Values{
				"xcoordinates":   []float64{0, 1},
				"ycoordinates":   []float64{3, 4},
				"numcoordinates": 3,
			},
			wantKind: validator.KindConsistency,
			wantMsg:  "numCoordinates should be equal to the amount of xCoordinates and yCoordinates",
		},
		{
			name:     "node and branch together",
			values:   validator.Values{"nodeid": "N1", "branchid": "B1", "chainage": 1.0},
			wantKind: validator.KindAlternatives,
			wantMsg:  "nodeId or branchId and chainage or xCoordinates and yCoordinates or xCoordinates, yCoordinates and numCoordinates should be provided",
		},
		{
			name:     "nothing provided",
			values:   validator.Values{},
			wantKind: validator.KindAlternatives,
		},
		{
			name:     "branch without chainage",
			values:   validator.Values{"branchid": "B1"},
			wantKind: validator.KindAlternatives,
		},
		{
			name:     "blank node id is absent",
			values:   validator.Values{"nodeid": "  "},
			wantKind: validator.KindAlternatives,
		},
		{
			name:     "empty coordinate lists without count",
			values:   validator.Values{"xcoordinates": []float64{}, "ycoordinates": []float64{}},
			wantKind: validator.KindAlternatives,
		},
		{
			name: "empty coordinate lists with zero count",
			values: validator.Values{
				"xcoordinates":   []float64{},
				"ycoordinates":   []float64{},
				"numcoordinates": 0,
			},
		},
		{
			name:     "node id with empty coordinate list",
			values:   validator.Values{"nodeid": "N1", "xcoordinates": []float64{}},
			wantKind: validator.KindAlternatives,
		},
		{
			name:     "branch with empty coordinate list",
			values:   validator.Values{"branchid": "B1", "chainage": 5.0, "ycoordinates": []string{}},
			wantKind: validator.KindAlternatives,
		},
		{
			name: "count given as string",
			values: validator.Values{
				"xcoordinates":   []float64{0, 1},
				"ycoordinates":   []float64{3, 4},
				"numcoordinates": "2",
			},
		},
		{
			name: "count given as int32",
			values: validator.Values{
				"xcoordinates":   []float64{0, 1},
				"ycoordinates":   []float64{3, 4},
				"numcoordinates": int32(2),
			},
		},
		{
			name: "fractional count",
			values: validator.Values{
				"xcoordinates":   []float64{0, 1},
				"ycoordinates":   []float64{3, 4},
				"numcoordinates": 2.5,
			},
			wantKind: validator.KindConsistency,
		},
		{
			name:    "explicit matching tag",
			values:  validator.Values{"nodeid": "N1", "locationtype": "1D"},
			wantTag: "1D",
		},
		{
			name:     "conflicting tag",
			values:   validator.Values{"nodeid": "N1", "locationtype": "2D"},
			wantKind: validator.KindTypeTag,
			wantMsg:  "locationType should be 1D but was 2D",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := rule.Check(tt.values)
			if tt.wantKind == "" {
				require.NoError(t, err)
				if tt.wantTag != "" {
					assert.Equal(t, tt.wantTag, tt.values["locationtype"])
				} else {
					assert.NotContains(t, tt.values, "locationtype")
				}
				return
			}

			require.Error(t, err)
			vs := validator.ExtractViolations(err)
			require.Len(t, vs, 1)
			assert.Equal(t, tt.wantKind, vs[0].Kind)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, vs[0].Message)
			}
		})
	}
}

func TestLocationSpec_Minimum(t *testing.T) {
	t.Parallel()

	cfg := validator.DefaultLocationConfig()
	cfg.MinimumNumCoordinates = 3
	rule := validator.Location(cfg)

	err := rule.Check(validator.Values{
		"xcoordinates":   []float64{0, 1},
		"ycoordinates":   []float64{0, 1},
		"numcoordinates": 2,
	})
	require.Error(t, err)
	v := validator.ExtractViolations(err)[0]
	assert.Equal(t, validator.KindConsistency, v.Kind)
	assert.Equal(t, "xCoordinates and yCoordinates should have at least 3 coordinate(s)", v.Message)

	assert.NoError(t, rule.Check(validator.Values{
		"xcoordinates": []float64{0, 1, 2},
		"ycoordinates": []float64{0, 1, 2},
	}))
}

func TestLocationSpec_DisabledForms(t *testing.T) {
	t.Parallel()

	rule := validator.Location(validator.LocationConfig{
		Branch:                true,
		CoordinatesWithCount:  true,
		MinimumNumCoordinates: 2,
	})

	err := rule.Check(validator.Values{"nodeid": "N1"})
	require.Error(t, err)
	v := validator.ExtractViolations(err)[0]
	assert.Equal(t, "branchId and chainage or xCoordinates, yCoordinates and numCoordinates should be provided", v.Message)
	assert.False(t, v.Involves("nodeId"))

	err = rule.Check(validator.Values{"xcoordinates": []float64{0, 1}, "ycoordinates": []float64{0, 1}})
	require.Error(t, err, "coordinates without count are disabled")
}

func TestLocationSpec_CustomFields(t *testing.T) {
	t.Parallel()

	rule := validator.Location(validator.LocationConfig{Coordinates: true}).
		WithFields(validator.LocationFields{XCoordinates: "x", YCoordinates: "y"})

	assert.NoError(t, rule.Check(validator.Values{"x": 10.0, "y": 20.0}))

	err := rule.Check(validator.Values{})
	require.Error(t, err)
	assert.Equal(t, "x and y should be provided", validator.ExtractViolations(err)[0].Message)
}

func TestLocationSpec_NoTagField(t *testing.T) {
	t.Parallel()

	fields := validator.DefaultLocationFields()
	fields.LocationType = ""
	rule := validator.Location(validator.DefaultLocationConfig()).WithFields(fields)

	values := validator.Values{"branchid": "B1", "chainage": 5.0}
	require.NoError(t, rule.Check(values))
	assert.NotContains(t, values, "")
	assert.Len(t, values, 2)
}

func TestLocationSpec_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Location(validator.DefaultLocationConfig()).Validate())
	assert.ErrorIs(t, validator.Location(validator.LocationConfig{}).Validate(), validator.ErrNoLocationForm)
	assert.ErrorIs(t,
		validator.Location(validator.LocationConfig{Node: true, MinimumNumCoordinates: -1}).Validate(),
		validator.ErrInvalidRule)
}
