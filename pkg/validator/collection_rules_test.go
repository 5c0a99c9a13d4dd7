package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hydroini/pkg/validator"
)

func TestListLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rule    validator.ListLength
		values  validator.Values
		wantErr string
	}{
		{
			name:   "matching length passes",
			rule:   validator.LengthOf("yzcount", "ycoordinates", "zcoordinates"),
			values: validator.Values{"yzcount": 3, "ycoordinates": []float64{0, 1, 2}, "zcoordinates": []float64{5, 4, 5}},
		},
		{
			name:    "shorter list fails",
			rule:    validator.LengthOf("yzcount", "ycoordinates", "zcoordinates"),
			values:  validator.Values{"yzcount": 3, "ycoordinates": []float64{0, 1, 2}, "zcoordinates": []float64{5, 4}},
			wantErr: "Number of values for zcoordinates should be equal to the yzcount value. Expected 3, got 2.",
		},
		{
			name:    "longer list fails",
			rule:    validator.LengthOf("yzcount", "ycoordinates"),
			values:  validator.Values{"yzcount": 1, "ycoordinates": []float64{0, 1}},
			wantErr: "Number of values for ycoordinates should be equal to the yzcount value. Expected 1, got 2.",
		},
		{
			name:   "absent count field is a no-op",
			rule:   validator.LengthOf("yzcount", "ycoordinates"),
			values: validator.Values{"ycoordinates": []float64{0, 1}},
		},
		{
			name:   "absent list is skipped by default",
			rule:   validator.LengthOf("yzcount", "ycoordinates"),
			values: validator.Values{"yzcount": 4},
		},
		{
			name:    "absent list fails when required with count",
			rule:    validator.LengthOf("yzcount", "ycoordinates").RequiredWithLength(),
			values:  validator.Values{"yzcount": 4},
			wantErr: "List ycoordinates cannot be missing if yzcount is given.",
		},
		{
			name:   "absent list passes when required length is zero",
			rule:   validator.LengthOf("yzcount", "ycoordinates").RequiredWithLength(),
			values: validator.Values{"yzcount": 0},
		},
		{
			name:   "increment supports boundary counts",
			rule:   validator.LengthOf("sectioncount", "frictionpositions").Plus(1),
			values: validator.Values{"sectioncount": 2, "frictionpositions": []float64{0, 10, 20}},
		},
		{
			name:    "increment appears in message",
			rule:    validator.LengthOf("sectioncount", "frictionpositions").Plus(1),
			values:  validator.Values{"sectioncount": 2, "frictionpositions": []float64{0, 20}},
			wantErr: "Number of values for frictionpositions should be equal to the sectioncount value + 1. Expected 3, got 2.",
		},
		{
			name:   "minimum overrides smaller count",
			rule:   validator.LengthOf("numlevels", "levels").AtLeast(1),
			values: validator.Values{"numlevels": 0, "levels": []float64{1.5}},
		},
		{
			name:    "minimum appears in message",
			rule:    validator.LengthOf("numlevels", "levels").AtLeast(1),
			values:  validator.Values{"numlevels": 0, "levels": []float64{}},
			wantErr: "Number of values for levels should be equal to the numlevels value (and at least 1). Expected 1, got 0.",
		},
		{
			name:   "scalar counts as single value",
			rule:   validator.LengthOf("numstages", "capacity"),
			values: validator.Values{"numstages": 1, "capacity": 2.5},
		},
		{
			name:   "mixed case names resolve to lower-cased keys",
			rule:   validator.LengthOf("yzCount", "yCoordinates"),
			values: validator.Values{"yzcount": 2, "ycoordinates": []string{"a", "b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.rule.Check(tt.values)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			vs := validator.ExtractViolations(err)
			require.Len(t, vs, 1)
			assert.Equal(t, tt.wantErr, vs[0].Message)
		})
	}
}

func TestListLength_OffByAny(t *testing.T) {
	t.Parallel()

	for _, incr := range []int{0, 1, 2} {
		for _, minimum := range []int{0, 3} {
			for count := 0; count < 5; count++ {
				rule := validator.LengthOf("n", "list").Plus(incr).AtLeast(minimum)
				required := max(count+incr, minimum)

				for length := 0; length <= required+2; length++ {
					values := validator.Values{"n": count, "list": make([]int, length)}
					err := rule.Check(values)
					if length == required {
						assert.NoError(t, err, "count=%d incr=%d min=%d len=%d", count, incr, minimum, length)
						continue
					}
					require.Error(t, err)
					v := validator.ExtractViolations(err)[0]
					assert.Equal(t, validator.KindShape, v.Kind)
					assert.True(t, v.Involves("list"))
					assert.Equal(t, required, v.TranslationValues["expected"])
				}
			}
		}
	}
}

func TestListLength_NonIntegerCount(t *testing.T) {
	t.Parallel()

	err := validator.LengthOf("n", "list").Check(validator.Values{"n": "many", "list": []int{1}})
	require.Error(t, err)
	assert.Equal(t, validator.KindType, validator.ExtractViolations(err)[0].Kind)

	err = validator.LengthOf("n", "list").Check(validator.Values{"n": 2.5, "list": []int{1, 2}})
	require.Error(t, err, "fractional counts are not truncated")
	assert.Equal(t, validator.KindType, validator.ExtractViolations(err)[0].Kind)

	err = validator.LengthOf("n", "list").Check(validator.Values{"n": "2", "list": []int{1, 2}})
	assert.NoError(t, err)
}
