package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hydroini/pkg/validator"
)

func TestConditionalRequired(t *testing.T) {
	t.Parallel()

	rule := validator.RequiredWhen(validator.Equals("useTable", true), "levels", "storageArea")

	t.Run("condition not met", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, rule.Check(validator.Values{"usetable": false}))
	})

	t.Run("condition field absent", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, rule.Check(validator.Values{}))
	})

	t.Run("all fields provided", func(t *testing.T) {
		t.Parallel()
		values := validator.Values{"usetable": true, "levels": []float64{1}, "storagearea": []float64{10}}
		assert.NoError(t, rule.Check(values))
	})

	t.Run("first missing field is reported", func(t *testing.T) {
		t.Parallel()
		err := rule.Check(validator.Values{"usetable": true, "levels": []float64{1}})
		require.Error(t, err)

		vs := validator.ExtractViolations(err)
		require.Len(t, vs, 1)
		assert.Equal(t, validator.KindPresence, vs[0].Kind)
		assert.Equal(t, "storageArea should be provided when useTable is true", vs[0].Message)
		assert.Equal(t, []string{"storageArea", "useTable"}, vs[0].Fields)
		assert.Equal(t, "validation.required_when", vs[0].TranslationKey)
	})

	t.Run("nil counts as missing", func(t *testing.T) {
		t.Parallel()
		err := rule.Check(validator.Values{"usetable": true, "levels": nil, "storagearea": []float64{10}})
		require.Error(t, err)
		assert.True(t, validator.ExtractViolations(err).Has("levels"))
	})
}

func TestConditionalForbidden(t *testing.T) {
	t.Parallel()

	rule := validator.ForbiddenWhen(validator.Equals("storageType", "closed"), "streetStorageArea")

	tests := []struct {
		name    string
		values  validator.Values
		wantErr string
	}{
		{
			name:   "other type allows field",
			values: validator.Values{"storagetype": "reservoir", "streetstoragearea": 10.0},
		},
		{
			name:   "closed type without field",
			values: validator.Values{"storagetype": "closed"},
		},
		{
			name:    "closed type with field",
			values:  validator.Values{"storagetype": "closed", "streetstoragearea": 10.0},
			wantErr: "streetStorageArea is forbidden when storageType is closed",
		},
		{
			name:    "zero value is still present",
			values:  validator.Values{"storagetype": "closed", "streetstoragearea": 0.0},
			wantErr: "streetStorageArea is forbidden when storageType is closed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := rule.Check(tt.values)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, validator.ExtractViolations(err)[0].Message)
		})
	}
}

func TestConditionalGuard(t *testing.T) {
	t.Parallel()

	rule := validator.Guard(
		validator.Equals("valveOnOff", true),
		validator.LengthOf("numLossCoeff", "relOpening", "lossCoeff"),
	)

	t.Run("inactive guard skips wrapped rule", func(t *testing.T) {
		t.Parallel()
		values := validator.Values{"valveonoff": false, "numlosscoeff": 3, "relopening": []float64{0.5}}
		assert.NoError(t, rule.Check(values))
	})

	t.Run("active guard runs wrapped rule", func(t *testing.T) {
		t.Parallel()
		values := validator.Values{
			"valveonoff":   true,
			"numlosscoeff": 2,
			"relopening":   []float64{0.5, 1},
			"losscoeff":    []float64{0.1},
		}
		err := rule.Check(values)
		require.Error(t, err)

		vs := validator.ExtractViolations(err)
		require.Len(t, vs, 1)
		assert.Equal(t, validator.KindShape, vs[0].Kind)
		assert.Equal(t, validator.RuleListLength, vs[0].Rule)
		assert.True(t, vs[0].Involves("lossCoeff"))
	})

	t.Run("nil wrapped rule", func(t *testing.T) {
		t.Parallel()
		guard := validator.ConditionalGuard{When: validator.Equals("a", 1)}
		assert.NoError(t, guard.Check(validator.Values{"a": 1}))
	})

	t.Run("numeric comparison", func(t *testing.T) {
		t.Parallel()
		guard := validator.Guard(
			validator.Compare("numStages", validator.Gt, 0),
			validator.LengthOf("numStages", "capacity"),
		)
		assert.NoError(t, guard.Check(validator.Values{"numstages": 0, "capacity": []float64{1, 2}}))
		assert.Error(t, guard.Check(validator.Values{"numstages": 1, "capacity": []float64{1, 2}}))
	})
}
