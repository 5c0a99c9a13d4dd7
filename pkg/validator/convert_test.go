package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hydroini/pkg/validator"
)

func TestToInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      any
		want    int
		wantErr bool
	}{
		{name: "int", in: 3, want: 3},
		{name: "int32", in: int32(2), want: 2},
		{name: "uint8", in: uint8(7), want: 7},
		{name: "integral float", in: 2.0, want: 2},
		{name: "decimal string", in: " 12 ", want: 12},
		{name: "leading zero", in: "08", want: 8},
		{name: "integral float string", in: "4.0", want: 4},
		{name: "exponent string", in: "1e2", want: 100},
		{name: "fraction", in: 2.5, wantErr: true},
		{name: "fraction string", in: "2.5", wantErr: true},
		{name: "word", in: "many", wantErr: true},
		{name: "bool", in: true, wantErr: true},
		{name: "nil", in: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := validator.ToInt(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, validator.ErrNotInteger)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
