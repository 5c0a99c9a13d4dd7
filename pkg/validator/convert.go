package validator

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// ToInt converts an integer-valued number or decimal string to int.
// Fractional values such as 2.5 are rejected instead of truncated; 2.0 is
// accepted. Booleans are not numbers here.
func ToInt(v any) (int, error) {
	switch n := v.(type) {
	case nil, bool:
		return 0, fmt.Errorf("%w: %v", ErrNotInteger, v)
	case float32:
		return integral(float64(n))
	case float64:
		return integral(n)
	case string:
		s := strings.TrimSpace(n)
		if strings.ContainsAny(s, ".eE") {
			f, err := cast.ToFloat64E(s)
			if err != nil {
				return 0, fmt.Errorf("%w: %q", ErrNotInteger, n)
			}
			return integral(f)
		}
		i, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrNotInteger, n)
		}
		return i, nil
	}

	i, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNotInteger, v)
	}
	return i, nil
}

func integral(f float64) (int, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: %v", ErrNotInteger, f)
	}
	return int(f), nil
}
