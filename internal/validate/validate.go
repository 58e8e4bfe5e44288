// Package validate holds the numeric well-formedness predicates used by
// the distribution constructors and the sampling engine.
package validate

import (
	"math"

	"github.com/pvoss/grand/errdefs"
)

// Count checks that a requested sample count is a positive integer.
func Count(n int) error {
	if n <= 0 {
		return errdefs.Validationf("sample count must be positive, got %d", n)
	}
	return nil
}

// Positive checks that v is a finite value greater than zero.
func Positive(v float64, name string) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errdefs.Validationf("%s must be finite, got %v", name, v)
	}
	if v <= 0 {
		return errdefs.Validationf("%s must be positive, got %v", name, v)
	}
	return nil
}

// PositiveInt checks that v is a positive integer.
func PositiveInt(v int64, name string) error {
	if v <= 0 {
		return errdefs.Validationf("%s must be positive, got %d", name, v)
	}
	return nil
}

// Probability checks that p lies in [0, 1].
func Probability(p float64, name string) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return errdefs.Validationf("%s must be between 0 and 1, got %v", name, p)
	}
	return nil
}

// Range checks that low is strictly below high.
func Range(low, high float64, name string) error {
	if math.IsNaN(low) || math.IsNaN(high) {
		return errdefs.Validationf("%s bounds must be numeric, got [%v, %v]", name, low, high)
	}
	if low >= high {
		return errdefs.Validationf("%s lower bound must be less than upper bound, got [%v, %v]", name, low, high)
	}
	return nil
}
