// SPDX-License-Identifier: MIT

package field

import (
	"math"
)

// AllClose checks elementwise |a-b| ≤ atol + rtol*|b| for identically shaped
// float64 fields. Returns (true,nil) if every element satisfies the relation.
// Time: O(r*c). Space: O(1).
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
func AllClose(a, b *Field[float64], rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, fieldErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateSameShape(a, b); err != nil {
		return false, fieldErrorf("AllClose", err)
	}

	for idx := range a.data {
		diff := math.Abs(a.data[idx] - b.data[idx])
		if diff > atol+rtol*math.Abs(b.data[idx]) {
			return false, nil // early exit on first violation
		}
	}

	return true, nil
}
