package depletion

import (
	"sort"

	"github.com/maseology/mmaths"
)

// URFTable is a tabulated unit response curve: paired elapsed times and
// depletion fractions with strictly increasing times. Queries before the
// first entry clamp to zero; queries past the last entry clamp to the
// final fraction.
type URFTable struct {
	T []float64 // elapsed time, dimensionless or in the working time unit
	F []float64 // depletion fraction at T
}

// NewURFTable validates and copies the curve. Malformed input (empty,
// mismatched columns, non-increasing times) is the only failure mode.
func NewURFTable(t, f []float64) (*URFTable, error) {
	if len(t) == 0 {
		return nil, &OutOfRangeTableError{"empty table"}
	}
	if len(t) != len(f) {
		return nil, &OutOfRangeTableError{"time and fraction columns differ in length"}
	}
	for i := 1; i < len(t); i++ {
		if t[i] <= t[i-1] {
			return nil, &OutOfRangeTableError{"times not strictly increasing"}
		}
	}
	ct, cf := make([]float64, len(t)), make([]float64, len(f))
	copy(ct, t)
	copy(cf, f)
	return &URFTable{T: ct, F: cf}, nil
}

// Fraction linearly interpolates the depletion fraction at elapsed time t.
func (u *URFTable) Fraction(t float64) float64 {
	n := len(u.T)
	if t < u.T[0] {
		return 0.
	}
	if t >= u.T[n-1] {
		return u.F[n-1]
	}
	i := sort.SearchFloat64s(u.T, t) // first index with T[i] >= t
	if u.T[i] == t {
		return u.F[i]
	}
	w := (t - u.T[i-1]) / (u.T[i] - u.T[i-1])
	return mmaths.LinearTransform(u.F[i-1], u.F[i], w)
}
