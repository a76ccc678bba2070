// Package depletion estimates the reduction in streamflow caused by a
// pumping well in a nearby aquifer, using the closed-form analytical
// solutions of Glover (infinite and image-well bounded aquifers), the
// Jenkins stream depletion factor, and tabulated unit response functions.
// Time-varying pumping is handled by superposition of step responses.
//
// All quantities are assumed pre-converted to one consistent unit system
// (conventionally ft and days); no unit conversion happens here.
package depletion

import "math"

// erfc evaluates the complementary error function for the non-negative
// arguments produced by the Glover-type solutions. Arguments at or below
// zero return exactly 1; large arguments underflow cleanly to 0.
func erfc(x float64) float64 {
	if x <= 0. {
		return 1.
	}
	return math.Erfc(x)
}
