package depletion

import "math"

// gloverResponse is the Glover-Balmer depletion fraction
// erfc(sqrt(S d²/(4 T t))) for t > 0.
func gloverResponse(t, s, d, time float64) float64 {
	return erfc(math.Sqrt(s * d * d / (4. * t * time)))
}

// sdfResponse is the Jenkins form erfc(sqrt(sdf/(4 t))); with sdf = d²S/T
// it reduces algebraically to gloverResponse.
func sdfResponse(sdf, time float64) float64 {
	return erfc(math.Sqrt(sdf / (4. * time)))
}
