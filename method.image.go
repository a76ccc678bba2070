package depletion

import "math"

// imageResponse sums the real-well Glover term with one positive image-well
// term per configured boundary, iterated in the order supplied. Every term
// is non-negative, so adding a boundary can only increase the response.
func imageResponse(p *AquiferParameters, t float64) float64 {
	r := gloverResponse(p.T, p.S, p.D, t)
	for _, w := range p.W {
		x := 2.*w - p.D
		r += erfc(math.Sqrt(p.S * x * x / (4. * p.T * t)))
	}
	return r
}

// seriesCutoff truncates the image expansion: erfc(2.9) < 4.2e-5, and each
// subsequent image lies farther out still.
const seriesCutoff = 2.9

// alluvialSeriesResponse expands the alternating image-well series for a
// well between a stream and a single parallel impermeable valley wall at
// distance w. Images alternate sign in pairs; the expansion stops once a
// term underflows the cutoff.
func alluvialSeriesResponse(T, S, d, w, t float64) float64 {
	den := math.Sqrt(4. * T * t / S)
	sum, sign, x := 0., 1., -d
	for {
		// real well, then successive positive-side images
		x += 2. * d
		f := 0.
		if u := x / den; u <= seriesCutoff {
			f = erfc(u)
		}
		sum += sign * f
		if f == 0. {
			break
		}

		// reflected image across the valley wall
		x += 2.*w - 2.*d
		f = 0.
		if u := x / den; u <= seriesCutoff {
			f = erfc(u)
		}
		sum += sign * f
		if f == 0. {
			break
		}

		sign = -sign
	}
	return sum
}
