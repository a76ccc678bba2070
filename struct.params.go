package depletion

// AquiferParameters holds the properties of the stream-aquifer-well system
// in one consistent unit system. Immutable once constructed; response
// functions only ever read it.
type AquiferParameters struct {
	T float64   // transmissivity [L²/T]
	S float64   // storativity or specific yield [-]
	D float64   // perpendicular distance from well to stream [L]
	W []float64 // distance to each impermeable boundary [L], one image well per entry
}

// NewAquiferParameters validates and builds an AquiferParameters. Each
// optional boundary distance adds an image well to the alluvial solution.
func NewAquiferParameters(t, s, d float64, boundaries ...float64) (*AquiferParameters, error) {
	if !(t > 0.) {
		return nil, &InvalidParameterError{"transmissivity", t}
	}
	if !(s > 0.) {
		return nil, &InvalidParameterError{"storativity", s}
	}
	if !(d >= 0.) {
		return nil, &InvalidParameterError{"distance", d}
	}
	for _, w := range boundaries {
		if !(w > 0.) {
			return nil, &InvalidParameterError{"boundary", w}
		}
		if w == d/2. { // image well coincident with the pumping well
			return nil, &InvalidParameterError{"boundary", w}
		}
	}
	cw := make([]float64, len(boundaries))
	copy(cw, boundaries)
	return &AquiferParameters{T: t, S: s, D: d, W: cw}, nil
}

// SDF returns Jenkins' stream depletion factor d²S/T, the characteristic
// lag time of the stream-aquifer response.
func (p *AquiferParameters) SDF() float64 {
	return p.D * p.D * p.S / p.T
}
