package depletion

// Method selects one of the analytical depletion solutions. The set is
// closed; dispatch is an explicit switch, not an open plugin interface.
type Method struct {
	kind    methodKind
	table   *URFTable // unitResponseFunction only
	sdfDays float64   // jenkinsSDF: direct SDF override
	sdfSet  bool      // jenkinsSDF: sdfDays supplied rather than derived
	series  bool      // gloverAlluvialImage: alternating image-well series expansion
}

type methodKind int

const (
	gloverInfinite methodKind = iota
	gloverAlluvialImage
	jenkinsSDF
	unitResponseFunction
)

// GloverInfinite is the Glover-Balmer solution for a fully penetrating
// stream in an infinite aquifer.
func GloverInfinite() Method { return Method{kind: gloverInfinite} }

// GloverAlluvialImage is the Glover solution with one image well per
// impermeable boundary configured on the aquifer parameters.
func GloverAlluvialImage() Method { return Method{kind: gloverAlluvialImage} }

// AlluvialSeries expands the full alternating image-well series for a
// single valley-wall boundary instead of the one-image approximation.
// The parameters must carry exactly one boundary distance.
func AlluvialSeries() Method { return Method{kind: gloverAlluvialImage, series: true} }

// JenkinsSDF computes the stream depletion factor d²S/T from the aquifer
// parameters; it is numerically identical to GloverInfinite.
func JenkinsSDF() Method { return Method{kind: jenkinsSDF} }

// JenkinsSDFDays uses a stream depletion factor supplied directly in time
// units, bypassing d²S/T. The value must be positive; evaluation rejects
// anything else.
func JenkinsSDFDays(sdf float64) Method {
	return Method{kind: jenkinsSDF, sdfDays: sdf, sdfSet: true}
}

// UnitResponseFunction evaluates a precomputed response curve by linear
// interpolation.
func UnitResponseFunction(t *URFTable) Method {
	return Method{kind: unitResponseFunction, table: t}
}

// UnitStepResponse returns the fraction of a sustained unit pumping rate
// appearing as stream depletion after elapsed time t. It is exactly zero
// for t ≤ 0 and never NaN for valid parameters.
func (m Method) UnitStepResponse(p *AquiferParameters, t float64) (float64, error) {
	if t <= 0. {
		return 0., nil
	}
	switch m.kind {
	case gloverInfinite:
		return gloverResponse(p.T, p.S, p.D, t), nil
	case jenkinsSDF:
		sdf := p.SDF()
		if m.sdfSet {
			if !(m.sdfDays > 0.) {
				return 0., &InvalidParameterError{"sdf", m.sdfDays}
			}
			sdf = m.sdfDays
		}
		return sdfResponse(sdf, t), nil
	case gloverAlluvialImage:
		if m.series {
			if len(p.W) != 1 {
				return 0., &InvalidParameterError{"boundary", float64(len(p.W))}
			}
			return alluvialSeriesResponse(p.T, p.S, p.D, p.W[0], t), nil
		}
		return imageResponse(p, t), nil
	case unitResponseFunction:
		if m.table == nil {
			return 0., &OutOfRangeTableError{"no table supplied"}
		}
		return m.table.Fraction(t), nil
	}
	return 0., nil
}
