package depletion

import (
	"math/rand"
	"time"

	"github.com/maseology/mmaths"
	"github.com/maseology/montecarlo/smpln"
	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"
)

// ParameterRange bounds a sampled aquifer parameter. A degenerate range
// (Min == Max) pins the parameter.
type ParameterRange struct{ Min, Max float64 }

// GenerateSamples propagates parameter uncertainty forward: n Latin
// hypercube realizations of (T, S, d) are drawn from the given ranges and
// each is run through the method and schedule. Returned series are ordered
// by sample index. This is sampling only; no objective function is
// optimized.
func GenerateSamples(m Method, tr, sr, dr ParameterRange, s *PumpingSchedule, horizon int, periodLength float64, n int) ([][]float64, error) {
	rng := rand.New(mrg63k3a.New())
	rng.Seed(time.Now().UnixNano())
	sp := smpln.NewLHC(rng, n, 3, false)

	out := make([][]float64, n)
	for k := 0; k < n; k++ {
		t := mmaths.LinearTransform(tr.Min, tr.Max, sp.U[0][k])
		sy := mmaths.LinearTransform(sr.Min, sr.Max, sp.U[1][k])
		d := mmaths.LinearTransform(dr.Min, dr.Max, sp.U[2][k])

		p, err := NewAquiferParameters(t, sy, d)
		if err != nil {
			return nil, err
		}
		r, err := Compute(m, p, s, horizon, periodLength)
		if err != nil {
			return nil, err
		}
		out[k] = r.Q
	}
	return out, nil
}
