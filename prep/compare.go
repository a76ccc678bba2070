package prep

import "github.com/maseology/objfunc"

// Fit summarizes the agreement between an observed and a modeled
// depletion series.
type Fit struct {
	KGE, NSE, Bias float64
}

// Compare scores a modeled series against observations of equal length.
func Compare(obs, sim []float64) Fit {
	return Fit{
		KGE:  objfunc.KGE(obs, sim),
		NSE:  objfunc.NSE(obs, sim),
		Bias: objfunc.Bias(obs, sim),
	}
}
