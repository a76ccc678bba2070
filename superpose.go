package depletion

// Compute superposes the selected method's unit step response over a
// pumping-rate schedule, returning the depletion rate at the end of each of
// horizon periods. The schedule is decomposed into rate steps ΔQ_k at the
// start of each period k; each step contributes
// ΔQ_k · response((τ−k+1)·periodLength) to the depletion at period τ.
// Elapsed time is always measured from the step, never from calendar zero.
//
// Cost is O(horizon²); callers with very long horizons should chunk work
// themselves.
func Compute(m Method, p *AquiferParameters, s *PumpingSchedule, horizon int, periodLength float64) (*TimeSeriesResult, error) {
	if s == nil || len(s.Q) == 0 {
		return nil, ErrEmptySchedule
	}
	if !(periodLength > 0.) {
		return nil, ErrNonPositivePeriod
	}
	if horizon < 0 {
		horizon = 0
	}

	q := make([]float64, horizon)
	for tau := 0; tau < horizon; tau++ {
		kmax := tau
		if n := len(s.Q) - 1; kmax > n {
			kmax = n // the final rate persists beyond the schedule
		}
		for k := 0; k <= kmax; k++ {
			dq := s.Q[k]
			if k > 0 {
				dq -= s.Q[k-1]
			}
			if dq == 0. {
				continue
			}
			f, err := m.UnitStepResponse(p, float64(tau-k+1)*periodLength)
			if err != nil {
				return nil, err
			}
			q[tau] += dq * f
		}
	}
	return &TimeSeriesResult{Q: q}, nil
}
