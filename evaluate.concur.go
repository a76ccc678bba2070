package depletion

import "sync"

// Evaluate computes every scenario concurrently. Each computation reads
// only its own inputs and allocates its own result, so the fan-out needs
// no synchronization beyond the final join.
func Evaluate(scns []Scenario, horizon int, periodLength float64) ([]*TimeSeriesResult, error) {
	out := make([]*TimeSeriesResult, len(scns))
	errs := make([]error, len(scns))

	var wg sync.WaitGroup
	wg.Add(len(scns))
	for i := range scns {
		go func(i int) {
			defer wg.Done()
			sc := scns[i]
			out[i], errs[i] = Compute(sc.Method, sc.Params, sc.Sched, horizon, periodLength)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
