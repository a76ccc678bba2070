package depletion

import "github.com/gosuri/uiprogress"

// Scenario pairs a method with the aquifer and schedule it is to be run
// against. Scenarios share nothing and may be evaluated in any order.
type Scenario struct {
	Name   string
	Method Method
	Params *AquiferParameters
	Sched  *PumpingSchedule
}

// EvaluateSerial computes every scenario in order with a progress bar,
// no concurrency.
func EvaluateSerial(scns []Scenario, horizon int, periodLength float64) ([]*TimeSeriesResult, error) {
	out := make([]*TimeSeriesResult, len(scns))

	uiprogress.Start()
	bar := uiprogress.AddBar(len(scns)).AppendCompleted().PrependElapsed()
	for i, sc := range scns {
		r, err := Compute(sc.Method, sc.Params, sc.Sched, horizon, periodLength)
		if err != nil {
			uiprogress.Stop()
			return nil, err
		}
		out[i] = r
		bar.Incr()
	}
	uiprogress.Stop()

	return out, nil
}
