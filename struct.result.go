package depletion

import "time"

// TimeSeriesResult holds a computed depletion-rate series, one value per
// evaluation period in order. Allocated fresh per computation and never
// mutated after return.
type TimeSeriesResult struct {
	Q []float64 // depletion rate at the end of each period [L³/T]
}

// Len returns the number of evaluated periods.
func (r *TimeSeriesResult) Len() int { return len(r.Q) }

// At returns the depletion rate at period i.
func (r *TimeSeriesResult) At(i int) float64 { return r.Q[i] }

// MonthlyDepletion is a dated monthly depletion series [acre-ft/month],
// produced by the calendar-resolved volume pipeline.
type MonthlyDepletion struct {
	Dates []time.Time
	V     []float64
}
