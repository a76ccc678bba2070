package depletion

import (
	"fmt"
	"math"
	"time"
)

// PumpingSchedule is a contiguous series of pumping rates, one per period,
// beginning at period zero. A zero entry means the well was idle that
// period; gaps are not representable. The final rate persists beyond the
// last period, so a well that shuts off must carry explicit trailing zeros.
type PumpingSchedule struct {
	Q []float64 // pumping rate per period [L³/T]
}

// NewPumpingSchedule validates that every rate is finite and non-negative.
func NewPumpingSchedule(rates []float64) (*PumpingSchedule, error) {
	for i, q := range rates {
		if q < 0. || math.IsNaN(q) || math.IsInf(q, 0) {
			return nil, &InvalidParameterError{fmt.Sprintf("rate[%d]", i), q}
		}
	}
	cq := make([]float64, len(rates))
	copy(cq, rates)
	return &PumpingSchedule{Q: cq}, nil
}

// VolumeSchedule maps the first day of each pumped calendar month to the
// volume pumped that month [acre-ft]. Months absent from the map are idle.
type VolumeSchedule map[time.Time]float64

// monthStart normalizes a date to midnight UTC on the first of its month.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// daysInMonth returns the number of days in the month containing t.
func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
