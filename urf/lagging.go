// Package urf lags monthly water use through reach-indexed unit response
// functions, distributing each month's use across the stream reaches and
// months it eventually depletes.
package urf

import (
	"sort"
	"time"
)

// Value is one URF table record: the fraction of a unit of use delivered
// to a stream reach in the given month. Month 1 is the month of use itself.
type Value struct {
	Month    int
	Reach    int
	Fraction float64
}

// monthStart anchors a date to midnight UTC on the first of its month.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// Lag distributes each month's usage through the reach URFs. The result is
// keyed by reach, then by month anchor; overlapping usage months accumulate.
// Within a reach the records are ordered by their Month field and applied to
// consecutive calendar months starting at the usage month, so gaps in the
// numbering collapse (months 1,3 behave as 1,2).
func Lag(usage map[time.Time]float64, urf []Value) map[int]map[time.Time]float64 {
	byReach := make(map[int][]Value)
	for _, v := range urf {
		byReach[v.Reach] = append(byReach[v.Reach], v)
	}
	for _, vs := range byReach {
		sort.SliceStable(vs, func(i, j int) bool { return vs[i].Month < vs[j].Month })
	}

	out := make(map[int]map[time.Time]float64)
	for dt, use := range usage {
		mo := monthStart(dt)
		for rch, vs := range byReach {
			if out[rch] == nil {
				out[rch] = make(map[time.Time]float64)
			}
			for i, v := range vs {
				out[rch][mo.AddDate(0, i, 0)] += use * v.Fraction
			}
		}
	}
	return out
}

// Combine sums the per-reach lagged series into a single date-sorted total.
func Combine(values map[int]map[time.Time]float64) ([]time.Time, []float64) {
	sums := make(map[time.Time]float64)
	for _, reach := range values {
		for dt, v := range reach {
			sums[dt] += v
		}
	}

	dts := make([]time.Time, 0, len(sums))
	for dt := range sums {
		dts = append(dts, dt)
	}
	sort.Slice(dts, func(i, j int) bool { return dts[i].Before(dts[j]) })

	vs := make([]float64, len(dts))
	for i, dt := range dts {
		vs[i] = sums[dt]
	}
	return dts, vs
}
