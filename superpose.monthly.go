package depletion

import (
	"math"
	"sort"
	"time"
)

const (
	ft3PerAcreFt = 43560.

	// months contributing less than a thousandth of an acre-ft are dropped
	// from the reported series
	monthlyCutoff = 0.001
)

// ComputeMonthly follows a calendar-dated monthly volume schedule at daily
// resolution: each month's volume [acre-ft] is spread over its actual days
// as a constant rate [ft³/day], every pumped day is stepped through the
// method's unit response with depletion landing the day after pumping, and
// the daily totals are re-aggregated into calendar months [acre-ft/month].
//
// The returned series starts at the earliest scheduled month and spans at
// most totalMonths, omitting months below the reporting cutoff. A negative
// monthly total ends the series early.
func ComputeMonthly(m Method, p *AquiferParameters, vols VolumeSchedule, totalMonths int, daysPerMonth float64) (*MonthlyDepletion, error) {
	if len(vols) == 0 {
		return nil, ErrEmptySchedule
	}
	if !(daysPerMonth > 0.) {
		return nil, ErrNonPositivePeriod
	}

	totalDays := int(math.Ceil(float64(totalMonths) * daysPerMonth))

	// unit depletion fraction at daily steps
	base := make([]float64, totalDays)
	for i := range base {
		f, err := m.UnitStepResponse(p, float64(i))
		if err != nil {
			return nil, err
		}
		base[i] = f
	}

	// normalize volumes onto first-of-month anchors; every map fold below
	// iterates sorted keys so repeated runs sum in one order and return
	// bit-identical results
	volDates := make([]time.Time, 0, len(vols))
	for dt := range vols {
		volDates = append(volDates, dt)
	}
	sort.Slice(volDates, func(i, j int) bool { return volDates[i].Before(volDates[j]) })
	monthly := make(map[time.Time]float64, len(vols))
	for _, dt := range volDates {
		v := vols[dt]
		if v < 0. || math.IsNaN(v) {
			return nil, &InvalidParameterError{"volume", v}
		}
		monthly[monthStart(dt)] += v
	}
	months := make([]time.Time, 0, len(monthly))
	for dt := range monthly {
		months = append(months, dt)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	// spread each month's volume over its days as a constant rate [ft³/day]
	dailyRate := make(map[time.Time]float64)
	for _, mo := range months {
		dim := daysInMonth(mo)
		rate := monthly[mo] * ft3PerAcreFt / float64(dim)
		for d := 0; d < dim; d++ {
			dailyRate[mo.AddDate(0, 0, d)] += rate
		}
	}
	days := make([]time.Time, 0, len(dailyRate))
	for dt := range dailyRate {
		days = append(days, dt)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	// superpose each pumped day's step response; depletion lags pumping by a day
	dailyDep := make(map[time.Time]float64)
	for _, dt := range days {
		rate := dailyRate[dt]
		if rate <= 0. {
			continue
		}
		prev := 0.
		for i := 0; i < totalDays; i++ {
			dailyDep[dt.AddDate(0, 0, i+1)] += rate * (base[i] - prev)
			prev = base[i]
		}
	}

	// aggregate to calendar months, back to acre-ft
	depDates := make([]time.Time, 0, len(dailyDep))
	for dt := range dailyDep {
		depDates = append(depDates, dt)
	}
	sort.Slice(depDates, func(i, j int) bool { return depDates[i].Before(depDates[j]) })
	monthlyDep := make(map[time.Time]float64)
	for _, dt := range depDates {
		monthlyDep[monthStart(dt)] += dailyDep[dt] / ft3PerAcreFt
	}

	out := &MonthlyDepletion{}
	start := months[0]
	for i := 0; i < totalMonths; i++ {
		dt := start.AddDate(0, i, 0)
		v := monthlyDep[dt]
		if v < 0. {
			break
		}
		if v > monthlyCutoff {
			out.Dates = append(out.Dates, dt)
			out.V = append(out.V, v)
		}
	}
	return out, nil
}
