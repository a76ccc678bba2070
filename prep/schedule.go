package prep

import (
	"fmt"
	"sort"
	"time"

	"github.com/maseology/mmio"

	depletion "github.com/Longitude103/stream-depletion"
)

// LoadSchedule reads a dated pumping-rate CSV (date,rate) and returns a
// contiguous monthly schedule spanning the file's date range, with idle
// months filled with zeros.
func LoadSchedule(fp string) (*depletion.PumpingSchedule, time.Time, error) {
	c, err := mmio.ReadCsvDateFloat(fp)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("reading schedule %s: %w", fp, err)
	}
	cd := make(map[time.Time]float64, len(c))
	for ut, v := range c {
		cd[time.Unix(ut, 0).UTC()] = v
	}
	rates, start, err := monthlySeries(cd)
	if err != nil {
		return nil, time.Time{}, err
	}
	s, err := depletion.NewPumpingSchedule(rates)
	if err != nil {
		return nil, time.Time{}, err
	}
	return s, start, nil
}

// LoadVolumeSchedule reads a dated monthly volume CSV (date,acre-ft).
func LoadVolumeSchedule(fp string) (depletion.VolumeSchedule, error) {
	c, err := mmio.ReadCsvDateFloat(fp)
	if err != nil {
		return nil, fmt.Errorf("reading volume schedule %s: %w", fp, err)
	}
	out := make(depletion.VolumeSchedule, len(c))
	for ut, v := range c {
		out[time.Unix(ut, 0).UTC()] = v
	}
	return out, nil
}

// monthlySeries orders dated values into a gapless month-by-month slice
// starting at the earliest month; months absent from the input are zero.
func monthlySeries(c map[time.Time]float64) ([]float64, time.Time, error) {
	if len(c) == 0 {
		return nil, time.Time{}, depletion.ErrEmptySchedule
	}

	mm := make(map[time.Time]float64, len(c))
	for dt, v := range c {
		mm[time.Date(dt.Year(), dt.Month(), 1, 0, 0, 0, 0, time.UTC)] += v
	}
	dts := make([]time.Time, 0, len(mm))
	for dt := range mm {
		dts = append(dts, dt)
	}
	sort.Slice(dts, func(i, j int) bool { return dts[i].Before(dts[j]) })

	first, last := dts[0], dts[len(dts)-1]
	n := (last.Year()-first.Year())*12 + int(last.Month()) - int(first.Month()) + 1
	rates := make([]float64, n)
	for i := 0; i < n; i++ {
		rates[i] = mm[first.AddDate(0, i, 0)]
	}
	return rates, first, nil
}
