package prep

import (
	"fmt"
	"time"

	"github.com/maseology/mmio"

	depletion "github.com/Longitude103/stream-depletion"
)

// WriteResult writes a period-indexed depletion series as a dated CSV,
// stamping each period's end from the start date and period length.
func WriteResult(fp string, start time.Time, periodDays float64, r *depletion.TimeSeriesResult) {
	dts := make([]time.Time, r.Len())
	for i := range dts {
		dts[i] = start.Add(time.Duration(float64(i+1) * periodDays * 24. * float64(time.Hour)))
	}
	mmio.WriteCsvDateFloats(fp, "date,depletion", dts, r.Q)
}

// WriteMonthly writes a calendar-month depletion series as a dated CSV.
func WriteMonthly(fp string, md *depletion.MonthlyDepletion) {
	mmio.WriteCsvDateFloats(fp, "date,depletion", md.Dates, md.V)
}

// WriteSummary writes a plain-text run summary.
func WriteSummary(fp string, p *depletion.AquiferParameters, r *depletion.TimeSeriesResult) error {
	tw, err := mmio.NewTXTwriter(fp)
	if err != nil {
		return fmt.Errorf("writing summary %s: %w", fp, err)
	}
	defer tw.Close()

	tw.WriteLine(fmt.Sprintf("transmissivity: %g", p.T))
	tw.WriteLine(fmt.Sprintf("storativity:    %g", p.S))
	tw.WriteLine(fmt.Sprintf("distance:       %g", p.D))
	tw.WriteLine(fmt.Sprintf("boundaries:     %v", p.W))
	tw.WriteLine(fmt.Sprintf("sdf:            %g", p.SDF()))
	tw.WriteLine(fmt.Sprintf("periods:        %d", r.Len()))
	if r.Len() > 0 {
		tw.WriteLine(fmt.Sprintf("final rate:     %g", r.At(r.Len()-1)))
	}
	return nil
}
