package depletion

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ten years of depletion from a single 100 acre-ft month pumped 4000 ft
// from the stream in an infinite aquifer. Expected values reproduce the
// published Glover worked example (transmissivity given in gal/day/ft).
func TestComputeMonthlyInfinite(t *testing.T) {
	p, err := NewAquiferParameters(261800./7.481, 0.2, 4000.)
	require.NoError(t, err)

	vols := VolumeSchedule{
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC): 100.,
	}
	md, err := ComputeMonthly(GloverInfinite(), p, vols, 120, 30.42)
	require.NoError(t, err)
	require.LessOrEqual(t, len(md.V), 120)
	require.GreaterOrEqual(t, len(md.V), 6)

	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), md.Dates[0])
	want := []float64{8.16991, 20.97926, 13.51416, 7.75856, 5.43355, 3.85735}
	for i, w := range want {
		assert.InDelta(t, w, md.V[i], 5e-5, "month %d", i)
	}
}

// Same single-month schedule, lagged by a 265-day stream depletion factor.
func TestComputeMonthlySDF(t *testing.T) {
	p, err := NewAquiferParameters(5000., 0.2, 1000.)
	require.NoError(t, err)

	vols := VolumeSchedule{
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC): 100.,
	}
	md, err := ComputeMonthly(JenkinsSDFDays(265.), p, vols, 120, 30.42)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(md.V), 6)

	want := []float64{0.76803, 6.84215, 10.08459, 7.89948, 6.35489, 4.88515}
	for i, w := range want {
		assert.InDelta(t, w, md.V[i], 5e-5, "month %d", i)
	}
}

func TestComputeMonthlyEmptySchedule(t *testing.T) {
	p, err := NewAquiferParameters(5000., 0.2, 1000.)
	require.NoError(t, err)
	_, err = ComputeMonthly(GloverInfinite(), p, VolumeSchedule{}, 12, 30.42)
	assert.True(t, errors.Is(err, ErrEmptySchedule))
}

func TestComputeMonthlyNonPositivePeriod(t *testing.T) {
	p, err := NewAquiferParameters(5000., 0.2, 1000.)
	require.NoError(t, err)
	vols := VolumeSchedule{time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC): 100.}
	_, err = ComputeMonthly(GloverInfinite(), p, vols, 12, 0.)
	assert.True(t, errors.Is(err, ErrNonPositivePeriod))
}

func TestComputeMonthlyNegativeVolume(t *testing.T) {
	p, err := NewAquiferParameters(5000., 0.2, 1000.)
	require.NoError(t, err)
	vols := VolumeSchedule{time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC): -100.}
	_, err = ComputeMonthly(GloverInfinite(), p, vols, 12, 30.42)
	var ipe *InvalidParameterError
	assert.True(t, errors.As(err, &ipe))
}

// Repeated runs over the same schedule must agree bit for bit: every map
// fold sums in sorted-key order, so no last-ULP drift between calls.
func TestComputeMonthlyDeterministic(t *testing.T) {
	p, err := NewAquiferParameters(5000., 0.2, 1000.)
	require.NoError(t, err)

	vols := VolumeSchedule{
		time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC):  40.,
		time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC): 60., // same month, accumulates
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC):  25.,
	}

	first, err := ComputeMonthly(GloverInfinite(), p, vols, 48, 30.42)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := ComputeMonthly(GloverInfinite(), p, vols, 48, 30.42)
		require.NoError(t, err)
		assert.Equal(t, first.Dates, again.Dates)
		assert.Equal(t, first.V, again.V)
	}
}

// Mid-month schedule dates anchor to their month; split entries accumulate.
func TestComputeMonthlyNormalizesDates(t *testing.T) {
	p, err := NewAquiferParameters(5000., 0.2, 1000.)
	require.NoError(t, err)

	a := VolumeSchedule{time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC): 100.}
	b := VolumeSchedule{time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC): 100.}

	ra, err := ComputeMonthly(GloverInfinite(), p, a, 24, 30.42)
	require.NoError(t, err)
	rb, err := ComputeMonthly(GloverInfinite(), p, b, 24, 30.42)
	require.NoError(t, err)
	assert.Equal(t, rb.V, ra.V)
}
