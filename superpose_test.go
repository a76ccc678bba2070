package depletion

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeEmptySchedule(t *testing.T) {
	p := testParams(t)
	_, err := Compute(GloverInfinite(), p, &PumpingSchedule{}, 12, 30.)
	assert.True(t, errors.Is(err, ErrEmptySchedule))

	_, err = Compute(GloverInfinite(), p, nil, 12, 30.)
	assert.True(t, errors.Is(err, ErrEmptySchedule))
}

func TestComputeNonPositivePeriod(t *testing.T) {
	p := testParams(t)
	s, err := NewPumpingSchedule([]float64{500.})
	require.NoError(t, err)

	_, err = Compute(GloverInfinite(), p, s, 12, 0.)
	assert.True(t, errors.Is(err, ErrNonPositivePeriod))
	_, err = Compute(GloverInfinite(), p, s, 12, -30.)
	assert.True(t, errors.Is(err, ErrNonPositivePeriod))
}

func TestComputeSinglePeriodMatchesStepResponse(t *testing.T) {
	p := testParams(t)
	m := GloverInfinite()
	s, err := NewPumpingSchedule([]float64{500.})
	require.NoError(t, err)

	r, err := Compute(m, p, s, 1, 30.)
	require.NoError(t, err)
	require.Equal(t, 1, r.Len())
	assert.InDelta(t, 500.*response(t, m, p, 30.), r.At(0), 1e-12)
}

func TestComputeAllZeroSchedule(t *testing.T) {
	p := testParams(t)
	s, err := NewPumpingSchedule([]float64{0., 0., 0.})
	require.NoError(t, err)

	r, err := Compute(GloverInfinite(), p, s, 5, 30.)
	require.NoError(t, err)
	require.Equal(t, 5, r.Len())
	for i := 0; i < r.Len(); i++ {
		assert.Zero(t, r.At(i))
	}
}

// Single month of sustained pumping: depletion climbs toward, but never
// reaches, the pumping rate.
func TestComputeSustainedPumpingApproach(t *testing.T) {
	p := testParams(t)
	s, err := NewPumpingSchedule([]float64{500.})
	require.NoError(t, err)

	r, err := Compute(GloverInfinite(), p, s, 3, 30.)
	require.NoError(t, err)
	require.Equal(t, 3, r.Len())
	assert.Greater(t, r.At(0), 0.)
	assert.Greater(t, r.At(1), r.At(0))
	assert.Greater(t, r.At(2), r.At(1))
	assert.Less(t, r.At(2), 500.)
}

func TestComputeBoundaryExceedsInfinite(t *testing.T) {
	base := testParams(t)
	bounded := testParams(t, 1500.)
	s, err := NewPumpingSchedule([]float64{500.})
	require.NoError(t, err)

	r0, err := Compute(GloverInfinite(), base, s, 3, 30.)
	require.NoError(t, err)
	r1, err := Compute(GloverAlluvialImage(), bounded, s, 3, 30.)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		assert.Greater(t, r1.At(i), r0.At(i), "period %d", i)
	}
}

// Shutting the well off after one month produces less depletion than
// leaving it on.
func TestComputeStepDownRecovers(t *testing.T) {
	p := testParams(t)
	on, err := NewPumpingSchedule([]float64{500.})
	require.NoError(t, err)
	off, err := NewPumpingSchedule([]float64{500., 0., 0.})
	require.NoError(t, err)

	rOn, err := Compute(GloverInfinite(), p, on, 3, 30.)
	require.NoError(t, err)
	rOff, err := Compute(GloverInfinite(), p, off, 3, 30.)
	require.NoError(t, err)

	assert.Equal(t, rOn.At(0), rOff.At(0))
	assert.Less(t, rOff.At(1), rOn.At(1))
	assert.Less(t, rOff.At(2), rOn.At(2))
	assert.GreaterOrEqual(t, rOff.At(2), 0.)
}

func TestComputePropagatesTableError(t *testing.T) {
	p := testParams(t)
	s, err := NewPumpingSchedule([]float64{500.})
	require.NoError(t, err)

	_, err = Compute(UnitResponseFunction(nil), p, s, 3, 30.)
	var ote *OutOfRangeTableError
	assert.True(t, errors.As(err, &ote))
}

func TestComputeWithURFTable(t *testing.T) {
	p := testParams(t)
	tbl, err := NewURFTable([]float64{30., 60., 90.}, []float64{0.1, 0.2, 0.25})
	require.NoError(t, err)
	s, err := NewPumpingSchedule([]float64{100.})
	require.NoError(t, err)

	r, err := Compute(UnitResponseFunction(tbl), p, s, 4, 30.)
	require.NoError(t, err)
	assert.InDelta(t, 10., r.At(0), 1e-12)
	assert.InDelta(t, 20., r.At(1), 1e-12)
	assert.InDelta(t, 25., r.At(2), 1e-12)
	assert.InDelta(t, 25., r.At(3), 1e-12) // clamped past the table
}
