package prep

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/maseology/mmio"

	depletion "github.com/Longitude103/stream-depletion"
	"github.com/Longitude103/stream-depletion/urf"
)

// LoadURFTable reads a two-column CSV (elapsed time, depletion fraction)
// into a validated response table. The header row is skipped.
func LoadURFTable(fp string) (*depletion.URFTable, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, fmt.Errorf("opening URF table %s: %w", fp, err)
	}
	defer f.Close()

	var ts, fs []float64
	for rec := range mmio.LoadCSV(io.Reader(f), 1) {
		t, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return nil, fmt.Errorf("URF table %s: bad time %q: %w", fp, rec[0], err)
		}
		v, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("URF table %s: bad fraction %q: %w", fp, rec[1], err)
		}
		ts = append(ts, t)
		fs = append(fs, v)
	}
	return depletion.NewURFTable(ts, fs)
}

// LoadReachURF reads a three-column CSV (month, reach, fraction) of
// reach-indexed URF records for monthly lagging.
func LoadReachURF(fp string) ([]urf.Value, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, fmt.Errorf("opening reach URF %s: %w", fp, err)
	}
	defer f.Close()

	var out []urf.Value
	for rec := range mmio.LoadCSV(io.Reader(f), 1) {
		mo, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("reach URF %s: bad month %q: %w", fp, rec[0], err)
		}
		rch, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, fmt.Errorf("reach URF %s: bad reach %q: %w", fp, rec[1], err)
		}
		v, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, fmt.Errorf("reach URF %s: bad fraction %q: %w", fp, rec[2], err)
		}
		out = append(out, urf.Value{Month: mo, Reach: rch, Fraction: v})
	}
	return out, nil
}
