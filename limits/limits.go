// Package limits loads the external per-feature domain brackets described
// in spec.md §6: a headerless CSV, one row per feature, of the form
// feature_index,lower_limit,upper_limit.
package limits

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
)

// ErrMissingFeature is returned by Validate when a model references a
// feature index absent from a loaded limits file.
var ErrMissingFeature = errors.New("limits: feature missing from limits file")

// ErrMalformedLimits is returned when a row cannot be parsed or a bound is
// non-finite.
var ErrMalformedLimits = errors.New("limits: malformed row")

// Load parses path as a headerless CSV of feature_index,lower_limit,upper_limit
// rows and returns the per-feature [lower, upper] bracket.
func Load(path string) (map[int][2]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("limits: open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads the same format as Load from an arbitrary reader.
func Parse(r io.Reader) (map[int][2]float64, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true

	out := make(map[int][2]float64)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedLimits, err)
		}

		idx, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("%w: feature index %q: %v", ErrMalformedLimits, rec[0], err)
		}
		lo, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: lower limit %q: %v", ErrMalformedLimits, rec[1], err)
		}
		hi, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: upper limit %q: %v", ErrMalformedLimits, rec[2], err)
		}
		if math.IsInf(lo, 0) || math.IsInf(hi, 0) {
			return nil, fmt.Errorf("%w: feature %d: non-finite bound", ErrMalformedLimits, idx)
		}
		if !(lo < hi) {
			return nil, fmt.Errorf("%w: feature %d: lower %v must be less than upper %v", ErrMalformedLimits, idx, lo, hi)
		}
		out[idx] = [2]float64{lo, hi}
	}
	return out, nil
}

// Validate checks that every feature index in features has a bracket in
// limits, returning ErrMissingFeature on the first gap found.
func Validate(limits map[int][2]float64, features []int) error {
	for _, f := range features {
		if _, ok := limits[f]; !ok {
			return fmt.Errorf("%w: feature %d", ErrMissingFeature, f)
		}
	}
	return nil
}
