// Package eseries rounds arbitrary values onto the IEC 60063 preferred-number
// series (E3 through E192). A value is decomposed into a significand in
// [1.0, 10.0) and a power-of-ten decade, the significand is mapped onto a
// series entry, and the pieces reassemble into a standard value.
package eseries

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/hktkzyx/engineering-toolbox/pkg/constants"
	"github.com/hktkzyx/engineering-toolbox/pkg/mathutil"
)

var (
	// ErrUnknownSeries indicates a series name outside E3..E192.
	ErrUnknownSeries = errors.New("unknown series")

	// ErrUnknownRoundMode indicates a rounding mode outside nearest/floor/ceil.
	ErrUnknownRoundMode = errors.New("unknown rounding mode")
)

// Decompose splits value into a significand and a power-of-ten exponent such
// that value == significand * 10^exponent with |significand| in [1.0, 10.0).
// The significand keeps the sign of value. Decompose(0) returns (0, 0).
func Decompose(value float64) (float64, int) {
	if value == 0 {
		return 0, 0
	}

	// Seed from the logarithm, then normalize with strict boundary tests so
	// powers of ten land exactly on significand 1.0.
	exponent := int(math.Floor(math.Log10(math.Abs(value))))
	significand := value / math.Pow10(exponent)
	for math.Abs(significand) >= 10 {
		significand /= 10
		exponent++
	}
	for math.Abs(significand) < 1 {
		significand *= 10
		exponent--
	}
	return significand, exponent
}

// RoundToSeries maps a magnitude in [1.0, 10.0) onto an index of the series'
// preferred-number table. The two bracketing entries are found by binary
// search; the ceiling index clamps to the last entry when the magnitude
// exceeds it. A magnitude sitting on a table entry maps to that entry under
// every mode, and a zero magnitude maps to index 0.
func RoundToSeries(magnitude float64, series Series, mode RoundMode) (int, error) {
	if !series.valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownSeries, int(series))
	}
	if mode != RoundNearest && mode != RoundFloor && mode != RoundCeil {
		return 0, fmt.Errorf("%w: %d", ErrUnknownRoundMode, int(mode))
	}
	if magnitude < 0 {
		return 0, fmt.Errorf("magnitude must be non-negative, got %v", magnitude)
	}
	if magnitude == 0 {
		return 0, nil
	}

	size := series.Size()
	pos := sort.Search(size, func(i int) bool {
		return series.Value(i) >= magnitude
	})

	// Decomposed significands can drift off a table entry by a few ulps;
	// treat a near-exact hit as exact so rounding stays idempotent.
	if pos < size && mathutil.WithinTolerance(series.Value(pos), magnitude, constants.ComparisonTolerance) {
		return pos, nil
	}
	if pos > 0 && mathutil.WithinTolerance(series.Value(pos-1), magnitude, constants.ComparisonTolerance) {
		return pos - 1, nil
	}

	floorIndex := pos - 1
	if floorIndex < 0 {
		floorIndex = 0
	}
	ceilIndex := pos
	if ceilIndex >= size {
		ceilIndex = size - 1
	}

	switch mode {
	case RoundFloor:
		return floorIndex, nil
	case RoundCeil:
		return ceilIndex, nil
	default:
		if 2*magnitude <= series.Value(floorIndex)+series.Value(ceilIndex) {
			return floorIndex, nil
		}
		return ceilIndex, nil
	}
}

// ESeriesValue is a value rounded onto a preferred-number series, stored as
// the series, the index into its table, the power-of-ten decade, and the
// sign. Immutable once built.
type ESeriesValue struct {
	Series         Series
	SeriesExponent int
	DecadeExponent int
	Negative       bool
}

// New builds an ESeriesValue from its parts, validating the series exponent
// against the series size.
func New(series Series, seriesExponent, decadeExponent int, negative bool) (ESeriesValue, error) {
	if !series.valid() {
		return ESeriesValue{}, fmt.Errorf("%w: %d", ErrUnknownSeries, int(series))
	}
	if seriesExponent < 0 || seriesExponent >= series.Size() {
		return ESeriesValue{}, fmt.Errorf("series exponent %d out of range [0, %d) for %s",
			seriesExponent, series.Size(), series)
	}
	return ESeriesValue{
		Series:         series,
		SeriesExponent: seriesExponent,
		DecadeExponent: decadeExponent,
		Negative:       negative,
	}, nil
}

// Create rounds value onto the series under the given mode. Negative values
// round by magnitude and the sign is reattached afterward, so floor and ceil
// act on the magnitude rather than on the signed value.
func Create(value float64, series Series, mode RoundMode) (ESeriesValue, error) {
	significand, decadeExponent := Decompose(value)
	index, err := RoundToSeries(math.Abs(significand), series, mode)
	if err != nil {
		return ESeriesValue{}, err
	}
	return ESeriesValue{
		Series:         series,
		SeriesExponent: index,
		DecadeExponent: decadeExponent,
		Negative:       math.Signbit(significand),
	}, nil
}

// Float reconstructs the signed scalar value.
func (v ESeriesValue) Float() float64 {
	result := v.Series.Value(v.SeriesExponent) * math.Pow10(v.DecadeExponent)
	if v.Negative {
		return -result
	}
	return result
}
