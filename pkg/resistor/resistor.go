// Package resistor looks up values in the table of standard resistances
// built from the 24 per-decade base values across seven decades
// (1 Ω to 9.1 MΩ).
package resistor

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownKind indicates a lookup kind outside nearest/up/down.
var ErrUnknownKind = errors.New("unknown lookup kind")

// Kind selects the rounding direction of a table lookup.
type Kind int

const (
	// Nearest picks the closest table entry, ties toward the lower one.
	Nearest Kind = iota
	// Up picks the smallest entry greater than or equal to the value.
	Up
	// Down picks the largest entry less than or equal to the value.
	Down
)

// String returns the kind name used on the command line.
func (k Kind) String() string {
	switch k {
	case Nearest:
		return "nearest"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a kind name onto its Kind value.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "nearest":
		return Nearest, nil
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

var standardResistanceBase = [24]float64{
	1.0, 1.1, 1.2, 1.3, 1.5, 1.6, 1.8, 2.0,
	2.2, 2.4, 2.7, 3.0, 3.3, 3.6, 3.9, 4.3,
	4.7, 5.1, 5.6, 6.2, 6.8, 7.5, 8.2, 9.1,
}

var decades = [7]float64{1, 10, 100, 1e3, 10e3, 100e3, 1e6}

// standardResistances is the sorted table of standard values, built once.
var standardResistances = buildStandardResistances()

func buildStandardResistances() []float64 {
	table := make([]float64, 0, len(standardResistanceBase)*len(decades))
	for _, decade := range decades {
		for _, base := range standardResistanceBase {
			table = append(table, decade*base)
		}
	}
	sort.Float64s(table)
	return table
}

// NearestResistance returns the standard resistance closest to value. Values below the
// first entry or above the last clamp to the respective extreme; exact
// midpoints resolve toward the lower entry.
func NearestResistance(value float64) float64 {
	pos := sort.SearchFloat64s(standardResistances, value)
	if pos == 0 {
		return standardResistances[0]
	}
	if pos == len(standardResistances) {
		return standardResistances[len(standardResistances)-1]
	}
	left := standardResistances[pos-1]
	right := standardResistances[pos]
	if value-left <= right-value {
		return left
	}
	return right
}

// RoundUp returns the smallest standard resistance greater than or equal to
// value. ok is false when value exceeds the largest table entry.
func RoundUp(value float64) (result float64, ok bool) {
	pos := sort.SearchFloat64s(standardResistances, value)
	if pos == len(standardResistances) {
		return 0, false
	}
	return standardResistances[pos], true
}

// RoundDown returns the largest standard resistance less than or equal to
// value. ok is false when value is below the smallest table entry.
func RoundDown(value float64) (result float64, ok bool) {
	pos := sort.Search(len(standardResistances), func(i int) bool {
		return standardResistances[i] > value
	})
	if pos == 0 {
		return 0, false
	}
	return standardResistances[pos-1], true
}

// Lookup dispatches on kind. ok is false when the table has no entry in the
// requested direction; err reports an invalid kind.
func Lookup(value float64, kind Kind) (result float64, ok bool, err error) {
	switch kind {
	case Nearest:
		return NearestResistance(value), true, nil
	case Up:
		result, ok = RoundUp(value)
		return result, ok, nil
	case Down:
		result, ok = RoundDown(value)
		return result, ok, nil
	}
	return 0, false, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
}
