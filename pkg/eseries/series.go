package eseries

import (
	"fmt"
)

// Series identifies one of the IEC 60063 preferred-number series.
type Series int

const (
	E3 Series = iota
	E6
	E12
	E24
	E48
	E96
	E192
)

// RoundMode selects how a value is mapped onto a series entry.
type RoundMode int

const (
	// RoundNearest picks the closer of the two bracketing entries, ties
	// toward the lower one.
	RoundNearest RoundMode = iota
	// RoundFloor picks the bracketing entry below (by magnitude).
	RoundFloor
	// RoundCeil picks the bracketing entry above (by magnitude).
	RoundCeil
)

// e24Base holds the 24 preferred numbers per decade shared by E3 through E24,
// which subsample it by strides of 8, 4, and 2.
var e24Base = [24]float64{
	1.0, 1.1, 1.2, 1.3, 1.5, 1.6, 1.8, 2.0,
	2.2, 2.4, 2.7, 3.0, 3.3, 3.6, 3.9, 4.3,
	4.7, 5.1, 5.6, 6.2, 6.8, 7.5, 8.2, 9.1,
}

// e192Base holds the 192 preferred numbers per decade shared by E48 through
// E192, which subsample it by strides of 4 and 2.
var e192Base = [192]float64{
	1.00, 1.01, 1.02, 1.04, 1.05, 1.06, 1.07, 1.09, 1.10, 1.11, 1.13, 1.14,
	1.15, 1.17, 1.18, 1.20, 1.21, 1.23, 1.24, 1.26, 1.27, 1.29, 1.30, 1.32,
	1.33, 1.35, 1.37, 1.38, 1.40, 1.42, 1.43, 1.45, 1.47, 1.49, 1.50, 1.52,
	1.54, 1.56, 1.58, 1.60, 1.62, 1.64, 1.65, 1.67, 1.69, 1.72, 1.74, 1.76,
	1.78, 1.80, 1.82, 1.84, 1.87, 1.89, 1.91, 1.93, 1.96, 1.98, 2.00, 2.03,
	2.05, 2.08, 2.10, 2.13, 2.15, 2.18, 2.21, 2.23, 2.26, 2.29, 2.32, 2.34,
	2.37, 2.40, 2.43, 2.46, 2.49, 2.52, 2.55, 2.58, 2.61, 2.64, 2.67, 2.71,
	2.74, 2.77, 2.80, 2.84, 2.87, 2.91, 2.94, 2.98, 3.01, 3.05, 3.09, 3.12,
	3.16, 3.20, 3.24, 3.28, 3.32, 3.36, 3.40, 3.44, 3.48, 3.52, 3.57, 3.61,
	3.65, 3.70, 3.74, 3.79, 3.83, 3.88, 3.92, 3.97, 4.02, 4.07, 4.12, 4.17,
	4.22, 4.27, 4.32, 4.37, 4.42, 4.48, 4.53, 4.59, 4.64, 4.70, 4.75, 4.81,
	4.87, 4.93, 4.99, 5.05, 5.11, 5.17, 5.23, 5.30, 5.36, 5.42, 5.49, 5.56,
	5.62, 5.69, 5.76, 5.83, 5.90, 5.97, 6.04, 6.12, 6.19, 6.26, 6.34, 6.42,
	6.49, 6.57, 6.65, 6.73, 6.81, 6.90, 6.98, 7.06, 7.15, 7.23, 7.32, 7.41,
	7.50, 7.59, 7.68, 7.77, 7.87, 7.96, 8.06, 8.16, 8.25, 8.35, 8.45, 8.56,
	8.66, 8.76, 8.87, 8.98, 9.09, 9.20, 9.31, 9.42, 9.53, 9.65, 9.76, 9.88,
}

// Size returns the number of preferred numbers per decade.
func (s Series) Size() int {
	switch s {
	case E3:
		return 3
	case E6:
		return 6
	case E12:
		return 12
	case E24:
		return 24
	case E48:
		return 48
	case E96:
		return 96
	case E192:
		return 192
	}
	return 0
}

// SignificantFigures returns the number of significant figures the series'
// values are specified to: 2 for E3 through E24, 3 for E48 through E192.
func (s Series) SignificantFigures() int {
	if s.Size() <= 24 {
		return 2
	}
	return 3
}

// Value returns the i-th preferred number of the series, in [1.0, 10.0).
// i must satisfy 0 <= i < s.Size().
func (s Series) Value(i int) float64 {
	switch s {
	case E3:
		return e24Base[i*8]
	case E6:
		return e24Base[i*4]
	case E12:
		return e24Base[i*2]
	case E24:
		return e24Base[i]
	case E48:
		return e192Base[i*4]
	case E96:
		return e192Base[i*2]
	case E192:
		return e192Base[i]
	}
	panic(fmt.Sprintf("eseries: invalid series %d", int(s)))
}

func (s Series) valid() bool {
	return s >= E3 && s <= E192
}

// String returns the conventional series name, e.g. "E24".
func (s Series) String() string {
	if !s.valid() {
		return fmt.Sprintf("Series(%d)", int(s))
	}
	return fmt.Sprintf("E%d", s.Size())
}

// ParseSeries maps a series name such as "E24" onto its Series value.
func ParseSeries(name string) (Series, error) {
	switch name {
	case "E3", "e3":
		return E3, nil
	case "E6", "e6":
		return E6, nil
	case "E12", "e12":
		return E12, nil
	case "E24", "e24":
		return E24, nil
	case "E48", "e48":
		return E48, nil
	case "E96", "e96":
		return E96, nil
	case "E192", "e192":
		return E192, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSeries, name)
}

// String returns the mode name used on the command line.
func (m RoundMode) String() string {
	switch m {
	case RoundNearest:
		return "nearest"
	case RoundFloor:
		return "floor"
	case RoundCeil:
		return "ceil"
	}
	return fmt.Sprintf("RoundMode(%d)", int(m))
}

// ParseRoundMode maps a mode name onto its RoundMode value.
func ParseRoundMode(name string) (RoundMode, error) {
	switch name {
	case "nearest":
		return RoundNearest, nil
	case "floor":
		return RoundFloor, nil
	case "ceil":
		return RoundCeil, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRoundMode, name)
}
