package eseries

import (
	"errors"
	"math"
	"testing"
)

func TestDecompose(t *testing.T) {
	tests := []struct {
		name                string
		value               float64
		expectedSignificand float64
		expectedExponent    int
	}{
		{
			name:                "Zero is degenerate",
			value:               0,
			expectedSignificand: 0,
			expectedExponent:    0,
		},
		{
			name:                "Unit value",
			value:               1,
			expectedSignificand: 1,
			expectedExponent:    0,
		},
		{
			name:                "Kiloohm range",
			value:               3300,
			expectedSignificand: 3.3,
			expectedExponent:    3,
		},
		{
			name:                "Exact power of ten",
			value:               1000,
			expectedSignificand: 1.0,
			expectedExponent:    3,
		},
		{
			name:                "Small exact power of ten",
			value:               0.001,
			expectedSignificand: 1.0,
			expectedExponent:    -3,
		},
		{
			name:                "Sub-unit value",
			value:               0.09,
			expectedSignificand: 9.0,
			expectedExponent:    -2,
		},
		{
			name:                "Negative value keeps sign",
			value:               -4700,
			expectedSignificand: -4.7,
			expectedExponent:    3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			significand, exponent := Decompose(tt.value)
			if math.Abs(significand-tt.expectedSignificand) > 1e-9 {
				t.Errorf("Decompose(%v) significand = %v, expected %v", tt.value, significand, tt.expectedSignificand)
			}
			if exponent != tt.expectedExponent {
				t.Errorf("Decompose(%v) exponent = %d, expected %d", tt.value, exponent, tt.expectedExponent)
			}
		})
	}
}

func TestDecomposeSignificandRange(t *testing.T) {
	values := []float64{0.0001, 0.42, 1, 9.9999, 10, 123.456, 1e6, 9.1e6, -3500}
	for _, value := range values {
		significand, exponent := Decompose(value)
		if math.Abs(significand) < 1 || math.Abs(significand) >= 10 {
			t.Errorf("Decompose(%v) significand %v outside [1, 10)", value, significand)
		}
		reconstructed := significand * math.Pow10(exponent)
		if math.Abs(reconstructed-value) > 1e-9*math.Abs(value) {
			t.Errorf("Decompose(%v) does not reconstruct: %v * 10^%d = %v", value, significand, exponent, reconstructed)
		}
	}
}

func TestRoundToSeries(t *testing.T) {
	tests := []struct {
		name      string
		magnitude float64
		series    Series
		mode      RoundMode
		expected  int
	}{
		{
			name:      "Nearest below midpoint",
			magnitude: 3.4,
			series:    E24,
			mode:      RoundNearest,
			expected:  12, // 3.3
		},
		{
			name:      "Nearest above midpoint",
			magnitude: 3.5,
			series:    E24,
			mode:      RoundNearest,
			expected:  13, // 3.6
		},
		{
			name:      "Nearest tie goes to floor",
			magnitude: 1.05,
			series:    E24,
			mode:      RoundNearest,
			expected:  0, // 1.0
		},
		{
			name:      "Floor",
			magnitude: 3.5,
			series:    E24,
			mode:      RoundFloor,
			expected:  12, // 3.3
		},
		{
			name:      "Ceil",
			magnitude: 3.4,
			series:    E24,
			mode:      RoundCeil,
			expected:  13, // 3.6
		},
		{
			name:      "Exact entry under ceil stays put",
			magnitude: 3.3,
			series:    E24,
			mode:      RoundCeil,
			expected:  12,
		},
		{
			name:      "Ceil clamps above the table",
			magnitude: 9.5,
			series:    E24,
			mode:      RoundCeil,
			expected:  23, // 9.1 is the last entry
		},
		{
			name:      "Nearest clamps above the table",
			magnitude: 9.9,
			series:    E24,
			mode:      RoundNearest,
			expected:  23,
		},
		{
			name:      "Zero magnitude is degenerate",
			magnitude: 0,
			series:    E24,
			mode:      RoundNearest,
			expected:  0,
		},
		{
			name:      "E192 exact entry",
			magnitude: 9.88,
			series:    E192,
			mode:      RoundNearest,
			expected:  191,
		},
		{
			name:      "E6 stride",
			magnitude: 2.0,
			series:    E6,
			mode:      RoundNearest,
			expected:  2, // brackets 1.5 and 2.2, closer to 2.2
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, err := RoundToSeries(tt.magnitude, tt.series, tt.mode)
			if err != nil {
				t.Fatalf("RoundToSeries(%v, %v, %v) error: %v", tt.magnitude, tt.series, tt.mode, err)
			}
			if index != tt.expected {
				t.Errorf("RoundToSeries(%v, %v, %v) = %d (%v), expected %d (%v)",
					tt.magnitude, tt.series, tt.mode, index, tt.series.Value(index), tt.expected, tt.series.Value(tt.expected))
			}
		})
	}
}

func TestRoundToSeriesInvalidArguments(t *testing.T) {
	if _, err := RoundToSeries(3.3, Series(99), RoundNearest); !errors.Is(err, ErrUnknownSeries) {
		t.Errorf("expected ErrUnknownSeries, got %v", err)
	}
	if _, err := RoundToSeries(3.3, E24, RoundMode(99)); !errors.Is(err, ErrUnknownRoundMode) {
		t.Errorf("expected ErrUnknownRoundMode, got %v", err)
	}
	if _, err := RoundToSeries(-3.3, E24, RoundNearest); err == nil {
		t.Error("expected error for negative magnitude")
	}
}

func TestRoundToSeriesMonotonic(t *testing.T) {
	for _, series := range []Series{E12, E24, E96} {
		previous := 0
		for magnitude := 1.0; magnitude < 10.0; magnitude += 0.01 {
			index, err := RoundToSeries(magnitude, series, RoundNearest)
			if err != nil {
				t.Fatalf("RoundToSeries(%v, %v) error: %v", magnitude, series, err)
			}
			if index < previous {
				t.Fatalf("RoundToSeries not monotonic on %v: index %d after %d at magnitude %v",
					series, index, previous, magnitude)
			}
			previous = index
		}
	}
}

func TestCreateIdempotentOnPreferredNumbers(t *testing.T) {
	allSeries := []Series{E3, E6, E12, E24, E48, E96, E192}
	modes := []RoundMode{RoundNearest, RoundFloor, RoundCeil}
	decades := []int{-2, 0, 3}

	for _, series := range allSeries {
		for i := 0; i < series.Size(); i++ {
			for _, decade := range decades {
				value := series.Value(i) * math.Pow10(decade)
				for _, mode := range modes {
					result, err := Create(value, series, mode)
					if err != nil {
						t.Fatalf("Create(%v, %v, %v) error: %v", value, series, mode, err)
					}
					if math.Abs(result.Float()-value) > 1e-9*math.Abs(value) {
						t.Errorf("Create(%v, %v, %v).Float() = %v, expected the value itself",
							value, series, mode, result.Float())
					}
				}
			}
		}
	}
}

func TestCreateSignSymmetry(t *testing.T) {
	values := []float64{1, 2.5, 33.2, 470, 1234, 98765}
	modes := []RoundMode{RoundNearest, RoundFloor, RoundCeil}
	for _, value := range values {
		for _, mode := range modes {
			positive, err := Create(value, E24, mode)
			if err != nil {
				t.Fatalf("Create(%v) error: %v", value, err)
			}
			negative, err := Create(-value, E24, mode)
			if err != nil {
				t.Fatalf("Create(%v) error: %v", -value, err)
			}
			if positive.Float() != -negative.Float() {
				t.Errorf("Create(±%v, E24, %v): %v and %v are not symmetric",
					value, mode, positive.Float(), negative.Float())
			}
		}
	}
}

func TestCreateNegativeRoundsByMagnitude(t *testing.T) {
	// Floor and ceil act on the magnitude: ceil of -3.32k picks the
	// preferred number whose magnitude is the ceiling of 3.32.
	result, err := Create(-3320, E24, RoundCeil)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if math.Abs(result.Float()-(-3600)) > 1e-6 {
		t.Errorf("Create(-3320, E24, ceil).Float() = %v, expected -3600", result.Float())
	}

	result, err = Create(-3320, E24, RoundFloor)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if math.Abs(result.Float()-(-3300)) > 1e-6 {
		t.Errorf("Create(-3320, E24, floor).Float() = %v, expected -3300", result.Float())
	}
}

func TestCreateConcreteScenario(t *testing.T) {
	result, err := Create(-3500, E24, RoundNearest)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if result.DecadeExponent != 3 {
		t.Errorf("decade exponent = %d, expected 3", result.DecadeExponent)
	}
	if got := result.Series.Value(result.SeriesExponent); got != 3.6 {
		t.Errorf("series value = %v, expected 3.6", got)
	}
	if !result.Negative {
		t.Error("expected negative sign")
	}
	if math.Abs(result.Float()-(-3600)) > 1e-6 {
		t.Errorf("Float() = %v, expected -3600", result.Float())
	}
}

func TestNewValidatesSeriesExponent(t *testing.T) {
	if _, err := New(E24, 24, 0, false); err == nil {
		t.Error("expected error for series exponent at series size")
	}
	if _, err := New(E24, -1, 0, false); err == nil {
		t.Error("expected error for negative series exponent")
	}
	value, err := New(E24, 12, 3, true)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if math.Abs(value.Float()-(-3300)) > 1e-6 {
		t.Errorf("Float() = %v, expected -3300", value.Float())
	}
}
