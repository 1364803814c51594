package eseries

import (
	"errors"
	"testing"
)

func TestSeriesSizeAndFigures(t *testing.T) {
	tests := []struct {
		series          Series
		expectedSize    int
		expectedFigures int
	}{
		{E3, 3, 2},
		{E6, 6, 2},
		{E12, 12, 2},
		{E24, 24, 2},
		{E48, 48, 3},
		{E96, 96, 3},
		{E192, 192, 3},
	}

	for _, tt := range tests {
		t.Run(tt.series.String(), func(t *testing.T) {
			if got := tt.series.Size(); got != tt.expectedSize {
				t.Errorf("Size() = %d, expected %d", got, tt.expectedSize)
			}
			if got := tt.series.SignificantFigures(); got != tt.expectedFigures {
				t.Errorf("SignificantFigures() = %d, expected %d", got, tt.expectedFigures)
			}
		})
	}
}

func TestSeriesTablesStrictlyIncreasing(t *testing.T) {
	for _, series := range []Series{E3, E6, E12, E24, E48, E96, E192} {
		if got := series.Value(0); got != 1.0 {
			t.Errorf("%v first entry = %v, expected 1.0", series, got)
		}
		for i := 1; i < series.Size(); i++ {
			if series.Value(i) <= series.Value(i-1) {
				t.Errorf("%v not strictly increasing at index %d: %v after %v",
					series, i, series.Value(i), series.Value(i-1))
			}
		}
		if last := series.Value(series.Size() - 1); last >= 10 {
			t.Errorf("%v last entry %v not below 10", series, last)
		}
	}
}

func TestSeriesStridedSubsampling(t *testing.T) {
	expectedE12 := []float64{1.0, 1.2, 1.5, 1.8, 2.2, 2.7, 3.3, 3.9, 4.7, 5.6, 6.8, 8.2}
	for i, expected := range expectedE12 {
		if got := E12.Value(i); got != expected {
			t.Errorf("E12.Value(%d) = %v, expected %v", i, got, expected)
		}
	}

	expectedE48Head := []float64{1.00, 1.05, 1.10, 1.15, 1.21, 1.27, 1.33, 1.40}
	for i, expected := range expectedE48Head {
		if got := E48.Value(i); got != expected {
			t.Errorf("E48.Value(%d) = %v, expected %v", i, got, expected)
		}
	}
}

func TestParseSeries(t *testing.T) {
	series, err := ParseSeries("E96")
	if err != nil {
		t.Fatalf("ParseSeries(E96) error: %v", err)
	}
	if series != E96 {
		t.Errorf("ParseSeries(E96) = %v", series)
	}
	if _, err := ParseSeries("E25"); !errors.Is(err, ErrUnknownSeries) {
		t.Errorf("expected ErrUnknownSeries, got %v", err)
	}
}

func TestParseRoundMode(t *testing.T) {
	mode, err := ParseRoundMode("ceil")
	if err != nil {
		t.Fatalf("ParseRoundMode(ceil) error: %v", err)
	}
	if mode != RoundCeil {
		t.Errorf("ParseRoundMode(ceil) = %v", mode)
	}
	if _, err := ParseRoundMode("up"); !errors.Is(err, ErrUnknownRoundMode) {
		t.Errorf("expected ErrUnknownRoundMode, got %v", err)
	}
}
