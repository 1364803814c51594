package format

import (
	"math"
	"testing"
)

func TestPrefix(t *testing.T) {
	tests := []struct {
		name           string
		value          float64
		expectedScaled float64
		expectedSymbol string
		expectedName   string
	}{
		{
			name:           "No prefix needed",
			value:          2.1,
			expectedScaled: 2.1,
			expectedSymbol: "",
			expectedName:   "",
		},
		{
			name:           "Kilo",
			value:          2.1e4,
			expectedScaled: 21.0,
			expectedSymbol: "k",
			expectedName:   "kilo",
		},
		{
			name:           "Micro",
			value:          2.13e-4,
			expectedScaled: 213.0,
			expectedSymbol: "μ",
			expectedName:   "micro",
		},
		{
			name:           "Negative kilo",
			value:          -2.1e4,
			expectedScaled: -21.0,
			expectedSymbol: "k",
			expectedName:   "kilo",
		},
		{
			name:           "Negative micro",
			value:          -2.13e-4,
			expectedScaled: -213.0,
			expectedSymbol: "μ",
			expectedName:   "micro",
		},
		{
			name:           "Zero passes through",
			value:          0,
			expectedScaled: 0,
			expectedSymbol: "",
			expectedName:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scaled, symbol, name := Prefix(tt.value)
			if math.Abs(scaled-tt.expectedScaled) > 1e-9*math.Abs(tt.expectedScaled) {
				t.Errorf("Prefix(%v) scaled = %v, expected %v", tt.value, scaled, tt.expectedScaled)
			}
			if symbol != tt.expectedSymbol || name != tt.expectedName {
				t.Errorf("Prefix(%v) = %q, %q, expected %q, %q", tt.value, symbol, name, tt.expectedSymbol, tt.expectedName)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name              string
		value             float64
		significantFigure int
		unit              string
		expected          string
	}{
		{
			name:              "Kilohertz",
			value:             2100,
			significantFigure: 4,
			unit:              "Hz",
			expected:          "2.100 kHz",
		},
		{
			name:              "Two-digit scaled value",
			value:             2.13e4,
			significantFigure: 4,
			unit:              "Hz",
			expected:          "21.30 kHz",
		},
		{
			name:              "Prefix without unit",
			value:             2.13e4,
			significantFigure: 4,
			unit:              "",
			expected:          "21.30 k",
		},
		{
			name:              "Neither prefix nor unit",
			value:             2.134,
			significantFigure: 4,
			unit:              "",
			expected:          "2.134",
		},
		{
			name:              "Standard resistor rendering",
			value:             3300,
			significantFigure: 3,
			unit:              "Ω",
			expected:          "3.30 kΩ",
		},
		{
			name:              "Plain unit without prefix",
			value:             300,
			significantFigure: 3,
			unit:              "Ω",
			expected:          "300 Ω",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.value, tt.significantFigure, tt.unit); got != tt.expected {
				t.Errorf("Format(%v, %d, %q) = %q, expected %q", tt.value, tt.significantFigure, tt.unit, got, tt.expected)
			}
		})
	}
}
