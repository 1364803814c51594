// Package format renders raw scalar results as human-readable strings with
// metric (SI) prefixes.
package format

import (
	"fmt"
	"math"
)

type prefixInfo struct {
	name   string
	symbol string
}

// prefixes maps a power of ten to its SI prefix. Powers outside this map
// (including zero) carry no prefix.
var prefixes = map[int]prefixInfo{
	24:  {"yotta", "Y"},
	21:  {"zetta", "Z"},
	18:  {"exa", "E"},
	15:  {"peta", "P"},
	12:  {"tera", "T"},
	9:   {"giga", "G"},
	6:   {"mega", "M"},
	3:   {"kilo", "k"},
	-3:  {"milli", "m"},
	-6:  {"micro", "μ"},
	-9:  {"nano", "n"},
	-12: {"pico", "p"},
	-15: {"femto", "f"},
	-18: {"atto", "a"},
	-21: {"zepto", "z"},
	-24: {"yocto", "y"},
}

// Prefix scales value into [1, 1000) by steps of a thousand and returns the
// scaled value together with the matching SI symbol and prefix name. When no
// prefix applies (magnitude already in [1, 1000), or beyond yocto/yotta) the
// symbol and name are empty and the value is returned at the scale reached.
// Zero has no magnitude to scale and is returned as-is.
func Prefix(value float64) (float64, string, string) {
	if value == 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return value, "", ""
	}

	power := 0
	for math.Abs(value) >= 1000 && power < 24 {
		value /= 1000
		power += 3
	}
	for math.Abs(value) < 1 && power > -24 {
		value *= 1000
		power -= 3
	}

	info, ok := prefixes[power]
	if !ok {
		return value, "", ""
	}
	return value, info.symbol, info.name
}

// Format returns value rendered with an SI prefix and the requested number of
// significant figures, e.g. Format(3300, 3, "Ω") == "3.30 kΩ".
func Format(value float64, significantFigures int, unit string) string {
	scaled, symbol, _ := Prefix(value)

	var digits int
	switch {
	case math.Abs(scaled) >= 100:
		digits = significantFigures - 3
	case math.Abs(scaled) >= 10:
		digits = significantFigures - 2
	default:
		digits = significantFigures - 1
	}
	if digits < 0 {
		digits = 0
	}

	if symbol == "" && unit == "" {
		return fmt.Sprintf("%.*f", digits, scaled)
	}
	return fmt.Sprintf("%.*f %s%s", digits, scaled, symbol, unit)
}
