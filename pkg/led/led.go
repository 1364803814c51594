// Package led models the voltage/current characteristic of an LED from
// calibration samples and derives series-resistor sizing for a given supply
// voltage. The curve is a monotone piecewise-cubic interpolant with current
// as the independent variable; the inverse direction is solved by bounded
// bisection. Out-of-range curve queries return NaN so batch evaluation keeps
// going; physically invalid sizing requests fail hard.
package led

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"

	"github.com/hktkzyx/engineering-toolbox/pkg/constants"
	"github.com/hktkzyx/engineering-toolbox/pkg/mathutil"
)

var (
	// ErrVoltageTooLow indicates a supply voltage at or below the curve's
	// least power voltage, where the LED draws no current.
	ErrVoltageTooLow = errors.New("supply voltage too low")

	// ErrCurrentOutOfRange indicates a requested working current outside the
	// range reachable with the given supply voltage.
	ErrCurrentOutOfRange = errors.New("current out of range")

	// ErrResistanceOutOfRange indicates a divider resistance outside the
	// range that keeps the working current within calibration bounds.
	ErrResistanceOutOfRange = errors.New("resistance out of range")
)

// TransferCurve is one LED's measured voltage/current characteristic.
// Immutable after construction; safe for concurrent use.
type TransferCurve struct {
	name string
	id   string

	vMin, vMax float64
	iMin, iMax float64

	spline interp.FritschButland
}

// NewTransferCurve builds a curve from matched calibration samples sorted by
// current ascending. Both slices must increase strictly; monotonicity of the
// underlying device is the caller's guarantee and is checked only at this
// boundary.
func NewTransferCurve(name, id string, currents, voltages []float64) (*TransferCurve, error) {
	if len(currents) != len(voltages) {
		return nil, fmt.Errorf("calibration arrays differ in length: %d currents, %d voltages",
			len(currents), len(voltages))
	}
	if len(currents) < 2 {
		return nil, fmt.Errorf("need at least 2 calibration samples, got %d", len(currents))
	}
	for i := 1; i < len(currents); i++ {
		if currents[i] <= currents[i-1] {
			return nil, fmt.Errorf("calibration currents must increase strictly at index %d", i)
		}
		if voltages[i] <= voltages[i-1] {
			return nil, fmt.Errorf("calibration voltages must increase strictly at index %d", i)
		}
	}

	curve := &TransferCurve{
		name: name,
		id:   id,
		vMin: voltages[0],
		vMax: voltages[len(voltages)-1],
		iMin: currents[0],
		iMax: currents[len(currents)-1],
	}
	if err := curve.spline.Fit(currents, voltages); err != nil {
		return nil, fmt.Errorf("fitting calibration spline: %w", err)
	}
	return curve, nil
}

// Name returns the curve's display name.
func (c *TransferCurve) Name() string { return c.name }

// ID returns the curve's optional identifier.
func (c *TransferCurve) ID() string { return c.id }

// VoltageBounds returns the calibration voltage range.
func (c *TransferCurve) VoltageBounds() (min, max float64) { return c.vMin, c.vMax }

// CurrentBounds returns the calibration current range.
func (c *TransferCurve) CurrentBounds() (min, max float64) { return c.iMin, c.iMax }

// LeastPowerVoltage returns the voltage below which the LED draws no current.
func (c *TransferCurve) LeastPowerVoltage() float64 { return c.vMin }

// VoltageAt evaluates the curve at current, in amps. Currents outside the
// calibration range return NaN.
func (c *TransferCurve) VoltageAt(current float64) float64 {
	if math.IsNaN(current) || current < c.iMin || current > c.iMax {
		return math.NaN()
	}
	return c.spline.Predict(current)
}

// CurrentAt inverts the curve at voltage by bisection. Voltages outside the
// open calibration interval return NaN.
func (c *TransferCurve) CurrentAt(voltage float64) float64 {
	if !c.IsVoltageValid(voltage) {
		return math.NaN()
	}
	current, err := mathutil.Bisect(func(i float64) float64 {
		return c.spline.Predict(i) - voltage
	}, c.iMin, c.iMax, constants.BisectionTolerance, constants.BisectionMaxIterations)
	if err != nil {
		return math.NaN()
	}
	return current
}

// VoltageAtEach maps VoltageAt over currents element-wise. NaN entries for
// out-of-range samples propagate instead of aborting the batch.
func (c *TransferCurve) VoltageAtEach(currents []float64) []float64 {
	voltages := make([]float64, len(currents))
	for i, current := range currents {
		voltages[i] = c.VoltageAt(current)
	}
	return voltages
}

// CurrentAtEach maps CurrentAt over voltages element-wise.
func (c *TransferCurve) CurrentAtEach(voltages []float64) []float64 {
	currents := make([]float64, len(voltages))
	for i, voltage := range voltages {
		currents[i] = c.CurrentAt(voltage)
	}
	return currents
}

// IsVoltageValid reports whether voltage lies strictly inside the
// calibration voltage range.
func (c *TransferCurve) IsVoltageValid(voltage float64) bool {
	return voltage > c.vMin && voltage < c.vMax
}

// IsCurrentValid reports whether current lies strictly inside the
// calibration current range.
func (c *TransferCurve) IsCurrentValid(current float64) bool {
	return current > c.iMin && current < c.iMax
}

// IsPowerVoltageEnough reports whether a supply voltage can drive the LED at
// all. It is the precondition of every divider calculation.
func (c *TransferCurve) IsPowerVoltageEnough(supplyVoltage float64) bool {
	return supplyVoltage > c.vMin
}

// DividerResistanceRange returns the series-resistor interval that keeps the
// working current within calibration bounds for the given supply voltage.
// The upper bound is +Inf when the calibration range starts at zero current.
func (c *TransferCurve) DividerResistanceRange(supplyVoltage float64) (min, max float64, err error) {
	if !c.IsPowerVoltageEnough(supplyVoltage) {
		return 0, 0, fmt.Errorf("%w: %v V is not above %v V", ErrVoltageTooLow, supplyVoltage, c.vMin)
	}
	if c.iMin == 0 {
		max = math.Inf(1)
	} else {
		max = (supplyVoltage - c.vMin) / c.iMin
	}
	min = (supplyVoltage - c.vMax) / c.iMax
	if min < 0 {
		min = 0
	}
	return min, max, nil
}

// WorkCurrentRange returns the reachable working-current interval for the
// given supply voltage. Below the maximum calibration voltage the upper bound
// is the current the LED draws with no series resistance at all.
func (c *TransferCurve) WorkCurrentRange(supplyVoltage float64) (min, max float64, err error) {
	if !c.IsPowerVoltageEnough(supplyVoltage) {
		return 0, 0, fmt.Errorf("%w: %v V is not above %v V", ErrVoltageTooLow, supplyVoltage, c.vMin)
	}
	if supplyVoltage >= c.vMax {
		return c.iMin, c.iMax, nil
	}
	return c.iMin, c.CurrentAt(supplyVoltage), nil
}

// DividerResistance returns the series resistance that sets the working
// current for the given supply voltage.
func (c *TransferCurve) DividerResistance(supplyVoltage, current float64) (float64, error) {
	minCurrent, maxCurrent, err := c.WorkCurrentRange(supplyVoltage)
	if err != nil {
		return 0, err
	}
	if current <= 0 || current < minCurrent || current > maxCurrent {
		return 0, fmt.Errorf("%w: %v A not in [%v, %v] for %v V supply",
			ErrCurrentOutOfRange, current, minCurrent, maxCurrent, supplyVoltage)
	}
	return (supplyVoltage - c.VoltageAt(current)) / current, nil
}

// WorkCurrent solves for the current drawn through the given series
// resistance at the given supply voltage.
func (c *TransferCurve) WorkCurrent(supplyVoltage, resistance float64) (float64, error) {
	minResistance, maxResistance, err := c.DividerResistanceRange(supplyVoltage)
	if err != nil {
		return 0, err
	}
	if resistance < minResistance || resistance > maxResistance {
		return 0, fmt.Errorf("%w: %v Ω not in [%v, %v] for %v V supply",
			ErrResistanceOutOfRange, resistance, minResistance, maxResistance, supplyVoltage)
	}
	return mathutil.Bisect(func(i float64) float64 {
		return (supplyVoltage-c.spline.Predict(i))/resistance - i
	}, c.iMin, c.iMax, constants.BisectionTolerance, constants.BisectionMaxIterations)
}
