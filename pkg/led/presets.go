package led

// Calibration tables for the preset curves, currents in amps and voltages in
// volts, sorted by current ascending.
var (
	typicalCurrents = []float64{0, 0.001, 0.0024, 0.0048, 0.0096, 0.015, 0.020, 0.0246}
	typicalVoltages = []float64{2.7524, 2.7810, 2.8211, 2.8770, 3.0000, 3.1300, 3.2600, 3.3700}

	typicalRedCurrents = []float64{0, 0.001, 0.0025, 0.005, 0.010, 0.015, 0.020}
	typicalRedVoltages = []float64{1.7622, 1.8250, 1.8710, 1.9300, 2.0400, 2.1500, 2.2600}
)

// Preset curves, built once at startup and never mutated.
var (
	// TypicalLED is the generic preset used when no color is specified.
	TypicalLED = mustTransferCurve("typical LED", "", typicalCurrents, typicalVoltages)

	// TypicalLEDRed is the preset for red LEDs, whose forward voltage is
	// markedly lower.
	TypicalLEDRed = mustTransferCurve("typical LED red", "red", typicalRedCurrents, typicalRedVoltages)
)

// mustTransferCurve panics on construction failure; the preset tables are
// fixed at compile time, so a failure here is a programmer error.
func mustTransferCurve(name, id string, currents, voltages []float64) *TransferCurve {
	curve, err := NewTransferCurve(name, id, currents, voltages)
	if err != nil {
		panic("led: invalid preset calibration table: " + err.Error())
	}
	return curve
}
