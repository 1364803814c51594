package cmd

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hktkzyx/engineering-toolbox/pkg/constants"
	"github.com/hktkzyx/engineering-toolbox/pkg/eseries"
	"github.com/hktkzyx/engineering-toolbox/pkg/format"
	"github.com/hktkzyx/engineering-toolbox/pkg/led"
	"github.com/hktkzyx/engineering-toolbox/pkg/resistor"
)

var electronicsCmd = &cobra.Command{
	Use:   "electronics",
	Short: "Resistor and LED calculators",
}

var (
	seriesFlag     string
	modeFlag       string
	kindFlag       string
	ledKindFlag    string
	voltagesFlag   []float64
	voltageFlag    float64
	currentFlag    float64
	resistanceFlag float64
)

var standardResistanceCmd = &cobra.Command{
	Use:   "standard-resistance VALUE",
	Short: "Round a resistance onto a preferred-number series",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid resistance %q: %w", args[0], err)
		}
		series, err := eseries.ParseSeries(flagOrDefault(seriesFlag, conf.Defaults.Series, "E24"))
		if err != nil {
			return err
		}
		mode, err := eseries.ParseRoundMode(flagOrDefault(modeFlag, conf.Defaults.Mode, "nearest"))
		if err != nil {
			return err
		}
		result, err := eseries.Create(value, series, mode)
		if err != nil {
			return err
		}
		logger.Debug("rounded onto series",
			zap.String("op", "electronics.standardResistance"),
			zap.Float64("input", value),
			zap.String("series", series.String()),
			zap.Int("seriesExponent", result.SeriesExponent),
			zap.Int("decadeExponent", result.DecadeExponent),
		)
		fmt.Println(format.Format(result.Float(), 3, "Ω"))
		return nil
	},
}

var nearestResistanceCmd = &cobra.Command{
	Use:   "nearest-resistance VALUE",
	Short: "Look up the standard resistance table (1 Ω to 9.1 MΩ)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid resistance %q: %w", args[0], err)
		}
		kind, err := resistor.ParseKind(kindFlag)
		if err != nil {
			return err
		}
		result, ok, err := resistor.Lookup(value, kind)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no standard resistance %s from %s Ω", kind, args[0])
		}
		fmt.Println(format.Format(result, 3, "Ω"))
		return nil
	},
}

var ledDividerResistanceRangeCmd = &cobra.Command{
	Use:   "led-divider-resistance-range",
	Short: "Divider resistor range keeping the LED within its working current",
	RunE: func(cmd *cobra.Command, args []string) error {
		curve := selectLED(ledKindFlag)
		if err := checkPowerVoltages(curve, voltagesFlag); err != nil {
			return err
		}
		for _, voltage := range voltagesFlag {
			min, max, err := curve.DividerResistanceRange(voltage)
			if err != nil {
				return err
			}
			fmt.Printf("%g V: %s to %s\n", voltage, formatResistanceBound(math.Ceil(min)), formatResistanceBound(math.Floor(max)))
		}
		return nil
	},
}

var ledWorkCurrentRangeCmd = &cobra.Command{
	Use:   "led-work-current-range",
	Short: "Working-current range of the LED for a supply voltage",
	RunE: func(cmd *cobra.Command, args []string) error {
		curve := selectLED(ledKindFlag)
		if err := checkPowerVoltages(curve, voltagesFlag); err != nil {
			return err
		}
		for _, voltage := range voltagesFlag {
			min, max, err := curve.WorkCurrentRange(voltage)
			if err != nil {
				return err
			}
			lower := math.Ceil(10000*min) / 10
			upper := math.Floor(10000*max) / 10
			fmt.Printf("%g V: %.1f mA to %.1f mA\n", voltage, lower, upper)
		}
		return nil
	},
}

var ledDividerResistanceCmd = &cobra.Command{
	Use:   "led-divider-resistance",
	Short: "Divider resistor for a supply voltage and working current",
	RunE: func(cmd *cobra.Command, args []string) error {
		curve := selectLED(ledKindFlag)
		if err := checkPowerVoltages(curve, []float64{voltageFlag}); err != nil {
			return err
		}
		current := currentFlag / constants.MilliampsPerAmp
		resistance, err := curve.DividerResistance(voltageFlag, current)
		if err != nil {
			return fmt.Errorf("%w; run 'engineering-toolbox electronics led-work-current-range' to see the valid range", err)
		}
		logger.Debug("computed divider resistance",
			zap.String("op", "electronics.ledDividerResistance"),
			zap.String("led", curve.Name()),
			zap.Float64("supplyVoltage", voltageFlag),
			zap.Float64("current", current),
			zap.Float64("resistance", resistance),
		)
		fmt.Printf("%.0f Ω\n", resistance)
		return nil
	},
}

var ledWorkCurrentCmd = &cobra.Command{
	Use:   "led-work-current",
	Short: "Working current for a supply voltage and divider resistor",
	RunE: func(cmd *cobra.Command, args []string) error {
		curve := selectLED(ledKindFlag)
		if err := checkPowerVoltages(curve, []float64{voltageFlag}); err != nil {
			return err
		}
		current, err := curve.WorkCurrent(voltageFlag, resistanceFlag)
		if err != nil {
			return fmt.Errorf("%w; run 'engineering-toolbox electronics led-divider-resistance-range' to see the valid range", err)
		}
		fmt.Printf("%.1f mA\n", current*constants.MilliampsPerAmp)
		return nil
	},
}

// selectLED maps the CLI color tag onto a preset curve; red has its own
// calibration, every other color uses the generic one.
func selectLED(kind string) *led.TransferCurve {
	if kind == "r" {
		return led.TypicalLEDRed
	}
	return led.TypicalLED
}

// checkPowerVoltages rejects the whole request when any supply voltage is at
// or below the curve's least power voltage.
func checkPowerVoltages(curve *led.TransferCurve, voltages []float64) error {
	for _, voltage := range voltages {
		if !curve.IsPowerVoltageEnough(voltage) {
			return fmt.Errorf("supply voltage must be above %v V", curve.LeastPowerVoltage())
		}
	}
	return nil
}

// formatResistanceBound renders a resistor bound, keeping an unbounded upper
// limit readable.
func formatResistanceBound(value float64) string {
	if math.IsInf(value, 1) {
		return "inf Ω"
	}
	return fmt.Sprintf("%.0f Ω", value)
}

// flagOrDefault resolves a flag value against the config default and the
// built-in fallback.
func flagOrDefault(flagValue, configValue, fallback string) string {
	if flagValue != "" {
		return flagValue
	}
	if configValue != "" {
		return configValue
	}
	return fallback
}

func init() {
	standardResistanceCmd.Flags().StringVarP(&seriesFlag, "series", "s", "", "preferred-number series (E3, E6, E12, E24, E48, E96, E192)")
	standardResistanceCmd.Flags().StringVarP(&modeFlag, "mode", "m", "", "rounding mode (nearest, floor, ceil)")

	nearestResistanceCmd.Flags().StringVarP(&kindFlag, "kind", "k", "nearest", "lookup kind (nearest, up, down)")

	for _, c := range []*cobra.Command{ledDividerResistanceRangeCmd, ledWorkCurrentRangeCmd} {
		c.Flags().Float64SliceVarP(&voltagesFlag, "voltage", "v", nil, "supply voltage in volts (repeatable)")
		_ = c.MarkFlagRequired("voltage")
	}
	for _, c := range []*cobra.Command{ledDividerResistanceCmd, ledWorkCurrentCmd} {
		c.Flags().Float64VarP(&voltageFlag, "voltage", "v", 0, "supply voltage in volts")
		_ = c.MarkFlagRequired("voltage")
	}
	ledDividerResistanceCmd.Flags().Float64VarP(&currentFlag, "current", "c", 0, "working current in milliamps")
	_ = ledDividerResistanceCmd.MarkFlagRequired("current")
	ledWorkCurrentCmd.Flags().Float64VarP(&resistanceFlag, "resistance", "r", 0, "divider resistance in ohms")
	_ = ledWorkCurrentCmd.MarkFlagRequired("resistance")

	for _, c := range []*cobra.Command{ledDividerResistanceRangeCmd, ledWorkCurrentRangeCmd, ledDividerResistanceCmd, ledWorkCurrentCmd} {
		c.Flags().StringVarP(&ledKindFlag, "kind", "k", "o", "LED kind: 'r' red, 'g' green, 'b' blue, 'w' white, 'o' other")
	}

	electronicsCmd.AddCommand(
		standardResistanceCmd,
		nearestResistanceCmd,
		ledDividerResistanceRangeCmd,
		ledWorkCurrentRangeCmd,
		ledDividerResistanceCmd,
		ledWorkCurrentCmd,
	)
	rootCmd.AddCommand(electronicsCmd)
}
