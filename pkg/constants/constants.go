// Package constants provides shared constants for the engineering-toolbox application.
package constants

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "engineering-toolbox.yaml"
)

// Numerical constants
const (
	// BisectionTolerance is the bracket width at which bisection stops
	BisectionTolerance = 1e-12

	// BisectionMaxIterations bounds every bisection search
	BisectionMaxIterations = 100

	// ComparisonTolerance is the tolerance for floating-point comparisons
	ComparisonTolerance = 1e-9
)

// Electrical constants
const (
	// MilliampsPerAmp converts between the CLI's milliamp inputs and the
	// core's amp scalars
	MilliampsPerAmp = 1000.0
)

// Pension constants
const (
	// MinSalaryFactor is the lower clamp for the contribution salary factor
	MinSalaryFactor = 0.6

	// MaxSalaryFactor is the upper clamp for the contribution salary factor
	MaxSalaryFactor = 3.0

	// FundamentalPensionRate is the per-year accrual rate of the fundamental
	// pension (1% of the indexed mean salary)
	FundamentalPensionRate = 0.01

	// MidYearPaymentWeight weights a year's payments as if deposited
	// mid-year (13/24 of the annual rate)
	MidYearPaymentWeight = 13.0 / 24.0
)
