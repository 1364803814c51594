// Package pension implements the urban social-pension benefit formulas: the
// fundamental pension from indexed mean salary, the personal-account annuity
// over the statutory collection months, and projections of the account
// balance and salary factor up to retirement.
package pension

import (
	"errors"
	"fmt"

	"github.com/hktkzyx/engineering-toolbox/pkg/constants"
	"github.com/hktkzyx/engineering-toolbox/pkg/mathutil"
)

// ErrInvalidProjection indicates projection inputs that cannot describe a
// span of contribution years.
var ErrInvalidProjection = errors.New("invalid projection")

// collectionMonths maps retirement age to the statutory number of months the
// personal account is paid out over. Ages outside the table clamp to its
// extremes.
var collectionMonths = map[int]int{
	40: 233, 41: 230, 42: 226, 43: 223, 44: 220,
	45: 216, 46: 212, 47: 208, 48: 204, 49: 199,
	50: 195, 51: 190, 52: 185, 53: 180, 54: 175,
	55: 170, 56: 164, 57: 158, 58: 152, 59: 145,
	60: 139, 61: 132, 62: 125, 63: 117, 64: 109,
	65: 101, 66: 93, 67: 84, 68: 75, 69: 65,
	70: 56,
}

// CollectionMonths returns the statutory collection months for a retirement
// age, clamped to the 40..70 table range.
func CollectionMonths(retireAge int) int {
	return collectionMonths[mathutil.ClampInt(retireAge, 40, 70)]
}

// FundamentalPension returns the monthly fundamental pension. The salary
// factor clamps to [0.6, 3.0] before averaging with the social mean.
func FundamentalPension(socialMeanSalary, salaryFactor float64, accumulatedYears int) float64 {
	factor := mathutil.Clamp(salaryFactor, constants.MinSalaryFactor, constants.MaxSalaryFactor)
	return socialMeanSalary * (1 + factor) / 2 * float64(accumulatedYears) * constants.FundamentalPensionRate
}

// PersonalPension returns the monthly annuity from the personal-account
// balance at the given retirement age.
func PersonalPension(balance float64, retireAge int) float64 {
	return balance / float64(CollectionMonths(retireAge))
}

// broadcast stretches a length-1 slice to n elements; a slice already of
// length n passes through.
func broadcast(values []float64, n int) ([]float64, error) {
	switch len(values) {
	case n:
		return values, nil
	case 1:
		stretched := make([]float64, n)
		for i := range stretched {
			stretched[i] = values[0]
		}
		return stretched, nil
	}
	return nil, fmt.Errorf("%w: got %d values, want 1 or %d", ErrInvalidProjection, len(values), n)
}

// PredictedPersonalBalance projects the personal-account balance from the
// current age to retirement. Each year the balance accrues the predicted
// rate and the year's payment accrues a mid-year share of it. payments and
// rates hold one value per remaining year, or a single value applied to all.
func PredictedPersonalBalance(currentBalance float64, currentAge, retireAge int, payments, rates []float64) (float64, error) {
	yearsToGo := retireAge - currentAge
	if yearsToGo <= 0 {
		return 0, fmt.Errorf("%w: retire age %d not after current age %d", ErrInvalidProjection, retireAge, currentAge)
	}
	payments, err := broadcast(payments, yearsToGo)
	if err != nil {
		return 0, err
	}
	rates, err = broadcast(rates, yearsToGo)
	if err != nil {
		return 0, err
	}

	balance := currentBalance
	for i := 0; i < yearsToGo; i++ {
		balance = balance*(1+rates[i]) + payments[i]*(1+rates[i]*constants.MidYearPaymentWeight)
	}
	return balance, nil
}

// PredictedSalaryFactor projects the average contribution salary factor at
// retirement as the years-weighted mean of the accumulated factor and the
// predicted per-year factors (salary over social mean salary). salaries and
// socialMeanSalaries broadcast against each other; predictedYears <= 0 means
// one year per predicted factor.
func PredictedSalaryFactor(currentSalaryFactor float64, currentAccumulatedYears int,
	salaries, socialMeanSalaries []float64, predictedYears int) (float64, error) {
	n := len(salaries)
	if len(socialMeanSalaries) > n {
		n = len(socialMeanSalaries)
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: no predicted salaries", ErrInvalidProjection)
	}
	salaries, err := broadcast(salaries, n)
	if err != nil {
		return 0, err
	}
	socialMeanSalaries, err = broadcast(socialMeanSalaries, n)
	if err != nil {
		return 0, err
	}

	meanFactor := 0.0
	for i := range salaries {
		if socialMeanSalaries[i] == 0 {
			return 0, fmt.Errorf("%w: social mean salary is zero at index %d", ErrInvalidProjection, i)
		}
		meanFactor += salaries[i] / socialMeanSalaries[i]
	}
	meanFactor /= float64(n)

	yearsToGo := predictedYears
	if yearsToGo <= 0 {
		yearsToGo = n
	}
	return (currentSalaryFactor*float64(currentAccumulatedYears) + meanFactor*float64(yearsToGo)) /
		float64(currentAccumulatedYears+yearsToGo), nil
}
