package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hktkzyx/engineering-toolbox/pkg/pension"
)

var financeCmd = &cobra.Command{
	Use:   "finance",
	Short: "Social-pension calculators",
}

var (
	socialMeanSalaryFlag float64
	salaryFactorFlag     float64
	yearsFlag            int
	balanceFlag          float64
	retireAgeFlag        int
	currentAgeFlag       int
	paymentsFlag         []float64
	ratesFlag            []float64
	salariesFlag         []float64
	socialSalariesFlag   []float64
	predictedYearsFlag   int
)

var fundamentalPensionCmd = &cobra.Command{
	Use:   "fundamental-pension",
	Short: "Monthly fundamental pension from the indexed mean salary",
	RunE: func(cmd *cobra.Command, args []string) error {
		value := pension.FundamentalPension(socialMeanSalaryFlag, salaryFactorFlag, yearsFlag)
		logger.Debug("computed fundamental pension",
			zap.String("op", "finance.fundamentalPension"),
			zap.Float64("socialMeanSalary", socialMeanSalaryFlag),
			zap.Float64("salaryFactor", salaryFactorFlag),
			zap.Int("years", yearsFlag),
		)
		fmt.Printf("%.2f\n", value)
		return nil
	},
}

var personalPensionCmd = &cobra.Command{
	Use:   "personal-pension",
	Short: "Monthly personal-account annuity at retirement",
	RunE: func(cmd *cobra.Command, args []string) error {
		value := pension.PersonalPension(balanceFlag, retireAgeFlag)
		fmt.Printf("%.2f\n", value)
		return nil
	},
}

var predictedBalanceCmd = &cobra.Command{
	Use:   "predicted-balance",
	Short: "Personal-account balance projected to retirement",
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := pension.PredictedPersonalBalance(balanceFlag, currentAgeFlag, retireAgeFlag, paymentsFlag, ratesFlag)
		if err != nil {
			return err
		}
		fmt.Printf("%.2f\n", value)
		return nil
	},
}

var predictedSalaryFactorCmd = &cobra.Command{
	Use:   "predicted-salary-factor",
	Short: "Average contribution salary factor projected to retirement",
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := pension.PredictedSalaryFactor(salaryFactorFlag, yearsFlag, salariesFlag, socialSalariesFlag, predictedYearsFlag)
		if err != nil {
			return err
		}
		fmt.Printf("%.4f\n", value)
		return nil
	},
}

func init() {
	fundamentalPensionCmd.Flags().Float64VarP(&socialMeanSalaryFlag, "social-mean-salary", "s", 0, "social mean salary")
	fundamentalPensionCmd.Flags().Float64VarP(&salaryFactorFlag, "salary-factor", "f", 1, "contribution salary factor, clamped to [0.6, 3.0]")
	fundamentalPensionCmd.Flags().IntVarP(&yearsFlag, "years", "y", 15, "accumulated contribution years")
	_ = fundamentalPensionCmd.MarkFlagRequired("social-mean-salary")

	personalPensionCmd.Flags().Float64VarP(&balanceFlag, "balance", "b", 0, "personal-account balance")
	personalPensionCmd.Flags().IntVarP(&retireAgeFlag, "retire-age", "a", 60, "retirement age")
	_ = personalPensionCmd.MarkFlagRequired("balance")

	predictedBalanceCmd.Flags().Float64VarP(&balanceFlag, "balance", "b", 0, "current personal-account balance")
	predictedBalanceCmd.Flags().IntVar(&currentAgeFlag, "current-age", 0, "age at the end of last year")
	predictedBalanceCmd.Flags().IntVar(&retireAgeFlag, "retire-age", 60, "retirement age")
	predictedBalanceCmd.Flags().Float64SliceVarP(&paymentsFlag, "payment", "p", nil, "expected annual payment, one value or one per year")
	predictedBalanceCmd.Flags().Float64SliceVarP(&ratesFlag, "rate", "r", nil, "expected account interest rate, one value or one per year")
	_ = predictedBalanceCmd.MarkFlagRequired("current-age")
	_ = predictedBalanceCmd.MarkFlagRequired("payment")
	_ = predictedBalanceCmd.MarkFlagRequired("rate")

	predictedSalaryFactorCmd.Flags().Float64VarP(&salaryFactorFlag, "salary-factor", "f", 1, "current average salary factor")
	predictedSalaryFactorCmd.Flags().IntVarP(&yearsFlag, "years", "y", 0, "accumulated contribution years")
	predictedSalaryFactorCmd.Flags().Float64SliceVar(&salariesFlag, "salary", nil, "expected contribution salary, one value or one per year")
	predictedSalaryFactorCmd.Flags().Float64SliceVar(&socialSalariesFlag, "social-salary", nil, "expected social mean salary, one value or one per year")
	predictedSalaryFactorCmd.Flags().IntVar(&predictedYearsFlag, "predicted-years", 0, "remaining contribution years (0: one per predicted salary)")
	_ = predictedSalaryFactorCmd.MarkFlagRequired("salary")
	_ = predictedSalaryFactorCmd.MarkFlagRequired("social-salary")

	financeCmd.AddCommand(
		fundamentalPensionCmd,
		personalPensionCmd,
		predictedBalanceCmd,
		predictedSalaryFactorCmd,
	)
	rootCmd.AddCommand(financeCmd)
}
