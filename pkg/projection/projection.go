// Package projection derives per-period display rows from the finance engine's
// quotes: full amortization schedules for loans and month-by-month growth
// milestones for recurring deposits.
package projection

import (
	"github.com/payflowhq/payflow/pkg/constants"
	"github.com/payflowhq/payflow/pkg/finance"
	"github.com/payflowhq/payflow/pkg/mathutil"
)

// AmortizationRow is one period of a loan's repayment schedule.
type AmortizationRow struct {
	Period           int     `json:"period"`
	Payment          float64 `json:"payment"`
	Principal        float64 `json:"principal"`
	Interest         float64 `json:"interest"`
	RemainingBalance float64 `json:"remainingBalance"`
}

// GrowthMilestone is one month of a recurring deposit's growth curve.
type GrowthMilestone struct {
	Period   int     `json:"period"`
	Invested float64 `json:"invested"`
	Maturity float64 `json:"maturity"`
}

// AmortizationSchedule expands a loan quote into its full schedule. Interest
// accrues on the declining balance, so the rows are generated iteratively; the
// balance is clamped at zero and the sequence holds exactly months rows.
// A non-positive tenure yields an empty schedule.
func AmortizationSchedule(quote finance.LoanQuote, annualRatePercent float64, months int) []AmortizationRow {
	if months <= 0 {
		return []AmortizationRow{}
	}

	monthlyRate := annualRatePercent / constants.MonthsPerYear / constants.PercentageMultiplier
	rows := make([]AmortizationRow, 0, months)
	balance := quote.Principal

	for period := 1; period <= months; period++ {
		interest := balance * monthlyRate
		principal := quote.EMI - interest
		balance = mathutil.Max(0, balance-principal)
		rows = append(rows, AmortizationRow{
			Period:           period,
			Payment:          quote.EMI,
			Principal:        principal,
			Interest:         interest,
			RemainingBalance: balance,
		})
	}
	return rows
}

// GrowthMilestones returns the month-by-month recurring-deposit curve. The
// milestone for month i is the engine's own maturity for an i-month deposit,
// so the curve reproduces the per-deposit compounding rule exactly rather than
// approximating it. A non-positive tenure yields an empty sequence.
func GrowthMilestones(monthlyDeposit, annualRatePercent float64, months int) []GrowthMilestone {
	if months <= 0 {
		return []GrowthMilestone{}
	}

	rows := make([]GrowthMilestone, 0, months)
	for period := 1; period <= months; period++ {
		quote, err := finance.ComputeRDMaturity(monthlyDeposit, annualRatePercent, period)
		if err != nil {
			// Inputs were validated by the caller; an invalid partial quote
			// means the whole curve is meaningless.
			return []GrowthMilestone{}
		}
		rows = append(rows, GrowthMilestone{
			Period:   period,
			Invested: quote.TotalInvested,
			Maturity: quote.MaturityAmount,
		})
	}
	return rows
}

// Preview windows a schedule for display: the first n rows plus the final row.
// Schedules no longer than n+1 rows are returned whole.
func Preview(rows []AmortizationRow, n int) []AmortizationRow {
	if n < 0 {
		n = 0
	}
	if len(rows) <= n+1 {
		return rows
	}
	window := make([]AmortizationRow, 0, n+1)
	window = append(window, rows[:n]...)
	window = append(window, rows[len(rows)-1])
	return window
}
