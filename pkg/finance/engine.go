// Package finance implements the closed-form deposit and loan calculations
// behind the payflow calculators: EMI loan quotes, fixed-deposit maturity, and
// recurring-deposit maturity.
//
// All functions validate their inputs and return ErrInvalidInput instead of a
// partial result; callers are expected to have validated at the form boundary
// as well.
package finance

import (
	"errors"
	"math"

	"github.com/payflowhq/payflow/pkg/constants"
)

// ErrInvalidInput indicates a missing, non-finite, or out-of-range calculation
// input.
var ErrInvalidInput = errors.New("invalid calculation input")

// LoanQuote is the immutable result of an EMI calculation.
type LoanQuote struct {
	Principal     float64
	Months        int
	EMI           float64
	TotalPayment  float64
	TotalInterest float64
}

// FDQuote is the immutable result of a fixed-deposit maturity calculation.
type FDQuote struct {
	Principal      float64
	MaturityAmount float64
	InterestEarned float64
}

// RDQuote is the immutable result of a recurring-deposit maturity calculation.
type RDQuote struct {
	MonthlyDeposit float64
	Months         int
	MaturityAmount float64
	TotalInvested  float64
	InterestEarned float64
}

// ComputeEMI calculates the equated monthly installment for a loan:
//
//	EMI = P × R × (1+R)^N / ((1+R)^N - 1)
//
// where R is the monthly rate. A zero annual rate is the interest-free case
// and divides the principal evenly across the term.
func ComputeEMI(principal, annualRatePercent float64, months int) (LoanQuote, error) {
	if !isPositive(principal) || months <= 0 {
		return LoanQuote{}, ErrInvalidInput
	}
	if !isFinite(annualRatePercent) || annualRatePercent < 0 {
		return LoanQuote{}, ErrInvalidInput
	}

	quote := LoanQuote{Principal: principal, Months: months}

	if annualRatePercent == 0 {
		quote.EMI = principal / float64(months)
		quote.TotalPayment = principal
		quote.TotalInterest = 0
		return quote, nil
	}

	monthlyRate := annualRatePercent / constants.MonthsPerYear / constants.PercentageMultiplier
	power := math.Pow(1+monthlyRate, float64(months))
	quote.EMI = principal * monthlyRate * power / (power - 1)
	quote.TotalPayment = quote.EMI * float64(months)
	quote.TotalInterest = quote.TotalPayment - principal
	return quote, nil
}

// ComputeFDMaturity calculates fixed-deposit maturity using compound interest:
//
//	A = P × (1 + r/n)^(n×t)
//
// periodsPerYear must be one of 1, 2, 4, or 12 (yearly through monthly
// compounding). Years may be fractional; month-based tenures divide by 12
// before calling.
func ComputeFDMaturity(principal, annualRatePercent, years float64, periodsPerYear int) (FDQuote, error) {
	if !isPositive(principal) || !isPositive(annualRatePercent) || !isPositive(years) {
		return FDQuote{}, ErrInvalidInput
	}
	switch periodsPerYear {
	case constants.CompoundYearly, constants.CompoundHalfYearly,
		constants.CompoundQuarterly, constants.CompoundMonthly:
	default:
		return FDQuote{}, ErrInvalidInput
	}

	rate := annualRatePercent / constants.PercentageMultiplier
	n := float64(periodsPerYear)
	maturity := principal * math.Pow(1+rate/n, n*years)

	return FDQuote{
		Principal:      principal,
		MaturityAmount: maturity,
		InterestEarned: maturity - principal,
	}, nil
}

// ComputeRDMaturity calculates recurring-deposit maturity by accumulating the
// deposits individually: the i-th of N monthly deposits compounds monthly for
// the N-i+1 periods remaining until maturity, so the first deposit compounds
// the longest.
func ComputeRDMaturity(monthlyDeposit, annualRatePercent float64, months int) (RDQuote, error) {
	if !isPositive(monthlyDeposit) || !isPositive(annualRatePercent) || months <= 0 {
		return RDQuote{}, ErrInvalidInput
	}

	monthlyRate := annualRatePercent / constants.PercentageMultiplier / constants.MonthsPerYear

	maturity := 0.0
	for i := 1; i <= months; i++ {
		maturity += monthlyDeposit * math.Pow(1+monthlyRate, float64(months-i+1))
	}

	invested := monthlyDeposit * float64(months)
	return RDQuote{
		MonthlyDeposit: monthlyDeposit,
		Months:         months,
		MaturityAmount: maturity,
		TotalInvested:  invested,
		InterestEarned: maturity - invested,
	}, nil
}

func isPositive(val float64) bool {
	return isFinite(val) && val > 0
}

func isFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}
