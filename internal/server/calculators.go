package server

import (
	"net/http"

	"github.com/payflowhq/payflow/pkg/constants"
	"github.com/payflowhq/payflow/pkg/finance"
	"github.com/payflowhq/payflow/pkg/format"
	"github.com/payflowhq/payflow/pkg/projection"
)

// schedulePreviewRows is how many leading amortization rows the loan page
// shows before jumping to the final row.
const schedulePreviewRows = 12

type emiRequest struct {
	Principal   string `json:"principal" validate:"required"`
	Rate        string `json:"rate" validate:"required"`
	TenureValue string `json:"tenureValue" validate:"required"`
	TenureUnit  string `json:"tenureUnit" validate:"required,oneof=years months"`
}

type emiResponse struct {
	Principal              float64                     `json:"principal"`
	Months                 int                         `json:"months"`
	EMI                    float64                     `json:"emi"`
	EMIFormatted           string                      `json:"emiFormatted"`
	TotalPayment           float64                     `json:"totalPayment"`
	TotalPaymentFormatted  string                      `json:"totalPaymentFormatted"`
	TotalInterest          float64                     `json:"totalInterest"`
	TotalInterestFormatted string                      `json:"totalInterestFormatted"`
	Schedule               []projection.AmortizationRow `json:"schedule"`
	SchedulePreview        []projection.AmortizationRow `json:"schedulePreview"`
}

func (h *handler) handleEMI(w http.ResponseWriter, r *http.Request) {
	var req emiRequest
	if !h.decode(w, r, &req) {
		return
	}

	fields := map[string]string{}
	principal := finance.ParseField(req.Principal)
	if !principal.Positive() {
		fields["principal"] = "Enter a valid loan amount"
	}
	rate := finance.ParseField(req.Rate)
	if !rate.Valid || rate.Value < 0 {
		fields["rate"] = "Enter a valid interest rate"
	} else if rate.Value > constants.MaxLoanRatePercent {
		fields["rate"] = "Interest rate cannot exceed 50%"
	}
	months, ok := tenureMonths(req.TenureValue, req.TenureUnit)
	if !ok {
		fields["tenureValue"] = "Enter a valid tenure"
	}
	if len(fields) > 0 {
		h.respondValidation(w, fields)
		return
	}

	quote, err := finance.ComputeEMI(principal.Value, rate.Value, months)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	schedule := projection.AmortizationSchedule(quote, rate.Value, months)
	h.respondJSON(w, http.StatusOK, emiResponse{
		Principal:              quote.Principal,
		Months:                 quote.Months,
		EMI:                    quote.EMI,
		EMIFormatted:           format.Currency(quote.EMI),
		TotalPayment:           quote.TotalPayment,
		TotalPaymentFormatted:  format.Currency(quote.TotalPayment),
		TotalInterest:          quote.TotalInterest,
		TotalInterestFormatted: format.Currency(quote.TotalInterest),
		Schedule:               schedule,
		SchedulePreview:        projection.Preview(schedule, schedulePreviewRows),
	})
}

type fdRequest struct {
	Principal   string `json:"principal" validate:"required"`
	Rate        string `json:"rate" validate:"required"`
	TenureValue string `json:"tenureValue" validate:"required"`
	TenureUnit  string `json:"tenureUnit" validate:"required,oneof=years months"`
	Compounding string `json:"compounding" validate:"required,oneof=1 2 4 12"`
}

type fdResponse struct {
	Principal               float64 `json:"principal"`
	MaturityAmount          float64 `json:"maturityAmount"`
	MaturityAmountFormatted string  `json:"maturityAmountFormatted"`
	InterestEarned          float64 `json:"interestEarned"`
	InterestEarnedFormatted string  `json:"interestEarnedFormatted"`
}

func (h *handler) handleFD(w http.ResponseWriter, r *http.Request) {
	var req fdRequest
	if !h.decode(w, r, &req) {
		return
	}

	fields := map[string]string{}
	principal := finance.ParseField(req.Principal)
	if !principal.Positive() {
		fields["principal"] = "Enter a valid deposit amount"
	}
	rate := finance.ParseField(req.Rate)
	if !rate.Positive() {
		fields["rate"] = "Enter a valid interest rate"
	}
	years, ok := tenureYears(req.TenureValue, req.TenureUnit)
	if !ok {
		fields["tenureValue"] = "Enter a valid tenure"
	}
	if len(fields) > 0 {
		h.respondValidation(w, fields)
		return
	}

	// Compounding already passed the oneof check.
	periods, _ := finance.ParseField(req.Compounding).PositiveInt()

	quote, err := finance.ComputeFDMaturity(principal.Value, rate.Value, years, periods)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, fdResponse{
		Principal:               quote.Principal,
		MaturityAmount:          quote.MaturityAmount,
		MaturityAmountFormatted: format.Currency(quote.MaturityAmount),
		InterestEarned:          quote.InterestEarned,
		InterestEarnedFormatted: format.Currency(quote.InterestEarned),
	})
}

type rdRequest struct {
	MonthlyDeposit string `json:"monthlyDeposit" validate:"required"`
	Rate           string `json:"rate" validate:"required"`
	TenureValue    string `json:"tenureValue" validate:"required"`
	TenureUnit     string `json:"tenureUnit" validate:"required,oneof=years months"`
}

type rdResponse struct {
	MonthlyDeposit          float64                      `json:"monthlyDeposit"`
	Months                  int                          `json:"months"`
	MaturityAmount          float64                      `json:"maturityAmount"`
	MaturityAmountFormatted string                       `json:"maturityAmountFormatted"`
	TotalInvested           float64                      `json:"totalInvested"`
	TotalInvestedFormatted  string                       `json:"totalInvestedFormatted"`
	InterestEarned          float64                      `json:"interestEarned"`
	InterestEarnedFormatted string                       `json:"interestEarnedFormatted"`
	Milestones              []projection.GrowthMilestone `json:"milestones"`
}

func (h *handler) handleRD(w http.ResponseWriter, r *http.Request) {
	var req rdRequest
	if !h.decode(w, r, &req) {
		return
	}

	fields := map[string]string{}
	deposit := finance.ParseField(req.MonthlyDeposit)
	if !deposit.Positive() {
		fields["monthlyDeposit"] = "Enter a valid monthly deposit"
	}
	rate := finance.ParseField(req.Rate)
	if !rate.Positive() {
		fields["rate"] = "Enter a valid interest rate"
	}
	months, ok := tenureMonths(req.TenureValue, req.TenureUnit)
	if !ok {
		fields["tenureValue"] = "Enter a valid tenure"
	}
	if len(fields) > 0 {
		h.respondValidation(w, fields)
		return
	}

	quote, err := finance.ComputeRDMaturity(deposit.Value, rate.Value, months)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, rdResponse{
		MonthlyDeposit:          quote.MonthlyDeposit,
		Months:                  quote.Months,
		MaturityAmount:          quote.MaturityAmount,
		MaturityAmountFormatted: format.Currency(quote.MaturityAmount),
		TotalInvested:           quote.TotalInvested,
		TotalInvestedFormatted:  format.Currency(quote.TotalInvested),
		InterestEarned:          quote.InterestEarned,
		InterestEarnedFormatted: format.Currency(quote.InterestEarned),
		Milestones:              projection.GrowthMilestones(deposit.Value, rate.Value, months),
	})
}

// tenureMonths converts a whole-number tenure form value into months.
func tenureMonths(raw, unit string) (int, bool) {
	value, ok := finance.ParseField(raw).PositiveInt()
	if !ok {
		return 0, false
	}
	if unit == "years" {
		return value * constants.MonthsPerYear, true
	}
	return value, true
}

// tenureYears converts a whole-number tenure form value into (possibly
// fractional) years.
func tenureYears(raw, unit string) (float64, bool) {
	value, ok := finance.ParseField(raw).PositiveInt()
	if !ok {
		return 0, false
	}
	if unit == "months" {
		return float64(value) / constants.MonthsPerYear, true
	}
	return float64(value), true
}
