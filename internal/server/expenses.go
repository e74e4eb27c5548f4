package server

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/payflowhq/payflow/internal/ledger"
	"github.com/payflowhq/payflow/pkg/format"
	"github.com/payflowhq/payflow/pkg/mathutil"
)

func (h *handler) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	list := h.ledger.Expenses()
	if category := r.URL.Query().Get("category"); category != "" {
		list = ledger.FilterByCategory(list, category)
	}
	h.respondJSON(w, http.StatusOK, list)
}

type expenseRequest struct {
	Description string  `json:"description" validate:"required"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category" validate:"required"`
	Date        string  `json:"date" validate:"required"`
}

func (h *handler) handleAddExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if !h.decode(w, r, &req) {
		return
	}

	exp, err := h.ledger.AddExpense(req.Description, req.Amount, ledger.Category(req.Category), req.Date)
	if err != nil {
		var verr *ledger.ValidationError
		if errors.As(err, &verr) {
			h.respondValidation(w, map[string]string{verr.Field: verr.Message})
			return
		}
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.respondJSON(w, http.StatusCreated, exp)
}

func (h *handler) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	h.ledger.DeleteExpense(mux.Vars(r)["id"])
	w.WriteHeader(http.StatusNoContent)
}

type categoryShare struct {
	Category ledger.Category `json:"category"`
	Label    string          `json:"label"`
	Total    float64         `json:"total"`
	Percent  float64         `json:"percent"`
}

type expenseSummary struct {
	Total                 float64         `json:"total"`
	TotalFormatted        string          `json:"totalFormatted"`
	DailyAverage          float64         `json:"dailyAverage"`
	DailyAverageFormatted string          `json:"dailyAverageFormatted"`
	CategoryCount         int             `json:"categoryCount"`
	Categories            []categoryShare `json:"categories"`
}

func (h *handler) handleExpenseSummary(w http.ResponseWriter, r *http.Request) {
	list := h.ledger.Expenses()
	total := ledger.Total(list)
	byCategory := ledger.AggregateByCategory(list)

	shares := make([]categoryShare, 0, len(byCategory))
	for _, ct := range byCategory {
		share := categoryShare{
			Category: ct.Category,
			Label:    ct.Label,
			Total:    ct.Total,
		}
		if total > 0 {
			share.Percent = mathutil.Round(mathutil.Percentage(ct.Total, total))
		}
		shares = append(shares, share)
	}

	average := ledger.DailyAverage(list)
	h.respondJSON(w, http.StatusOK, expenseSummary{
		Total:                 total,
		TotalFormatted:        format.Currency(total),
		DailyAverage:          average,
		DailyAverageFormatted: format.Currency(average),
		CategoryCount:         len(byCategory),
		Categories:            shares,
	})
}

type dashboard struct {
	OpeningBalance          float64           `json:"openingBalance"`
	OpeningBalanceFormatted string            `json:"openingBalanceFormatted"`
	ExpenseTotal            float64           `json:"expenseTotal"`
	ExpenseTotalFormatted   string            `json:"expenseTotalFormatted"`
	RecentActivity          []ledger.Activity `json:"recentActivity"`
}

// recentActivityCount is how many activity rows the dashboard shows.
const recentActivityCount = 6

func (h *handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	total := ledger.Total(h.ledger.Expenses())
	h.respondJSON(w, http.StatusOK, dashboard{
		OpeningBalance:          h.balance,
		OpeningBalanceFormatted: format.Currency(h.balance),
		ExpenseTotal:            total,
		ExpenseTotalFormatted:   format.Currency(total),
		RecentActivity:          h.ledger.RecentActivity(recentActivityCount),
	})
}
