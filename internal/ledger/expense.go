package ledger

import (
	"sort"
	"strings"
	"time"

	"github.com/payflowhq/payflow/pkg/constants"
	"go.uber.org/zap"
)

// Expense is one tracked spending entry. There is no update operation; edits
// are an add plus a delete.
type Expense struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Amount      float64  `json:"amount"`
	Category    Category `json:"category"`
	Date        string   `json:"date"`
}

// CategoryTotal is one aggregated category slice of overall spending.
type CategoryTotal struct {
	Category Category `json:"category"`
	Label    string   `json:"label"`
	Total    float64  `json:"total"`
}

// FilterAll selects every expense regardless of category.
const FilterAll = "all"

// AddExpense validates the entry and prepends it to the stored list.
func (l *Ledger) AddExpense(description string, amount float64, category Category, date string) (Expense, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return Expense{}, &ValidationError{Field: "description", Message: "Enter a description"}
	}
	if !isUsableAmount(amount) {
		return Expense{}, &ValidationError{Field: "amount", Message: "Enter a valid amount"}
	}
	if !category.Known() {
		return Expense{}, &ValidationError{Field: "category", Message: "Choose a category"}
	}
	if date == "" {
		return Expense{}, &ValidationError{Field: "date", Message: "Select a date"}
	}
	if _, err := time.Parse(constants.ExpenseDateLayout, date); err != nil {
		return Expense{}, &ValidationError{Field: "date", Message: "Select a valid date"}
	}

	expense := Expense{
		ID:          l.ids.ExpenseID(),
		Description: description,
		Amount:      amount,
		Category:    category,
		Date:        date,
	}

	updated := append([]Expense{expense}, l.Expenses()...)
	l.store.Save(constants.ExpensesKey, updated)

	l.logger.Info("added expense",
		zap.String("op", "ledger.AddExpense"),
		zap.String("id", expense.ID),
		zap.String("category", string(expense.Category)),
		zap.Float64("amount", expense.Amount),
	)
	return expense, nil
}

// DeleteExpense removes the entry with the matching id. Deleting an absent id
// is a no-op, not an error.
func (l *Ledger) DeleteExpense(id string) {
	existing := l.Expenses()
	remaining := existing[:0:0]
	for _, e := range existing {
		if e.ID != id {
			remaining = append(remaining, e)
		}
	}
	if len(remaining) == len(existing) {
		return
	}
	l.store.Save(constants.ExpensesKey, remaining)

	l.logger.Info("deleted expense",
		zap.String("op", "ledger.DeleteExpense"),
		zap.String("id", id),
	)
}

// Expenses returns the stored expense list, newest first. A storage miss reads
// as an empty list.
func (l *Ledger) Expenses() []Expense {
	var expenses []Expense
	l.store.Load(constants.ExpensesKey, &expenses)
	if expenses == nil {
		expenses = []Expense{}
	}
	return expenses
}

// FilterByCategory returns the expenses matching category, preserving order.
// The "all" filter is the identity.
func FilterByCategory(list []Expense, category string) []Expense {
	if category == FilterAll {
		return list
	}
	filtered := make([]Expense, 0, len(list))
	for _, e := range list {
		if string(e.Category) == category {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// AggregateByCategory sums amounts per category over the whole list, keeping
// only categories with a positive total, sorted descending by total.
// Percentage labels derived from these totals are always relative to the grand
// total, never a filtered subtotal.
func AggregateByCategory(list []Expense) []CategoryTotal {
	sums := make(map[Category]float64, len(Categories))
	for _, e := range list {
		category := e.Category
		if !category.Known() {
			category = CategoryOther
		}
		sums[category] += e.Amount
	}

	totals := make([]CategoryTotal, 0, len(Categories))
	for _, c := range Categories {
		if sums[c] > 0 {
			totals = append(totals, CategoryTotal{Category: c, Label: c.Label(), Total: sums[c]})
		}
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total > totals[j].Total
	})
	return totals
}

// Total sums the amounts of the given expenses.
func Total(list []Expense) float64 {
	total := 0.0
	for _, e := range list {
		total += e.Amount
	}
	return total
}

// DailyAverage is total spending divided by the number of distinct calendar
// dates carrying at least one expense. An empty list averages to zero.
func DailyAverage(list []Expense) float64 {
	if len(list) == 0 {
		return 0
	}
	days := make(map[string]struct{}, len(list))
	for _, e := range list {
		days[e.Date] = struct{}{}
	}
	return Total(list) / float64(len(days))
}
