package ledger

import (
	"testing"

	"github.com/payflowhq/payflow/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddExpense(t *testing.T) {
	l, _ := newTestLedger(t)

	expense, err := l.AddExpense("  Groceries  ", 450.75, CategoryFood, "2026-02-15")
	require.NoError(t, err)

	assert.Equal(t, Expense{
		ID:          "1700000000001",
		Description: "Groceries",
		Amount:      450.75,
		Category:    CategoryFood,
		Date:        "2026-02-15",
	}, expense)

	stored := l.Expenses()
	require.Len(t, stored, 1)
	assert.Equal(t, expense, stored[0])
}

func TestAddExpensePrependsNewestFirst(t *testing.T) {
	l, _ := newTestLedger(t)

	_, err := l.AddExpense("first", 10, CategoryFood, "2026-02-14")
	require.NoError(t, err)
	second, err := l.AddExpense("second", 20, CategoryTransport, "2026-02-15")
	require.NoError(t, err)

	stored := l.Expenses()
	require.Len(t, stored, 2)
	assert.Equal(t, second.ID, stored[0].ID)
}

func TestAddExpenseValidation(t *testing.T) {
	tests := []struct {
		name        string
		description string
		amount      float64
		category    Category
		date        string
		field       string
	}{
		{"Empty description", "", 100, CategoryFood, "2026-02-15", "description"},
		{"Whitespace description", "   ", 100, CategoryFood, "2026-02-15", "description"},
		{"Zero amount", "lunch", 0, CategoryFood, "2026-02-15", "amount"},
		{"Negative amount", "lunch", -5, CategoryFood, "2026-02-15", "amount"},
		{"Unknown category", "lunch", 100, Category("travel"), "2026-02-15", "category"},
		{"Missing date", "lunch", 100, CategoryFood, "", "date"},
		{"Malformed date", "lunch", 100, CategoryFood, "15/02/2026", "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _ := newTestLedger(t)
			_, err := l.AddExpense(tt.description, tt.amount, tt.category, tt.date)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
			assert.Empty(t, l.Expenses(), "validation failure must not touch storage")
		})
	}
}

func TestDeleteExpense(t *testing.T) {
	l, _ := newTestLedger(t)

	keep, err := l.AddExpense("keep", 100, CategoryFood, "2026-02-15")
	require.NoError(t, err)
	drop, err := l.AddExpense("drop", 50, CategoryTransport, "2026-02-15")
	require.NoError(t, err)

	totalBefore := Total(l.Expenses())

	l.DeleteExpense(drop.ID)

	remaining := FilterByCategory(l.Expenses(), FilterAll)
	require.Len(t, remaining, 1)
	assert.Equal(t, keep.ID, remaining[0].ID)
	assert.Equal(t, totalBefore-drop.Amount, Total(remaining),
		"aggregate total must decrease by exactly the deleted amount")
}

func TestDeleteExpenseAbsentIsNoop(t *testing.T) {
	l, _ := newTestLedger(t)

	_, err := l.AddExpense("lunch", 100, CategoryFood, "2026-02-15")
	require.NoError(t, err)

	l.DeleteExpense("does-not-exist")
	assert.Len(t, l.Expenses(), 1)
}

func TestFilterByCategory(t *testing.T) {
	list := []Expense{
		{ID: "1", Category: CategoryFood, Amount: 10},
		{ID: "2", Category: CategoryTransport, Amount: 20},
		{ID: "3", Category: CategoryFood, Amount: 30},
	}

	all := FilterByCategory(list, FilterAll)
	assert.Equal(t, list, all, `"all" is the identity filter`)

	food := FilterByCategory(list, "food")
	require.Len(t, food, 2)
	assert.Equal(t, "1", food[0].ID)
	assert.Equal(t, "3", food[1].ID, "filtering must preserve order")

	assert.Empty(t, FilterByCategory(list, "health"))
}

func TestAggregateByCategory(t *testing.T) {
	list := []Expense{
		{Category: CategoryFood, Amount: 300},
		{Category: CategoryTransport, Amount: 500},
		{Category: CategoryFood, Amount: 100},
		{Category: CategoryShopping, Amount: 250},
	}

	totals := AggregateByCategory(list)
	require.Len(t, totals, 3, "categories without spending are omitted")

	assert.Equal(t, CategoryTransport, totals[0].Category)
	assert.Equal(t, 500.0, totals[0].Total)
	assert.Equal(t, CategoryFood, totals[1].Category)
	assert.Equal(t, 400.0, totals[1].Total)
	assert.Equal(t, CategoryShopping, totals[2].Category)
	assert.Equal(t, 250.0, totals[2].Total)

	assert.Equal(t, "Transport", totals[0].Label)
}

func TestAggregateByCategoryUnknownFallsToOther(t *testing.T) {
	list := []Expense{
		{Category: Category("legacy-misc"), Amount: 40},
		{Category: CategoryOther, Amount: 10},
	}

	totals := AggregateByCategory(list)
	require.Len(t, totals, 1)
	assert.Equal(t, CategoryOther, totals[0].Category)
	assert.Equal(t, 50.0, totals[0].Total)
}

func TestAggregateByCategoryEmpty(t *testing.T) {
	assert.Empty(t, AggregateByCategory(nil))
}

func TestDailyAverage(t *testing.T) {
	tests := []struct {
		name     string
		list     []Expense
		expected float64
	}{
		{"Empty list", nil, 0},
		{
			"Single day",
			[]Expense{
				{Date: "2026-02-15", Amount: 100},
				{Date: "2026-02-15", Amount: 50},
			},
			150,
		},
		{
			"Across days",
			[]Expense{
				{Date: "2026-02-15", Amount: 100},
				{Date: "2026-02-14", Amount: 200},
				{Date: "2026-02-15", Amount: 60},
			},
			180,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DailyAverage(tt.list))
		})
	}
}

func TestExpensesCorruptStorageReadsEmpty(t *testing.T) {
	l, mem := newTestLedger(t)

	_, err := l.AddExpense("lunch", 100, CategoryFood, "2026-02-15")
	require.NoError(t, err)

	mem.Corrupt(constants.ExpensesKey)
	assert.Empty(t, l.Expenses())
}

func TestRecentActivity(t *testing.T) {
	l, _ := newTestLedger(t)

	feed := l.RecentActivity(6)
	require.Len(t, feed, 5, "empty history falls back to the demo feed")
	assert.Equal(t, "Zomato", feed[0].Merchant)

	for i := 0; i < 4; i++ {
		_, err := l.RecordTransaction(testMerchant, float64(100+i), "")
		require.NoError(t, err)
	}

	feed = l.RecentActivity(6)
	require.Len(t, feed, 6)
	// Three newest stored payments lead, demo entries fill the rest.
	assert.Equal(t, 103.0, feed[0].Amount)
	assert.Equal(t, "debit", feed[0].Type)
	assert.Equal(t, 102.0, feed[1].Amount)
	assert.Equal(t, 101.0, feed[2].Amount)
	assert.Equal(t, "Zomato", feed[3].Merchant)

	assert.Empty(t, l.RecentActivity(0))
}

func TestLedgerDistinctStorageKeys(t *testing.T) {
	// Transactions and expenses are independent collections.
	l, _ := newTestLedger(t)

	_, err := l.RecordTransaction(testMerchant, 100, "")
	require.NoError(t, err)
	_, err = l.AddExpense("lunch", 50, CategoryFood, "2026-02-15")
	require.NoError(t, err)

	assert.Len(t, l.Transactions(), 1)
	assert.Len(t, l.Expenses(), 1)

	l.DeleteExpense(l.Expenses()[0].ID)
	assert.Empty(t, l.Expenses())
	assert.Len(t, l.Transactions(), 1, "deleting expenses must not touch payments")
}
