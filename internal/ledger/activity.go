package ledger

// Activity is one row of the dashboard's recent-activity feed. It unifies
// stored payments with the demo seed entries shown before any real activity
// exists.
type Activity struct {
	ID       string  `json:"id"`
	Merchant string  `json:"merchant"`
	Type     string  `json:"type"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
}

// DemoActivity is the canned feed backing the dashboard demo.
var DemoActivity = []Activity{
	{ID: "TXN001", Merchant: "Zomato", Type: "debit", Amount: 340, Category: "food", Date: "15 Feb 2026"},
	{ID: "TXN002", Merchant: "Salary Credit", Type: "credit", Amount: 65000, Category: "income", Date: "01 Feb 2026"},
	{ID: "TXN003", Merchant: "Amazon", Type: "debit", Amount: 1299, Category: "shopping", Date: "14 Feb 2026"},
	{ID: "TXN004", Merchant: "Ola Cabs", Type: "debit", Amount: 180, Category: "transport", Date: "13 Feb 2026"},
	{ID: "TXN005", Merchant: "Netflix", Type: "debit", Amount: 649, Category: "entertainment", Date: "10 Feb 2026"},
}

// recentStoredLimit caps how many stored payments lead the activity feed
// before demo entries fill the remainder.
const recentStoredLimit = 3

// RecentActivity merges the newest stored payments with the demo feed and
// truncates to n rows, stored payments first.
func (l *Ledger) RecentActivity(n int) []Activity {
	if n <= 0 {
		return []Activity{}
	}

	feed := make([]Activity, 0, n)
	for i, txn := range l.Transactions() {
		if i == recentStoredLimit {
			break
		}
		feed = append(feed, Activity{
			ID:       txn.ID,
			Merchant: txn.Merchant,
			Type:     "debit",
			Amount:   txn.Amount,
			Category: "payment",
			Date:     txn.DateTime,
		})
	}
	feed = append(feed, DemoActivity...)
	if len(feed) > n {
		feed = feed[:n]
	}
	return feed
}
