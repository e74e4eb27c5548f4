package ledger

import (
	"github.com/payflowhq/payflow/internal/merchant"
	"github.com/payflowhq/payflow/pkg/constants"
	"github.com/payflowhq/payflow/pkg/format"
	"go.uber.org/zap"
)

// Transaction is one simulated UPI payment. Immutable once created; the UI
// never edits or deletes transactions.
type Transaction struct {
	ID       string  `json:"id"`
	Merchant string  `json:"merchant"`
	UPIID    string  `json:"upiId"`
	Amount   float64 `json:"amount"`
	Note     string  `json:"note,omitempty"`
	Status   string  `json:"status"`
	DateTime string  `json:"dateTime"`
}

// StatusSuccess is the status recorded on a completed simulated payment.
const StatusSuccess = "SUCCESS"

// RecordTransaction validates the payment and prepends it to the stored list,
// which is capped at the most recent entries. Validation failures leave
// storage untouched. A dropped store write is logged by the store and accepted
// here: the transaction still completed from the user's point of view.
func (l *Ledger) RecordTransaction(m merchant.Merchant, amount float64, note string) (Transaction, error) {
	if !isUsableAmount(amount) {
		return Transaction{}, &ValidationError{Field: "amount", Message: "Please enter a valid amount."}
	}
	if amount > constants.PaymentDailyLimit {
		return Transaction{}, &ValidationError{
			Field:   "amount",
			Message: "Amount exceeds daily limit of " + format.Currency(constants.PaymentDailyLimit) + ".",
		}
	}

	txn := Transaction{
		ID:       l.ids.TransactionID(),
		Merchant: m.Name,
		UPIID:    m.UPIID,
		Amount:   amount,
		Note:     note,
		Status:   StatusSuccess,
		DateTime: format.Timestamp(l.now()),
	}

	existing := l.Transactions()
	updated := append([]Transaction{txn}, existing...)
	if len(updated) > constants.TransactionHistoryLimit {
		updated = updated[:constants.TransactionHistoryLimit]
	}
	l.store.Save(constants.TransactionsKey, updated)

	l.logger.Info("recorded transaction",
		zap.String("op", "ledger.RecordTransaction"),
		zap.String("id", txn.ID),
		zap.String("merchant", txn.Merchant),
		zap.Float64("amount", txn.Amount),
	)
	return txn, nil
}

// Transactions returns the stored payment history, newest first. A storage
// miss reads as an empty history.
func (l *Ledger) Transactions() []Transaction {
	var txns []Transaction
	l.store.Load(constants.TransactionsKey, &txns)
	if txns == nil {
		txns = []Transaction{}
	}
	return txns
}

// Transaction looks up a stored payment by id.
func (l *Ledger) Transaction(id string) (Transaction, bool) {
	for _, txn := range l.Transactions() {
		if txn.ID == id {
			return txn, true
		}
	}
	return Transaction{}, false
}
