package ledger

import (
	"fmt"
	"strings"

	"github.com/payflowhq/payflow/pkg/format"
)

// Receipt renders the plain-text payment receipt offered for download on the
// success screen.
func Receipt(txn Transaction) string {
	note := txn.Note
	if note == "" {
		note = "N/A"
	}

	var b strings.Builder
	rule := "============================"
	b.WriteString(rule + "\n")
	b.WriteString("     PAYFLOW RECEIPT\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Transaction ID: %s\n", txn.ID)
	fmt.Fprintf(&b, "Date & Time:    %s\n", txn.DateTime)
	fmt.Fprintf(&b, "Status:         %s\n", txn.Status)
	b.WriteString("----------------------------\n")
	fmt.Fprintf(&b, "Merchant:       %s\n", txn.Merchant)
	fmt.Fprintf(&b, "UPI ID:         %s\n", txn.UPIID)
	fmt.Fprintf(&b, "Amount:         %s\n", format.Currency(txn.Amount))
	fmt.Fprintf(&b, "Note:           %s\n", note)
	b.WriteString(rule + "\n")
	b.WriteString("    Thank you for using PayFlow!\n")
	b.WriteString(rule + "\n")
	return b.String()
}
