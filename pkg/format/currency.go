// Package format renders amounts and timestamps the way the payflow UI
// displays them: Indian-system digit grouping (lakh/crore) and rupee currency
// strings.
package format

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/payflowhq/payflow/pkg/constants"
)

// RupeeSymbol is the currency symbol prefixed to formatted amounts.
const RupeeSymbol = "₹"

// Currency returns a rupee string with two decimals and Indian digit grouping
// (e.g., "₹12,34,567.89"). Negative amounts carry a leading minus sign.
func Currency(amount float64) string {
	formatted := formatPositiveCurrency(math.Abs(amount))
	if amount < 0 {
		return "-" + RupeeSymbol + formatted
	}
	return RupeeSymbol + formatted
}

// NumericCurrency returns a currency string without the rupee symbol but with
// separators (e.g., "-12,34,567.89").
func NumericCurrency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	return sign + formatPositiveCurrency(math.Abs(amount))
}

// GroupedInt returns the amount rounded to the nearest rupee with Indian digit
// grouping and no decimals (e.g., "1,00,000").
func GroupedInt(amount float64) string {
	rounded := math.Round(math.Abs(amount))
	formatted := groupIndian(fmt.Sprintf("%.0f", rounded))
	if amount < 0 && rounded != 0 {
		return "-" + formatted
	}
	return formatted
}

// Timestamp renders a transaction time, e.g. "15 Feb 2026, 10:30:45 AM".
func Timestamp(t time.Time) string {
	return t.Format(constants.TimestampLayout)
}

func formatPositiveCurrency(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}
	return groupIndian(intPart) + "." + decPart
}

// groupIndian inserts separators per the Indian numbering system: the last
// three digits form one group, everything before them is grouped in twos.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var builder strings.Builder
	for i, digit := range head {
		if i > 0 && (len(head)-i)%2 == 0 {
			builder.WriteByte(',')
		}
		builder.WriteRune(digit)
	}
	builder.WriteByte(',')
	builder.WriteString(tail)
	return builder.String()
}
