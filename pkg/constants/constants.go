// Package constants provides shared constants for the payflow application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 paisa)
	CurrencyTolerance = 0.01
)

// Compounding frequencies accepted by the FD calculator, in periods per year.
const (
	CompoundYearly     = 1
	CompoundHalfYearly = 2
	CompoundQuarterly  = 4
	CompoundMonthly    = 12
)

// Payment constants
const (
	// PaymentDailyLimit is the per-payment ceiling in rupees; payments above
	// this amount are rejected, payments equal to it are accepted.
	PaymentDailyLimit = 500000.0

	// TransactionHistoryLimit caps the stored transaction list at the most
	// recent entries.
	TransactionHistoryLimit = 50

	// MaxLoanRatePercent is the highest annual loan rate the API accepts.
	MaxLoanRatePercent = 50.0
)

// Storage keys for the persistent record store.
const (
	// TransactionsKey is the well-known key for the stored transaction list.
	TransactionsKey = "payflow_transactions"

	// ExpensesKey is the well-known key for the stored expense list.
	ExpensesKey = "payflow_expenses"
)

// Date and time layouts
const (
	// TimestampLayout is the rendering of transaction timestamps, e.g.
	// "15 Feb 2026, 10:30:45 AM".
	TimestampLayout = "02 Jan 2006, 03:04:05 PM"

	// ExpenseDateLayout is the calendar-date format carried on expenses.
	ExpenseDateLayout = "2006-01-02"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultDataDirectory is the default location for stored records
	DefaultDataDirectory = "data"

	// DefaultScanDelayMillis is the simulated camera-scan latency
	DefaultScanDelayMillis = 2500

	// DefaultUploadScanDelayMillis is the simulated upload-scan latency
	DefaultUploadScanDelayMillis = 1500

	// DefaultOpeningBalance is the demo account balance shown on the dashboard
	DefaultOpeningBalance = 247832.50
)
