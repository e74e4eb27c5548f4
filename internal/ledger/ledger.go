// Package ledger implements the transaction and expense domain logic:
// validation, creation, filtering, and aggregation over the records held in
// the persistent store.
package ledger

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"time"

	"github.com/payflowhq/payflow/internal/store"
	"go.uber.org/zap"
)

// ValidationError is a user-correctable input failure, surfaced inline next to
// the offending field. It never reaches persisted state.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IDSource generates record identifiers. It is injectable so tests can supply
// deterministic ids and assert exact stored records.
type IDSource interface {
	// TransactionID returns a fresh transaction token: "TXN" plus 12 random
	// uppercase alphanumerics. Collisions are negligible, not guaranteed
	// impossible.
	TransactionID() string

	// ExpenseID returns an id derived from the creation time.
	ExpenseID() string
}

const txnIDChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

type systemIDSource struct {
	rng *rand.Rand
	now func() time.Time
}

func (s *systemIDSource) TransactionID() string {
	id := make([]byte, 0, 15)
	id = append(id, "TXN"...)
	for i := 0; i < 12; i++ {
		id = append(id, txnIDChars[s.rng.Intn(len(txnIDChars))])
	}
	return string(id)
}

func (s *systemIDSource) ExpenseID() string {
	return strconv.FormatInt(s.now().UnixMilli(), 10)
}

// Ledger owns the durable transaction and expense collections. All reads and
// writes go through the store; the ledger itself keeps no state between calls.
type Ledger struct {
	store  store.Store
	logger *zap.Logger
	ids    IDSource
	now    func() time.Time
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithIDSource replaces the default random/clock id generation.
func WithIDSource(ids IDSource) Option {
	return func(l *Ledger) { l.ids = ids }
}

// WithClock replaces the wall clock used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// NewLedger creates a ledger over the given store.
func NewLedger(s store.Store, logger *zap.Logger, opts ...Option) *Ledger {
	if logger == nil {
		logger = zap.NewNop()
	}
	l := &Ledger{
		store:  s,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.ids == nil {
		l.ids = &systemIDSource{
			rng: rand.New(rand.NewSource(time.Now().UnixNano())),
			now: l.now,
		}
	}
	return l
}

func isUsableAmount(amount float64) bool {
	return !math.IsNaN(amount) && !math.IsInf(amount, 0) && amount > 0
}
