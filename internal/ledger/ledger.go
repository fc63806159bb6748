// Package ledger tracks income and expense transactions and derives the
// balance from them.
package ledger

import (
	"math"
	"slices"
	"strings"
	"time"

	"github.com/julianstephens/dashlit/internal/constants"
	"github.com/julianstephens/dashlit/internal/ids"
	"github.com/julianstephens/dashlit/internal/models"
	"github.com/julianstephens/dashlit/internal/state"
	"github.com/julianstephens/dashlit/internal/storage"
	"github.com/shopspring/decimal"
)

type Option func(*Store)

// WithClock overrides time.Now for created_at stamps
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDs overrides the time-ordered id generator
func WithIDs(gen ids.Generator) Option {
	return func(s *Store) { s.ids = gen }
}

// Store is the newest-first transaction list persisted under the finances
// key. The balance is never stored.
type Store struct {
	cell *state.Synced[[]models.Transaction]
	ids  ids.Generator
	now  func() time.Time
}

func New(store *storage.Store, opts ...Option) *Store {
	s := &Store{
		cell: state.New(store, constants.KeyFinances, []models.Transaction{}, models.ValidateTransactions),
		ids:  ids.TimeOrdered{},
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Exponent bounds for ParseAmount. Anything outside them is not a float64
// worth storing, and converting it would cost time growing with the exponent.
const (
	maxAmountExponent = 308
	minAmountExponent = -400
)

// ParseAmount reads a signed decimal amount such as "12.50" or "-3". Text
// that is not a complete number is rejected.
func ParseAmount(text string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return decimal.Zero, false
	}
	if exp := d.Exponent(); exp > maxAmountExponent || exp < minAmountExponent {
		return decimal.Zero, false
	}
	if f := d.InexactFloat64(); math.IsInf(f, 0) || math.IsNaN(f) {
		return decimal.Zero, false
	}
	return d, true
}

// Add prepends a transaction. A blank label or an unparsable amount leaves
// the ledger untouched and returns the zero Transaction.
func (s *Store) Add(label, amountText string) (models.Transaction, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return models.Transaction{}, nil
	}
	amount, ok := ParseAmount(amountText)
	if !ok {
		return models.Transaction{}, nil
	}

	created := s.now().UTC()
	tx := models.Transaction{
		ID:        s.ids.NewID(),
		Label:     label,
		Amount:    amount.InexactFloat64(),
		CreatedAt: &created,
	}
	next := make([]models.Transaction, 0, len(s.cell.Get())+1)
	next = append(next, tx)
	next = append(next, s.cell.Get()...)
	return tx, s.cell.Set(next)
}

// Remove deletes the transaction with id. Unknown ids are ignored.
func (s *Store) Remove(id string) error {
	i := slices.IndexFunc(s.cell.Get(), func(t models.Transaction) bool { return t.ID == id })
	if i < 0 {
		return nil
	}
	return s.cell.Set(slices.Delete(slices.Clone(s.cell.Get()), i, i+1))
}

func (s *Store) Snapshot() []models.Transaction {
	return slices.Clone(s.cell.Get())
}

// Balance sums every amount exactly
func (s *Store) Balance() decimal.Decimal {
	total := decimal.Zero
	for _, t := range s.cell.Get() {
		total = total.Add(t.Decimal())
	}
	return total
}

// Income sums the non-negative amounts
func (s *Store) Income() decimal.Decimal {
	total := decimal.Zero
	for _, t := range s.cell.Get() {
		if t.IsIncome() {
			total = total.Add(t.Decimal())
		}
	}
	return total
}

// Expenses sums the negative amounts, returned as a negative number
func (s *Store) Expenses() decimal.Decimal {
	total := decimal.Zero
	for _, t := range s.cell.Get() {
		if !t.IsIncome() {
			total = total.Add(t.Decimal())
		}
	}
	return total
}

func (s *Store) Subscribe(fn func([]models.Transaction)) func() {
	return s.cell.Subscribe(func(txs []models.Transaction) { fn(slices.Clone(txs)) })
}

func (s *Store) Err() error {
	return s.cell.Err()
}

// FormatSigned renders an amount with two decimals and an explicit sign
func FormatSigned(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + d.Abs().StringFixed(2)
	}
	return "+" + d.StringFixed(2)
}
