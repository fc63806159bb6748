package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one ledger line. Positive amounts are income, negative
// amounts are expenses.
type Transaction struct {
	ID        string     `json:"id" validate:"required"`
	Label     string     `json:"label" validate:"trimmed"`
	Amount    float64    `json:"amount" validate:"finite"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// created_at is optional: entries written before it existed lack it
type transactionWire struct {
	ID        *string    `json:"id" validate:"required"`
	Label     *string    `json:"label" validate:"required"`
	Amount    *float64   `json:"amount" validate:"required"`
	CreatedAt *time.Time `json:"created_at"`
}

func (t *Transaction) UnmarshalJSON(data []byte) error {
	var w transactionWire
	if err := decodeStrict(data, &w); err != nil {
		return err
	}
	*t = Transaction{ID: *w.ID, Label: *w.Label, Amount: *w.Amount, CreatedAt: w.CreatedAt}
	return nil
}

// Decimal returns the amount as an exact decimal using the shortest
// representation that round-trips the stored float.
func (t Transaction) Decimal() decimal.Decimal {
	return decimal.NewFromFloat(t.Amount)
}

// IsIncome reports whether the transaction adds to the balance
func (t Transaction) IsIncome() bool {
	return t.Amount >= 0
}

// ValidateTransactions checks a decoded ledger
func ValidateTransactions(txs []Transaction) error {
	return validateList("transaction", txs, func(t Transaction) string { return t.ID })
}
