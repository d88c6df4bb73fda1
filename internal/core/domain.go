package core

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

type (
	// Type is the direction of a transaction. Amounts are always stored positive.
	Type string

	Transaction struct {
		ID      int64
		Title   string
		Amount  float64
		Type    Type
		Date    time.Time // calendar date, UTC midnight
		Source  string    // account the money moves into or out of
		Purpose string    // category
	}
)

var (
	ErrNotFound      = errors.New("transaction not found")
	ErrEmptyTitle    = errors.New("empty title")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidType   = errors.New("invalid transaction type")
	ErrInvalidDate   = errors.New("invalid date")
	ErrEmptySource   = errors.New("empty source")
	ErrEmptyPurpose  = errors.New("empty purpose")
	ErrInvalidRate   = errors.New("invalid conversion rate")
)

// Default labels offered by the entry form.
var (
	DefaultSources         = []string{"Bank", "Cash", "E-Wallet"}
	DefaultIncomePurposes  = []string{"Gaji", "Bonus", "Freelance"}
	DefaultExpensePurposes = []string{"Makanan", "Transportasi", "Tagihan", "Hiburan"}
)

func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

func (t Type) String() string {
	return string(t)
}

// ParseType accepts "income" or "expense", case-insensitively.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
	}
	return t, nil
}

// Signed returns the amount with the sign implied by the type.
func (tx Transaction) Signed() float64 {
	if tx.Type == TypeExpense {
		return -tx.Amount
	}
	return tx.Amount
}

// Validate checks the fields the entry form requires. The store itself never calls it.
func (tx Transaction) Validate() error {
	if strings.TrimSpace(tx.Title) == "" {
		return ErrEmptyTitle
	}
	if tx.Amount <= 0 || math.IsNaN(tx.Amount) || math.IsInf(tx.Amount, 0) {
		return ErrInvalidAmount
	}
	if !tx.Type.Valid() {
		return ErrInvalidType
	}
	if tx.Date.IsZero() {
		return ErrInvalidDate
	}
	if strings.TrimSpace(tx.Source) == "" {
		return ErrEmptySource
	}
	if strings.TrimSpace(tx.Purpose) == "" {
		return ErrEmptyPurpose
	}
	return nil
}

// NewDate returns the UTC midnight of the given calendar day.
func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// FormatDate renders the storage form of a date.
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}
