package core

import (
	"errors"
	"math"
	"testing"
	"time"
)

func validTx() Transaction {
	return Transaction{
		Title:   "Salary",
		Amount:  5000000,
		Type:    TypeIncome,
		Date:    NewDate(2024, 1, 1),
		Source:  "Bank",
		Purpose: "Gaji",
	}
}

func TestTransactionValidate(t *testing.T) {
	if err := validTx().Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Transaction)
		want   error
	}{
		{"blank title", func(tx *Transaction) { tx.Title = "  " }, ErrEmptyTitle},
		{"zero amount", func(tx *Transaction) { tx.Amount = 0 }, ErrInvalidAmount},
		{"negative amount", func(tx *Transaction) { tx.Amount = -10 }, ErrInvalidAmount},
		{"nan amount", func(tx *Transaction) { tx.Amount = math.NaN() }, ErrInvalidAmount},
		{"unknown type", func(tx *Transaction) { tx.Type = "transfer" }, ErrInvalidType},
		{"zero date", func(tx *Transaction) { tx.Date = time.Time{} }, ErrInvalidDate},
		{"empty source", func(tx *Transaction) { tx.Source = "" }, ErrEmptySource},
		{"empty purpose", func(tx *Transaction) { tx.Purpose = "" }, ErrEmptyPurpose},
	}
	for _, tc := range cases {
		tx := validTx()
		tc.mutate(&tx)
		if err := tx.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestParseType(t *testing.T) {
	for _, in := range []string{"income", "Expense", " INCOME "} {
		if _, err := ParseType(in); err != nil {
			t.Fatalf("%q expected ok, got %v", in, err)
		}
	}
	if _, err := ParseType("refund"); !errors.Is(err, ErrInvalidType) {
		t.Fatalf("expected ErrInvalidType, got %v", err)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if !d.Equal(NewDate(2024, 2, 29)) {
		t.Fatalf("unexpected date %v", d)
	}
	if FormatDate(d) != "2024-02-29" {
		t.Fatalf("unexpected format %q", FormatDate(d))
	}
	for _, bad := range []string{"", "2024-13-01", "01/02/2024", "2023-02-29"} {
		if _, err := ParseDate(bad); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("%q expected ErrInvalidDate, got %v", bad, err)
		}
	}
}

func TestSigned(t *testing.T) {
	tx := validTx()
	if tx.Signed() != 5000000 {
		t.Fatalf("income should be positive")
	}
	tx.Type = TypeExpense
	if tx.Signed() != -5000000 {
		t.Fatalf("expense should be negative")
	}
}

func TestParseGranularity(t *testing.T) {
	cases := []struct {
		in     string
		want   Granularity
		prefix int
		ok     bool
	}{
		{"", Monthly, 7, true},
		{"month", Monthly, 7, true},
		{"YEAR", Yearly, 4, true},
		{"week", "", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseGranularity(tc.in)
		if tc.ok {
			if err != nil || got != tc.want || got.PrefixLen() != tc.prefix {
				t.Fatalf("%q expected %s/%d, got %s (err=%v)", tc.in, tc.want, tc.prefix, got, err)
			}
		} else if err == nil {
			t.Fatalf("%q expected error", tc.in)
		}
	}
}
