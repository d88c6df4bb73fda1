package core

import (
	"fmt"
	"strings"
)

// Totals aggregates every row in the ledger.
type Totals struct {
	Income  float64
	Expense float64
	Balance float64
}

// SourceBalance is the per-account view of Totals.
type SourceBalance struct {
	Source  string
	Income  float64
	Expense float64
	Balance float64
}

// PurposeTotal sums one category within one direction.
type PurposeTotal struct {
	Purpose string
	Type    Type
	Total   float64
}

// PeriodSummary is a chart bucket. Period is "YYYY-MM" or "YYYY".
type PeriodSummary struct {
	Period  string
	Income  float64
	Expense float64
	Balance float64
}

type Granularity string

const (
	Monthly Granularity = "month"
	Yearly  Granularity = "year"
)

// ParseGranularity defaults to Monthly for an empty string.
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(strings.ToLower(strings.TrimSpace(s))) {
	case "", Monthly:
		return Monthly, nil
	case Yearly:
		return Yearly, nil
	}
	return "", fmt.Errorf("invalid granularity %q: must be month or year", s)
}

// PrefixLen is how many characters of a YYYY-MM-DD date identify the bucket.
func (g Granularity) PrefixLen() int {
	if g == Yearly {
		return 4
	}
	return 7
}

// NewTotals fills in the balance.
func NewTotals(income, expense float64) Totals {
	return Totals{Income: income, Expense: expense, Balance: income - expense}
}
