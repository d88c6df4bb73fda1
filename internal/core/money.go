// Package core holds the ledger's domain types.
//
// This file parses user-entered amounts and conversion rates. Both accept
// dot (12.34) or comma (12,34) decimal separators, plus "." or "," as a
// thousands grouping when the other one is the decimal separator
// (5.000.000 or 5,000,000.50).
package core

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a decimal string to a positive amount.
//
//	ParseAmount("50000")      -> 50000
//	ParseAmount("12,50")      -> 12.5
//	ParseAmount("5.000.000")  -> 5000000
func ParseAmount(s string) (float64, error) {
	d, err := parsePositive(s)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	f, _ := d.Float64()
	return f, nil
}

// ParseRate parses a currency conversion multiplier. Zero and negative rates are rejected.
func ParseRate(s string) (float64, error) {
	d, err := parsePositive(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRate, s)
	}
	f, _ := d.Float64()
	return f, nil
}

// FormatAmount renders an amount without float noise (0.1+0.2 prints as 0.3).
func FormatAmount(f float64) string {
	return decimal.NewFromFloat(f).Round(8).String()
}

func parsePositive(s string) (decimal.Decimal, error) {
	s = normalizeNumber(s)
	if s == "" || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if !d.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

func normalizeNumber(s string) string {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	dots := strings.Count(s, ".")
	commas := strings.Count(s, ",")
	switch {
	case dots > 0 && commas > 0:
		// whichever separator comes last is the decimal one
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case commas == 1:
		s = strings.Replace(s, ",", ".", 1)
	case commas > 1:
		s = strings.ReplaceAll(s, ",", "")
	case dots > 1:
		s = strings.ReplaceAll(s, ".", "")
	}
	return s
}
