package core

import (
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in  string
		out float64
		ok  bool
	}{
		{"1", 1, true},
		{"50000", 50000, true},
		{"12.50", 12.5, true},
		{"12,50", 12.5, true},
		{"5.000.000", 5000000, true},
		{"5,000,000.75", 5000000.75, true},
		{"1.234,56", 1234.56, true},
		{" 2.50 ", 2.5, true},
		{"-1", 0, false},
		{"+1", 0, false},
		{"0", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %v, got %v (err=%v)", tc.in, tc.out, got, err)
			}
		} else if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("%q expected ErrInvalidAmount, got %v", tc.in, err)
		}
	}
}

func TestParseRate(t *testing.T) {
	r, err := ParseRate("0,0001")
	if err != nil || r != 0.0001 {
		t.Fatalf("expected 0.0001, got %v (err=%v)", r, err)
	}
	if _, err := ParseRate("0"); !errors.Is(err, ErrInvalidRate) {
		t.Fatalf("expected ErrInvalidRate, got %v", err)
	}
}

func TestFormatAmount(t *testing.T) {
	cases := map[float64]string{
		5000000:   "5000000",
		12.5:      "12.5",
		0.1 + 0.2: "0.3",
	}
	for in, want := range cases {
		if got := FormatAmount(in); got != want {
			t.Fatalf("%v expected %q, got %q", in, want, got)
		}
	}
}
