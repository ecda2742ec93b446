package stockfolio

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestPercentString(t *testing.T) {
	testCases := []struct {
		p    Percent
		want string
	}{
		{10, "10.00%"},
		{-10, "-10.00%"},
		{0, "0.00%"},
		{33.333, "33.33%"},
	}
	for _, tc := range testCases {
		if got := tc.p.String(); got != tc.want {
			t.Errorf("Percent(%v).String() = %q, want %q", float64(tc.p), got, tc.want)
		}
	}
}

func TestGainOn(t *testing.T) {
	testCases := []struct {
		name      string
		current   string
		purchase  string
		want      Percent
		expectErr bool
	}{
		{"Gain", "110", "100", 10, false},
		{"Loss", "90", "100", -10, false},
		{"Flat", "100", "100", 0, false},
		{"Quarter up", "100", "80", 25, false},
		{"Zero purchase price", "100", "0", 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			current, _ := decimal.NewFromString(tc.current)
			purchase, _ := decimal.NewFromString(tc.purchase)
			got, err := GainOn(current, purchase)
			hasErr := err != nil
			if hasErr != tc.expectErr {
				t.Fatalf("GainOn(%s, %s) returned error: %v, want error: %v", tc.current, tc.purchase, err, tc.expectErr)
			}
			if !hasErr && !got.Equal(tc.want) {
				t.Errorf("GainOn(%s, %s) = %v, want %v", tc.current, tc.purchase, got, tc.want)
			}
		})
	}
}

func TestMoneyString(t *testing.T) {
	price, _ := decimal.NewFromString("150.25")
	amount, _ := decimal.NewFromString("10")
	cost := M(price.Mul(amount), DefaultCurrency)
	if got := cost.String(); got != "$1,502.50" {
		t.Errorf("Cost String() = %q, want %q", got, "$1,502.50")
	}
}

func TestMoneyAdd(t *testing.T) {
	a := M(decimal.NewFromInt(10), "USD")
	var total Money // the zero Money is a neutral element for Add
	total = total.Add(a).Add(a)
	want := M(decimal.NewFromInt(20), "USD")
	if !total.Equal(want) {
		t.Errorf("Add() = %v, want %v", total, want)
	}
}
