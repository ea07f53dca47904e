package controllers

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestBuildPricingDocVatRate(t *testing.T) {
	now := time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		vatRate  string
		wantRate string
		wantVAT  string
	}{
		{"blank field gets the standard rate", "", "7", "70.00"},
		{"explicit zero stays zero", "0", "0", "0.00"},
		{"explicit rate kept", "10", "10", "100.00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := DocumentInput{
				VatEnabled: true,
				VatRate:    tc.vatRate,
				Items: []DocumentItemInput{
					{Name: "ต้นไทรเกาหลี", Quantity: "2", UnitPrice: "500"},
				},
			}

			pd, err := buildPricingDoc(&input, now)
			if err != nil {
				t.Fatalf("buildPricingDoc: %v", err)
			}
			if want := decimal.RequireFromString(tc.wantRate); !pd.Tax.RatePercent.Equal(want) {
				t.Errorf("rate = %s, want %s", pd.Tax.RatePercent, want)
			}
			if want := decimal.RequireFromString(tc.wantVAT); !pd.Totals.VATAmount.Equal(want) {
				t.Errorf("vat amount = %s, want %s", pd.Totals.VATAmount, want)
			}
		})
	}
}
