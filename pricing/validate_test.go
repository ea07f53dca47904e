package pricing

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidate_Items(t *testing.T) {
	tests := []struct {
		name    string
		it      LineItem
		wantErr error
	}{
		{"valid", item("ปูหญ้า", 1, "100"), nil},
		{"empty name", LineItem{Quantity: 1, UnitPrice: decimal.NewFromInt(100)}, ErrItemName},
		{"zero quantity", LineItem{Name: "ปูหญ้า", Quantity: 0}, ErrItemQuantity},
		{"negative quantity", LineItem{Name: "ปูหญ้า", Quantity: -2}, ErrItemQuantity},
		{"negative price", item("ปูหญ้า", 1, "-5"), ErrItemUnitPrice},
		{"free item is fine", item("ของแถม", 1, "0"), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDocument()
			d.Items = []LineItem{tt.it}
			d.Recompute()
			err := d.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_InstallmentSum(t *testing.T) {
	tests := []struct {
		name        string
		percentages []string
		ok          bool
	}{
		{"exactly 100", []string{"60", "40"}, true},
		{"within tolerance", []string{"33.33", "33.33", "33.335"}, true},
		{"short", []string{"50", "40"}, false},
		{"over", []string{"60", "50"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := paidDoc(t)
			for i, p := range tt.percentages {
				d.AddInstallment()
				d.SetPercentage(i, decimal.RequireFromString(p))
			}
			err := d.Validate()
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInstallmentSum) {
				t.Errorf("got %v, want ErrInstallmentSum", err)
			}
		})
	}
}

func TestValidate_InstallmentErrorReportsActualSum(t *testing.T) {
	d := paidDoc(t)
	d.AddInstallment()
	d.SetPercentage(0, decimal.NewFromInt(90))

	err := d.Validate()
	if err == nil {
		t.Fatal("expected error for 90% sum")
	}
	if !strings.Contains(err.Error(), "90") {
		t.Errorf("error %q does not show the actual sum", err.Error())
	}
}

func TestValidate_IgnoresInstallmentsWhenDisabled(t *testing.T) {
	d := paidDoc(t)
	d.InstallmentsEnabled = false
	d.AddInstallment()
	d.SetPercentage(0, decimal.NewFromInt(10))
	if err := d.Validate(); err != nil {
		t.Errorf("disabled installments must not be validated, got %v", err)
	}
}
