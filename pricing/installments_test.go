package pricing

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// paidDoc returns a document with a 963.00 grand total (2 × 500, 10% discount,
// 7% VAT) and installments enabled.
func paidDoc(t *testing.T) *Document {
	t.Helper()
	d := NewDocument()
	d.Items = []LineItem{item("จัดสวนหย่อม", 2, "500")}
	d.Discount = DiscountSpec{Value: decimal.NewFromInt(10), Mode: DiscountModePercent}
	d.Tax = TaxSpec{Enabled: true, RatePercent: DefaultVATRate}
	d.InstallmentsEnabled = true
	d.Recompute()
	if !d.Totals.GrandTotal.Equal(decimal.NewFromInt(963)) {
		t.Fatalf("fixture grand total = %s, want 963", d.Totals.GrandTotal)
	}
	return d
}

func TestSetPercentage_DerivesAmount(t *testing.T) {
	d := paidDoc(t)
	d.AddInstallment()
	d.AddInstallment()

	d.SetPercentage(0, decimal.NewFromInt(40))
	want := decimal.RequireFromString("385.20") // 963 × 40%
	if !d.Installments[0].Amount.Equal(want) {
		t.Errorf("amount = %s, want %s", d.Installments[0].Amount, want)
	}
	// The sibling installment is untouched; percentages never auto-rebalance.
	if !d.Installments[1].Percentage.IsZero() {
		t.Errorf("sibling percentage changed to %s", d.Installments[1].Percentage)
	}
}

func TestSetAmount_DerivesPercentage(t *testing.T) {
	d := paidDoc(t)
	d.AddInstallment()

	d.SetAmount(0, decimal.RequireFromString("481.50"))
	want := decimal.NewFromInt(50)
	if diff := d.Installments[0].Percentage.Sub(want).Abs(); diff.GreaterThan(PercentageTolerance) {
		t.Errorf("percentage = %s, want 50 ± 0.01", d.Installments[0].Percentage)
	}
}

func TestSetAmount_ZeroGrandTotal(t *testing.T) {
	d := NewDocument()
	d.AddInstallment()
	d.SetAmount(0, decimal.NewFromInt(500))
	if !d.Installments[0].Percentage.IsZero() {
		t.Errorf("percentage = %s, want 0 when grand total is 0", d.Installments[0].Percentage)
	}
}

func TestSetters_IgnoreOutOfRangeIndex(t *testing.T) {
	d := paidDoc(t)
	d.AddInstallment()
	d.SetPercentage(5, decimal.NewFromInt(50))
	d.SetAmount(-1, decimal.NewFromInt(50))
	d.RemoveInstallment(3)
	if len(d.Installments) != 1 || !d.Installments[0].Percentage.IsZero() {
		t.Errorf("out-of-range ops mutated state: %+v", d.Installments)
	}
}

func TestReconcileToTotal_TracksNewGrandTotal(t *testing.T) {
	d := paidDoc(t)
	d.AddInstallment()
	d.AddInstallment()
	d.SetPercentage(0, decimal.NewFromInt(50))
	d.SetPercentage(1, decimal.NewFromInt(50))

	// The user adds a line item after splitting; amounts must follow the new
	// total while the stored percentages stay put.
	d.Items = append(d.Items, item("ระบบรดน้ำอัตโนมัติ", 1, "1000"))
	d.Recompute()

	// subtotal 2000, -10% → 1800, +7% VAT → 1926
	if !d.Totals.GrandTotal.Equal(decimal.NewFromInt(1926)) {
		t.Fatalf("grand total = %s, want 1926", d.Totals.GrandTotal)
	}
	for i, inst := range d.Installments {
		if !inst.Percentage.Equal(decimal.NewFromInt(50)) {
			t.Errorf("installment %d percentage drifted to %s", i, inst.Percentage)
		}
		if !inst.Amount.Equal(decimal.NewFromInt(963)) {
			t.Errorf("installment %d amount = %s, want 963", i, inst.Amount)
		}
	}
}

func TestAddRemove_NoRenormalization(t *testing.T) {
	d := paidDoc(t)
	d.AddInstallment()
	d.AddInstallment()
	d.SetPercentage(0, decimal.NewFromInt(60))
	d.SetPercentage(1, decimal.NewFromInt(40))

	d.AddInstallment()
	if !d.TotalPercentage().Equal(decimal.NewFromInt(100)) {
		t.Errorf("adding a blank installment changed the sum to %s", d.TotalPercentage())
	}

	d.RemoveInstallment(1)
	if !d.TotalPercentage().Equal(decimal.NewFromInt(60)) {
		t.Errorf("sum after removal = %s, want 60 (no renormalization)", d.TotalPercentage())
	}
}

func TestApplyPreset(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		preset      string
		percentages []string
		dueInDays   []int
	}{
		{"50-50", "50-50", []string{"50", "50"}, []int{7, 30}},
		{"30-70", "30-70", []string{"30", "70"}, []int{7, 30}},
		{"3-equal", "3-equal", []string{"33.33", "33.33", "33.34"}, []int{7, 30, 60}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := paidDoc(t)
			if err := d.ApplyPreset(tt.preset, now); err != nil {
				t.Fatalf("ApplyPreset(%q) error: %v", tt.preset, err)
			}
			if !d.InstallmentsEnabled {
				t.Error("preset did not enable installments")
			}
			if len(d.Installments) != len(tt.percentages) {
				t.Fatalf("got %d installments, want %d", len(d.Installments), len(tt.percentages))
			}
			for i, inst := range d.Installments {
				if !inst.Percentage.Equal(decimal.RequireFromString(tt.percentages[i])) {
					t.Errorf("installment %d percentage = %s, want %s", i, inst.Percentage, tt.percentages[i])
				}
				wantDue := now.AddDate(0, 0, tt.dueInDays[i])
				if !inst.DueDate.Equal(wantDue) {
					t.Errorf("installment %d due = %s, want %s", i, inst.DueDate, wantDue)
				}
			}
		})
	}
}

func TestApplyPreset_ThreeEqualReconciles(t *testing.T) {
	d := paidDoc(t)
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	if err := d.ApplyPreset("3-equal", now); err != nil {
		t.Fatal(err)
	}

	if !d.TotalPercentage().Equal(decimal.NewFromInt(100)) {
		t.Errorf("3-equal percentages sum to %s, want exactly 100", d.TotalPercentage())
	}

	sum := decimal.Zero
	for _, inst := range d.Installments {
		sum = sum.Add(inst.Amount)
	}
	tolerance := decimal.NewFromFloat(0.01)
	if sum.Sub(d.Totals.GrandTotal).Abs().GreaterThan(tolerance) {
		t.Errorf("amounts sum to %s, want %s ± 0.01", sum, d.Totals.GrandTotal)
	}
}

func TestApplyPreset_Unknown(t *testing.T) {
	d := paidDoc(t)
	err := d.ApplyPreset("40-60", time.Now())
	if !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestApplyPreset_FiftyFiftyScenario(t *testing.T) {
	// 2 × 500 with 10% discount and 7% VAT is 963; a 50-50 split must yield
	// two installments of 481.50.
	d := paidDoc(t)
	if err := d.ApplyPreset("50-50", time.Now()); err != nil {
		t.Fatal(err)
	}
	want := decimal.RequireFromString("481.50")
	for i, inst := range d.Installments {
		if !inst.Amount.Equal(want) {
			t.Errorf("installment %d amount = %s, want 481.50", i, inst.Amount)
		}
	}
}
