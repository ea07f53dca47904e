package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func item(name string, qty int, price string) LineItem {
	return LineItem{Name: name, Quantity: qty, UnitPrice: decimal.RequireFromString(price)}
}

func TestSubtotal(t *testing.T) {
	tests := []struct {
		name  string
		items []LineItem
		want  string
	}{
		{"empty list", nil, "0"},
		{"single item", []LineItem{item("ต้นไทรเกาหลี", 2, "500")}, "1000"},
		{"multiple items", []LineItem{
			item("หญ้านวลน้อย", 10, "35.50"),
			item("ดินถุง", 4, "60"),
		}, "595"},
		{"zero price item", []LineItem{item("ของแถม", 3, "0")}, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Subtotal(tt.items)
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("Subtotal() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDiscountAmount(t *testing.T) {
	subtotal := decimal.RequireFromString("1000")
	tests := []struct {
		name string
		spec DiscountSpec
		want string
	}{
		{"percent", DiscountSpec{Value: decimal.NewFromInt(10), Mode: DiscountModePercent}, "100"},
		{"zero percent", DiscountSpec{Value: decimal.Zero, Mode: DiscountModePercent}, "0"},
		{"over 100 percent", DiscountSpec{Value: decimal.NewFromInt(150), Mode: DiscountModePercent}, "1500"},
		{"absolute", DiscountSpec{Value: decimal.NewFromInt(250), Mode: DiscountModeAmount}, "250"},
		{"absolute exceeding subtotal is not clamped", DiscountSpec{Value: decimal.NewFromInt(1200), Mode: DiscountModeAmount}, "1200"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiscountAmount(subtotal, tt.spec)
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("DiscountAmount() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestComputeTotals_VATOnAfterDiscount(t *testing.T) {
	items := []LineItem{item("จัดสวนหน้าบ้าน", 2, "500")}
	tax := TaxSpec{Enabled: true, RatePercent: DefaultVATRate}

	noDiscount := ComputeTotals(items, DiscountSpec{Mode: DiscountModePercent}, tax)
	if !noDiscount.VATAmount.Equal(decimal.NewFromInt(70)) {
		t.Fatalf("VAT without discount = %s, want 70", noDiscount.VATAmount)
	}

	// Changing the discount after enabling VAT must change the VAT amount:
	// VAT is computed on the post-discount amount, never on the subtotal.
	discounted := ComputeTotals(items, DiscountSpec{Value: decimal.NewFromInt(10), Mode: DiscountModePercent}, tax)
	if !discounted.VATAmount.Equal(decimal.NewFromInt(63)) {
		t.Fatalf("VAT with 10%% discount = %s, want 63", discounted.VATAmount)
	}
	if !discounted.GrandTotal.Equal(decimal.NewFromInt(963)) {
		t.Fatalf("grand total = %s, want 963", discounted.GrandTotal)
	}
}

func TestComputeTotals_NegativeTotalPropagates(t *testing.T) {
	// An absolute discount above the subtotal must flow through unclamped.
	items := []LineItem{item("ปลูกหญ้า", 1, "1000")}
	discount := DiscountSpec{Value: decimal.NewFromInt(1200), Mode: DiscountModeAmount}
	tax := TaxSpec{Enabled: true, RatePercent: DefaultVATRate}

	got := ComputeTotals(items, discount, tax)
	if !got.AfterDiscount.Equal(decimal.NewFromInt(-200)) {
		t.Errorf("after discount = %s, want -200", got.AfterDiscount)
	}
	if !got.VATAmount.Equal(decimal.NewFromInt(-14)) {
		t.Errorf("VAT = %s, want -14", got.VATAmount)
	}
	if !got.GrandTotal.Equal(decimal.NewFromInt(-214)) {
		t.Errorf("grand total = %s, want -214", got.GrandTotal)
	}
}

func TestRecompute_Idempotent(t *testing.T) {
	d := NewDocument()
	d.Items = []LineItem{item("ออกแบบสวน", 1, "5000"), item("ต้นจามจุรี", 3, "1500")}
	d.Discount = DiscountSpec{Value: decimal.NewFromInt(5), Mode: DiscountModePercent}
	d.Tax = TaxSpec{Enabled: true, RatePercent: DefaultVATRate}
	d.InstallmentsEnabled = true
	d.AddInstallment()
	d.SetPercentage(0, decimal.NewFromInt(100))

	d.Recompute()
	first := d.Totals
	firstAmount := d.Installments[0].Amount

	d.Recompute()
	if !d.Totals.GrandTotal.Equal(first.GrandTotal) || !d.Totals.Subtotal.Equal(first.Subtotal) {
		t.Errorf("second recompute changed totals: %+v vs %+v", d.Totals, first)
	}
	if !d.Installments[0].Amount.Equal(firstAmount) {
		t.Errorf("second recompute changed installment amount: %s vs %s", d.Installments[0].Amount, firstAmount)
	}
}

func TestNewDocument_StartsBlank(t *testing.T) {
	d := NewDocument()
	if len(d.Items) != 1 {
		t.Fatalf("expected one blank line item, got %d", len(d.Items))
	}
	if !d.Totals.GrandTotal.IsZero() {
		t.Errorf("blank document grand total = %s, want 0", d.Totals.GrandTotal)
	}
	if !d.Tax.RatePercent.Equal(DefaultVATRate) || d.Tax.Enabled {
		t.Errorf("expected VAT off at default rate, got %+v", d.Tax)
	}
}
