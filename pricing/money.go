package pricing

import "github.com/shopspring/decimal"

// currencyScale is the number of decimal places kept on monetary amounts.
const currencyScale = 2

var hundred = decimal.NewFromInt(100)

// Subtotal sums quantity × unit price over all items. Empty list yields zero.
func Subtotal(items []LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Amount())
	}
	return sum
}

// DiscountAmount derives the deduction for the given subtotal. Percent mode is
// applied against the subtotal; amount mode is taken verbatim and is NOT
// clamped to the subtotal, so the caller may end up with a negative
// after-discount amount.
func DiscountAmount(subtotal decimal.Decimal, spec DiscountSpec) decimal.Decimal {
	if spec.Mode == DiscountModeAmount {
		return spec.Value.Round(currencyScale)
	}
	return subtotal.Mul(spec.Value).Div(hundred).Round(currencyScale)
}

// ComputeTotals runs the full derivation pipeline:
//
//	subtotal → discount → afterDiscount → VAT → grandTotal
//
// VAT is computed on the post-discount amount, never on the subtotal.
func ComputeTotals(items []LineItem, discount DiscountSpec, tax TaxSpec) Totals {
	subtotal := Subtotal(items).Round(currencyScale)
	discountAmt := DiscountAmount(subtotal, discount)
	afterDiscount := subtotal.Sub(discountAmt)

	vat := decimal.Zero
	if tax.Enabled {
		vat = afterDiscount.Mul(tax.RatePercent).Div(hundred).Round(currencyScale)
	}

	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discountAmt,
		AfterDiscount:  afterDiscount,
		VATAmount:      vat,
		GrandTotal:     afterDiscount.Add(vat),
	}
}
