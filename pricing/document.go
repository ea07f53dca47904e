// Package pricing implements the financial document engine behind quotations,
// invoices and receipts: line-item totals, discount and VAT derivation,
// percentage-weighted installment schedules, and the Thai baht-text rendering
// used on printed documents.
//
// Everything here is pure and synchronous. Callers mutate a Document and then
// call Recompute, which re-derives the dependent fields in a fixed order:
// items → subtotal → discount → VAT → grand total → installment amounts.
package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiscountMode selects how DiscountSpec.Value is interpreted.
type DiscountMode string

const (
	DiscountModePercent DiscountMode = "percent"
	DiscountModeAmount  DiscountMode = "amount"
)

// DefaultVATRate is the Thai standard VAT rate in percent.
var DefaultVATRate = decimal.NewFromInt(7)

// LineItem is one billable row of a document.
type LineItem struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Amount is quantity × unit price.
func (it LineItem) Amount() decimal.Decimal {
	return it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// DiscountSpec is a percentage or absolute deduction applied to the subtotal.
// An absolute discount may exceed the subtotal; the resulting negative
// after-discount amount propagates through VAT and the grand total unclamped.
type DiscountSpec struct {
	Value decimal.Decimal `json:"value"`
	Mode  DiscountMode    `json:"mode"`
}

// TaxSpec applies VAT to the post-discount amount, never to the raw subtotal.
type TaxSpec struct {
	Enabled     bool            `json:"enabled"`
	RatePercent decimal.Decimal `json:"rate_percent"`
}

// Installment is one dated slice of the grand total. Percentage is the durable,
// user-intended quantity; Amount is always a view of percentage × grand total
// and is re-derived whenever the total changes.
type Installment struct {
	DueDate     time.Time       `json:"due_date"`
	Percentage  decimal.Decimal `json:"percentage"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// Totals holds the five derived monetary fields of a document.
type Totals struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	AfterDiscount  decimal.Decimal `json:"after_discount"`
	VATAmount      decimal.Decimal `json:"vat_amount"`
	GrandTotal     decimal.Decimal `json:"grand_total"`
}

// Document is the mutable editing state of a financial document. The Totals
// field is derived, never set directly; call Recompute after any change to
// Items, Discount or Tax.
type Document struct {
	Items               []LineItem
	Discount            DiscountSpec
	Tax                 TaxSpec
	InstallmentsEnabled bool
	Installments        []Installment
	Totals              Totals
}

// NewDocument returns the empty editing state a form opens with: one blank
// line item, a zero percent discount, and VAT off at the default rate.
func NewDocument() *Document {
	d := &Document{
		Items:    []LineItem{{Quantity: 1}},
		Discount: DiscountSpec{Mode: DiscountModePercent},
		Tax:      TaxSpec{Enabled: false, RatePercent: DefaultVATRate},
	}
	d.Recompute()
	return d
}

// Recompute re-derives Totals from the current items, discount and tax, then
// reconciles installment amounts against the new grand total. Idempotent:
// calling it twice with unchanged inputs yields identical state.
func (d *Document) Recompute() {
	d.Totals = ComputeTotals(d.Items, d.Discount, d.Tax)
	d.ReconcileToTotal()
}
