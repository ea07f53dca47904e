package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

// PercentageTolerance is how far the installment percentages may drift from
// 100 and still pass validation.
var PercentageTolerance = decimal.NewFromFloat(0.01)

var fullPercentage = decimal.NewFromInt(100)

// presetSlice is one installment of a named quick-split preset.
type presetSlice struct {
	percentage decimal.Decimal
	dueInDays  int
}

// Named quick-split presets. The 3-equal split pushes the remainder onto the
// last slice so the percentages sum to exactly 100.
var presets = map[string][]presetSlice{
	"50-50": {
		{percentage: decimal.NewFromInt(50), dueInDays: 7},
		{percentage: decimal.NewFromInt(50), dueInDays: 30},
	},
	"30-70": {
		{percentage: decimal.NewFromInt(30), dueInDays: 7},
		{percentage: decimal.NewFromInt(70), dueInDays: 30},
	},
	"3-equal": {
		{percentage: decimal.NewFromFloat(33.33), dueInDays: 7},
		{percentage: decimal.NewFromFloat(33.33), dueInDays: 30},
		{percentage: decimal.NewFromFloat(33.34), dueInDays: 60},
	},
}

// PresetNames lists the available quick-split presets.
func PresetNames() []string {
	return []string{"50-50", "30-70", "3-equal"}
}

// SetPercentage sets installment i's percentage and re-derives its amount from
// the current grand total. Other installments are untouched; percentages never
// auto-rebalance.
func (d *Document) SetPercentage(i int, pct decimal.Decimal) {
	if i < 0 || i >= len(d.Installments) {
		return
	}
	inst := &d.Installments[i]
	inst.Percentage = pct
	inst.Amount = d.Totals.GrandTotal.Mul(pct).Div(hundred).Round(currencyScale)
}

// SetAmount sets installment i's amount and re-derives its percentage from the
// current grand total. A zero grand total yields a zero percentage rather than
// a division by zero.
func (d *Document) SetAmount(i int, amt decimal.Decimal) {
	if i < 0 || i >= len(d.Installments) {
		return
	}
	inst := &d.Installments[i]
	inst.Amount = amt
	if d.Totals.GrandTotal.IsZero() {
		inst.Percentage = decimal.Zero
		return
	}
	inst.Percentage = amt.Div(d.Totals.GrandTotal).Mul(hundred)
}

// AddInstallment appends a blank installment (0%, empty description).
func (d *Document) AddInstallment() {
	d.Installments = append(d.Installments, Installment{
		Percentage: decimal.Zero,
		Amount:     decimal.Zero,
	})
}

// RemoveInstallment deletes the installment at i. Remaining percentages are
// not renormalized.
func (d *Document) RemoveInstallment(i int) {
	if i < 0 || i >= len(d.Installments) {
		return
	}
	d.Installments = append(d.Installments[:i], d.Installments[i+1:]...)
}

// ReconcileToTotal re-derives every installment amount from its stored
// percentage and the current grand total. Percentages are left untouched, so a
// split survives the user editing line items afterwards.
func (d *Document) ReconcileToTotal() {
	for i := range d.Installments {
		inst := &d.Installments[i]
		inst.Amount = d.Totals.GrandTotal.Mul(inst.Percentage).Div(hundred).Round(currencyScale)
	}
}

// TotalPercentage sums the percentages of all installments.
func (d *Document) TotalPercentage() decimal.Decimal {
	sum := decimal.Zero
	for _, inst := range d.Installments {
		sum = sum.Add(inst.Percentage)
	}
	return sum
}

// ApplyPreset replaces the installment list with the named preset, dates each
// slice relative to now, and enables installments. The caller injects now so
// due dates stay deterministic under test.
func (d *Document) ApplyPreset(name string, now time.Time) error {
	slices, ok := presets[name]
	if !ok {
		return &ValidationError{Err: ErrUnknownPreset, Details: name}
	}
	d.Installments = make([]Installment, 0, len(slices))
	for _, s := range slices {
		d.Installments = append(d.Installments, Installment{
			DueDate:    now.AddDate(0, 0, s.dueInDays),
			Percentage: s.percentage,
			Amount:     d.Totals.GrandTotal.Mul(s.percentage).Div(hundred).Round(currencyScale),
		})
	}
	d.InstallmentsEnabled = true
	return nil
}
