package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"landscape-portal-backend/pricing"
)

// Document kinds.
const (
	KindQuotation = "quotation"
	KindInvoice   = "invoice"
	KindReceipt   = "receipt"
)

// Document statuses.
const (
	StatusDraft   = "draft"
	StatusPending = "pending"
	StatusPaid    = "paid"
	StatusOverdue = "overdue"
)

// FinancialDocument is the current/live state of a commercial document
// (quotation, invoice or receipt). The five monetary columns after Items are
// always derived by the pricing engine, never set directly; GrandTotalText is
// the Thai-words rendering snapshotted at finalization for printing.
type FinancialDocument struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Number     string    `json:"number" gorm:"uniqueIndex"` // assigned at finalization
	Kind       string    `json:"kind" gorm:"type:VARCHAR(20);not null"`
	Status     string    `json:"status" gorm:"type:VARCHAR(20);not null;index"`
	CustomerID uint      `json:"-"`
	Customer   Customer  `json:"customer" gorm:"foreignKey:CustomerID;references:Id"`
	PropertyID *uint     `json:"property_id"`
	Property   *Property `json:"property,omitempty" gorm:"foreignKey:PropertyID;references:Id"`

	// Live items (latest state)
	Items []DocumentItem `json:"items" gorm:"foreignKey:DocumentID;constraint:OnDelete:CASCADE"`

	DiscountValue decimal.Decimal `json:"discount_value" gorm:"type:numeric(12,2)"`
	DiscountMode  string          `json:"discount_mode" gorm:"type:VARCHAR(10)"` // percent | amount
	VatEnabled    bool            `json:"vat_enabled"`
	VatRate       decimal.Decimal `json:"vat_rate" gorm:"type:numeric(5,2)"`

	InstallmentsEnabled bool                  `json:"installments_enabled"`
	Installments        []DocumentInstallment `json:"installments" gorm:"foreignKey:DocumentID;constraint:OnDelete:CASCADE"`

	// Derived by pricing.ComputeTotals
	Subtotal       decimal.Decimal `json:"subtotal" gorm:"type:numeric(12,2)"`
	DiscountAmount decimal.Decimal `json:"discount_amount" gorm:"type:numeric(12,2)"`
	AfterDiscount  decimal.Decimal `json:"after_discount" gorm:"type:numeric(12,2)"`
	VatAmount      decimal.Decimal `json:"vat_amount" gorm:"type:numeric(12,2)"`
	GrandTotal     decimal.Decimal `json:"grand_total" gorm:"type:numeric(12,2)"`
	GrandTotalText string          `json:"grand_total_text"`

	Notes string `json:"notes"`

	// Payments rollup
	PaidTotal decimal.Decimal `json:"paid_total" gorm:"type:numeric(12,2)"`

	FinalizedAt *time.Time `json:"finalized_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Finalized documents are immutable; only payments and status sweeps touch
// them afterwards.
func (d *FinancialDocument) Finalized() bool {
	return d.FinalizedAt != nil
}

type DocumentItem struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	DocumentID uint            `json:"-" gorm:"index"`
	PlantID    *string         `json:"plant_id" gorm:"index"` // set when the row came from the shop catalog
	Plant      *Plant          `json:"-" gorm:"foreignKey:PlantID;references:Id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price" gorm:"type:numeric(12,2)"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:numeric(12,2)"` // quantity × unit price
}

type DocumentInstallment struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	DocumentID  uint            `json:"-" gorm:"index"`
	DueDate     time.Time       `json:"due_date"`
	Percentage  decimal.Decimal `json:"percentage" gorm:"type:numeric(7,4)"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:numeric(12,2)"` // percentage/100 × grand total
	Description string          `json:"description"`
	Paid        bool            `json:"paid"`
}

// DocumentVersion is an immutable JSONB snapshot taken at finalization and at
// quotation→invoice conversion.
type DocumentVersion struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	DocumentID uint           `json:"document_id" gorm:"index:idx_document_versions_document_id_version_no,unique,priority:1"`
	VersionNo  int            `json:"version_no" gorm:"not null;index:idx_document_versions_document_id_version_no,unique,priority:2"`
	Kind       string         `json:"kind" gorm:"type:VARCHAR(20)"`
	Snapshot   datatypes.JSON `json:"snapshot" gorm:"type:jsonb"`
	CreatedAt  time.Time      `json:"created_at"`
}

// Payment survives conversions; linked to the document.
type Payment struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	DocumentID uint            `json:"document_id" gorm:"index:idx_payments_document_paid_at,priority:1"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:numeric(12,2)"`
	Method     string          `json:"method"`
	Reference  string          `json:"reference"`
	Note       string          `json:"note"`
	PaidAt     time.Time       `json:"paid_at" gorm:"index:idx_payments_document_paid_at,priority:2"`
	CreatedAt  time.Time       `json:"created_at"`
}

// ToPricing maps the stored editing state into the pricing engine's document.
func (d *FinancialDocument) ToPricing() *pricing.Document {
	pd := &pricing.Document{
		Discount: pricing.DiscountSpec{
			Value: d.DiscountValue,
			Mode:  pricing.DiscountMode(d.DiscountMode),
		},
		Tax: pricing.TaxSpec{
			Enabled:     d.VatEnabled,
			RatePercent: d.VatRate,
		},
		InstallmentsEnabled: d.InstallmentsEnabled,
	}
	for _, it := range d.Items {
		pd.Items = append(pd.Items, pricing.LineItem{
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	for _, inst := range d.Installments {
		pd.Installments = append(pd.Installments, pricing.Installment{
			DueDate:     inst.DueDate,
			Percentage:  inst.Percentage,
			Amount:      inst.Amount,
			Description: inst.Description,
		})
	}
	pd.Recompute()
	return pd
}

// ApplyTotals copies the derived fields of a recomputed pricing document back
// onto the row, including the reconciled installment amounts.
func (d *FinancialDocument) ApplyTotals(pd *pricing.Document) {
	d.Subtotal = pd.Totals.Subtotal
	d.DiscountAmount = pd.Totals.DiscountAmount
	d.AfterDiscount = pd.Totals.AfterDiscount
	d.VatAmount = pd.Totals.VATAmount
	d.GrandTotal = pd.Totals.GrandTotal
	for i := range d.Items {
		if i < len(pd.Items) {
			d.Items[i].Amount = pd.Items[i].Amount()
		}
	}
	for i := range d.Installments {
		if i < len(pd.Installments) {
			d.Installments[i].Amount = pd.Installments[i].Amount
		}
	}
}
