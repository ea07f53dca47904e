package controllers

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"landscape-portal-backend/database"
	"landscape-portal-backend/middlewares"
	"landscape-portal-backend/models"
	"landscape-portal-backend/pricing"
	"landscape-portal-backend/utils"
)

// The document forms submit numeric fields as text; everything is coerced at
// this boundary (bad input becomes 0, never an error).

type DocumentItemInput struct {
	PlantID   string `json:"plant_id"`
	Name      string `json:"name"`
	Quantity  string `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

type InstallmentInput struct {
	DueDate     string `json:"due_date"`
	Percentage  string `json:"percentage"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
}

type DocumentInput struct {
	Kind                string              `json:"kind" validate:"omitempty,oneof=quotation invoice receipt"`
	CustomerID          uint                `json:"customer_id" validate:"required"`
	PropertyID          *uint               `json:"property_id"`
	Items               []DocumentItemInput `json:"items"`
	DiscountValue       string              `json:"discount_value"`
	DiscountMode        string              `json:"discount_mode" validate:"omitempty,oneof=percent amount"`
	VatEnabled          bool                `json:"vat_enabled"`
	VatRate             string              `json:"vat_rate"`
	InstallmentsEnabled bool                `json:"installments_enabled"`
	Installments        []InstallmentInput  `json:"installments"`
	Preset              string              `json:"preset"` // optional quick split: 50-50 | 30-70 | 3-equal
	Notes               string              `json:"notes"`
}

func parseDueDate(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// buildPricingDoc coerces the raw form fields into the pricing engine's
// document and runs the recompute pipeline. Percentages are the source of
// truth for installments; amounts are re-derived from the grand total.
func buildPricingDoc(input *DocumentInput, now time.Time) (*pricing.Document, error) {
	d := pricing.NewDocument()
	d.Items = nil
	for _, it := range input.Items {
		d.Items = append(d.Items, pricing.LineItem{
			Name:      it.Name,
			Quantity:  utils.ParseInt(it.Quantity),
			UnitPrice: utils.ParseDecimal(it.UnitPrice),
		})
	}

	mode := pricing.DiscountMode(input.DiscountMode)
	if mode != pricing.DiscountModeAmount {
		mode = pricing.DiscountModePercent
	}
	d.Discount = pricing.DiscountSpec{Value: utils.ParseDecimal(input.DiscountValue), Mode: mode}

	// An explicit "0" keeps the zero rate; only an absent field gets the
	// default.
	rate := pricing.DefaultVATRate
	if strings.TrimSpace(input.VatRate) != "" {
		rate = utils.ParseDecimal(input.VatRate)
	}
	d.Tax = pricing.TaxSpec{Enabled: input.VatEnabled, RatePercent: rate}

	d.InstallmentsEnabled = input.InstallmentsEnabled
	for _, inst := range input.Installments {
		d.Installments = append(d.Installments, pricing.Installment{
			DueDate:     parseDueDate(inst.DueDate),
			Percentage:  utils.ParseDecimal(inst.Percentage),
			Description: inst.Description,
		})
	}

	d.Recompute()

	if input.Preset != "" {
		if err := d.ApplyPreset(input.Preset, now); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// toModel maps the recomputed pricing document plus the form fields onto a row.
func toModel(input *DocumentInput, pd *pricing.Document, doc *models.FinancialDocument) {
	doc.Kind = input.Kind
	if doc.Kind == "" {
		doc.Kind = models.KindQuotation
	}
	doc.CustomerID = input.CustomerID
	doc.PropertyID = input.PropertyID
	doc.DiscountValue = pd.Discount.Value
	doc.DiscountMode = string(pd.Discount.Mode)
	doc.VatEnabled = pd.Tax.Enabled
	doc.VatRate = pd.Tax.RatePercent
	doc.InstallmentsEnabled = pd.InstallmentsEnabled
	doc.Notes = input.Notes

	doc.Items = nil
	for i, it := range pd.Items {
		item := models.DocumentItem{
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Amount:    it.Amount(),
		}
		if i < len(input.Items) && input.Items[i].PlantID != "" {
			id := input.Items[i].PlantID
			item.PlantID = &id
		}
		doc.Items = append(doc.Items, item)
	}

	doc.Installments = nil
	for _, inst := range pd.Installments {
		doc.Installments = append(doc.Installments, models.DocumentInstallment{
			DueDate:     inst.DueDate,
			Percentage:  inst.Percentage,
			Amount:      inst.Amount,
			Description: inst.Description,
		})
	}

	doc.Subtotal = pd.Totals.Subtotal
	doc.DiscountAmount = pd.Totals.DiscountAmount
	doc.AfterDiscount = pd.Totals.AfterDiscount
	doc.VatAmount = pd.Totals.VATAmount
	doc.GrandTotal = pd.Totals.GrandTotal
}

// PreviewDocument recomputes the derived fields for the form without
// persisting anything: totals, reconciled installments, and the Thai-words
// rendering of the grand total.
func PreviewDocument(c *fiber.Ctx) error {
	var input DocumentInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	pd, err := buildPricingDoc(&input, time.Now())
	if err != nil {
		return err
	}

	// The form renders the company header alongside the computed totals.
	var business *models.BusinessProfile
	if db, dbErr := database.GetRequestDB(c); dbErr == nil {
		business = businessHeader(db)
	}

	return c.JSON(fiber.Map{
		"totals":           pd.Totals,
		"installments":     pd.Installments,
		"total_percentage": pd.TotalPercentage(),
		"grand_total_text": pricing.BahtText(pd.Totals.GrandTotal),
		"business":         business,
	})
}

// CreateDocument stores a new draft. Drafts stay editable until finalization.
func CreateDocument(c *fiber.Ctx) error {
	var input DocumentInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}

	pd, err := buildPricingDoc(&input, time.Now())
	if err != nil {
		return err
	}

	var doc models.FinancialDocument
	toModel(&input, pd, &doc)
	doc.Status = models.StatusDraft

	db, err := database.GetRequestDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "database unavailable")
	}
	if err := db.Create(&doc).Error; err != nil {
		return fmt.Errorf("could not create document: %w", err)
	}

	return c.Status(fiber.StatusCreated).JSON(doc)
}

// UpdateDocument replaces a draft's editable state and recomputes the derived
// fields. Finalized documents are immutable.
func UpdateDocument(c *fiber.Ctx) error {
	id := c.Params("id")

	db, err := database.GetRequestDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "database unavailable")
	}

	var doc models.FinancialDocument
	if err := db.Preload("Items").Preload("Installments").First(&doc, "id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "document not found")
	}
	if doc.Finalized() {
		return fiber.NewError(fiber.StatusConflict, "finalized documents cannot be edited")
	}

	var input DocumentInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}

	pd, err := buildPricingDoc(&input, time.Now())
	if err != nil {
		return err
	}

	// Replace children wholesale; the form always submits the full lists.
	if err := db.Where("document_id = ?", doc.ID).Delete(&models.DocumentItem{}).Error; err != nil {
		return fmt.Errorf("could not clear items: %w", err)
	}
	if err := db.Where("document_id = ?", doc.ID).Delete(&models.DocumentInstallment{}).Error; err != nil {
		return fmt.Errorf("could not clear installments: %w", err)
	}

	toModel(&input, pd, &doc)
	if err := db.Session(&gorm.Session{FullSaveAssociations: true}).Save(&doc).Error; err != nil {
		return fmt.Errorf("could not update document: %w", err)
	}

	return c.JSON(doc)
}

func documentNumber(kind string, id uint, now time.Time) string {
	prefix := map[string]string{
		models.KindQuotation: "QT",
		models.KindInvoice:   "INV",
		models.KindReceipt:   "RC",
	}[kind]
	return fmt.Sprintf("%s-%s-%04d", prefix, now.Format("2006"), id)
}

func snapshotVersion(db *gorm.DB, doc *models.FinancialDocument) error {
	var versionNo int64
	if err := db.Model(&models.DocumentVersion{}).Where("document_id = ?", doc.ID).Count(&versionNo).Error; err != nil {
		return err
	}
	blob, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return db.Create(&models.DocumentVersion{
		DocumentID: doc.ID,
		VersionNo:  int(versionNo) + 1,
		Kind:       doc.Kind,
		Snapshot:   datatypes.JSON(blob),
	}).Error
}

// FinalizeDocument runs the validation gate and freezes the draft: derived
// totals are snapshotted, the Thai-words text is rendered, a document number
// and status are assigned, and a JSONB version is recorded.
func FinalizeDocument(c *fiber.Ctx) error {
	id := c.Params("id")

	db, err := database.GetRequestDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "database unavailable")
	}

	var doc models.FinancialDocument
	if err := db.Preload("Items").Preload("Installments").First(&doc, "id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "document not found")
	}
	if doc.Finalized() {
		return fiber.NewError(fiber.StatusConflict, "document already finalized")
	}

	pd := doc.ToPricing()
	if err := pd.Validate(); err != nil {
		// Reconciliation shortfall and item errors surface as 422 with the
		// user-facing detail (e.g. the actual percentage sum).
		return err
	}

	doc.ApplyTotals(pd)
	doc.GrandTotalText = pricing.BahtText(pd.Totals.GrandTotal)

	now := time.Now()
	doc.Number = documentNumber(doc.Kind, doc.ID, now)
	doc.FinalizedAt = &now
	if doc.Kind == models.KindReceipt {
		doc.Status = models.StatusPaid
	} else {
		doc.Status = models.StatusPending
	}

	if err := db.Session(&gorm.Session{FullSaveAssociations: true}).Save(&doc).Error; err != nil {
		return fmt.Errorf("could not finalize document: %w", err)
	}
	if err := snapshotVersion(db, &doc); err != nil {
		return fmt.Errorf("could not snapshot document: %w", err)
	}

	return c.JSON(doc)
}

// ConvertDocument turns a finalized quotation into a pending invoice,
// preserving the quotation as an immutable version.
func ConvertDocument(c *fiber.Ctx) error {
	id := c.Params("id")

	db, err := database.GetRequestDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "database unavailable")
	}

	var doc models.FinancialDocument
	if err := db.Preload("Items").Preload("Installments").First(&doc, "id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "document not found")
	}
	if doc.Kind != models.KindQuotation {
		return fiber.NewError(fiber.StatusConflict, "only quotations can be converted")
	}
	if !doc.Finalized() {
		return fiber.NewError(fiber.StatusConflict, "finalize the quotation before converting")
	}

	now := time.Now()
	doc.Kind = models.KindInvoice
	doc.Number = documentNumber(models.KindInvoice, doc.ID, now)
	doc.Status = models.StatusPending
	doc.FinalizedAt = &now

	if err := db.Save(&doc).Error; err != nil {
		return fmt.Errorf("could not convert document: %w", err)
	}
	if err := snapshotVersion(db, &doc); err != nil {
		return fmt.Errorf("could not snapshot document: %w", err)
	}

	return c.JSON(doc)
}

func GetDocuments(c *fiber.Ctx) error {
	db, err := database.GetRequestDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "database unavailable")
	}

	q := db.Model(&models.FinancialDocument{}).
		Preload("Customer").Preload("Items").Preload("Installments")
	if kind := c.Query("kind"); kind != "" {
		q = q.Where("kind = ?", kind)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var docs []models.FinancialDocument
	if err := q.Order("created_at DESC").Find(&docs).Error; err != nil {
		return fmt.Errorf("could not list documents: %w", err)
	}
	return c.JSON(fiber.Map{"documents": docs, "message": "success"})
}

func GetDocument(c *fiber.Ctx) error {
	db, err := database.GetRequestDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "database unavailable")
	}

	var doc models.FinancialDocument
	if err := db.Preload("Customer").Preload("Property").
		Preload("Items").Preload("Installments").
		First(&doc, "id = ?", c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "document not found")
	}

	// Drafts are still live: re-derive on read so the preview never shows
	// stale totals.
	if !doc.Finalized() {
		pd := doc.ToPricing()
		doc.ApplyTotals(pd)
		doc.GrandTotalText = pricing.BahtText(pd.Totals.GrandTotal)
	}

	return c.JSON(fiber.Map{"document": doc, "business": businessHeader(db)})
}

func GetDocumentVersions(c *fiber.Ctx) error {
	db, err := database.GetRequestDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "database unavailable")
	}

	var versions []models.DocumentVersion
	if err := db.Where("document_id = ?", c.Params("id")).
		Order("version_no ASC").Find(&versions).Error; err != nil {
		return fmt.Errorf("could not list versions: %w", err)
	}
	return c.JSON(fiber.Map{"versions": versions, "message": "success"})
}

type PaymentInput struct {
	Amount    string `json:"amount"`
	Method    string `json:"method"`
	Reference string `json:"reference"`
	Note      string `json:"note"`
	PaidAt    string `json:"paid_at"`
}

// CreatePayment records a payment against a finalized document and rolls up
// the paid total; a fully covered document flips to paid.
func CreatePayment(c *fiber.Ctx) error {
	var input PaymentInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	amount := utils.ParseDecimal(input.Amount)
	if amount.LessThanOrEqual(decimal.Zero) {
		return fiber.NewError(fiber.StatusBadRequest, "payment amount must be positive")
	}

	db, err := database.GetRequestDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "database unavailable")
	}

	var doc models.FinancialDocument
	if err := db.First(&doc, "id = ?", c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "document not found")
	}
	if !doc.Finalized() {
		return fiber.NewError(fiber.StatusConflict, "cannot pay a draft document")
	}

	paidAt := parseDueDate(input.PaidAt)
	if paidAt.IsZero() {
		paidAt = time.Now()
	}

	payment := models.Payment{
		DocumentID: doc.ID,
		Amount:     amount,
		Method:     input.Method,
		Reference:  input.Reference,
		Note:       input.Note,
		PaidAt:     paidAt,
	}
	if err := db.Create(&payment).Error; err != nil {
		return fmt.Errorf("could not record payment: %w", err)
	}

	doc.PaidTotal = doc.PaidTotal.Add(amount)
	if doc.PaidTotal.GreaterThanOrEqual(doc.GrandTotal) {
		doc.Status = models.StatusPaid
	}
	if err := db.Save(&doc).Error; err != nil {
		return fmt.Errorf("could not update paid total: %w", err)
	}

	return c.Status(fiber.StatusCreated).JSON(payment)
}

func ListPayments(c *fiber.Ctx) error {
	db, err := database.GetRequestDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "database unavailable")
	}

	var payments []models.Payment
	if err := db.Where("document_id = ?", c.Params("id")).
		Order("paid_at ASC").Find(&payments).Error; err != nil {
		return fmt.Errorf("could not list payments: %w", err)
	}
	return c.JSON(fiber.Map{"payments": payments, "message": "success"})
}
