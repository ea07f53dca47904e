package services

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"landscape-portal-backend/database"
	"landscape-portal-backend/models"
)

// StartScheduler runs the nightly document sweep. The returned cron can be
// stopped on shutdown.
func StartScheduler() *cron.Cron {
	c := cron.New()
	// 01:00 every day
	if _, err := c.AddFunc("0 1 * * *", SweepOverdueDocuments); err != nil {
		log.Error().Err(err).Msg("could not schedule overdue sweep")
		return c
	}
	c.Start()
	log.Info().Msg("document scheduler started")
	return c
}

// SweepOverdueDocuments flags pending invoices as overdue once an unpaid
// installment's due date has lapsed. Documents without installments fall back
// to their finalization date plus the default credit term of 30 days.
func SweepOverdueDocuments() {
	now := time.Now()

	var docs []models.FinancialDocument
	err := database.DB.Preload("Installments").
		Where("kind = ? AND status = ?", models.KindInvoice, models.StatusPending).
		Find(&docs).Error
	if err != nil {
		log.Error().Err(err).Msg("overdue sweep query failed")
		return
	}

	flagged := 0
	for i := range docs {
		doc := &docs[i]
		if !isOverdue(doc, now) {
			continue
		}
		if err := database.DB.Model(doc).Update("status", models.StatusOverdue).Error; err != nil {
			log.Error().Err(err).Uint("document_id", doc.ID).Msg("could not flag overdue document")
			continue
		}
		flagged++
	}

	log.Info().Int("checked", len(docs)).Int("flagged", flagged).Msg("overdue sweep finished")
}

func isOverdue(doc *models.FinancialDocument, now time.Time) bool {
	if doc.InstallmentsEnabled && len(doc.Installments) > 0 {
		for _, inst := range doc.Installments {
			if !inst.Paid && !inst.DueDate.IsZero() && inst.DueDate.Before(now) {
				return true
			}
		}
		return false
	}
	if doc.FinalizedAt == nil {
		return false
	}
	return doc.FinalizedAt.AddDate(0, 0, 30).Before(now)
}
