package database

import (
	"fmt"

	"landscape-portal-backend/models"

	"gorm.io/gorm"
)

// Migrate applies (idempotent) schema migrations:
// - AutoMigrate (tables/columns)
// - Money column types (NUMERIC(12,2))
// - Indexes (versions, payments, document_items)
// - Basic CHECK constraints
// - Idempotency keys table + unique index
func Migrate() error {
	return DB.Transaction(func(tx *gorm.DB) error {
		// --- AutoMigrate tables/columns/index tags (non-destructive) ---
		if err := tx.AutoMigrate(
			&models.User{},
			&models.BusinessProfile{},
			&models.Customer{},
			&models.Supplier{},
			&models.Plant{},
			&models.Property{},
			&models.Appointment{},
			&models.FinancialDocument{},
			&models.DocumentItem{},
			&models.DocumentInstallment{},
			&models.DocumentVersion{},
			&models.Payment{},
			&models.IdempotencyKey{},
		); err != nil {
			return fmt.Errorf("automigrate failed: %w", err)
		}

		// --- Enforce money columns as NUMERIC(12,2) (idempotent ALTERs) ---
		alters := []string{
			`ALTER TABLE plants                ALTER COLUMN unit_price      TYPE numeric(12,2)`,
			`ALTER TABLE financial_documents   ALTER COLUMN subtotal        TYPE numeric(12,2)`,
			`ALTER TABLE financial_documents   ALTER COLUMN discount_amount TYPE numeric(12,2)`,
			`ALTER TABLE financial_documents   ALTER COLUMN after_discount  TYPE numeric(12,2)`,
			`ALTER TABLE financial_documents   ALTER COLUMN vat_amount      TYPE numeric(12,2)`,
			`ALTER TABLE financial_documents   ALTER COLUMN grand_total     TYPE numeric(12,2)`,
			`ALTER TABLE financial_documents   ALTER COLUMN paid_total      TYPE numeric(12,2)`,
			`ALTER TABLE document_items        ALTER COLUMN unit_price      TYPE numeric(12,2)`,
			`ALTER TABLE document_items        ALTER COLUMN amount          TYPE numeric(12,2)`,
			`ALTER TABLE document_installments ALTER COLUMN amount          TYPE numeric(12,2)`,
			`ALTER TABLE payments              ALTER COLUMN amount          TYPE numeric(12,2)`,
		}
		for _, stmt := range alters {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("money type migration failed on: %s - %w", stmt, err)
			}
		}

		// --- Composite / helpful indexes (idempotent) ---
		indexes := []string{
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_document_versions_document_id_version_no ON document_versions (document_id, version_no)`,
			`CREATE INDEX IF NOT EXISTS idx_payments_document_paid_at ON payments (document_id, paid_at)`,
			`CREATE INDEX IF NOT EXISTS idx_document_items_document ON document_items (document_id)`,
			`CREATE INDEX IF NOT EXISTS idx_document_installments_document ON document_installments (document_id)`,
			`CREATE INDEX IF NOT EXISTS idx_appointments_scheduled_at ON appointments (scheduled_at)`,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_idempotency_keys_key ON idempotency_keys (key)`,
		}
		for _, stmt := range indexes {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("index migration failed on: %s - %w", stmt, err)
			}
		}

		// --- Basic CHECK constraints (idempotent) ---
		checks := []string{
			// Non-negative catalog price
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'plants'::regclass
					  AND conname  = 'chk_plants_unit_price_nonneg'
				) THEN
					ALTER TABLE plants
					ADD CONSTRAINT chk_plants_unit_price_nonneg
					CHECK (unit_price >= 0);
				END IF;
			END $$;`,
			// Payments.amount >= 0
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'payments'::regclass
					  AND conname  = 'chk_payments_amount_nonneg'
				) THEN
					ALTER TABLE payments
					ADD CONSTRAINT chk_payments_amount_nonneg
					CHECK (amount >= 0);
				END IF;
			END $$;`,
			// Document items: quantity > 0
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'document_items'::regclass
					  AND conname  = 'chk_document_items_quantity_pos'
				) THEN
					ALTER TABLE document_items
					ADD CONSTRAINT chk_document_items_quantity_pos
					CHECK (quantity > 0);
				END IF;
			END $$;`,
			// Installment percentage within [0,100]
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'document_installments'::regclass
					  AND conname  = 'chk_document_installments_percentage'
				) THEN
					ALTER TABLE document_installments
					ADD CONSTRAINT chk_document_installments_percentage
					CHECK (percentage >= 0 AND percentage <= 100);
				END IF;
			END $$;`,
		}
		for _, stmt := range checks {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("check constraint migration failed: %w", err)
			}
		}

		return nil
	})
}
