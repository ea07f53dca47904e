package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Plant is a shop catalog entry (trees, shrubs, turf, soil, garden material).
type Plant struct {
	Id             string          `json:"id" gorm:"primaryKey"`
	Name           string          `json:"name" gorm:"not null"`
	ScientificName string          `json:"scientific_name"`
	Description    string          `json:"description"`
	UnitPrice      decimal.Decimal `json:"unit_price" gorm:"type:numeric(12,2)"`
	Stock          int             `json:"stock"`
	SupplierID     *uint           `json:"-"`
	Supplier       *Supplier       `json:"supplier,omitempty" gorm:"foreignKey:SupplierID;references:Id"`
	Active         bool            `json:"-"`
}

func (plant *Plant) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4
	plant.Id = uuid.NewString()
	return
}
