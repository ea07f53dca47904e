package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BusinessProfile holds the landscaping company's own details, printed on the
// header of every quotation, invoice and receipt. In practice a single row.
type BusinessProfile struct {
	Id          string `json:"id" gorm:"primaryKey"`
	CompanyName string `json:"company_name" gorm:"not null;unique"`
	Address     string `json:"address" gorm:"not null"`
	City        string `json:"city" gorm:"not null"`
	Province    string `json:"province"`
	Zip         string `json:"zip" gorm:"not null"`
	Homepage    string `json:"homepage" gorm:"null"`
	TaxID       string `json:"tax_id" gorm:"null"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
}

func (business *BusinessProfile) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4
	business.Id = uuid.NewString()
	return
}
