package models

type Customer struct {
	Id           uint   `json:"id" gorm:"primaryKey"`
	FirstName    string `json:"first_name" gorm:"not null"`
	LastName     string `json:"last_name" gorm:"not null"`
	Email        string `json:"email" gorm:"unique;not null"`
	PhoneNumber  string `json:"phone_number" gorm:"not null"`
	MobileNumber string `json:"mobile_number"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Province     string `json:"province"`
	Zip          string `json:"zip"`
	TaxID        string `json:"tax_id"` // for full tax invoices
	Active       bool   `json:"-"`
}
