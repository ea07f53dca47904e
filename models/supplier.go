package models

// Supplier is a nursery or material vendor the shop sources plants from.
type Supplier struct {
	Id          uint   `json:"id" gorm:"primaryKey"`
	CompanyName string `json:"company_name" gorm:"not null;unique"`
	Address     string `json:"address" gorm:"not null"`
	City        string `json:"city" gorm:"not null"`
	Province    string `json:"province"`
	Zip         string `json:"zip" gorm:"not null"`
	Email       string `json:"email" gorm:"unique;not null"`
	PhoneNumber string `json:"phone_number" gorm:"not null"`
	TaxID       string `json:"tax_id"`
}
