package models

// Property is a landscaping site (garden, yard, corporate grounds) belonging
// to a customer. Documents and appointments may reference it.
type Property struct {
	Id         uint     `json:"id" gorm:"primaryKey"`
	CustomerID uint     `json:"-"`
	Customer   Customer `json:"customer" gorm:"foreignKey:CustomerID;references:Id"`
	Name       string   `json:"name" gorm:"not null"`
	Address    string   `json:"address" gorm:"not null"`
	City       string   `json:"city"`
	Province   string   `json:"province"`
	Zip        string   `json:"zip"`
	AreaSqm    float64  `json:"area_sqm"`
	Notes      string   `json:"notes"`
}
