package models

import "time"

// Appointment statuses.
const (
	AppointmentScheduled = "scheduled"
	AppointmentDone      = "done"
	AppointmentCancelled = "cancelled"
)

// Appointment is a scheduled site visit (planting, maintenance, survey).
type Appointment struct {
	Id          uint      `json:"id" gorm:"primaryKey"`
	CustomerID  uint      `json:"-"`
	Customer    Customer  `json:"customer" gorm:"foreignKey:CustomerID;references:Id"`
	PropertyID  *uint     `json:"property_id"`
	Property    *Property `json:"property,omitempty" gorm:"foreignKey:PropertyID;references:Id"`
	Service     string    `json:"service" gorm:"not null"`
	ScheduledAt time.Time `json:"scheduled_at" gorm:"index"`
	Status      string    `json:"status" gorm:"type:VARCHAR(20);not null"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
}
