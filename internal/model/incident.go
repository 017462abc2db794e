package model

import (
	"time"

	"vehicle-rental-backend/internal/domain"
)

// Incident is a damage report or fine attached to exactly one rental. Its
// cost feeds that rental's invoice total and becomes immutable once the
// invoice is paid.
type Incident struct {
	ID          uint                `gorm:"primaryKey" json:"id"`
	RentalID    uint                `gorm:"index;not null" json:"rentalId"`
	EmployeeID  uint                `gorm:"index" json:"employeeId"`
	Type        domain.IncidentType `gorm:"size:16;not null" json:"type"`
	Description string              `gorm:"size:255" json:"description"`
	Cost        float64             `json:"cost"`
	Date        time.Time           `json:"date"`
	CreatedAt   time.Time           `json:"-"`
	UpdatedAt   time.Time           `json:"-"`

	// Associations
	Rental   Rental   `gorm:"foreignKey:RentalID" json:"-"`
	Employee Employee `gorm:"foreignKey:EmployeeID" json:"-"`
}
