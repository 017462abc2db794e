package model

import (
	"time"

	"vehicle-rental-backend/internal/domain"
)

// Rental is the single record shape behind both reservations and active
// rentals; the status field is the authoritative lifecycle discriminator.
type Rental struct {
	ID          uint                `gorm:"primaryKey" json:"id"`
	ClientID    uint                `gorm:"index;not null" json:"clientId"`
	VehicleID   uint                `gorm:"index;not null" json:"vehicleId"`
	EmployeeID  uint                `gorm:"index;not null" json:"employeeId"`
	StartTime   time.Time           `gorm:"not null" json:"startTime"`
	EndTime     time.Time           `gorm:"not null" json:"endTime"`
	StartKm     int                 `json:"startKm"`
	EndKm       *int                `json:"endKm"` // set only at finish
	Amount      float64             `json:"amount"`
	Status      domain.RentalStatus `gorm:"size:32;not null;index" json:"status"`
	CreatedOn   time.Time           `gorm:"not null" json:"createdOn"`
	ConfirmedOn *time.Time          `json:"confirmedOn"`
	CancelledOn *time.Time          `json:"cancelledOn"`
	CreatedAt   time.Time           `json:"-"`
	UpdatedAt   time.Time           `json:"-"`

	// Associations
	Client    Client     `gorm:"foreignKey:ClientID" json:"-"`
	Vehicle   Vehicle    `gorm:"foreignKey:VehicleID" json:"-"`
	Employee  Employee   `gorm:"foreignKey:EmployeeID" json:"-"`
	Incidents []Incident `gorm:"foreignKey:RentalID" json:"-"`
}
