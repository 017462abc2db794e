package model

import (
	"time"

	"vehicle-rental-backend/internal/domain"
)

// Invoice exists if and only if its rental has finished; it is created in
// the same transaction that finishes the rental.
type Invoice struct {
	ID             uint                 `gorm:"primaryKey" json:"id"`
	RentalID       uint                 `gorm:"uniqueIndex;not null" json:"rentalId"`
	IssueDate      time.Time            `gorm:"not null" json:"issueDate"`
	PaymentMethod  string               `gorm:"size:64" json:"paymentMethod"`
	Status         domain.InvoiceStatus `gorm:"size:16;not null;index" json:"status"`
	BaseAmount     float64              `json:"baseAmount"`
	IncidentsTotal float64              `json:"incidentsTotal"`
	Total          float64              `json:"total"`
	CreatedAt      time.Time            `json:"-"`
	UpdatedAt      time.Time            `json:"-"`

	// Associations
	Rental Rental `gorm:"foreignKey:RentalID" json:"-"`
}
