package model

import (
	"time"

	"vehicle-rental-backend/internal/domain"
)

// Maintenance is a preventive or corrective job on a vehicle. While a job is
// open the owning vehicle is excluded from reservation eligibility; a
// vehicle has at most one open job at a time.
type Maintenance struct {
	ID          uint                     `gorm:"primaryKey" json:"id"`
	VehicleID   uint                     `gorm:"index;not null" json:"vehicleId"`
	EmployeeID  *uint                    `gorm:"index" json:"employeeId"`
	Type        domain.MaintenanceType   `gorm:"size:16;not null" json:"type"`
	Description string                   `gorm:"size:255" json:"description"`
	Cost        float64                  `json:"cost"`
	StartDate   time.Time                `gorm:"not null" json:"startDate"`
	EndDate     *time.Time               `json:"endDate"` // null while open
	Status      domain.MaintenanceStatus `gorm:"size:16;not null;index" json:"status"`
	CreatedAt   time.Time                `json:"-"`
	UpdatedAt   time.Time                `json:"-"`

	// Associations
	Vehicle Vehicle `gorm:"foreignKey:VehicleID" json:"-"`
}
