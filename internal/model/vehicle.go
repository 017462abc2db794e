package model

import (
	"time"

	"vehicle-rental-backend/internal/domain"
)

// Vehicle represents a fleet vehicle. Rows are never deleted; retiring a
// vehicle sets its status to decommissioned.
type Vehicle struct {
	ID           uint                 `gorm:"primaryKey" json:"id"`
	Brand        string               `gorm:"size:128;not null" json:"brand"`
	Model        string               `gorm:"size:128;not null" json:"model"`
	Plate        string               `gorm:"uniqueIndex;size:32;not null" json:"plate"`
	Year         int                  `json:"year"`
	DailyRate    float64              `gorm:"not null" json:"dailyRate"`
	OdometerKm   int                  `json:"odometerKm"`
	Seats        int                  `json:"seats"`
	Transmission string               `gorm:"size:45" json:"transmission"`
	Fuel         string               `gorm:"size:45" json:"fuel"`
	Thumbnail    string               `gorm:"size:255" json:"thumbnail"`
	Status       domain.VehicleStatus `gorm:"size:32;not null;index" json:"status"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
}
