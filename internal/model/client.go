package model

import (
	"time"

	"vehicle-rental-backend/internal/domain"
)

// Client is a rental customer. Status changes go through a dedicated
// operation, distinct from general profile edits.
type Client struct {
	ID         uint                `gorm:"primaryKey" json:"id"`
	Name       string              `gorm:"size:255;not null" json:"name"`
	NationalID string              `gorm:"uniqueIndex;size:64;not null" json:"nationalId"`
	Email      string              `gorm:"size:255" json:"email"`
	Phone      string              `gorm:"size:64" json:"phone"`
	Status     domain.ClientStatus `gorm:"size:16;not null" json:"status"`
	CreatedAt  time.Time           `json:"createdAt"`
	UpdatedAt  time.Time           `json:"updatedAt"`
}
