package model

import "time"

// Employee is a staff member. An employee may optionally have one login user.
type Employee struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	NationalID string    `gorm:"uniqueIndex;size:64;not null" json:"nationalId"`
	Role       string    `gorm:"size:128" json:"role"`
	Email      string    `gorm:"size:255" json:"email"`
	Phone      string    `gorm:"size:64" json:"phone"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
