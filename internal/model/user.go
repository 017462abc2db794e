package model

import "time"

// User is a login account, optionally linked to an employee. The username is
// immutable after creation; only the password may change.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	EmployeeID   *uint     `gorm:"index" json:"employeeId"`
	Username     string    `gorm:"uniqueIndex;size:128;not null" json:"username"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	// Associations
	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}
