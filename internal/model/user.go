package model

import "time"

// User represents a registered account. The password hash is write-only from
// the API's point of view and is never serialized.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	// Relations
	Cars []Car `json:"cars,omitempty" gorm:"foreignKey:UserID"`
}
