package model

import "time"

// Car represents a car record owned by exactly one user. PurchaseDate is
// optional; UserID is always stamped server-side from the session identity.
type Car struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Model        string     `json:"model" gorm:"size:255;not null"`
	PurchaseDate *time.Time `json:"purchaseDate,omitempty"`
	UserID       uint       `json:"userId" gorm:"not null;index"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}
