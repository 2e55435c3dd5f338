package models

import (
	"time"
)

// User is minted on first successful Google sign-in, or by the demo
// bootstrap (GoogleID "demo_user"). Never deleted by the app.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	GoogleID  string    `gorm:"uniqueIndex;not null" json:"google_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
