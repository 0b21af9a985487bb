package models

import "time"

// Session maps an opaque bearer token to the user it authenticates.
// A session is created at login, deleted at logout, and has no expiry:
// the row itself is the token's validity.
type Session struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Token     string    `json:"-" gorm:"uniqueIndex;type:varchar(64);not null"`
	CreatedAt time.Time `json:"created_at"`
}
