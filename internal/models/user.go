package models

import "time"

// User represents a registered diary account.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;type:varchar(100);not null" validate:"required,min=3,max=100"`
	Password  string    `json:"-" gorm:"type:varchar(255);not null"` // bcrypt digest, never serialized
	CreatedAt time.Time `json:"-"`
}
