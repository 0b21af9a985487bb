package models

import "time"

// TimeLayout is the display format every timestamp uses at the JSON
// boundary (matching what the clients render).
const TimeLayout = "02/01/2006 15:04"

// Entry represents a single diary entry owned by exactly one user.
//
// CreatedAt is set once at insertion and never changes afterwards;
// UpdatedAt stays nil until the first edit. Both are managed by the
// service layer, not by GORM's automatic tracking.
type Entry struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	UserID    uint       `json:"-" gorm:"index;not null"`
	Content   string     `json:"content" gorm:"type:text;not null"`
	Mood      *string    `json:"mood" gorm:"type:varchar(32)"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime:false;not null"`
	UpdatedAt *time.Time `json:"updated_at" gorm:"autoUpdateTime:false"`
}
