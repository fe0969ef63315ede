package model

import "time"

// SessionModel mirrors the 'sessions' table. One row per named credential slot.
type SessionModel struct {
	Slot      string `gorm:"type:varchar(64);primaryKey"`
	Token     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}
