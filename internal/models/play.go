package models

import "time"

// Play is the one-per-user-per-day submission record. The composite unique
// index is the authoritative guard against double submission; invalid plays
// are still recorded so the daily slot is consumed.
type Play struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_play_user_day" json:"user_id"`
	PlayDate   string    `gorm:"size:10;not null;uniqueIndex:idx_play_user_day" json:"play_date"`
	SessionID  string    `gorm:"size:64;not null" json:"session_id"`
	DurationMs int       `gorm:"not null" json:"duration_ms"`
	Clicks     int       `gorm:"not null" json:"clicks"`
	Valid      bool      `gorm:"not null" json:"valid"`
	CreatedAt  time.Time `json:"created_at"`
}
