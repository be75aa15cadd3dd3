package models

// TeamDaily accumulates valid clicks per team per day. Created on first
// contribution, incremented additively after that, never recomputed.
type TeamDaily struct {
	Team   string `gorm:"primaryKey;size:20" json:"team"`
	Day    string `gorm:"primaryKey;size:10" json:"day"`
	Clicks int64  `gorm:"not null;default:0" json:"clicks"`
}

// UserDaily is the per-user daily snapshot. Written as a set (not an add):
// the daily-limit invariant makes both equivalent today, but a set stays
// correct if the limit is ever relaxed.
type UserDaily struct {
	UserID uint   `gorm:"primaryKey" json:"user_id"`
	Day    string `gorm:"primaryKey;size:10" json:"day"`
	Clicks int    `gorm:"not null;default:0" json:"clicks"`
}
