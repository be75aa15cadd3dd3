package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UUID      string    `gorm:"size:64;not null;uniqueIndex" json:"uuid"`
	Nickname  string    `gorm:"size:16;not null" json:"nickname"`
	Team      string    `gorm:"size:20;not null" json:"team"`
	CreatedAt time.Time `json:"created_at"`
}
