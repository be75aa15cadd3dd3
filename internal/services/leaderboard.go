package services

import (
	"time"

	"github.com/Seokzzoo/bonoclicker/internal/gameday"
	"github.com/Seokzzoo/bonoclicker/internal/models"

	"gorm.io/gorm"
)

type LeaderboardService struct {
	db       *gorm.DB
	loc      *time.Location
	topLimit int
}

func NewLeaderboardService(db *gorm.DB, loc *time.Location, topLimit int) *LeaderboardService {
	return &LeaderboardService{db: db, loc: loc, topLimit: topLimit}
}

type UserEntry struct {
	Nickname string `json:"nickname"`
	Team     string `json:"team"`
	Clicks   int64  `json:"clicks"`
}

type TeamEntry struct {
	Team   string `json:"team"`
	Clicks int64  `json:"clicks"`
}

type Board struct {
	Users []UserEntry `json:"users"`
	Teams []TeamEntry `json:"teams"`
}

// Today returns the current day key in the reference timezone.
func (s *LeaderboardService) Today() string {
	return gameday.Day(time.Now(), s.loc)
}

// Daily returns the top users by daily snapshot plus every team total for
// the given day.
func (s *LeaderboardService) Daily(day string) (*Board, error) {
	users := make([]UserEntry, 0)
	if err := s.db.Table("user_dailies").
		Select("users.nickname, users.team, user_dailies.clicks").
		Joins("JOIN users ON users.id = user_dailies.user_id").
		Where("user_dailies.day = ?", day).
		Order("user_dailies.clicks DESC").
		Limit(s.topLimit).
		Scan(&users).Error; err != nil {
		return nil, err
	}

	teams := make([]TeamEntry, 0)
	if err := s.db.Model(&models.TeamDaily{}).
		Select("team, clicks").
		Where("day = ?", day).
		Order("clicks DESC").
		Scan(&teams).Error; err != nil {
		return nil, err
	}

	return &Board{Users: users, Teams: teams}, nil
}

// Weekly sums valid plays over the current ISO week (Monday-first), grouped
// by user (top N) and by team (all teams).
func (s *LeaderboardService) Weekly() (*Board, error) {
	start, end := gameday.WeekBounds(time.Now(), s.loc)

	users := make([]UserEntry, 0)
	if err := s.db.Table("plays").
		Select("users.nickname, users.team, SUM(plays.clicks) AS clicks").
		Joins("JOIN users ON users.id = plays.user_id").
		Where("plays.valid = ? AND plays.play_date BETWEEN ? AND ?", true, start, end).
		Group("plays.user_id, users.nickname, users.team").
		Order("clicks DESC").
		Limit(s.topLimit).
		Scan(&users).Error; err != nil {
		return nil, err
	}

	teams := make([]TeamEntry, 0)
	if err := s.db.Table("plays").
		Select("users.team, SUM(plays.clicks) AS clicks").
		Joins("JOIN users ON users.id = plays.user_id").
		Where("plays.valid = ? AND plays.play_date BETWEEN ? AND ?", true, start, end).
		Group("users.team").
		Order("clicks DESC").
		Scan(&teams).Error; err != nil {
		return nil, err
	}

	return &Board{Users: users, Teams: teams}, nil
}
