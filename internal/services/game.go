package services

import (
	"errors"
	"time"

	"github.com/Seokzzoo/bonoclicker/internal/gameday"
	"github.com/Seokzzoo/bonoclicker/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrDailyLimit       = errors.New("daily play limit reached")
	ErrAlreadySubmitted = errors.New("already submitted today")
)

// Play must end close to the advertised window: up to 1s early (client
// timers fire slightly short) and 2s late.
const (
	earlyToleranceMs = 1000
	lateToleranceMs  = 2000
)

type GameService struct {
	db        *gorm.DB
	auth      *AuthService
	loc       *time.Location
	windowSec int
	maxCPS    int
}

func NewGameService(db *gorm.DB, auth *AuthService, loc *time.Location, windowSec, maxCPS int) *GameService {
	return &GameService{db: db, auth: auth, loc: loc, windowSec: windowSec, maxCPS: maxCPS}
}

type SessionGrant struct {
	SessionID    string `json:"sessionId"`
	SessionToken string `json:"sessionToken"`
	WindowSec    int    `json:"windowSec"`
}

// StartSession checks the daily limit and mints a play-session credential.
// The check here is advisory only: a user can start two sessions back to
// back, but Submit re-checks inside its transaction and only one play lands.
func (s *GameService) StartSession(userID uint) (*SessionGrant, error) {
	today := gameday.Day(time.Now(), s.loc)

	var count int64
	if err := s.db.Model(&models.Play{}).
		Where("user_id = ? AND play_date = ?", userID, today).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDailyLimit
	}

	sessionID, token, err := s.auth.GenerateSessionToken(userID)
	if err != nil {
		return nil, err
	}
	return &SessionGrant{SessionID: sessionID, SessionToken: token, WindowSec: s.windowSec}, nil
}

// Submit records a completed play and folds it into the daily aggregates.
//
// An out-of-bounds score is not a rejection: the play is stored with
// valid=false so the daily slot is consumed, but it contributes zero to the
// aggregates. All three writes happen in one transaction; the existence
// re-check plus the unique (user_id, play_date) index make the one-play-per-
// day invariant hold under concurrent submissions.
func (s *GameService) Submit(userID uint, team, sessionID string, clicks, durationMs int) (bool, error) {
	today := gameday.Day(time.Now(), s.loc)

	minDuration := s.windowSec*1000 - earlyToleranceMs
	maxDuration := s.windowSec*1000 + lateToleranceMs
	valid := durationMs >= minDuration && durationMs <= maxDuration &&
		clicks >= 0 && clicks <= s.maxCPS*s.windowSec

	counted := 0
	if valid {
		counted = clicks
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Play{}).
			Where("user_id = ? AND play_date = ?", userID, today).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadySubmitted
		}

		play := models.Play{
			UserID:     userID,
			PlayDate:   today,
			SessionID:  sessionID,
			DurationMs: durationMs,
			Clicks:     clicks,
			Valid:      valid,
		}
		if err := tx.Create(&play).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadySubmitted
			}
			return err
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "team"}, {Name: "day"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"clicks": gorm.Expr("clicks + ?", counted),
			}),
		}).Create(&models.TeamDaily{Team: team, Day: today, Clicks: int64(counted)}).Error; err != nil {
			return err
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "day"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"clicks": counted}),
		}).Create(&models.UserDaily{UserID: userID, Day: today, Clicks: counted}).Error; err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return false, err
	}
	return valid, nil
}
