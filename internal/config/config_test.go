package config_test

import (
	"testing"
	"time"

	"github.com/Seokzzoo/bonoclicker/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, 540, cfg.TimezoneOffsetMin)
	assert.Equal(t, []string{"A", "B", "C", "D"}, cfg.Teams)
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 10, cfg.PlayWindowSec)
	assert.Equal(t, 20, cfg.MaxCPS)
	assert.Equal(t, 20, cfg.DailyTopLimit)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TIMEZONE_OFFSET_MINUTES", "0")
	t.Setenv("TEAMS", "RED, BLUE")
	t.Setenv("SESSION_TTL", "90s")
	t.Setenv("MAX_CPS", "15")

	cfg := config.Load()

	assert.Equal(t, 0, cfg.TimezoneOffsetMin)
	assert.Equal(t, []string{"RED", "BLUE"}, cfg.Teams)
	assert.Equal(t, 90*time.Second, cfg.SessionTTL)
	assert.Equal(t, 15, cfg.MaxCPS)
}

func TestLocation_AppliesOffset(t *testing.T) {
	t.Setenv("TIMEZONE_OFFSET_MINUTES", "540")
	cfg := config.Load()

	utc := time.Date(2025, 3, 9, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-10", utc.In(cfg.Location()).Format("2006-01-02"))
}
