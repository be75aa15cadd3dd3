package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	ServerPort string

	// TimezoneOffsetMin is the fixed offset (in minutes) used for all
	// calendar-day boundaries: daily limits and leaderboard days.
	TimezoneOffsetMin int

	Teams         []string
	SessionTTL    time.Duration
	PlayWindowSec int
	MaxCPS        int
	DailyTopLimit int
}

func Load() *Config {
	return &Config{
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBName:            getEnv("DB_NAME", "clicker"),
		JWTSecret:         getEnv("JWT_SECRET", "dev_secret"),
		ServerPort:        getEnv("SERVER_PORT", "5173"),
		TimezoneOffsetMin: getEnvInt("TIMEZONE_OFFSET_MINUTES", 540), // KST (UTC+9)
		Teams:             getEnvList("TEAMS", []string{"A", "B", "C", "D"}),
		SessionTTL:        getEnvDuration("SESSION_TTL", 5*time.Minute),
		PlayWindowSec:     getEnvInt("PLAY_WINDOW_SEC", 10),
		MaxCPS:            getEnvInt("MAX_CPS", 20),
		DailyTopLimit:     getEnvInt("DAILY_TOP_LIMIT", 20),
	}
}

// Location returns the fixed reference timezone built from the configured
// offset. All "today" computations go through this.
func (c *Config) Location() *time.Location {
	name := fmt.Sprintf("UTC%+03d:%02d", c.TimezoneOffsetMin/60, abs(c.TimezoneOffsetMin)%60)
	return time.FixedZone(name, c.TimezoneOffsetMin*60)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	var items []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	if len(items) == 0 {
		return fallback
	}
	return items
}
