package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func env(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg := FromEnv(env(map[string]string{"TIMEZONE": "UTC"}))

	assert.Equal(t, "pickle-club.db", cfg.DBName)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 30, cfg.Stats.AttendanceQuota)
	assert.Equal(t, 2000, cfg.Stats.FetchLimit)
	assert.Equal(t, time.UTC, cfg.Stats.Location)
	assert.Equal(t, "ko", cfg.Stats.Language.String())
	assert.False(t, cfg.SlackEnabled())
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg := FromEnv(env(map[string]string{
		"DB_NAME":           "club.db",
		"PORT":              "9000",
		"TURSO_PRIMARY_URL": "libsql://club.turso.io",
		"TURSO_AUTH_TOKEN":  "secret",
		"SLACK_BOT_TOKEN":   "xoxb-1",
		"SLACK_CHANNEL_ID":  "C123",
		"ATTENDANCE_QUOTA":  "12",
		"FETCH_LIMIT":       "500",
		"TIMEZONE":          "UTC",
		"LOCALE":            "en",
	}))

	assert.Equal(t, "club.db", cfg.DBName)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "libsql://club.turso.io", cfg.Turso.PrimaryURL)
	assert.Equal(t, 12, cfg.Stats.AttendanceQuota)
	assert.Equal(t, 500, cfg.Stats.FetchLimit)
	assert.Equal(t, "en", cfg.Stats.Language.String())
	assert.True(t, cfg.SlackEnabled())
}

func TestFromEnv_InvalidValuesFallBack(t *testing.T) {
	cfg := FromEnv(env(map[string]string{
		"ATTENDANCE_QUOTA": "lots",
		"FETCH_LIMIT":      "-5",
		"TIMEZONE":         "Mars/Olympus",
		"LOCALE":           "!!",
	}))

	assert.Equal(t, 30, cfg.Stats.AttendanceQuota)
	assert.Equal(t, 2000, cfg.Stats.FetchLimit)
	assert.Equal(t, time.UTC, cfg.Stats.Location)
	assert.Equal(t, "ko", cfg.Stats.Language.String())
}
