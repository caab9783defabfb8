package config

import (
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

const (
	defaultDBName   = "pickle-club.db"
	defaultPort     = "8080"
	defaultQuota    = 30
	defaultLimit    = 2000
	defaultTimezone = "Asia/Seoul"
	defaultLocale   = "ko"
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from lookup. Missing values take defaults, and
// malformed values are logged and replaced by their default.
func FromEnv(lookup func(string) (string, bool)) Config {
	getEnv := func(key, fallback string) string {
		if value, ok := lookup(key); ok && value != "" {
			return value
		}
		return fallback
	}
	getInt := func(key string, fallback int) int {
		raw, ok := lookup(key)
		if !ok || raw == "" {
			return fallback
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			log.Warn("Ignoring invalid integer setting", "key", key, "value", raw)
			return fallback
		}
		return n
	}

	cfg := Config{
		DBName: getEnv("DB_NAME", defaultDBName),
		Port:   getEnv("PORT", defaultPort),
		Slack: SlackConfig{
			Token:     getEnv("SLACK_BOT_TOKEN", ""),
			ChannelID: getEnv("SLACK_CHANNEL_ID", ""),
		},
		Turso: TursoConfig{
			PrimaryURL: getEnv("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnv("TURSO_AUTH_TOKEN", ""),
		},
		Stats: StatsConfig{
			AttendanceQuota: getInt("ATTENDANCE_QUOTA", defaultQuota),
			FetchLimit:      getInt("FETCH_LIMIT", defaultLimit),
		},
	}

	tz := getEnv("TIMEZONE", defaultTimezone)
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Warn("Unknown time zone, using UTC", "timezone", tz, "error", err)
		loc = time.UTC
	}
	cfg.Stats.Location = loc

	locale := getEnv("LOCALE", defaultLocale)
	tag, err := language.Parse(locale)
	if err != nil {
		log.Warn("Unknown locale, using Korean", "locale", locale, "error", err)
		tag = language.Korean
	}
	cfg.Stats.Language = tag

	return cfg
}
