package config

import (
	"time"

	"golang.org/x/text/language"
)

// Config holds all configuration for the application.
type Config struct {
	DBName string
	Port   string
	Slack  SlackConfig
	Turso  TursoConfig
	Stats  StatsConfig
}
type SlackConfig struct {
	Token     string
	ChannelID string
}
type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
type StatsConfig struct {
	AttendanceQuota int
	FetchLimit      int
	Location        *time.Location
	Language        language.Tag
}

// SlackEnabled reports whether notifications can be posted.
func (c Config) SlackEnabled() bool {
	return c.Slack.Token != "" && c.Slack.ChannelID != ""
}
