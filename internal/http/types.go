package http

import (
	"net/http"

	"github.com/mauv0809/pickle-club/internal/club"
	"github.com/mauv0809/pickle-club/internal/config"
	"github.com/mauv0809/pickle-club/internal/metrics"
	"github.com/mauv0809/pickle-club/internal/notifier"
	"github.com/mauv0809/pickle-club/internal/stats"
)

type Server struct {
	Store          club.ClubStore
	Stats          *stats.Service
	Finder         *club.MemberFinder
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	// Notifier is nil when Slack is not configured.
	Notifier notifier.Notifier
	Router   *http.ServeMux
}

// resultRequest is the wire form of a game result write.
type resultRequest struct {
	MemberID string `json:"member_id"`
	CourtID  string `json:"court_id"`
	GameDate string `json:"game_date"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type notifyResponse struct {
	Sent   bool `json:"sent"`
	DryRun bool `json:"dry_run"`
}
