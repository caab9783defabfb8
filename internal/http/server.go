package http

import (
	"net/http"

	"github.com/mauv0809/pickle-club/internal/club"
	"github.com/mauv0809/pickle-club/internal/config"
	"github.com/mauv0809/pickle-club/internal/metrics"
	"github.com/mauv0809/pickle-club/internal/notifier"
	"github.com/mauv0809/pickle-club/internal/stats"
)

func NewServer(store club.ClubStore, statsSvc *stats.Service, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier) *Server {
	server := &Server{
		Store:          store,
		Stats:          statsSvc,
		Finder:         club.NewMemberFinder(store, cfg.Stats.FetchLimit),
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	handle := func(pattern string, h http.Handler) {
		s.Router.Handle(pattern, Chain(h, recoverMiddleware, paramsMiddleware))
	}

	s.Router.Handle("GET /metrics", s.MetricsHandler)
	handle("GET /health", s.HealthCheckHandler())

	handle("GET /members", s.ListMembersHandler())
	handle("POST /members", s.CreateMemberHandler())
	handle("GET /members/search", s.SearchMembersHandler())
	handle("GET /members/{id}", s.GetMemberHandler())
	handle("PUT /members/{id}", s.UpdateMemberHandler())
	handle("DELETE /members/{id}", s.DeleteMemberHandler())
	handle("GET /members/{id}/deletion-check", s.CheckMemberDeletionHandler())

	handle("GET /courts", s.ListCourtsHandler())
	handle("POST /courts", s.CreateCourtHandler())
	handle("PUT /courts/{id}", s.UpdateCourtHandler())
	handle("POST /courts/{id}/toggle", s.ToggleCourtHandler())
	handle("DELETE /courts/{id}", s.DeleteCourtHandler())

	handle("GET /results", s.ListResultsHandler())
	handle("PUT /results", s.UpsertResultHandler())
	handle("PATCH /results", s.UpdateResultHandler())
	handle("DELETE /results", s.DeleteResultHandler())

	handle("GET /stats", s.StatsReportHandler())
	handle("GET /stats/members", s.MemberStatsHandler())
	handle("GET /stats/attendance", s.AttendanceHandler())
	handle("GET /stats/rating-logic", s.RatingLogicHandler())

	handle("POST /notify/attendance", s.NotifyAttendanceHandler())
	handle("POST /notify/ranking", s.NotifyRankingHandler())
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
