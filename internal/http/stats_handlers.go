package http

import (
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/pickle-club/internal/stats"
)

func (s *Server) StatsReportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeResponse(w, r, http.StatusOK, s.Stats.Report(r.Context()))
	}
}

// MemberStatsHandler serves the ranked member table. Without a sort
// selector the absence view is shown.
func (s *Server) MemberStatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mode := stats.SortByAbsence
		if sel := r.URL.Query().Get("sort"); sel != "" {
			mode = stats.ParseSortMode(sel)
		}
		writeResponse(w, r, http.StatusOK, s.Stats.MemberList(r.Context(), mode))
	}
}

func (s *Server) AttendanceHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, degraded := s.Stats.Attendance(r.Context())
		writeResponse(w, r, http.StatusOK, struct {
			stats.AttendanceStatus
			Degraded bool `json:"degraded"`
		}{status, degraded})
	}
}

func (s *Server) RatingLogicHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, s.Stats.Formatter().RatingExplanation())
	}
}

func (s *Server) NotifyAttendanceHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.Notifier == nil {
			http.Error(w, "Slack notifications are not configured", http.StatusServiceUnavailable)
			return
		}
		isDryRun := isDryRunFromContext(r)

		list := s.Stats.MemberList(r.Context(), stats.SortByAbsence)
		if list.Degraded {
			log.Warn("Skipping attendance notification, club data unavailable")
			http.Error(w, "Club data unavailable", http.StatusServiceUnavailable)
			return
		}
		absent := make([]stats.MemberRow, 0, len(list.Rows))
		for _, row := range list.Rows {
			if row.Absent {
				absent = append(absent, row)
			}
		}
		if list.Attendance == nil {
			http.Error(w, "Attendance status unavailable", http.StatusInternalServerError)
			return
		}

		if err := s.Notifier.SendAttendanceStatus(r.Context(), *list.Attendance, absent, isDryRun); err != nil {
			log.Error("Failed to send attendance notification", "error", err)
			http.Error(w, "Failed to send notification", http.StatusBadGateway)
			return
		}
		writeResponse(w, r, http.StatusOK, notifyResponse{Sent: !isDryRun, DryRun: isDryRun})
	}
}

func (s *Server) NotifyRankingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.Notifier == nil {
			http.Error(w, "Slack notifications are not configured", http.StatusServiceUnavailable)
			return
		}
		isDryRun := isDryRunFromContext(r)

		list := s.Stats.MemberList(r.Context(), stats.SortByRating)
		if err := s.Notifier.SendRanking(r.Context(), list, isDryRun); err != nil {
			log.Error("Failed to send ranking notification", "error", err)
			http.Error(w, "Failed to send notification", http.StatusBadGateway)
			return
		}
		writeResponse(w, r, http.StatusOK, notifyResponse{Sent: !isDryRun, DryRun: isDryRun})
	}
}
