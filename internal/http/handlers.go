package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/pickle-club/internal/club"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) ListMembersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		members, err := s.Store.FetchMembers(r.Context(), s.Cfg.Stats.FetchLimit)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeResponse(w, r, http.StatusOK, members)
	}
}

func (s *Server) SearchMembersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		suggestions, err := s.Finder.Find(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeResponse(w, r, http.StatusOK, suggestions)
	}
}

func (s *Server) GetMemberHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		member, err := s.Store.GetMember(r.Context(), r.PathValue("id"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeResponse(w, r, http.StatusOK, member)
	}
}

func (s *Server) CreateMemberHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in club.MemberInput
		if err := decodeBody(r, &in); err != nil {
			writeError(w, r, err)
			return
		}
		member, err := s.Store.CreateMember(r.Context(), in)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeResponse(w, r, http.StatusCreated, member)
	}
}

func (s *Server) UpdateMemberHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in club.MemberInput
		if err := decodeBody(r, &in); err != nil {
			writeError(w, r, err)
			return
		}
		member, err := s.Store.UpdateMember(r.Context(), r.PathValue("id"), in)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeResponse(w, r, http.StatusOK, member)
	}
}

func (s *Server) DeleteMemberHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.Store.DeleteMember(r.Context(), r.PathValue("id")); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) CheckMemberDeletionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		check, err := s.Store.CheckMemberDeletion(r.Context(), r.PathValue("id"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeResponse(w, r, http.StatusOK, check)
	}
}

func (s *Server) ListCourtsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, _ := strconv.ParseBool(r.URL.Query().Get("all"))
		courts, err := s.Store.FetchCourts(r.Context(), !all, s.Cfg.Stats.FetchLimit)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeResponse(w, r, http.StatusOK, courts)
	}
}

func (s *Server) CreateCourtHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in club.CourtInput
		if err := decodeBody(r, &in); err != nil {
			writeError(w, r, err)
			return
		}
		court, err := s.Store.CreateCourt(r.Context(), in)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeResponse(w, r, http.StatusCreated, court)
	}
}

func (s *Server) UpdateCourtHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in club.CourtInput
		if err := decodeBody(r, &in); err != nil {
			writeError(w, r, err)
			return
		}
		court, err := s.Store.UpdateCourt(r.Context(), r.PathValue("id"), in)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeResponse(w, r, http.StatusOK, court)
	}
}

// ToggleCourtHandler flips a court between active and inactive.
func (s *Server) ToggleCourtHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		court, err := s.Store.GetCourt(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if err := s.Store.SetCourtActive(r.Context(), id, !court.Active); err != nil {
			writeError(w, r, err)
			return
		}
		court.Active = !court.Active
		log.Info("Toggled court", "id", id, "active", court.Active)
		writeResponse(w, r, http.StatusOK, court)
	}
}

func (s *Server) DeleteCourtHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.Store.DeleteCourt(r.Context(), r.PathValue("id")); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func parseFilter(r *http.Request) (club.ResultFilter, error) {
	var filter club.ResultFilter
	q := r.URL.Query()
	if from := q.Get("from"); from != "" {
		d, err := club.ParseDate(from)
		if err != nil {
			return filter, err
		}
		filter.From = d
	}
	if to := q.Get("to"); to != "" {
		d, err := club.ParseDate(to)
		if err != nil {
			return filter, err
		}
		filter.To = d
	}
	return filter, nil
}

func (s *Server) ListResultsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseFilter(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		rows, err := s.Stats.Results(r.Context(), filter)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeResponse(w, r, http.StatusOK, rows)
	}
}

func decodeResult(r *http.Request) (club.ResultInput, error) {
	var req resultRequest
	if err := decodeBody(r, &req); err != nil {
		return club.ResultInput{}, err
	}
	date, err := club.ParseDate(req.GameDate)
	if err != nil {
		return club.ResultInput{}, err
	}
	return club.ResultInput{
		MemberID: req.MemberID,
		CourtID:  req.CourtID,
		GameDate: date,
		Wins:     req.Wins,
		Losses:   req.Losses,
	}, nil
}

// UpsertResultHandler records a member's result for a date, replacing any
// result already recorded for that member and date.
func (s *Server) UpsertResultHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeResult(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if isDryRunFromContext(r) {
			log.Info("[Dry Run] Would have upserted game result", "member", in.MemberID, "date", in.GameDate.Format(club.DateLayout))
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if err := s.Store.UpsertGameResult(r.Context(), in); err != nil {
			writeError(w, r, err)
			return
		}
		s.Metrics.IncResultsRecorded()
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) UpdateResultHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeResult(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if err := s.Store.UpdateGameResult(r.Context(), in); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) DeleteResultHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		date, err := club.ParseDate(q.Get("date"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		if err := s.Store.DeleteGameResult(r.Context(), q.Get("member_id"), date); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
