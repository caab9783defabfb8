package stats

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/pickle-club/internal/club"
	"github.com/mauv0809/pickle-club/internal/metrics"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
)

// Config holds the tunables of a Service. Zero values fall back to defaults.
type Config struct {
	Quota      int
	FetchLimit int
	Location   *time.Location
	Language   language.Tag
	Now        func() time.Time
}

// Service fetches club data and derives the dashboard statistics from it.
type Service struct {
	store     club.ClubStore
	metrics   metrics.Metrics
	formatter *Formatter
	sorter    Sorter
	quota     int
	limit     int
	loc       *time.Location
	now       func() time.Time
}

// NewService creates a new statistics service.
func NewService(store club.ClubStore, metrics metrics.Metrics, cfg Config) *Service {
	s := &Service{
		store:   store,
		metrics: metrics,
		quota:   cfg.Quota,
		limit:   cfg.FetchLimit,
		loc:     cfg.Location,
		now:     cfg.Now,
	}
	if s.quota <= 0 {
		s.quota = DefaultQuota
	}
	if s.limit <= 0 {
		s.limit = club.DefaultFetchLimit
	}
	if s.loc == nil {
		s.loc = time.UTC
	}
	if s.now == nil {
		s.now = time.Now
	}
	tag := cfg.Language
	if tag == language.Und {
		tag = DefaultLanguage
	}
	s.formatter = NewFormatter(tag)
	s.sorter = NewSorter(tag)
	return s
}

// Formatter returns the formatter the service renders with.
func (s *Service) Formatter() *Formatter {
	return s.formatter
}

// Quota returns the monthly attendance target.
func (s *Service) Quota() int {
	return s.quota
}

// Snapshot fetches members, active courts and results concurrently.
// Results come newest first. Any failure cancels the other fetches.
func (s *Service) Snapshot(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		members, err := s.store.FetchMembers(ctx, s.limit)
		snap.Members = members
		return err
	})
	g.Go(func() error {
		courts, err := s.store.FetchCourts(ctx, true, s.limit)
		snap.Courts = courts
		return err
	})
	g.Go(func() error {
		results, err := s.store.FetchGameResults(ctx, club.ResultFilter{Order: club.OrderDateDesc}, s.limit)
		snap.Results = results
		return err
	})
	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// snapshot is Snapshot with the degraded fallback applied.
func (s *Service) snapshot(ctx context.Context) (Snapshot, bool) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		log.Error("Failed to fetch club data, computing from empty snapshot", "error", err)
		s.metrics.IncStatsFetchFailures()
		return Snapshot{}, true
	}
	return snap, false
}

// Compute derives a full report from snap as of now.
func (s *Service) Compute(snap Snapshot, now time.Time) Report {
	now = now.In(s.loc)
	statsByID := ComputeMemberStats(snap.Members, snap.Results, now)

	monthly := MonthlyTrend(snap.Results)
	for i := range monthly {
		monthly[i].Label = s.formatter.MonthLabel(monthly[i].Month)
	}

	attendance := EvaluateAttendance(statsByID, s.quota)
	attendance.Message = s.formatter.AttendanceMessage(attendance)

	return Report{
		GeneratedAt: now,
		Month:       now.Format(monthKeyLayout),
		MemberStats: statsByID,
		Monthly:     monthly,
		Courts:      CourtReport(snap.Results, snap.Courts),
		Activity:    ActivityReport(snap.Results, snap.Members),
		Overall:     Overall(snap.Results, snap.Members, snap.Courts),
		Attendance:  attendance,
	}
}

// Report fetches a fresh snapshot and computes the dashboard report.
// A failed fetch never fails the report; it is marked Degraded instead.
func (s *Service) Report(ctx context.Context) Report {
	start := time.Now()
	snap, degraded := s.snapshot(ctx)
	report := s.Compute(snap, s.now())
	report.Degraded = degraded

	s.metrics.IncStatsReports()
	s.metrics.ObserveStatsDuration(time.Since(start).Seconds())
	log.Debug("Computed stats report",
		"members", len(snap.Members),
		"courts", len(snap.Courts),
		"results", len(snap.Results),
		"degraded", degraded,
	)
	return report
}

// MemberList returns the member table sorted by mode. The attendance status
// is attached only for the absence view.
func (s *Service) MemberList(ctx context.Context, mode SortMode) MemberList {
	snap, degraded := s.snapshot(ctx)
	report := s.Compute(snap, s.now())
	s.metrics.IncStatsReports()

	sorted := s.sorter.Members(snap.Members, report.MemberStats, mode)
	list := MemberList{
		Mode:     mode,
		Header:   s.formatter.Header(mode),
		Degraded: degraded,
		Rows:     s.formatter.MemberRows(sorted, report.MemberStats, mode),
	}
	if mode == SortByAbsence {
		attendance := report.Attendance
		list.Attendance = &attendance
	}
	return list
}

// Attendance returns this month's attendance status.
func (s *Service) Attendance(ctx context.Context) (AttendanceStatus, bool) {
	report := s.Report(ctx)
	return report.Attendance, report.Degraded
}

// Results lists results matching filter, newest first, with display names.
// Names resolve against every court, active or not. Unlike the report,
// fetch errors are returned to the caller.
func (s *Service) Results(ctx context.Context, filter club.ResultFilter) ([]ResultRow, error) {
	var (
		members []club.Member
		courts  []club.Court
		results []club.GameResult
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		members, err = s.store.FetchMembers(gctx, s.limit)
		return err
	})
	g.Go(func() error {
		var err error
		courts, err = s.store.FetchCourts(gctx, false, s.limit)
		return err
	})
	g.Go(func() error {
		var err error
		results, err = s.store.FetchGameResults(gctx, filter, s.limit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return s.formatter.ResultRows(SortResults(results), members, courts), nil
}
