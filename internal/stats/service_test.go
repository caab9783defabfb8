package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mauv0809/pickle-club/internal/club"
	"github.com/mauv0809/pickle-club/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

var kst = time.FixedZone("KST", 9*60*60)

func setupService(t *testing.T, now time.Time) (*Service, *club.MockStore, *metrics.Mock) {
	t.Helper()
	store := club.NewMock()
	m := metrics.NewMock()
	svc := NewService(store, m, Config{
		Quota:      3,
		FetchLimit: 50,
		Location:   kst,
		Language:   language.Korean,
		Now:        func() time.Time { return now },
	})
	return svc, store, m
}

func seedStore(store *club.MockStore) {
	store.FetchMembersFunc = func(ctx context.Context, limit int) ([]club.Member, error) {
		return []club.Member{
			{ID: "m1", Name: "Ara", Department: "Dev"},
			{ID: "m2", Name: "Bora"},
			{ID: "m3", Name: "Chae"},
		}, nil
	}
	store.FetchCourtsFunc = func(ctx context.Context, activeOnly bool, limit int) ([]club.Court, error) {
		courts := []club.Court{{ID: "c1", Name: "North", Active: true}}
		if !activeOnly {
			courts = append(courts, club.Court{ID: "c2", Name: "Old"})
		}
		return courts, nil
	}
	store.FetchGameResultsFunc = func(ctx context.Context, filter club.ResultFilter, limit int) ([]club.GameResult, error) {
		return []club.GameResult{
			result("m1", "c1", day(2024, 2, 1), 3, 1),
			result("m2", "c2", day(2024, 1, 31), 1, 1),
			result("m1", "c1", day(2024, 1, 10), 2, 0),
		}, nil
	}
}

func TestService_Report(t *testing.T) {
	// 20:00 UTC on Jan 31 is already February in Seoul.
	svc, store, m := setupService(t, time.Date(2024, 1, 31, 20, 0, 0, 0, time.UTC))
	seedStore(store)

	report := svc.Report(context.Background())

	assert.False(t, report.Degraded)
	assert.Equal(t, "2024-02", report.Month)
	require.Len(t, report.MemberStats, 3)
	assert.False(t, report.MemberStats["m1"].AbsentThisMonth)
	assert.True(t, report.MemberStats["m2"].AbsentThisMonth)

	require.Len(t, report.Monthly, 2)
	assert.Equal(t, "2024년 1월", report.Monthly[0].Label)
	assert.Equal(t, "2024년 2월", report.Monthly[1].Label)

	require.Len(t, report.Courts, 1)
	assert.Equal(t, "c1", report.Courts[0].CourtID)
	assert.Equal(t, 1, report.Overall.TotalCourts)
	assert.Equal(t, 1, report.Overall.ActiveCourts)

	assert.Equal(t, 1, report.Attendance.Attended)
	assert.Equal(t, 2, report.Attendance.Shortfall)
	assert.Contains(t, report.Attendance.Message, "이번달 3명이")

	require.Len(t, store.FetchCourtsCalls, 1)
	assert.True(t, store.FetchCourtsCalls[0].ActiveOnly)
	assert.Equal(t, 50, store.FetchCourtsCalls[0].Limit)
	require.Len(t, store.FetchGameResultsCalls, 1)
	assert.Equal(t, club.OrderDateDesc, store.FetchGameResultsCalls[0].Filter.Order)

	assert.Equal(t, 1, m.StatsReports())
	assert.Equal(t, 0, m.StatsFetchFailures())
	assert.Len(t, m.StatsDurations(), 1)
}

func TestService_ReportDegradedOnFetchFailure(t *testing.T) {
	svc, store, m := setupService(t, time.Date(2024, 1, 15, 0, 0, 0, 0, kst))
	seedStore(store)
	store.FetchCourtsFunc = func(ctx context.Context, activeOnly bool, limit int) ([]club.Court, error) {
		return nil, errors.New("connection reset")
	}

	report := svc.Report(context.Background())

	assert.True(t, report.Degraded)
	assert.Empty(t, report.MemberStats)
	assert.Empty(t, report.Monthly)
	assert.Empty(t, report.Courts)
	assert.Empty(t, report.Activity)
	assert.Equal(t, OverallSummary{}, report.Overall)
	assert.Equal(t, 3, report.Attendance.Shortfall)
	assert.Equal(t, 1, m.StatsFetchFailures())
	assert.Equal(t, 1, m.StatsReports())
}

func TestService_MemberList(t *testing.T) {
	svc, store, _ := setupService(t, time.Date(2024, 2, 10, 12, 0, 0, 0, kst))
	seedStore(store)

	list := svc.MemberList(context.Background(), SortByAbsence)
	assert.Equal(t, SortByAbsence, list.Mode)
	assert.Equal(t, "DUPR", list.Header)
	require.Len(t, list.Rows, 3)
	assert.Equal(t, "m2", list.Rows[0].MemberID)
	assert.Equal(t, "m3", list.Rows[1].MemberID)
	assert.Equal(t, "m1", list.Rows[2].MemberID)
	require.NotNil(t, list.Attendance)
	assert.Equal(t, 1, list.Attendance.Attended)

	list = svc.MemberList(context.Background(), SortByWins)
	assert.Nil(t, list.Attendance)
	assert.Equal(t, "승수", list.Header)
	assert.Equal(t, "m1", list.Rows[0].MemberID)
	assert.Equal(t, "5 승", list.Rows[0].Highlight)
}

func TestService_Results(t *testing.T) {
	svc, store, _ := setupService(t, time.Date(2024, 2, 10, 12, 0, 0, 0, kst))
	seedStore(store)

	filter := club.ResultFilter{From: day(2024, 1, 1)}
	rows, err := svc.Results(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "2024-02-01", rows[0].GameDate)
	assert.Equal(t, "Old", rows[1].Court)

	require.Len(t, store.FetchCourtsCalls, 1)
	assert.False(t, store.FetchCourtsCalls[0].ActiveOnly)
	assert.Equal(t, filter, store.FetchGameResultsCalls[0].Filter)
}

func TestService_ResultsPropagatesErrors(t *testing.T) {
	svc, store, _ := setupService(t, time.Now())
	seedStore(store)
	store.FetchMembersFunc = func(ctx context.Context, limit int) ([]club.Member, error) {
		return nil, errors.New("boom")
	}

	_, err := svc.Results(context.Background(), club.ResultFilter{})
	assert.EqualError(t, err, "boom")
}

func TestNewService_Defaults(t *testing.T) {
	svc := NewService(club.NewMock(), metrics.NewMock(), Config{})
	assert.Equal(t, DefaultQuota, svc.Quota())
	assert.Equal(t, language.Korean, svc.Formatter().Language())
}
