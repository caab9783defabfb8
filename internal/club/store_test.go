package club_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/mauv0809/pickle-club/internal/club"
	"github.com/mauv0809/pickle-club/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (club.ClubStore, *sql.DB, func()) {
	t.Helper()

	db, teardown, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)

	return club.New(db), db, teardown
}

func mustDate(t *testing.T, s string) club.ResultInput {
	t.Helper()
	d, err := club.ParseDate(s)
	require.NoError(t, err)
	return club.ResultInput{GameDate: d}
}

func TestMemberCRUD(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	created, err := store.CreateMember(ctx, club.MemberInput{Name: "  Kim Minsu ", Department: "Sales"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Kim Minsu", created.Name)

	_, err = store.CreateMember(ctx, club.MemberInput{Name: "   "})
	assert.ErrorIs(t, err, club.ErrInvalidInput)

	updated, err := store.UpdateMember(ctx, created.ID, club.MemberInput{Name: "Kim Minsu", Department: ""})
	require.NoError(t, err)
	assert.Empty(t, updated.Department)

	_, err = store.UpdateMember(ctx, "missing", club.MemberInput{Name: "Nobody"})
	assert.ErrorIs(t, err, club.ErrNotFound)

	members, err := store.FetchMembers(ctx, 10)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, created.ID, members[0].ID)

	require.NoError(t, store.DeleteMember(ctx, created.ID))
	_, err = store.GetMember(ctx, created.ID)
	assert.ErrorIs(t, err, club.ErrNotFound)
	assert.ErrorIs(t, store.DeleteMember(ctx, created.ID), club.ErrNotFound)
}

func TestFetchCourts(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	inactive := false
	_, err := store.CreateCourt(ctx, club.CourtInput{Name: "B Court"})
	require.NoError(t, err)
	closed, err := store.CreateCourt(ctx, club.CourtInput{Name: "A Court", Active: &inactive})
	require.NoError(t, err)
	assert.False(t, closed.Active)

	t.Run("active only", func(t *testing.T) {
		courts, err := store.FetchCourts(ctx, true, 10)
		require.NoError(t, err)
		require.Len(t, courts, 1)
		assert.Equal(t, "B Court", courts[0].Name)
		assert.True(t, courts[0].Active)
	})

	t.Run("all ordered by name", func(t *testing.T) {
		courts, err := store.FetchCourts(ctx, false, 10)
		require.NoError(t, err)
		require.Len(t, courts, 2)
		assert.Equal(t, "A Court", courts[0].Name)
	})

	t.Run("toggle", func(t *testing.T) {
		require.NoError(t, store.SetCourtActive(ctx, closed.ID, true))
		courts, err := store.FetchCourts(ctx, true, 10)
		require.NoError(t, err)
		assert.Len(t, courts, 2)
	})

	t.Run("update keeps flag when omitted", func(t *testing.T) {
		c, err := store.UpdateCourt(ctx, closed.ID, club.CourtInput{Name: "Renamed"})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", c.Name)
		assert.True(t, c.Active)
	})
}

func TestUpsertGameResult(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	m, err := store.CreateMember(ctx, club.MemberInput{Name: "Lee"})
	require.NoError(t, err)
	c1, err := store.CreateCourt(ctx, club.CourtInput{Name: "Court 1"})
	require.NoError(t, err)
	c2, err := store.CreateCourt(ctx, club.CourtInput{Name: "Court 2"})
	require.NoError(t, err)

	in := mustDate(t, "2024-01-05")
	in.MemberID, in.CourtID, in.Wins, in.Losses = m.ID, c1.ID, 3, 1
	require.NoError(t, store.UpsertGameResult(ctx, in))

	// Same member and date replaces the row.
	in.CourtID, in.Wins, in.Losses = c2.ID, 1, 4
	require.NoError(t, store.UpsertGameResult(ctx, in))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM game_results").Scan(&count))
	assert.Equal(t, 1, count)

	results, err := store.FetchGameResults(ctx, club.ResultFilter{}, 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, c2.ID, results[0].CourtID)
	assert.Equal(t, 1, results[0].Wins)
	assert.Equal(t, 4, results[0].Losses)
	assert.Equal(t, "2024-01-05", results[0].GameDate.Format(club.DateLayout))

	t.Run("validation", func(t *testing.T) {
		bad := in
		bad.Wins = -1
		assert.ErrorIs(t, store.UpsertGameResult(ctx, bad), club.ErrInvalidInput)

		bad = in
		bad.CourtID = ""
		assert.ErrorIs(t, store.UpsertGameResult(ctx, bad), club.ErrInvalidInput)
	})

	t.Run("unknown parents", func(t *testing.T) {
		bad := in
		bad.MemberID = "ghost"
		assert.ErrorIs(t, store.UpsertGameResult(ctx, bad), club.ErrNotFound)
	})

	t.Run("court in use cannot be deleted", func(t *testing.T) {
		assert.ErrorIs(t, store.DeleteCourt(ctx, c2.ID), club.ErrInUse)
		assert.NoError(t, store.DeleteCourt(ctx, c1.ID))
	})
}

func TestUpdateAndDeleteGameResult(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	m, err := store.CreateMember(ctx, club.MemberInput{Name: "Park"})
	require.NoError(t, err)
	c, err := store.CreateCourt(ctx, club.CourtInput{Name: "Court"})
	require.NoError(t, err)

	in := mustDate(t, "2024-02-01")
	in.MemberID, in.CourtID = m.ID, c.ID

	assert.ErrorIs(t, store.UpdateGameResult(ctx, in), club.ErrNotFound, "update needs an existing row")
	require.NoError(t, store.UpsertGameResult(ctx, in))

	in.Wins = 5
	require.NoError(t, store.UpdateGameResult(ctx, in))
	results, err := store.FetchGameResults(ctx, club.ResultFilter{}, 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 5, results[0].Wins)

	require.NoError(t, store.DeleteGameResult(ctx, m.ID, in.GameDate))
	assert.ErrorIs(t, store.DeleteGameResult(ctx, m.ID, in.GameDate), club.ErrNotFound)
}

func TestFetchGameResultsFilter(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	m, err := store.CreateMember(ctx, club.MemberInput{Name: "Choi"})
	require.NoError(t, err)
	c, err := store.CreateCourt(ctx, club.CourtInput{Name: "Court"})
	require.NoError(t, err)
	for _, d := range []string{"2024-01-05", "2024-01-20", "2024-02-01"} {
		in := mustDate(t, d)
		in.MemberID, in.CourtID, in.Wins = m.ID, c.ID, 1
		require.NoError(t, store.UpsertGameResult(ctx, in))
	}

	t.Run("default order is newest first", func(t *testing.T) {
		results, err := store.FetchGameResults(ctx, club.ResultFilter{}, 0)
		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, "2024-02-01", results[0].GameDate.Format(club.DateLayout))
	})

	t.Run("date range is inclusive", func(t *testing.T) {
		from, _ := club.ParseDate("2024-01-01")
		to, _ := club.ParseDate("2024-01-31")
		results, err := store.FetchGameResults(ctx, club.ResultFilter{From: from, To: to, Order: club.OrderDateAsc}, 10)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "2024-01-05", results[0].GameDate.Format(club.DateLayout))
		assert.Equal(t, "2024-01-20", results[1].GameDate.Format(club.DateLayout))
	})

	t.Run("limit", func(t *testing.T) {
		results, err := store.FetchGameResults(ctx, club.ResultFilter{}, 2)
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})
}

func TestCheckMemberDeletion(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	m, err := store.CreateMember(ctx, club.MemberInput{Name: "Jung"})
	require.NoError(t, err)
	c, err := store.CreateCourt(ctx, club.CourtInput{Name: "Court"})
	require.NoError(t, err)
	in := mustDate(t, "2024-03-03")
	in.MemberID, in.CourtID = m.ID, c.ID
	require.NoError(t, store.UpsertGameResult(ctx, in))

	check, err := store.CheckMemberDeletion(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, club.DeletionCheck{Exists: true, ResultCount: 1}, check)

	require.NoError(t, store.DeleteMember(ctx, m.ID))
	results, err := store.FetchGameResults(ctx, club.ResultFilter{}, 10)
	require.NoError(t, err)
	assert.Empty(t, results, "results are removed with their member")

	check, err = store.CheckMemberDeletion(ctx, m.ID)
	require.NoError(t, err)
	assert.False(t, check.Exists)
}
