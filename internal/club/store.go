package club

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// New creates a new ClubStore.
func New(db *sql.DB) ClubStore {
	return &store{
		db:  db,
		now: time.Now,
	}
}

func sqlLimit(limit int) int {
	// SQLite treats a negative LIMIT as unbounded.
	if limit <= 0 {
		return -1
	}
	return limit
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// FetchMembers returns up to limit members ordered by name.
func (s *store) FetchMembers(ctx context.Context, limit int) ([]Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, department, created_at
		FROM members
		ORDER BY name
		LIMIT ?
	`, sqlLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query members: %w", err)
	}
	defer rows.Close()

	members := []Member{}
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			log.Error("Failed to scan member row", "error", err)
			continue
		}
		members = append(members, *m)
	}
	return members, rows.Err()
}

func scanMember(scanner interface{ Scan(...any) error }) (*Member, error) {
	var (
		m         Member
		dept      sql.NullString
		createdAt int64
	)
	if err := scanner.Scan(&m.ID, &m.Name, &dept, &createdAt); err != nil {
		return nil, err
	}
	m.Department = dept.String
	m.CreatedAt = time.Unix(createdAt, 0).UTC()
	return &m, nil
}

func (s *store) GetMember(ctx context.Context, id string) (*Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getMemberLocked(ctx, id)
}

func (s *store) getMemberLocked(ctx context.Context, id string) (*Member, error) {
	row := s.db.QueryRowContext(ctx, "SELECT id, name, department, created_at FROM members WHERE id = ?", id)
	m, err := scanMember(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("member %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member %s: %w", id, err)
	}
	return m, nil
}

func (s *store) CreateMember(ctx context.Context, in MemberInput) (*Member, error) {
	in, err := in.normalize()
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	m := Member{
		ID:         uuid.NewString(),
		Name:       in.Name,
		Department: in.Department,
		CreatedAt:  s.now().UTC().Truncate(time.Second),
	}
	_, err = s.db.ExecContext(ctx, "INSERT INTO members (id, name, department, created_at) VALUES (?, ?, ?, ?)",
		m.ID, m.Name, nullable(m.Department), m.CreatedAt.Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to insert member: %w", err)
	}
	log.Info("Created member", "id", m.ID, "name", m.Name)
	return &m, nil
}

// UpdateMember replaces the name and department of the member with the given id.
func (s *store) UpdateMember(ctx context.Context, id string, in MemberInput) (*Member, error) {
	in, err := in.normalize()
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "UPDATE members SET name = ?, department = ? WHERE id = ?", in.Name, nullable(in.Department), id)
	if err != nil {
		return nil, fmt.Errorf("failed to update member %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, fmt.Errorf("member %s: %w", id, ErrNotFound)
	}
	log.Info("Updated member", "id", id)
	return s.getMemberLocked(ctx, id)
}

// DeleteMember removes a member. Their game results go with them.
func (s *store) DeleteMember(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM members WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete member %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("member %s: %w", id, ErrNotFound)
	}
	log.Info("Deleted member", "id", id)
	return nil
}

func (s *store) CheckMemberDeletion(ctx context.Context, id string) (DeletionCheck, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var check DeletionCheck
	err := s.db.QueryRowContext(ctx, `
		SELECT
			EXISTS (SELECT 1 FROM members WHERE id = ?),
			(SELECT COUNT(*) FROM game_results WHERE member_id = ?)
	`, id, id).Scan(&check.Exists, &check.ResultCount)
	if err != nil {
		return DeletionCheck{}, fmt.Errorf("failed to check deletion of member %s: %w", id, err)
	}
	return check, nil
}

// FetchCourts returns up to limit courts ordered by name.
func (s *store) FetchCourts(ctx context.Context, activeOnly bool, limit int) ([]Court, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := "SELECT id, name, active, created_at FROM courts"
	if activeOnly {
		query += " WHERE active = 1"
	}
	query += " ORDER BY name LIMIT ?"

	rows, err := s.db.QueryContext(ctx, query, sqlLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query courts: %w", err)
	}
	defer rows.Close()

	courts := []Court{}
	for rows.Next() {
		c, err := scanCourt(rows)
		if err != nil {
			log.Error("Failed to scan court row", "error", err)
			continue
		}
		courts = append(courts, *c)
	}
	return courts, rows.Err()
}

func scanCourt(scanner interface{ Scan(...any) error }) (*Court, error) {
	var (
		c         Court
		createdAt int64
	)
	if err := scanner.Scan(&c.ID, &c.Name, &c.Active, &createdAt); err != nil {
		return nil, err
	}
	c.CreatedAt = time.Unix(createdAt, 0).UTC()
	return &c, nil
}

func (s *store) GetCourt(ctx context.Context, id string) (*Court, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getCourtLocked(ctx, id)
}

func (s *store) getCourtLocked(ctx context.Context, id string) (*Court, error) {
	row := s.db.QueryRowContext(ctx, "SELECT id, name, active, created_at FROM courts WHERE id = ?", id)
	c, err := scanCourt(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("court %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get court %s: %w", id, err)
	}
	return c, nil
}

func (s *store) CreateCourt(ctx context.Context, in CourtInput) (*Court, error) {
	in, err := in.normalize()
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	c := Court{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Active:    in.Active == nil || *in.Active,
		CreatedAt: s.now().UTC().Truncate(time.Second),
	}
	_, err = s.db.ExecContext(ctx, "INSERT INTO courts (id, name, active, created_at) VALUES (?, ?, ?, ?)",
		c.ID, c.Name, c.Active, c.CreatedAt.Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to insert court: %w", err)
	}
	log.Info("Created court", "id", c.ID, "name", c.Name, "active", c.Active)
	return &c, nil
}

func (s *store) UpdateCourt(ctx context.Context, id string, in CourtInput) (*Court, error) {
	in, err := in.normalize()
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var res sql.Result
	if in.Active == nil {
		res, err = s.db.ExecContext(ctx, "UPDATE courts SET name = ? WHERE id = ?", in.Name, id)
	} else {
		res, err = s.db.ExecContext(ctx, "UPDATE courts SET name = ?, active = ? WHERE id = ?", in.Name, *in.Active, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update court %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, fmt.Errorf("court %s: %w", id, ErrNotFound)
	}
	log.Info("Updated court", "id", id)
	return s.getCourtLocked(ctx, id)
}

func (s *store) SetCourtActive(ctx context.Context, id string, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "UPDATE courts SET active = ? WHERE id = ?", active, id)
	if err != nil {
		return fmt.Errorf("failed to set court %s active: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("court %s: %w", id, ErrNotFound)
	}
	log.Info("Changed court activity", "id", id, "active", active)
	return nil
}

// DeleteCourt removes a court that no game result refers to.
func (s *store) DeleteCourt(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var refs int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM game_results WHERE court_id = ?", id).Scan(&refs); err != nil {
		return fmt.Errorf("failed to count results for court %s: %w", id, err)
	}
	if refs > 0 {
		return fmt.Errorf("court %s (%d results): %w", id, refs, ErrInUse)
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM courts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete court %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("court %s: %w", id, ErrNotFound)
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	log.Info("Deleted court", "id", id)
	return nil
}

// FetchGameResults returns up to limit results matching filter.
// Rows with an unreadable date are logged and skipped.
func (s *store) FetchGameResults(ctx context.Context, filter ResultFilter, limit int) ([]GameResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		where []string
		args  []any
	)
	if !filter.From.IsZero() {
		where = append(where, "game_date >= ?")
		args = append(args, filter.From.Format(DateLayout))
	}
	if !filter.To.IsZero() {
		where = append(where, "game_date <= ?")
		args = append(args, filter.To.Format(DateLayout))
	}

	query := "SELECT member_id, court_id, game_date, wins, losses FROM game_results"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	switch filter.Order {
	case OrderDateAsc:
		query += " ORDER BY game_date ASC, member_id"
	default:
		query += " ORDER BY game_date DESC, member_id"
	}
	query += " LIMIT ?"
	args = append(args, sqlLimit(limit))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query game results: %w", err)
	}
	defer rows.Close()

	results := []GameResult{}
	for rows.Next() {
		var (
			r    GameResult
			date string
		)
		if err := rows.Scan(&r.MemberID, &r.CourtID, &date, &r.Wins, &r.Losses); err != nil {
			log.Error("Failed to scan game result row", "error", err)
			continue
		}
		if r.GameDate, err = ParseDate(date); err != nil {
			log.Warn("Skipping game result with malformed date", "memberID", r.MemberID, "date", date)
			continue
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// UpsertGameResult stores the result for (MemberID, GameDate), replacing the
// court and counts of an existing row.
func (s *store) UpsertGameResult(ctx context.Context, in ResultInput) error {
	if err := in.validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := requireParents(ctx, tx, in); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO game_results (member_id, court_id, game_date, wins, losses)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(member_id, game_date) DO UPDATE SET
			court_id = excluded.court_id,
			wins = excluded.wins,
			losses = excluded.losses;
	`, in.MemberID, in.CourtID, in.GameDate.Format(DateLayout), in.Wins, in.Losses)
	if err != nil {
		return fmt.Errorf("failed to upsert game result: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	log.Info("Upserted game result", "memberID", in.MemberID, "date", in.GameDate.Format(DateLayout), "wins", in.Wins, "losses", in.Losses)
	return nil
}

func requireParents(ctx context.Context, tx *sql.Tx, in ResultInput) error {
	var memberOK, courtOK bool
	err := tx.QueryRowContext(ctx, `
		SELECT
			EXISTS (SELECT 1 FROM members WHERE id = ?),
			EXISTS (SELECT 1 FROM courts WHERE id = ?)
	`, in.MemberID, in.CourtID).Scan(&memberOK, &courtOK)
	if err != nil {
		return fmt.Errorf("failed to look up result parents: %w", err)
	}
	if !memberOK {
		return fmt.Errorf("member %s: %w", in.MemberID, ErrNotFound)
	}
	if !courtOK {
		return fmt.Errorf("court %s: %w", in.CourtID, ErrNotFound)
	}
	return nil
}

// UpdateGameResult changes the court and counts of an existing result.
func (s *store) UpdateGameResult(ctx context.Context, in ResultInput) error {
	if err := in.validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := requireParents(ctx, tx, in); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, "UPDATE game_results SET court_id = ?, wins = ?, losses = ? WHERE member_id = ? AND game_date = ?",
		in.CourtID, in.Wins, in.Losses, in.MemberID, in.GameDate.Format(DateLayout))
	if err != nil {
		return fmt.Errorf("failed to update game result: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("result for member %s on %s: %w", in.MemberID, in.GameDate.Format(DateLayout), ErrNotFound)
	}
	return tx.Commit()
}

func (s *store) DeleteGameResult(ctx context.Context, memberID string, gameDate time.Time) error {
	if memberID == "" || gameDate.IsZero() {
		return fmt.Errorf("%w: member and date are required", ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM game_results WHERE member_id = ? AND game_date = ?", memberID, gameDate.Format(DateLayout))
	if err != nil {
		return fmt.Errorf("failed to delete game result: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("result for member %s on %s: %w", memberID, gameDate.Format(DateLayout), ErrNotFound)
	}
	log.Info("Deleted game result", "memberID", memberID, "date", gameDate.Format(DateLayout))
	return nil
}
