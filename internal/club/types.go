package club

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

// DateLayout is the calendar-date format game dates are stored and exchanged in.
const DateLayout = "2006-01-02"

// DefaultFetchLimit bounds every snapshot read by the statistics layer.
const DefaultFetchLimit = 2000

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInUse        = errors.New("still referenced by game results")
)

// store handles all database operations for the club.
type store struct {
	db  *sql.DB
	mu  sync.RWMutex
	now func() time.Time
}

// Member is a registered club member.
type Member struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Department string    `json:"department,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Court is a venue games are played on. Inactive courts are hidden from
// the statistics but keep their history.
type Court struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// GameResult is one member's record for one calendar date. There is at most
// one per (MemberID, GameDate).
type GameResult struct {
	MemberID string    `json:"member_id"`
	CourtID  string    `json:"court_id"`
	GameDate time.Time `json:"game_date"`
	Wins     int       `json:"wins"`
	Losses   int       `json:"losses"`
}

// MemberInput carries the editable fields of a member.
type MemberInput struct {
	Name       string `json:"name"`
	Department string `json:"department"`
}

// CourtInput carries the editable fields of a court. A nil Active keeps the
// current flag on update and defaults to true on create.
type CourtInput struct {
	Name   string `json:"name"`
	Active *bool  `json:"active"`
}

// ResultInput is the payload of an upsert or update keyed on (MemberID, GameDate).
type ResultInput struct {
	MemberID string
	CourtID  string
	GameDate time.Time
	Wins     int
	Losses   int
}

// ResultOrder selects the ordering of a game result fetch.
type ResultOrder int

const (
	OrderDateDesc ResultOrder = iota
	OrderDateAsc
)

// ResultFilter narrows a game result fetch. Zero dates are unbounded.
type ResultFilter struct {
	From  time.Time
	To    time.Time
	Order ResultOrder
}

// DeletionCheck describes what deleting a member would do.
type DeletionCheck struct {
	Exists      bool `json:"exists"`
	ResultCount int  `json:"result_count"`
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidInput, s)
	}
	return d, nil
}

// CivilDate strips the clock from t, keeping its calendar date in t's location.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (in MemberInput) normalize() (MemberInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Department = strings.TrimSpace(in.Department)
	if in.Name == "" {
		return in, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	return in, nil
}

func (in CourtInput) normalize() (CourtInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return in, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	return in, nil
}

func (in ResultInput) validate() error {
	switch {
	case in.CourtID == "":
		return fmt.Errorf("%w: court is required", ErrInvalidInput)
	case in.MemberID == "":
		return fmt.Errorf("%w: member is required", ErrInvalidInput)
	case in.GameDate.IsZero():
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	case in.Wins < 0 || in.Losses < 0:
		return fmt.Errorf("%w: wins and losses must not be negative", ErrInvalidInput)
	}
	return nil
}
