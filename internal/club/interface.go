package club

import (
	"context"
	"time"
)

// ClubStore defines the interface for interacting with the club's data.
type ClubStore interface {
	FetchMembers(ctx context.Context, limit int) ([]Member, error)
	GetMember(ctx context.Context, id string) (*Member, error)
	CreateMember(ctx context.Context, in MemberInput) (*Member, error)
	UpdateMember(ctx context.Context, id string, in MemberInput) (*Member, error)
	DeleteMember(ctx context.Context, id string) error
	CheckMemberDeletion(ctx context.Context, id string) (DeletionCheck, error)

	FetchCourts(ctx context.Context, activeOnly bool, limit int) ([]Court, error)
	GetCourt(ctx context.Context, id string) (*Court, error)
	CreateCourt(ctx context.Context, in CourtInput) (*Court, error)
	UpdateCourt(ctx context.Context, id string, in CourtInput) (*Court, error)
	SetCourtActive(ctx context.Context, id string, active bool) error
	DeleteCourt(ctx context.Context, id string) error

	FetchGameResults(ctx context.Context, filter ResultFilter, limit int) ([]GameResult, error)
	UpsertGameResult(ctx context.Context, in ResultInput) error
	UpdateGameResult(ctx context.Context, in ResultInput) error
	DeleteGameResult(ctx context.Context, memberID string, gameDate time.Time) error
}
