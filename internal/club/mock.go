package club

import (
	"context"
	"sync"
	"time"
)

var _ ClubStore = (*MockStore)(nil)

// MockStore is a mock implementation of the ClubStore interface for testing.
// It is safe for concurrent use. Unset Func fields return zero values.
type MockStore struct {
	mu sync.Mutex

	FetchMembersFunc        func(ctx context.Context, limit int) ([]Member, error)
	GetMemberFunc           func(ctx context.Context, id string) (*Member, error)
	CreateMemberFunc        func(ctx context.Context, in MemberInput) (*Member, error)
	UpdateMemberFunc        func(ctx context.Context, id string, in MemberInput) (*Member, error)
	DeleteMemberFunc        func(ctx context.Context, id string) error
	CheckMemberDeletionFunc func(ctx context.Context, id string) (DeletionCheck, error)
	FetchCourtsFunc         func(ctx context.Context, activeOnly bool, limit int) ([]Court, error)
	GetCourtFunc            func(ctx context.Context, id string) (*Court, error)
	CreateCourtFunc         func(ctx context.Context, in CourtInput) (*Court, error)
	UpdateCourtFunc         func(ctx context.Context, id string, in CourtInput) (*Court, error)
	SetCourtActiveFunc      func(ctx context.Context, id string, active bool) error
	DeleteCourtFunc         func(ctx context.Context, id string) error
	FetchGameResultsFunc    func(ctx context.Context, filter ResultFilter, limit int) ([]GameResult, error)
	UpsertGameResultFunc    func(ctx context.Context, in ResultInput) error
	UpdateGameResultFunc    func(ctx context.Context, in ResultInput) error
	DeleteGameResultFunc    func(ctx context.Context, memberID string, gameDate time.Time) error

	// Call records
	FetchCourtsCalls []struct {
		ActiveOnly bool
		Limit      int
	}
	FetchGameResultsCalls []struct {
		Filter ResultFilter
		Limit  int
	}
	UpsertGameResultCalls []ResultInput
	DeleteMemberCalls     []string
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FetchCourtsCalls = nil
	m.FetchGameResultsCalls = nil
	m.UpsertGameResultCalls = nil
	m.DeleteMemberCalls = nil
}

func (m *MockStore) FetchMembers(ctx context.Context, limit int) ([]Member, error) {
	m.mu.Lock()
	fn := m.FetchMembersFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, limit)
	}
	return nil, nil
}

func (m *MockStore) GetMember(ctx context.Context, id string) (*Member, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetMemberFunc != nil {
		return m.GetMemberFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockStore) CreateMember(ctx context.Context, in MemberInput) (*Member, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateMemberFunc != nil {
		return m.CreateMemberFunc(ctx, in)
	}
	return nil, nil
}

func (m *MockStore) UpdateMember(ctx context.Context, id string, in MemberInput) (*Member, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateMemberFunc != nil {
		return m.UpdateMemberFunc(ctx, id, in)
	}
	return nil, nil
}

func (m *MockStore) DeleteMember(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteMemberCalls = append(m.DeleteMemberCalls, id)
	if m.DeleteMemberFunc != nil {
		return m.DeleteMemberFunc(ctx, id)
	}
	return nil
}

func (m *MockStore) CheckMemberDeletion(ctx context.Context, id string) (DeletionCheck, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CheckMemberDeletionFunc != nil {
		return m.CheckMemberDeletionFunc(ctx, id)
	}
	return DeletionCheck{}, nil
}

// FetchCourts does not hold the lock while calling out, so the three
// snapshot fetches of a report can run concurrently against the mock.
func (m *MockStore) FetchCourts(ctx context.Context, activeOnly bool, limit int) ([]Court, error) {
	m.mu.Lock()
	m.FetchCourtsCalls = append(m.FetchCourtsCalls, struct {
		ActiveOnly bool
		Limit      int
	}{activeOnly, limit})
	fn := m.FetchCourtsFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, activeOnly, limit)
	}
	return nil, nil
}

func (m *MockStore) GetCourt(ctx context.Context, id string) (*Court, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetCourtFunc != nil {
		return m.GetCourtFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockStore) CreateCourt(ctx context.Context, in CourtInput) (*Court, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateCourtFunc != nil {
		return m.CreateCourtFunc(ctx, in)
	}
	return nil, nil
}

func (m *MockStore) UpdateCourt(ctx context.Context, id string, in CourtInput) (*Court, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateCourtFunc != nil {
		return m.UpdateCourtFunc(ctx, id, in)
	}
	return nil, nil
}

func (m *MockStore) SetCourtActive(ctx context.Context, id string, active bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetCourtActiveFunc != nil {
		return m.SetCourtActiveFunc(ctx, id, active)
	}
	return nil
}

func (m *MockStore) DeleteCourt(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteCourtFunc != nil {
		return m.DeleteCourtFunc(ctx, id)
	}
	return nil
}

func (m *MockStore) FetchGameResults(ctx context.Context, filter ResultFilter, limit int) ([]GameResult, error) {
	m.mu.Lock()
	m.FetchGameResultsCalls = append(m.FetchGameResultsCalls, struct {
		Filter ResultFilter
		Limit  int
	}{filter, limit})
	fn := m.FetchGameResultsFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, filter, limit)
	}
	return nil, nil
}

func (m *MockStore) UpsertGameResult(ctx context.Context, in ResultInput) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertGameResultCalls = append(m.UpsertGameResultCalls, in)
	if m.UpsertGameResultFunc != nil {
		return m.UpsertGameResultFunc(ctx, in)
	}
	return nil
}

func (m *MockStore) UpdateGameResult(ctx context.Context, in ResultInput) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateGameResultFunc != nil {
		return m.UpdateGameResultFunc(ctx, in)
	}
	return nil
}

func (m *MockStore) DeleteGameResult(ctx context.Context, memberID string, gameDate time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteGameResultFunc != nil {
		return m.DeleteGameResultFunc(ctx, memberID, gameDate)
	}
	return nil
}
