package matching

import (
	"context"
	"sync"
	"time"

	"github.com/gdugdh24/reunion-backend/internal/domain"
	"github.com/google/uuid"
)

// mockProfileRepo serves profiles from memory and records birth date queries
type mockProfileRepo struct {
	mu        sync.Mutex
	profiles  []domain.Profile
	getErr    error
	listErr   error
	dateCalls []string
	roleCalls int
}

func (m *mockProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, p := range m.profiles {
		if p.UserID == userID {
			p := p
			return &p, nil
		}
	}
	return nil, domain.ErrProfileNotFound
}

func (m *mockProfileRepo) Upsert(ctx context.Context, profile *domain.Profile) error {
	m.profiles = append(m.profiles, *profile)
	return nil
}

func (m *mockProfileRepo) ListByBirthDate(ctx context.Context, birthDate time.Time, role domain.Role) ([]domain.Profile, error) {
	m.mu.Lock()
	m.dateCalls = append(m.dateCalls, birthDate.Format(time.DateOnly))
	m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}

	var out []domain.Profile
	for _, p := range m.profiles {
		if p.Role == role && p.BirthDate != nil && p.BirthDate.Format(time.DateOnly) == birthDate.Format(time.DateOnly) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockProfileRepo) ListByRole(ctx context.Context, role domain.Role) ([]domain.Profile, error) {
	m.roleCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []domain.Profile
	for _, p := range m.profiles {
		if p.Role == role && p.BirthDate != nil {
			out = append(out, p)
		}
	}
	return out, nil
}

// mockTargetRepo keeps target people grouped by owner
type mockTargetRepo struct {
	mu         sync.Mutex
	byUser     map[uuid.UUID][]domain.TargetPerson
	batchErr   error
	batchCalls int
	batchKeys  []uuid.UUID
}

func (m *mockTargetRepo) ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.TargetPerson, error) {
	return m.byUser[userID], nil
}

func (m *mockTargetRepo) ListByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID][]domain.TargetPerson, error) {
	m.mu.Lock()
	m.batchCalls++
	m.batchKeys = append(m.batchKeys, userIDs...)
	m.mu.Unlock()
	if m.batchErr != nil {
		return nil, m.batchErr
	}
	out := make(map[uuid.UUID][]domain.TargetPerson)
	for _, id := range userIDs {
		if targets, ok := m.byUser[id]; ok {
			out[id] = targets
		}
	}
	return out, nil
}

func (m *mockTargetRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.TargetPerson, error) {
	return nil, domain.ErrTargetPersonNotFound
}

func (m *mockTargetRepo) Create(ctx context.Context, target *domain.TargetPerson, limit int) error {
	return nil
}
func (m *mockTargetRepo) Update(ctx context.Context, target *domain.TargetPerson) error { return nil }
func (m *mockTargetRepo) Delete(ctx context.Context, id uuid.UUID) error                { return nil }

// mockCache is an in-memory candidate cache
type mockCache struct {
	entries map[uuid.UUID][]domain.MatchCandidate
	getErr  error
	setErr  error
	sets    int
}

func newMockCache() *mockCache {
	return &mockCache{entries: make(map[uuid.UUID][]domain.MatchCandidate)}
}

func (m *mockCache) Get(ctx context.Context, userID uuid.UUID) ([]domain.MatchCandidate, bool, error) {
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	c, ok := m.entries[userID]
	return c, ok, nil
}

func (m *mockCache) Set(ctx context.Context, userID uuid.UUID, candidates []domain.MatchCandidate) error {
	m.sets++
	if m.setErr != nil {
		return m.setErr
	}
	m.entries[userID] = candidates
	return nil
}

func (m *mockCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	delete(m.entries, userID)
	return nil
}
