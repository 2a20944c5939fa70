package profile

import (
	"context"
	"sync"
	"time"

	"github.com/gdugdh24/reunion-backend/internal/domain"
	"github.com/google/uuid"
)

// mockProfileRepo stores profiles by user ID
type mockProfileRepo struct {
	profiles  map[uuid.UUID]domain.Profile
	upsertErr error
}

func (m *mockProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	p, ok := m.profiles[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return &p, nil
}

func (m *mockProfileRepo) Upsert(ctx context.Context, profile *domain.Profile) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	now := time.Now()
	if existing, ok := m.profiles[profile.UserID]; ok {
		profile.CreatedAt = existing.CreatedAt
	} else {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now
	m.profiles[profile.UserID] = *profile
	return nil
}

func (m *mockProfileRepo) ListByBirthDate(ctx context.Context, birthDate time.Time, role domain.Role) ([]domain.Profile, error) {
	return nil, nil
}

func (m *mockProfileRepo) ListByRole(ctx context.Context, role domain.Role) ([]domain.Profile, error) {
	return nil, nil
}

// mockTargetRepo stores target people by ID
type mockTargetRepo struct {
	mu      sync.Mutex
	targets map[uuid.UUID]domain.TargetPerson
}

func (m *mockTargetRepo) ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.TargetPerson, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.TargetPerson{}
	for _, t := range m.targets {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockTargetRepo) ListByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID][]domain.TargetPerson, error) {
	return nil, nil
}

func (m *mockTargetRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.TargetPerson, error) {
	t, ok := m.targets[id]
	if !ok {
		return nil, domain.ErrTargetPersonNotFound
	}
	return &t, nil
}

func (m *mockTargetRepo) Create(ctx context.Context, target *domain.TargetPerson, limit int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.targets {
		if t.UserID == target.UserID {
			n++
		}
	}
	if n >= limit {
		return domain.ErrTooManyTargetPeople
	}
	target.ID = uuid.New()
	target.DisplayOrder = n
	m.targets[target.ID] = *target
	return nil
}

func (m *mockTargetRepo) Update(ctx context.Context, target *domain.TargetPerson) error {
	if _, ok := m.targets[target.ID]; !ok {
		return domain.ErrTargetPersonNotFound
	}
	m.targets[target.ID] = *target
	return nil
}

func (m *mockTargetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.targets[id]; !ok {
		return domain.ErrTargetPersonNotFound
	}
	delete(m.targets, id)
	return nil
}

// mockCache records invalidations
type mockCache struct {
	mu          sync.Mutex
	invalidated []uuid.UUID
	err         error
}

func (m *mockCache) Get(ctx context.Context, userID uuid.UUID) ([]domain.MatchCandidate, bool, error) {
	return nil, false, nil
}

func (m *mockCache) Set(ctx context.Context, userID uuid.UUID, candidates []domain.MatchCandidate) error {
	return nil
}

func (m *mockCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invalidated = append(m.invalidated, userID)
	return m.err
}
