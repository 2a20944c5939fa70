package match

import (
	"context"
	"time"

	"github.com/gdugdh24/reunion-backend/internal/domain"
	"github.com/google/uuid"
)

// mockMatchRepo keeps matches in memory and records status updates
type mockMatchRepo struct {
	matches   map[uuid.UUID]*domain.Match
	pairErr   error
	createErr error
	listArgs  [2]int
	// beforeUpdate runs between the status read and the status write
	beforeUpdate func(match *domain.Match)
}

func newMockMatchRepo() *mockMatchRepo {
	return &mockMatchRepo{matches: make(map[uuid.UUID]*domain.Match)}
}

func (m *mockMatchRepo) Create(ctx context.Context, match *domain.Match) error {
	if m.createErr != nil {
		return m.createErr
	}
	match.ID = uuid.New()
	match.CreatedAt = time.Now()
	match.UpdatedAt = match.CreatedAt
	stored := *match
	m.matches[match.ID] = &stored
	return nil
}

func (m *mockMatchRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Match, error) {
	match, ok := m.matches[id]
	if !ok {
		return nil, domain.ErrMatchNotFound
	}
	copied := *match
	return &copied, nil
}

func (m *mockMatchRepo) GetByPair(ctx context.Context, parentID, childID uuid.UUID) (*domain.Match, error) {
	if m.pairErr != nil {
		return nil, m.pairErr
	}
	for _, match := range m.matches {
		if match.ParentID == parentID && match.ChildID == childID {
			copied := *match
			return &copied, nil
		}
	}
	return nil, domain.ErrMatchNotFound
}

func (m *mockMatchRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Match, error) {
	m.listArgs = [2]int{limit, offset}
	var out []*domain.Match
	for _, match := range m.matches {
		if match.HasUser(userID) {
			out = append(out, match)
		}
	}
	return out, nil
}

func (m *mockMatchRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.MatchStatus) error {
	match, ok := m.matches[id]
	if !ok {
		return domain.ErrMatchNotFound
	}
	if m.beforeUpdate != nil {
		m.beforeUpdate(match)
	}
	if match.Status != domain.MatchStatusPending {
		return domain.ErrMatchNotPending
	}
	match.Status = status
	return nil
}

// mockProfileRepo only serves lookups by user ID
type mockProfileRepo struct {
	profiles map[uuid.UUID]domain.Profile
	err      error
}

func (m *mockProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.profiles[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return &p, nil
}

func (m *mockProfileRepo) Upsert(ctx context.Context, profile *domain.Profile) error { return nil }

func (m *mockProfileRepo) ListByBirthDate(ctx context.Context, birthDate time.Time, role domain.Role) ([]domain.Profile, error) {
	return nil, nil
}

func (m *mockProfileRepo) ListByRole(ctx context.Context, role domain.Role) ([]domain.Profile, error) {
	return nil, nil
}

// mockTargetRepo serves target people by owner
type mockTargetRepo struct {
	byUser map[uuid.UUID][]domain.TargetPerson
}

func (m *mockTargetRepo) ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.TargetPerson, error) {
	return m.byUser[userID], nil
}

func (m *mockTargetRepo) ListByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID][]domain.TargetPerson, error) {
	return nil, nil
}

func (m *mockTargetRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.TargetPerson, error) {
	return nil, domain.ErrTargetPersonNotFound
}

func (m *mockTargetRepo) Create(ctx context.Context, target *domain.TargetPerson, limit int) error {
	return nil
}
func (m *mockTargetRepo) Update(ctx context.Context, target *domain.TargetPerson) error { return nil }
func (m *mockTargetRepo) Delete(ctx context.Context, id uuid.UUID) error                { return nil }
