package handler

import (
	"context"
	"sync"
	"time"

	"github.com/gdugdh24/reunion-backend/internal/domain"
	"github.com/google/uuid"
)

// memoryStore backs every repository interface with maps
type memoryStore struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]domain.Profile
	targets  map[uuid.UUID]domain.TargetPerson
	matches  map[uuid.UUID]domain.Match
	failWith error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		profiles: map[uuid.UUID]domain.Profile{},
		targets:  map[uuid.UUID]domain.TargetPerson{},
		matches:  map[uuid.UUID]domain.Match{},
	}
}

type profileRepo struct{ *memoryStore }

func (r profileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	p, ok := r.profiles[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return &p, nil
}

func (r profileRepo) Upsert(ctx context.Context, profile *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile.CreatedAt, profile.UpdatedAt = time.Now(), time.Now()
	r.profiles[profile.UserID] = *profile
	return nil
}

func (r profileRepo) ListByBirthDate(ctx context.Context, birthDate time.Time, role domain.Role) ([]domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Profile
	for _, p := range r.profiles {
		if p.Role == role && p.BirthDate != nil && p.BirthDate.Equal(birthDate) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r profileRepo) ListByRole(ctx context.Context, role domain.Role) ([]domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Profile
	for _, p := range r.profiles {
		if p.Role == role && p.BirthDate != nil {
			out = append(out, p)
		}
	}
	return out, nil
}

type targetRepo struct{ *memoryStore }

func (r targetRepo) ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.TargetPerson, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.TargetPerson{}
	for _, t := range r.targets {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r targetRepo) ListByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID][]domain.TargetPerson, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	want := make(map[uuid.UUID]bool, len(userIDs))
	for _, id := range userIDs {
		want[id] = true
	}
	out := map[uuid.UUID][]domain.TargetPerson{}
	for _, t := range r.targets {
		if want[t.UserID] {
			out[t.UserID] = append(out[t.UserID], t)
		}
	}
	return out, nil
}

func (r targetRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.TargetPerson, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.targets[id]
	if !ok {
		return nil, domain.ErrTargetPersonNotFound
	}
	return &t, nil
}

func (r targetRepo) Create(ctx context.Context, target *domain.TargetPerson, limit int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, t := range r.targets {
		if t.UserID == target.UserID {
			count++
		}
	}
	if count >= limit {
		return domain.ErrTooManyTargetPeople
	}
	target.ID = uuid.New()
	target.DisplayOrder = count
	r.targets[target.ID] = *target
	return nil
}

func (r targetRepo) Update(ctx context.Context, target *domain.TargetPerson) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.targets[target.ID] = *target
	return nil
}

func (r targetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.targets, id)
	return nil
}

type matchRepo struct{ *memoryStore }

func (r matchRepo) Create(ctx context.Context, match *domain.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	match.ID = uuid.New()
	r.matches[match.ID] = *match
	return nil
}

func (r matchRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.matches[id]
	if !ok {
		return nil, domain.ErrMatchNotFound
	}
	return &m, nil
}

func (r matchRepo) GetByPair(ctx context.Context, parentID, childID uuid.UUID) (*domain.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.matches {
		if m.ParentID == parentID && m.ChildID == childID {
			return &m, nil
		}
	}
	return nil, domain.ErrMatchNotFound
}

func (r matchRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Match
	for _, m := range r.matches {
		if m.HasUser(userID) {
			m := m
			out = append(out, &m)
		}
	}
	return out, nil
}

func (r matchRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.MatchStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.matches[id]
	if !ok {
		return domain.ErrMatchNotFound
	}
	if m.Status != domain.MatchStatusPending {
		return domain.ErrMatchNotPending
	}
	m.Status = status
	r.matches[id] = m
	return nil
}
