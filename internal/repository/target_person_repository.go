package repository

import (
	"context"

	"github.com/gdugdh24/reunion-backend/internal/domain"
	"github.com/google/uuid"
)

// TargetPersonRepository returns target people ordered by display order.
type TargetPersonRepository interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.TargetPerson, error)
	ListByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID][]domain.TargetPerson, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TargetPerson, error)
	// Create appends a target person after the user's existing ones, failing with
	// ErrTooManyTargetPeople once limit records exist. Concurrent creates for one user
	// are serialized.
	Create(ctx context.Context, target *domain.TargetPerson, limit int) error
	Update(ctx context.Context, target *domain.TargetPerson) error
	Delete(ctx context.Context, id uuid.UUID) error
}
