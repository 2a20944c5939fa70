package repository

import (
	"context"

	"github.com/gdugdh24/reunion-backend/internal/domain"
	"github.com/google/uuid"
)

type MatchRepository interface {
	Create(ctx context.Context, match *domain.Match) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Match, error)
	GetByPair(ctx context.Context, parentID, childID uuid.UUID) (*domain.Match, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Match, error)
	// UpdateStatus answers a pending match. It fails with ErrMatchNotPending when the
	// match was answered in the meantime.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.MatchStatus) error
}
