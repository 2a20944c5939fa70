package repository

import (
	"context"

	"github.com/gdugdh24/reunion-backend/internal/domain"
	"github.com/google/uuid"
)

// CandidateCache stores ranked candidate lists per searcher.
type CandidateCache interface {
	Get(ctx context.Context, userID uuid.UUID) ([]domain.MatchCandidate, bool, error)
	Set(ctx context.Context, userID uuid.UUID, candidates []domain.MatchCandidate) error
	// Invalidate drops the user's own list and any cached list the user appears in.
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
