package repository

import (
	"context"
	"time"

	"github.com/gdugdh24/reunion-backend/internal/domain"
	"github.com/google/uuid"
)

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	Upsert(ctx context.Context, profile *domain.Profile) error
	// ListByBirthDate returns profiles of the given role born on exactly that date.
	ListByBirthDate(ctx context.Context, birthDate time.Time, role domain.Role) ([]domain.Profile, error)
	// ListByRole returns every profile of the given role that has a birth date.
	ListByRole(ctx context.Context, role domain.Role) ([]domain.Profile, error)
}
