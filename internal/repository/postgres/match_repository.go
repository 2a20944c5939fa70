package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gdugdh24/reunion-backend/internal/domain"
	"github.com/gdugdh24/reunion-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const matchColumns = `id, parent_id, child_id, requested_by, status, similarity_score, created_at, updated_at`

type matchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) repository.MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) Create(ctx context.Context, match *domain.Match) error {
	if match.ID == uuid.Nil {
		match.ID = uuid.New()
	}
	if match.Status == "" {
		match.Status = domain.MatchStatusPending
	}

	query := `
		INSERT INTO matches (id, parent_id, child_id, requested_by, status, similarity_score)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		match.ID, match.ParentID, match.ChildID, match.RequestedBy, match.Status, match.SimilarityScore,
	).Scan(&match.CreatedAt, &match.UpdatedAt)
	if isUniqueViolation(err) {
		return domain.ErrMatchAlreadyExists
	}
	return err
}

func (r *matchRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Match, error) {
	var match domain.Match
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`
	err := r.db.GetContext(ctx, &match, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *matchRepository) GetByPair(ctx context.Context, parentID, childID uuid.UUID) (*domain.Match, error) {
	var match domain.Match
	query := `SELECT ` + matchColumns + ` FROM matches WHERE parent_id = $1 AND child_id = $2`
	err := r.db.GetContext(ctx, &match, query, parentID, childID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *matchRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Match, error) {
	matches := []*domain.Match{}
	query := `
		SELECT ` + matchColumns + `
		FROM matches
		WHERE parent_id = $1 OR child_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	err := r.db.SelectContext(ctx, &matches, query, userID, limit, offset)
	return matches, err
}

func (r *matchRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.MatchStatus) error {
	query := `
		UPDATE matches
		SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2 AND status = $3
	`
	result, err := r.db.ExecContext(ctx, query, status, id, domain.MatchStatusPending)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows > 0 {
		return nil
	}

	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM matches WHERE id = $1)`, id); err != nil {
		return err
	}
	if !exists {
		return domain.ErrMatchNotFound
	}
	return domain.ErrMatchNotPending
}
