package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gdugdh24/reunion-backend/internal/domain"
	"github.com/gdugdh24/reunion-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const targetPersonColumns = `
	id, user_id, birth_date, gender,
	last_name_kanji, first_name_kanji, last_name_hiragana, first_name_hiragana,
	birthplace_prefecture, birthplace_municipality, display_order,
	created_at, updated_at`

type targetPersonRepository struct {
	db *sqlx.DB
}

func NewTargetPersonRepository(db *sqlx.DB) repository.TargetPersonRepository {
	return &targetPersonRepository{db: db}
}

func (r *targetPersonRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.TargetPerson, error) {
	targets := []domain.TargetPerson{}
	query := `
		SELECT ` + targetPersonColumns + `
		FROM searching_children
		WHERE user_id = $1
		ORDER BY display_order, created_at
	`
	err := r.db.SelectContext(ctx, &targets, query, userID)
	return targets, err
}

func (r *targetPersonRepository) ListByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID][]domain.TargetPerson, error) {
	grouped := make(map[uuid.UUID][]domain.TargetPerson, len(userIDs))
	if len(userIDs) == 0 {
		return grouped, nil
	}

	ids := make([]string, len(userIDs))
	for i, id := range userIDs {
		ids[i] = id.String()
	}

	var targets []domain.TargetPerson
	query := `
		SELECT ` + targetPersonColumns + `
		FROM searching_children
		WHERE user_id = ANY($1::uuid[])
		ORDER BY user_id, display_order, created_at
	`
	if err := r.db.SelectContext(ctx, &targets, query, pq.Array(ids)); err != nil {
		return nil, err
	}

	for _, t := range targets {
		grouped[t.UserID] = append(grouped[t.UserID], t)
	}
	return grouped, nil
}

func (r *targetPersonRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.TargetPerson, error) {
	var target domain.TargetPerson
	query := `SELECT ` + targetPersonColumns + ` FROM searching_children WHERE id = $1`
	err := r.db.GetContext(ctx, &target, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTargetPersonNotFound
		}
		return nil, err
	}
	return &target, nil
}

func (r *targetPersonRepository) Create(ctx context.Context, target *domain.TargetPerson, limit int) (err error) {
	if target.ID == uuid.Nil {
		target.ID = uuid.New()
	}

	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// the profile row lock serializes creates for one user
	var locked uuid.UUID
	err = tx.GetContext(ctx, &locked, `SELECT user_id FROM profiles WHERE user_id = $1 FOR UPDATE`, target.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrProfileNotFound
	}
	if err != nil {
		return err
	}

	var count int
	if err = tx.GetContext(ctx, &count, `SELECT COUNT(*) FROM searching_children WHERE user_id = $1`, target.UserID); err != nil {
		return err
	}
	if count >= limit {
		err = domain.ErrTooManyTargetPeople
		return err
	}
	target.DisplayOrder = count

	query := `
		INSERT INTO searching_children (
			id, user_id, birth_date, gender,
			last_name_kanji, first_name_kanji, last_name_hiragana, first_name_hiragana,
			birthplace_prefecture, birthplace_municipality, display_order
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at
	`
	err = tx.QueryRowxContext(
		ctx, query,
		target.ID, target.UserID, target.BirthDate, target.Gender,
		target.LastNameKanji, target.FirstNameKanji, target.LastNameHiragana, target.FirstNameHiragana,
		target.BirthplacePrefecture, target.BirthplaceMunicipality, target.DisplayOrder,
	).Scan(&target.CreatedAt, &target.UpdatedAt)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *targetPersonRepository) Update(ctx context.Context, target *domain.TargetPerson) error {
	query := `
		UPDATE searching_children
		SET birth_date = $1, gender = $2,
		    last_name_kanji = $3, first_name_kanji = $4,
		    last_name_hiragana = $5, first_name_hiragana = $6,
		    birthplace_prefecture = $7, birthplace_municipality = $8,
		    display_order = $9, updated_at = CURRENT_TIMESTAMP
		WHERE id = $10
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		target.BirthDate, target.Gender,
		target.LastNameKanji, target.FirstNameKanji,
		target.LastNameHiragana, target.FirstNameHiragana,
		target.BirthplacePrefecture, target.BirthplaceMunicipality,
		target.DisplayOrder, target.ID,
	).Scan(&target.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrTargetPersonNotFound
	}
	return err
}

func (r *targetPersonRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM searching_children WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrTargetPersonNotFound
	}
	return nil
}
