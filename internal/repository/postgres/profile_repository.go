package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gdugdh24/reunion-backend/internal/domain"
	"github.com/gdugdh24/reunion-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const profileColumns = `
	user_id, role, birth_date, gender,
	last_name_kanji, first_name_kanji, last_name_hiragana, first_name_hiragana,
	birthplace_prefecture, birthplace_municipality,
	created_at, updated_at`

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	var profile domain.Profile
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`
	err := r.db.GetContext(ctx, &profile, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Upsert(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (
			user_id, role, birth_date, gender,
			last_name_kanji, first_name_kanji, last_name_hiragana, first_name_hiragana,
			birthplace_prefecture, birthplace_municipality
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id) DO UPDATE SET
			role = EXCLUDED.role,
			birth_date = EXCLUDED.birth_date,
			gender = EXCLUDED.gender,
			last_name_kanji = EXCLUDED.last_name_kanji,
			first_name_kanji = EXCLUDED.first_name_kanji,
			last_name_hiragana = EXCLUDED.last_name_hiragana,
			first_name_hiragana = EXCLUDED.first_name_hiragana,
			birthplace_prefecture = EXCLUDED.birthplace_prefecture,
			birthplace_municipality = EXCLUDED.birthplace_municipality,
			updated_at = CURRENT_TIMESTAMP
		RETURNING created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		profile.UserID, profile.Role, profile.BirthDate, profile.Gender,
		profile.LastNameKanji, profile.FirstNameKanji, profile.LastNameHiragana, profile.FirstNameHiragana,
		profile.BirthplacePrefecture, profile.BirthplaceMunicipality,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
}

func (r *profileRepository) ListByBirthDate(ctx context.Context, birthDate time.Time, role domain.Role) ([]domain.Profile, error) {
	profiles := []domain.Profile{}
	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE role = $1 AND birth_date = $2::date
		ORDER BY created_at
	`
	err := r.db.SelectContext(ctx, &profiles, query, role, birthDate.Format(dateLayout))
	return profiles, err
}

func (r *profileRepository) ListByRole(ctx context.Context, role domain.Role) ([]domain.Profile, error) {
	profiles := []domain.Profile{}
	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE role = $1 AND birth_date IS NOT NULL
		ORDER BY created_at
	`
	err := r.db.SelectContext(ctx, &profiles, query, role)
	return profiles, err
}

const dateLayout = "2006-01-02"
