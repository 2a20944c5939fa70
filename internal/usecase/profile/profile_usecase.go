package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdugdh24/reunion-backend/internal/domain"
	"github.com/gdugdh24/reunion-backend/internal/logger"
	"github.com/gdugdh24/reunion-backend/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
	targetRepo  repository.TargetPersonRepository
	cache       repository.CandidateCache
	validate    *validator.Validate
	log         zerolog.Logger
}

func NewProfileUseCase(
	profileRepo repository.ProfileRepository,
	targetRepo repository.TargetPersonRepository,
	cache repository.CandidateCache,
) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: profileRepo,
		targetRepo:  targetRepo,
		cache:       cache,
		validate:    newValidator(),
		log:         logger.With("profile"),
	}
}

// UpsertProfileRequest represents the full profile of the current user
type UpsertProfileRequest struct {
	Role                   domain.Role    `json:"role" validate:"required,oneof=parent child"`
	BirthDate              *string        `json:"birth_date" validate:"omitempty,datetime=2006-01-02,not_future"`
	Gender                 *domain.Gender `json:"gender" validate:"omitempty,oneof=male female other prefer_not_to_say"`
	LastNameKanji          string         `json:"last_name_kanji" validate:"required,max=64"`
	FirstNameKanji         string         `json:"first_name_kanji" validate:"required,max=64"`
	LastNameHiragana       *string        `json:"last_name_hiragana" validate:"omitempty,max=64,hiragana"`
	FirstNameHiragana      *string        `json:"first_name_hiragana" validate:"omitempty,max=64,hiragana"`
	BirthplacePrefecture   *string        `json:"birthplace_prefecture" validate:"omitempty,max=32"`
	BirthplaceMunicipality *string        `json:"birthplace_municipality" validate:"omitempty,max=64"`
}

// TargetPersonRequest describes someone the current user is looking for. Every
// field is optional since memories are often partial.
type TargetPersonRequest struct {
	BirthDate              *string        `json:"birth_date" validate:"omitempty,datetime=2006-01-02,not_future"`
	Gender                 *domain.Gender `json:"gender" validate:"omitempty,oneof=male female other prefer_not_to_say"`
	LastNameKanji          *string        `json:"last_name_kanji" validate:"omitempty,max=64"`
	FirstNameKanji         *string        `json:"first_name_kanji" validate:"omitempty,max=64"`
	LastNameHiragana       *string        `json:"last_name_hiragana" validate:"omitempty,max=64,hiragana"`
	FirstNameHiragana      *string        `json:"first_name_hiragana" validate:"omitempty,max=64,hiragana"`
	BirthplacePrefecture   *string        `json:"birthplace_prefecture" validate:"omitempty,max=32"`
	BirthplaceMunicipality *string        `json:"birthplace_municipality" validate:"omitempty,max=64"`
	DisplayOrder           *int           `json:"display_order" validate:"omitempty,min=0,max=100"`
}

// GetMyProfile returns current user's profile
func (uc *ProfileUseCase) GetMyProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	return uc.profileRepo.GetByUserID(ctx, userID)
}

// UpsertProfile creates or replaces the current user's profile
func (uc *ProfileUseCase) UpsertProfile(ctx context.Context, userID uuid.UUID, req *UpsertProfileRequest) (*domain.Profile, error) {
	if err := uc.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}
	birthDate, err := parseDate(req.BirthDate)
	if err != nil {
		return nil, err
	}

	profile := &domain.Profile{
		UserID:                 userID,
		Role:                   req.Role,
		BirthDate:              birthDate,
		Gender:                 req.Gender,
		LastNameKanji:          req.LastNameKanji,
		FirstNameKanji:         req.FirstNameKanji,
		LastNameHiragana:       req.LastNameHiragana,
		FirstNameHiragana:      req.FirstNameHiragana,
		BirthplacePrefecture:   req.BirthplacePrefecture,
		BirthplaceMunicipality: req.BirthplaceMunicipality,
	}
	if err := uc.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	uc.invalidate(ctx, userID)
	return profile, nil
}

// ListTargetPeople returns the people the current user is looking for
func (uc *ProfileUseCase) ListTargetPeople(ctx context.Context, userID uuid.UUID) ([]domain.TargetPerson, error) {
	targets, err := uc.targetRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list target people: %w", err)
	}
	return targets, nil
}

// CreateTargetPerson registers another person to look for, up to MaxTargetPeople
func (uc *ProfileUseCase) CreateTargetPerson(ctx context.Context, userID uuid.UUID, req *TargetPersonRequest) (*domain.TargetPerson, error) {
	if err := uc.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	if _, err := uc.profileRepo.GetByUserID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	target := &domain.TargetPerson{UserID: userID}
	if err := applyTargetPerson(target, req); err != nil {
		return nil, err
	}
	if err := uc.targetRepo.Create(ctx, target, domain.MaxTargetPeople); err != nil {
		if errors.Is(err, domain.ErrTooManyTargetPeople) || errors.Is(err, domain.ErrProfileNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create target person: %w", err)
	}

	uc.invalidate(ctx, userID)
	return target, nil
}

// UpdateTargetPerson replaces a target person owned by the current user
func (uc *ProfileUseCase) UpdateTargetPerson(ctx context.Context, userID, targetID uuid.UUID, req *TargetPersonRequest) (*domain.TargetPerson, error) {
	if err := uc.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	target, err := uc.ownedTargetPerson(ctx, userID, targetID)
	if err != nil {
		return nil, err
	}
	if err := applyTargetPerson(target, req); err != nil {
		return nil, err
	}
	if err := uc.targetRepo.Update(ctx, target); err != nil {
		if errors.Is(err, domain.ErrTargetPersonNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update target person: %w", err)
	}

	uc.invalidate(ctx, userID)
	return target, nil
}

// DeleteTargetPerson removes a target person owned by the current user
func (uc *ProfileUseCase) DeleteTargetPerson(ctx context.Context, userID, targetID uuid.UUID) error {
	if _, err := uc.ownedTargetPerson(ctx, userID, targetID); err != nil {
		return err
	}
	if err := uc.targetRepo.Delete(ctx, targetID); err != nil {
		if errors.Is(err, domain.ErrTargetPersonNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete target person: %w", err)
	}

	uc.invalidate(ctx, userID)
	return nil
}

func (uc *ProfileUseCase) ownedTargetPerson(ctx context.Context, userID, targetID uuid.UUID) (*domain.TargetPerson, error) {
	target, err := uc.targetRepo.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, domain.ErrTargetPersonNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load target person: %w", err)
	}
	if target.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return target, nil
}

func (uc *ProfileUseCase) invalidate(ctx context.Context, userID uuid.UUID) {
	if err := uc.cache.Invalidate(ctx, userID); err != nil {
		uc.log.Warn().Err(err).Str("user_id", userID.String()).Msg("failed to invalidate candidate cache")
	}
}

func applyTargetPerson(target *domain.TargetPerson, req *TargetPersonRequest) error {
	birthDate, err := parseDate(req.BirthDate)
	if err != nil {
		return err
	}
	target.BirthDate = birthDate
	target.Gender = req.Gender
	target.LastNameKanji = req.LastNameKanji
	target.FirstNameKanji = req.FirstNameKanji
	target.LastNameHiragana = req.LastNameHiragana
	target.FirstNameHiragana = req.FirstNameHiragana
	target.BirthplacePrefecture = req.BirthplacePrefecture
	target.BirthplaceMunicipality = req.BirthplaceMunicipality
	if req.DisplayOrder != nil {
		target.DisplayOrder = *req.DisplayOrder
	}
	return nil
}
