package match

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdugdh24/reunion-backend/internal/domain"
	"github.com/gdugdh24/reunion-backend/internal/logger"
	"github.com/gdugdh24/reunion-backend/internal/matching"
	"github.com/gdugdh24/reunion-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type MatchUseCase struct {
	matchRepo   repository.MatchRepository
	profileRepo repository.ProfileRepository
	targetRepo  repository.TargetPersonRepository
	engine      *matching.Engine
	log         zerolog.Logger
}

func NewMatchUseCase(
	matchRepo repository.MatchRepository,
	profileRepo repository.ProfileRepository,
	targetRepo repository.TargetPersonRepository,
	engine *matching.Engine,
) *MatchUseCase {
	return &MatchUseCase{
		matchRepo:   matchRepo,
		profileRepo: profileRepo,
		targetRepo:  targetRepo,
		engine:      engine,
		log:         logger.With("match"),
	}
}

// CreateMatchRequest represents a match request towards another user
type CreateMatchRequest struct {
	MatchedUserID uuid.UUID `json:"matched_user_id" binding:"required"`
}

// RespondRequest represents the answer to a pending match
type RespondRequest struct {
	Accept *bool `json:"accept" binding:"required"`
}

// RequestMatch opens a pending match between a parent and a child. The similarity
// score is computed from the requester's side at creation time.
func (uc *MatchUseCase) RequestMatch(ctx context.Context, requesterID, matchedUserID uuid.UUID) (*domain.Match, error) {
	if requesterID == matchedUserID {
		return nil, domain.ErrInvalidPairing
	}

	requester, err := uc.profileRepo.GetByUserID(ctx, requesterID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load requester profile: %w", err)
	}

	other, err := uc.profileRepo.GetByUserID(ctx, matchedUserID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, domain.ErrInvalidPairing
		}
		return nil, fmt.Errorf("failed to load matched profile: %w", err)
	}

	if requester.Role != other.Role.Opposite() || !requester.Eligible() || !other.Eligible() {
		return nil, domain.ErrInvalidPairing
	}

	parentID, childID := requester.UserID, other.UserID
	if requester.Role == domain.RoleChild {
		parentID, childID = childID, parentID
	}

	existing, err := uc.matchRepo.GetByPair(ctx, parentID, childID)
	if err == nil && existing != nil {
		return nil, domain.ErrMatchAlreadyExists
	}
	if err != nil && !errors.Is(err, domain.ErrMatchNotFound) {
		return nil, fmt.Errorf("failed to check existing match: %w", err)
	}

	requesterTargets, err := uc.targetRepo.ListByUserID(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to load requester target people: %w", err)
	}
	otherTargets, err := uc.targetRepo.ListByUserID(ctx, matchedUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load matched target people: %w", err)
	}

	scored, ok := uc.engine.ScorePair(
		matching.Searcher{Profile: *requester, TargetPeople: requesterTargets},
		matching.Candidate{Profile: *other, TargetPeople: otherTargets},
	)
	if !ok {
		return nil, domain.ErrMatchExcluded
	}

	match := &domain.Match{
		ParentID:        parentID,
		ChildID:         childID,
		RequestedBy:     requesterID,
		Status:          domain.MatchStatusPending,
		SimilarityScore: scored.SimilarityScore,
	}
	if err := uc.matchRepo.Create(ctx, match); err != nil {
		if errors.Is(err, domain.ErrMatchAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	uc.log.Info().
		Str("match_id", match.ID.String()).
		Str("requested_by", requesterID.String()).
		Float64("similarity_score", match.SimilarityScore).
		Msg("match requested")

	return match, nil
}

// RespondToMatch accepts or rejects a pending match. Only the party that did not
// request it may answer.
func (uc *MatchUseCase) RespondToMatch(ctx context.Context, userID, matchID uuid.UUID, accept bool) (*domain.Match, error) {
	match, err := uc.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, domain.ErrMatchNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load match: %w", err)
	}

	if !match.HasUser(userID) || match.RequestedBy == userID {
		return nil, domain.ErrForbidden
	}
	if match.Status != domain.MatchStatusPending {
		return nil, domain.ErrMatchNotPending
	}

	status := domain.MatchStatusRejected
	if accept {
		status = domain.MatchStatusAccepted
	}
	if err := uc.matchRepo.UpdateStatus(ctx, match.ID, status); err != nil {
		if errors.Is(err, domain.ErrMatchNotPending) || errors.Is(err, domain.ErrMatchNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update match status: %w", err)
	}
	match.Status = status

	uc.log.Info().
		Str("match_id", match.ID.String()).
		Str("status", string(status)).
		Msg("match answered")

	return match, nil
}

// ListMatches returns the user's matches, newest first
func (uc *MatchUseCase) ListMatches(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Match, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	matches, err := uc.matchRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return matches, nil
}
