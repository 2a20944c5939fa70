package matching

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdugdh24/reunion-backend/internal/domain"
	"github.com/gdugdh24/reunion-backend/internal/logger"
	engine "github.com/gdugdh24/reunion-backend/internal/matching"
	"github.com/gdugdh24/reunion-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const defaultLoaderWait = 2 * time.Millisecond

type MatchingUseCase struct {
	profileRepo repository.ProfileRepository
	targetRepo  repository.TargetPersonRepository
	cache       repository.CandidateCache
	engine      *engine.Engine
	loaderWait  time.Duration
	log         zerolog.Logger
}

func NewMatchingUseCase(
	profileRepo repository.ProfileRepository,
	targetRepo repository.TargetPersonRepository,
	cache repository.CandidateCache,
	eng *engine.Engine,
) *MatchingUseCase {
	return &MatchingUseCase{
		profileRepo: profileRepo,
		targetRepo:  targetRepo,
		cache:       cache,
		engine:      eng,
		loaderWait:  defaultLoaderWait,
		log:         logger.With("matching"),
	}
}

// FindCandidates returns the ranked candidate list for userID. A user without a
// profile or birth date gets an empty list.
func (uc *MatchingUseCase) FindCandidates(ctx context.Context, userID uuid.UUID) ([]domain.MatchCandidate, error) {
	searcher, err := uc.profileRepo.GetByUserID(ctx, userID)
	if errors.Is(err, domain.ErrProfileNotFound) {
		return []domain.MatchCandidate{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load searcher profile: %w", err)
	}
	if !searcher.Eligible() {
		return []domain.MatchCandidate{}, nil
	}

	if cached, ok, err := uc.cache.Get(ctx, userID); err != nil {
		uc.log.Warn().Err(err).Str("user_id", userID.String()).Msg("candidate cache read failed")
	} else if ok {
		return cached, nil
	}

	targets, err := uc.targetRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load target people: %w", err)
	}

	pool, err := uc.candidatesByBirthDate(ctx, searcher.Role.Opposite(), targets)
	if err != nil {
		return nil, err
	}

	fallback := false
	if len(pool) == 0 {
		fallback = true
		pool, err = uc.fallbackPool(ctx, searcher)
		if err != nil {
			return nil, err
		}
	}

	candidates, err := uc.attachTargetPeople(ctx, pool)
	if err != nil {
		return nil, err
	}

	result := uc.engine.Rank(engine.Searcher{Profile: *searcher, TargetPeople: targets}, candidates)

	uc.log.Debug().
		Str("user_id", userID.String()).
		Int("pool", len(pool)).
		Int("ranked", len(result)).
		Bool("fallback", fallback).
		Msg("candidates ranked")

	if err := uc.cache.Set(ctx, userID, result); err != nil {
		uc.log.Warn().Err(err).Str("user_id", userID.String()).Msg("candidate cache write failed")
	}
	return result, nil
}

// candidatesByBirthDate queries profiles sharing any remembered birth date. One query
// runs per distinct date.
func (uc *MatchingUseCase) candidatesByBirthDate(ctx context.Context, role domain.Role, targets []domain.TargetPerson) ([]domain.Profile, error) {
	dates := distinctBirthDates(targets)
	if len(dates) == 0 {
		return nil, nil
	}

	found := make([][]domain.Profile, len(dates))
	g, gctx := errgroup.WithContext(ctx)
	for i, d := range dates {
		i, d := i, d
		g.Go(func() error {
			profiles, err := uc.profileRepo.ListByBirthDate(gctx, d, role)
			if err != nil {
				return fmt.Errorf("failed to list profiles born %s: %w", d.Format(time.DateOnly), err)
			}
			found[i] = profiles
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return dedupeProfiles(found...), nil
}

func (uc *MatchingUseCase) fallbackPool(ctx context.Context, searcher *domain.Profile) ([]domain.Profile, error) {
	all, err := uc.profileRepo.ListByRole(ctx, searcher.Role.Opposite())
	if err != nil {
		return nil, fmt.Errorf("failed to list fallback profiles: %w", err)
	}

	selected := engine.SelectFallback(searcher, all, uc.engine.Now())
	keep := make(map[uuid.UUID]struct{}, len(selected))
	for _, c := range selected {
		keep[c.MatchedUserID] = struct{}{}
	}

	pool := make([]domain.Profile, 0, len(selected))
	for _, p := range all {
		if _, ok := keep[p.UserID]; ok {
			pool = append(pool, p)
		}
	}
	return pool, nil
}

func (uc *MatchingUseCase) attachTargetPeople(ctx context.Context, pool []domain.Profile) ([]engine.Candidate, error) {
	if len(pool) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, len(pool))
	for i, p := range pool {
		ids[i] = p.UserID
	}

	loader := newTargetPeopleLoader(uc.targetRepo, uc.loaderWait)
	targets, errs := loader.LoadMany(ctx, ids)()
	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("failed to load candidate target people: %w", err)
		}
	}

	candidates := make([]engine.Candidate, len(pool))
	for i, p := range pool {
		candidates[i] = engine.Candidate{Profile: p}
		if i < len(targets) {
			candidates[i].TargetPeople = targets[i]
		}
	}
	return candidates, nil
}

func distinctBirthDates(targets []domain.TargetPerson) []time.Time {
	seen := make(map[string]struct{}, len(targets))
	dates := make([]time.Time, 0, len(targets))
	for _, t := range targets {
		if t.BirthDate == nil || t.BirthDate.IsZero() {
			continue
		}
		key := t.BirthDate.Format(time.DateOnly)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		dates = append(dates, *t.BirthDate)
	}
	return dates
}

func dedupeProfiles(groups ...[]domain.Profile) []domain.Profile {
	seen := make(map[uuid.UUID]struct{})
	var out []domain.Profile
	for _, group := range groups {
		for _, p := range group {
			if _, ok := seen[p.UserID]; ok {
				continue
			}
			seen[p.UserID] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}
