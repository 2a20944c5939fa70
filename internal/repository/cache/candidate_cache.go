package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gdugdh24/reunion-backend/internal/domain"
	"github.com/gdugdh24/reunion-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	candidateKeyPrefix = "match_candidates:"
	listedInKeyPrefix  = "match_candidates_listed_in:"
)

type redisCandidateCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCandidateCache stores ranked candidate lists as JSON under a per-user key.
// Each cached list is also indexed by the candidates it contains, so that invalidating a
// user drops both their own list and every list they appear in. A zero ttl disables
// caching.
func NewRedisCandidateCache(client *redis.Client, ttl time.Duration) repository.CandidateCache {
	if client == nil || ttl <= 0 {
		return NewNoopCandidateCache()
	}
	return &redisCandidateCache{client: client, ttl: ttl}
}

func candidateKey(userID uuid.UUID) string {
	return candidateKeyPrefix + userID.String()
}

// listedInKey names the set of searchers whose cached list contains userID.
func listedInKey(userID uuid.UUID) string {
	return listedInKeyPrefix + userID.String()
}

func (c *redisCandidateCache) Get(ctx context.Context, userID uuid.UUID) ([]domain.MatchCandidate, bool, error) {
	data, err := c.client.Get(ctx, candidateKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get cached candidates: %w", err)
	}

	candidates, err := decodeCandidates(data)
	if err != nil {
		return nil, false, err
	}
	return candidates, true, nil
}

func (c *redisCandidateCache) Set(ctx context.Context, userID uuid.UUID, candidates []domain.MatchCandidate) error {
	data, err := encodeCandidates(candidates)
	if err != nil {
		return err
	}

	searcher := userID.String()
	_, err = c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, candidateKey(userID), data, c.ttl)
		for _, candidate := range candidates {
			key := listedInKey(candidate.MatchedUserID)
			pipe.SAdd(ctx, key, searcher)
			pipe.Expire(ctx, key, c.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("set cached candidates: %w", err)
	}
	return nil
}

func (c *redisCandidateCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	searchers, err := c.client.SMembers(ctx, listedInKey(userID)).Result()
	if err != nil {
		return fmt.Errorf("list searchers caching %s: %w", userID, err)
	}

	keys := make([]string, 0, len(searchers)+2)
	keys = append(keys, candidateKey(userID), listedInKey(userID))
	for _, s := range searchers {
		id, err := uuid.Parse(s)
		if err != nil {
			continue
		}
		keys = append(keys, candidateKey(id))
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("invalidate cached candidates: %w", err)
	}
	return nil
}

func encodeCandidates(candidates []domain.MatchCandidate) ([]byte, error) {
	if candidates == nil {
		candidates = []domain.MatchCandidate{}
	}
	data, err := json.Marshal(candidates)
	if err != nil {
		return nil, fmt.Errorf("encode candidates: %w", err)
	}
	return data, nil
}

func decodeCandidates(data []byte) ([]domain.MatchCandidate, error) {
	candidates := []domain.MatchCandidate{}
	if err := json.Unmarshal(data, &candidates); err != nil {
		return nil, fmt.Errorf("decode candidates: %w", err)
	}
	return candidates, nil
}

type noopCandidateCache struct{}

// NewNoopCandidateCache never stores anything; used when redis is disabled.
func NewNoopCandidateCache() repository.CandidateCache {
	return noopCandidateCache{}
}

func (noopCandidateCache) Get(context.Context, uuid.UUID) ([]domain.MatchCandidate, bool, error) {
	return nil, false, nil
}

func (noopCandidateCache) Set(context.Context, uuid.UUID, []domain.MatchCandidate) error {
	return nil
}

func (noopCandidateCache) Invalidate(context.Context, uuid.UUID) error {
	return nil
}
