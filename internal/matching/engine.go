package matching

import (
	"sort"
	"time"

	"github.com/gdugdh24/reunion-backend/internal/domain"
	"github.com/google/uuid"
)

// Searcher is the user running a search together with the people they look for.
type Searcher struct {
	Profile      domain.Profile
	TargetPeople []domain.TargetPerson
}

// Candidate is a prospective match together with the people they look for, which
// drive the reverse direction.
type Candidate struct {
	Profile      domain.Profile
	TargetPeople []domain.TargetPerson
}

// Engine scores and ranks candidates. It holds no state besides its clock and is safe
// for concurrent use.
type Engine struct {
	now func() time.Time
}

type Option func(*Engine)

// WithClock overrides the clock used for age calculations.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Now exposes the engine clock so callers share one notion of the current year.
func (e *Engine) Now() time.Time {
	return e.now()
}

// Rank scores every eligible candidate and drops hard exclusions. Results are ordered
// by similarity score, then by user ID.
func (e *Engine) Rank(searcher Searcher, pool []Candidate) []domain.MatchCandidate {
	out := []domain.MatchCandidate{}
	if !searcher.Profile.Eligible() {
		return out
	}

	now := e.now()
	seen := make(map[uuid.UUID]struct{}, len(pool))

	for _, c := range pool {
		if _, dup := seen[c.Profile.UserID]; dup {
			continue
		}
		seen[c.Profile.UserID] = struct{}{}

		mc, ok := e.score(searcher, c, now)
		if !ok {
			continue
		}
		out = append(out, mc)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.SimilarityScore != b.SimilarityScore {
			return a.SimilarityScore > b.SimilarityScore
		}
		return a.MatchedUserID.String() < b.MatchedUserID.String()
	})
	return out
}

// ScorePair scores a single pairing. ok is false when the pairing is ineligible or
// excluded.
func (e *Engine) ScorePair(searcher Searcher, candidate Candidate) (domain.MatchCandidate, bool) {
	if !searcher.Profile.Eligible() {
		return domain.MatchCandidate{}, false
	}
	return e.score(searcher, candidate, e.now())
}

func (e *Engine) score(searcher Searcher, c Candidate, now time.Time) (domain.MatchCandidate, bool) {
	me := searcher.Profile
	if c.Profile.UserID == me.UserID || c.Profile.Role != me.Role.Opposite() || !c.Profile.Eligible() {
		return domain.MatchCandidate{}, false
	}

	reverse, hasReverse := ReverseScore(c.TargetPeople, me, VariantFor(me.Role))
	mc := domain.MatchCandidate{
		MatchedUserID: c.Profile.UserID,
		Role:          c.Profile.Role,
	}

	// Parents see one score per registered child.
	if me.Role == domain.RoleParent && len(searcher.TargetPeople) > 0 {
		mc.ScorePerChild = make(map[uuid.UUID]float64, len(searcher.TargetPeople))
		kept := false
		for _, t := range searcher.TargetPeople {
			final, excluded := Blend(ForwardScore(t, c.Profile, now), reverse, hasReverse)
			mc.ScorePerChild[t.ID] = final
			if excluded || final == 0 {
				continue
			}
			kept = true
			if final > mc.SimilarityScore {
				mc.SimilarityScore = final
			}
		}
		return mc, kept
	}

	final, excluded := Blend(BestForwardScore(searcher.TargetPeople, c.Profile, now), reverse, hasReverse)
	if excluded || final == 0 {
		return domain.MatchCandidate{}, false
	}
	mc.SimilarityScore = final
	return mc, true
}
