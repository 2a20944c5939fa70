package matching

import (
	"time"

	"github.com/gdugdh24/reunion-backend/internal/domain"
)

// FallbackScore is the flat score given to candidates picked by age band alone.
const FallbackScore = 0.5

// AgeBand is an inclusive age range.
type AgeBand struct {
	Min int
	Max int
}

func (b AgeBand) Contains(age int) bool {
	return age >= b.Min && age <= b.Max
}

var (
	// ChildAgeBand bounds the ages of children shown to a searching parent.
	ChildAgeBand = AgeBand{Min: 0, Max: 25}
	// ParentAgeBand bounds the ages of parents shown to a searching child. Candidates
	// must also be strictly older than the child.
	ParentAgeBand = AgeBand{Min: 20, Max: 70}
)

// SelectFallback widens the pool by age when no candidate shares a remembered birth
// date. It returns an empty list when the searcher has no profile or no birth date.
func SelectFallback(searcher *domain.Profile, pool []domain.Profile, now time.Time) []domain.MatchCandidate {
	out := []domain.MatchCandidate{}
	if !searcher.Eligible() {
		return out
	}

	ownAge := Age(*searcher.BirthDate, now)
	want := searcher.Role.Opposite()

	for _, p := range pool {
		if p.UserID == searcher.UserID || p.Role != want || !p.Eligible() {
			continue
		}
		age := Age(*p.BirthDate, now)
		if !acceptsAge(searcher.Role, ownAge, age) {
			continue
		}
		out = append(out, domain.MatchCandidate{
			MatchedUserID:   p.UserID,
			Role:            p.Role,
			SimilarityScore: FallbackScore,
		})
	}
	return out
}

func acceptsAge(searcherRole domain.Role, ownAge, candidateAge int) bool {
	if searcherRole == domain.RoleParent {
		return ChildAgeBand.Contains(candidateAge)
	}
	return ParentAgeBand.Contains(candidateAge) && candidateAge > ownAge
}
