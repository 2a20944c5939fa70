package matching

import (
	"strings"
	"time"

	"github.com/gdugdh24/reunion-backend/internal/domain"
)

const (
	forwardDefault  = 0.5
	forwardBase     = 0.80
	nameBonus       = 0.10
	birthplaceBonus = 0.10
)

// ForwardScore scores a candidate against one description the searcher registered.
// An exact birth date match starts at 0.80 and names and birthplace add small
// corroborating bonuses. Any other pair of known dates is graded on the birthday
// ladder, with ages taken at now. Without a remembered date the flat default applies.
// Gender does not contribute here.
func ForwardScore(target domain.TargetPerson, candidate domain.Profile, now time.Time) float64 {
	if !sameDate(target.BirthDate, candidate.BirthDate) {
		if !hasDate(target.BirthDate) || !hasDate(candidate.BirthDate) {
			return forwardDefault
		}
		t, c := *target.BirthDate, *candidate.BirthDate
		return BirthdayScore(t, c, Age(t, now), Age(c, now))
	}

	score := forwardBase
	if namesMatch(target, candidate) {
		score += nameBonus
	}
	if pref := target.Prefecture(); pref != "" && pref == candidate.Prefecture() {
		score += birthplaceBonus
	}

	return clamp(score, 0, 1)
}

// BestForwardScore is the forward score of the best-matching description. Descriptions
// without a birth date only count when none of them has one, and the flat default
// applies when the searcher has no descriptions at all.
func BestForwardScore(targets []domain.TargetPerson, candidate domain.Profile, now time.Time) float64 {
	dated := make([]domain.TargetPerson, 0, len(targets))
	for _, t := range targets {
		if hasDate(t.BirthDate) {
			dated = append(dated, t)
		}
	}
	if len(dated) == 0 {
		return forwardDefault
	}

	best := 0.0
	for _, t := range dated {
		if s := ForwardScore(t, candidate, now); s > best {
			best = s
		}
	}
	return best
}

func hasDate(d *time.Time) bool {
	return d != nil && !d.IsZero()
}

func namesMatch(target domain.TargetPerson, candidate domain.Profile) bool {
	return containsEither(target.FullNameKanji(), candidate.FullNameKanji()) ||
		containsEither(target.FullNameHiragana(), candidate.FullNameHiragana())
}

// containsEither reports whether one non-empty name contains the other.
func containsEither(a, b string) bool {
	a, b = normalizeName(a), normalizeName(b)
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// normalizeName drops all whitespace, including the ideographic space.
func normalizeName(s string) string {
	return strings.Join(strings.Fields(s), "")
}
