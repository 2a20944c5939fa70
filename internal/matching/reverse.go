package matching

import (
	"strings"

	"github.com/gdugdh24/reunion-backend/internal/domain"
)

const (
	reverseBase            = 0.20
	reverseCap             = 0.80
	unknownGenderBonus     = 0.10
	missingBirthDateBonus  = 0.10
	hiraganaFullBonus      = 0.15
	hiraganaPartialBonus   = 0.05
	prefectureMatchBonus   = 0.15
	missingPrefectureBonus = 0.05
)

// ReverseVariant selects the birth-year proximity tiers.
type ReverseVariant int

const (
	// ChildFacing stops at the 10-year tier.
	ChildFacing ReverseVariant = iota
	// ParentFacing also rewards differences up to 15 years.
	ParentFacing
)

// VariantFor picks the variant used when a searcher of the given role is checked
// against the counterpart's descriptions.
func VariantFor(searcherRole domain.Role) ReverseVariant {
	if searcherRole == domain.RoleParent {
		return ParentFacing
	}
	return ChildFacing
}

// ReverseScore measures how well the searcher matches what the counterpart is looking
// for. The best of the counterpart's descriptions counts. ok is false when the
// counterpart registered no descriptions at all, which is different from a zero score:
// zero means every description was ruled out by gender.
func ReverseScore(counterpartTargets []domain.TargetPerson, searcher domain.Profile, variant ReverseVariant) (score float64, ok bool) {
	if len(counterpartTargets) == 0 {
		return 0, false
	}

	for _, t := range counterpartTargets {
		if s := reverseScoreFor(t, searcher, variant); s > score {
			score = s
		}
	}
	return score, true
}

func reverseScoreFor(target domain.TargetPerson, searcher domain.Profile, variant ReverseVariant) float64 {
	score := reverseBase

	if target.Gender.Specified() && searcher.Gender.Specified() {
		if *target.Gender != *searcher.Gender {
			return 0
		}
	} else {
		// either side left gender open
		score += unknownGenderBonus
	}

	if target.BirthDate != nil && searcher.BirthDate != nil {
		diff := target.BirthDate.Year() - searcher.BirthDate.Year()
		if diff < 0 {
			diff = -diff
		}
		score += yearProximityBonus(diff, variant)
	} else {
		score += missingBirthDateBonus
	}

	score += hiraganaBonus(target.FullNameHiragana(), searcher.FullNameHiragana())

	if pref := target.Prefecture(); pref == "" {
		score += missingPrefectureBonus
	} else if pref == searcher.Prefecture() {
		score += prefectureMatchBonus
	}

	return clamp(score, 0, reverseCap)
}

func yearProximityBonus(diff int, variant ReverseVariant) float64 {
	switch {
	case diff <= 5:
		return 0.30
	case diff <= 10:
		return 0.20
	case diff <= 15 && variant == ParentFacing:
		return 0.10
	}
	return 0
}

func hiraganaBonus(target, searcher string) float64 {
	target, searcher = normalizeName(target), normalizeName(searcher)
	if target == "" || searcher == "" {
		return 0
	}
	if strings.Contains(target, searcher) || strings.Contains(searcher, target) {
		return hiraganaFullBonus
	}
	if strings.ContainsAny(target, searcher) {
		return hiraganaPartialBonus
	}
	return 0
}
