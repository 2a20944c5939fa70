// Package matching implements the rule-based compatibility scoring between a searcher
// and the opposite-role candidates surfaced for them.
//
// Everything in this package is pure: callers load profiles and target people, the
// package only does arithmetic over them.
package matching

import (
	"time"
)

const (
	scoreFullDate      = 0.80
	scoreMonthDay      = 0.70
	scoreYearMonth     = 0.60
	scoreYearDay       = 0.55
	scoreYearOnly      = 0.50
	scoreSameAge       = 0.25
	scoreAgeOffByOne   = 0.20
	scoreAgeOffByTwo   = 0.15
	scoreAgeWithinFive = 0.10
	scoreAgeBeyondFive = 0.05
)

// Age returns the age in years as the difference of calendar years only. Month and day
// are ignored; thresholds downstream were tuned against this behaviour.
func Age(birth, now time.Time) int {
	return now.Year() - birth.Year()
}

// BirthdayScore grades how well a remembered birth date matches a candidate's real one.
// Rules are checked top to bottom and the first hit wins; when no date component lines
// up the age difference decides, never dropping below 0.05.
func BirthdayScore(target, candidate time.Time, targetAge, candidateAge int) float64 {
	ty, tm, td := target.Date()
	cy, cm, cd := candidate.Date()

	switch {
	case ty == cy && tm == cm && td == cd:
		return scoreFullDate
	case tm == cm && td == cd:
		return scoreMonthDay
	case ty == cy && tm == cm:
		return scoreYearMonth
	case ty == cy && td == cd:
		return scoreYearDay
	case ty == cy:
		return scoreYearOnly
	}

	return ageDifferenceScore(targetAge - candidateAge)
}

func ageDifferenceScore(diff int) float64 {
	if diff < 0 {
		diff = -diff
	}
	switch {
	case diff == 0:
		return scoreSameAge
	case diff == 1:
		return scoreAgeOffByOne
	case diff == 2:
		return scoreAgeOffByTwo
	case diff <= 5:
		return scoreAgeWithinFive
	default:
		return scoreAgeBeyondFive
	}
}

// sameDate compares calendar dates, ignoring clock time and location.
func sameDate(a, b *time.Time) bool {
	if a == nil || b == nil || a.IsZero() || b.IsZero() {
		return false
	}
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
