package matching

const (
	forwardWeight = 0.60
	reverseWeight = 0.40
)

// Blend combines both directions into the final similarity score. Without a reverse
// score the forward score passes through untouched. A reverse score of exactly zero is
// a hard exclusion and excluded is reported true.
func Blend(forward, reverse float64, hasReverse bool) (score float64, excluded bool) {
	if !hasReverse {
		return clamp(forward, 0, 1), false
	}
	if reverse == 0 {
		return 0, true
	}
	return clamp(forward*forwardWeight+reverse*reverseWeight, 0, 1), false
}
