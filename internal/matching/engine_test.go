package matching

import (
	"testing"
	"time"

	"github.com/gdugdh24/reunion-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *Engine {
	return NewEngine(WithClock(func() time.Time { return fixedNow }))
}

func parentSearcher() Searcher {
	return Searcher{
		Profile: domain.Profile{
			UserID:         uuid.New(),
			Role:           domain.RoleParent,
			BirthDate:      date(1980, 4, 1),
			Gender:         gender(domain.GenderMale),
			LastNameKanji:  "山田",
			FirstNameKanji: "一郎",
		},
		TargetPeople: []domain.TargetPerson{{
			ID:                   uuid.New(),
			BirthDate:            date(2010, 5, 3),
			LastNameKanji:        str("山田"),
			FirstNameKanji:       str("太郎"),
			BirthplacePrefecture: str("東京都"),
		}},
	}
}

func child(birth *time.Time) domain.Profile {
	return domain.Profile{UserID: uuid.New(), Role: domain.RoleChild, BirthDate: birth}
}

func TestRankParentSearcher(t *testing.T) {
	searcher := parentSearcher()
	targetID := searcher.TargetPeople[0].ID

	exact := child(date(2010, 5, 3))
	exact.LastNameKanji, exact.FirstNameKanji = "山田", "太郎"
	exact.BirthplacePrefecture = str("東京都")

	unrelated := child(date(2003, 8, 9))

	excluded := child(date(2010, 5, 3))
	excludedTargets := []domain.TargetPerson{{Gender: gender(domain.GenderFemale)}}

	blended := child(date(2010, 5, 3))
	blendedTargets := []domain.TargetPerson{{Gender: gender(domain.GenderMale), BirthDate: date(1982, 1, 1)}}

	sameRole := domain.Profile{UserID: uuid.New(), Role: domain.RoleParent, BirthDate: date(2010, 5, 3)}

	pool := []Candidate{
		{Profile: unrelated},
		{Profile: excluded, TargetPeople: excludedTargets},
		{Profile: blended, TargetPeople: blendedTargets},
		{Profile: exact},
		{Profile: sameRole},
		{Profile: child(nil)},
	}

	got := newTestEngine().Rank(searcher, pool)
	require.Len(t, got, 3)

	assert.Equal(t, exact.UserID, got[0].MatchedUserID)
	assert.InDelta(t, 1.0, got[0].SimilarityScore, 1e-9)
	assert.InDelta(t, 1.0, got[0].ScorePerChild[targetID], 1e-9)

	// forward 0.80, reverse 0.20 + 0.30 + 0.05 = 0.55
	assert.Equal(t, blended.UserID, got[1].MatchedUserID)
	assert.InDelta(t, 0.70, got[1].SimilarityScore, 1e-9)

	// no date component in common, ages 16 and 23
	assert.Equal(t, unrelated.UserID, got[2].MatchedUserID)
	assert.InDelta(t, 0.05, got[2].SimilarityScore, 1e-9)

	for _, c := range got {
		assert.NotEqual(t, excluded.UserID, c.MatchedUserID)
		assert.Equal(t, domain.RoleChild, c.Role)
	}
}

func TestRankKeepsBestChildScore(t *testing.T) {
	searcher := parentSearcher()
	second := domain.TargetPerson{ID: uuid.New(), BirthDate: date(2014, 2, 2), BirthplacePrefecture: str("福岡県")}
	searcher.TargetPeople = append(searcher.TargetPeople, second)

	candidate := child(date(2014, 2, 2))
	candidate.BirthplacePrefecture = str("福岡県")

	got := newTestEngine().Rank(searcher, []Candidate{{Profile: candidate}})
	require.Len(t, got, 1)

	assert.InDelta(t, 0.90, got[0].SimilarityScore, 1e-9)
	// ages 16 and 12
	assert.InDelta(t, 0.10, got[0].ScorePerChild[searcher.TargetPeople[0].ID], 1e-9)
	assert.InDelta(t, 0.90, got[0].ScorePerChild[second.ID], 1e-9)
}

func TestRankFollowsBirthdayLadder(t *testing.T) {
	searcher := parentSearcher()

	// target is 2010-05-03, aged 16 at the test clock
	tiers := []struct {
		name     string
		birth    *time.Time
		expected float64
	}{
		{name: "full date", birth: date(2010, 5, 3), expected: 1.00},
		{name: "month and day", birth: date(2011, 5, 3), expected: 0.70},
		{name: "year and month", birth: date(2010, 5, 28), expected: 0.60},
		{name: "year and day", birth: date(2010, 11, 3), expected: 0.55},
		{name: "year only", birth: date(2010, 12, 24), expected: 0.50},
		{name: "one year apart", birth: date(2011, 1, 1), expected: 0.20},
		{name: "two years apart", birth: date(2012, 1, 1), expected: 0.15},
		{name: "three years apart", birth: date(2013, 1, 1), expected: 0.10},
		{name: "more than five years apart", birth: date(2017, 1, 1), expected: 0.05},
	}

	engine := newTestEngine()
	pool := make([]Candidate, 0, len(tiers))
	for i, tier := range tiers {
		c := child(tier.birth)
		if i == 0 {
			c.LastNameKanji, c.FirstNameKanji = "山田", "太郎"
			c.BirthplacePrefecture = str("東京都")
		}
		pool = append(pool, Candidate{Profile: c})

		mc, ok := engine.ScorePair(searcher, Candidate{Profile: c})
		require.True(t, ok, tier.name)
		assert.InDelta(t, tier.expected, mc.SimilarityScore, 1e-9, tier.name)
	}

	got := engine.Rank(searcher, pool)
	require.Len(t, got, len(tiers))
	for i := range tiers {
		assert.Equal(t, pool[i].Profile.UserID, got[i].MatchedUserID, tiers[i].name)
	}
}

func TestRankStrictLadderOrdering(t *testing.T) {
	searcher := parentSearcher()
	searcher.TargetPeople[0].LastNameKanji = nil
	searcher.TargetPeople[0].FirstNameKanji = nil
	searcher.TargetPeople[0].BirthplacePrefecture = nil

	births := []*time.Time{
		date(2010, 5, 3),
		date(1995, 5, 3),
		date(2010, 5, 20),
		date(2010, 9, 3),
		date(2010, 9, 9),
		date(2012, 1, 1),
		date(2013, 1, 1),
		date(2000, 1, 1),
	}

	engine := newTestEngine()
	prev := 2.0
	for _, b := range births {
		mc, ok := engine.ScorePair(searcher, Candidate{Profile: child(b)})
		require.True(t, ok)
		assert.Less(t, mc.SimilarityScore, prev, b.Format("2006-01-02"))
		prev = mc.SimilarityScore
	}
}

func TestRankBreaksTiesByUserID(t *testing.T) {
	searcher := parentSearcher()

	a := child(date(2011, 5, 3))
	b := child(date(2011, 5, 3))

	got := newTestEngine().Rank(searcher, []Candidate{{Profile: a}, {Profile: b}})
	require.Len(t, got, 2)

	assert.Equal(t, got[0].SimilarityScore, got[1].SimilarityScore)
	assert.Less(t, got[0].MatchedUserID.String(), got[1].MatchedUserID.String())
}

func TestRankChildSearcher(t *testing.T) {
	searcher := Searcher{
		Profile: domain.Profile{
			UserID:    uuid.New(),
			Role:      domain.RoleChild,
			BirthDate: date(2010, 5, 3),
			Gender:    gender(domain.GenderFemale),
		},
		TargetPeople: []domain.TargetPerson{{ID: uuid.New(), BirthDate: date(1980, 1, 1)}},
	}

	parent := domain.Profile{UserID: uuid.New(), Role: domain.RoleParent, BirthDate: date(1980, 1, 1)}
	rejecting := domain.Profile{UserID: uuid.New(), Role: domain.RoleParent, BirthDate: date(1980, 1, 1)}

	got := newTestEngine().Rank(searcher, []Candidate{
		{Profile: parent},
		{Profile: rejecting, TargetPeople: []domain.TargetPerson{{Gender: gender(domain.GenderMale)}}},
	})

	require.Len(t, got, 1)
	assert.Equal(t, parent.UserID, got[0].MatchedUserID)
	assert.InDelta(t, 0.80, got[0].SimilarityScore, 1e-9)
	assert.Nil(t, got[0].ScorePerChild)
}

func TestRankIneligibleSearcher(t *testing.T) {
	searcher := parentSearcher()
	searcher.Profile.BirthDate = nil

	got := newTestEngine().Rank(searcher, []Candidate{{Profile: child(date(2010, 5, 3))}})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRankIsDeterministic(t *testing.T) {
	searcher := parentSearcher()
	pool := make([]Candidate, 0, 20)
	for i := 0; i < 20; i++ {
		pool = append(pool, Candidate{Profile: child(date(2005+i%6, time.Month(1+i%12), 1+i%28))})
	}

	engine := newTestEngine()
	first := engine.Rank(searcher, pool)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, engine.Rank(searcher, pool))
	}
}

func TestRankSkipsDuplicates(t *testing.T) {
	searcher := parentSearcher()
	c := child(date(2010, 5, 3))

	got := newTestEngine().Rank(searcher, []Candidate{{Profile: c}, {Profile: c}})
	assert.Len(t, got, 1)
}

func TestScorePairGenderExclusion(t *testing.T) {
	searcher := parentSearcher()
	candidate := Candidate{
		Profile:      child(date(2010, 5, 3)),
		TargetPeople: []domain.TargetPerson{{Gender: gender(domain.GenderFemale)}},
	}

	mc, ok := newTestEngine().ScorePair(searcher, candidate)
	assert.False(t, ok)
	assert.Equal(t, 0.0, mc.SimilarityScore)
}

func TestScorePairWithoutReverseData(t *testing.T) {
	searcher := parentSearcher()
	candidate := Candidate{Profile: child(date(2010, 5, 3))}

	mc, ok := newTestEngine().ScorePair(searcher, candidate)
	require.True(t, ok)
	assert.Equal(t, ForwardScore(searcher.TargetPeople[0], candidate.Profile, fixedNow), mc.SimilarityScore)
}
