package core

import (
	"testing"

	"github.com/jordanopensource/topcontrib/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankedFixture() []schema.RankedUser {
	return []schema.RankedUser{
		{Username: "muayyad-alsadi", Name: "Muayyad Alsadi", CurrentRank: 1},
		{Username: "odeh", Name: "Odeh Qawasmeh", CurrentRank: 2},
		{Username: "lina", Name: "Lina Haddad", CurrentRank: 3},
		{Username: "osama", Name: "Osama Odeh", CurrentRank: 4},
	}
}

// TestSearchRanked_SubstringMatch tests case-insensitive substring
// matching on username and name.
func TestSearchRanked_SubstringMatch(t *testing.T) {
	got := SearchRanked(rankedFixture(), "ALSADI")
	require.Len(t, got, 1)
	assert.Equal(t, "muayyad-alsadi", got[0].Username)
}

// TestSearchRanked_MatchOnEitherField tests that matching both fields
// still includes the entity once, and name-only matches are found.
func TestSearchRanked_MatchOnEitherField(t *testing.T) {
	got := SearchRanked(rankedFixture(), "odeh")
	require.Len(t, got, 2)
	assert.Equal(t, "odeh", got[0].Username)
	assert.Equal(t, "osama", got[1].Username)
}

// TestSearchRanked_TypoTolerance tests near-exact matching within the
// edit-distance tolerance.
func TestSearchRanked_TypoTolerance(t *testing.T) {
	got := SearchRanked(rankedFixture(), "lena")
	require.Len(t, got, 1)
	assert.Equal(t, "lina", got[0].Username)
}

// TestSearchRanked_TightTolerance tests that distant queries do not match.
func TestSearchRanked_TightTolerance(t *testing.T) {
	assert.Empty(t, SearchRanked(rankedFixture(), "zzzzzzzz"))
}

// TestSearchRanked_ShortQueryStaysExact tests that short queries do not
// fuzzy-match unrelated short fields.
func TestSearchRanked_ShortQueryStaysExact(t *testing.T) {
	entries := []schema.RankedUser{
		{Username: "x", CurrentRank: 1},
		{Username: "al-farouq", CurrentRank: 2},
		{Username: "zb", CurrentRank: 3},
	}

	got := SearchRanked(entries, "al")
	require.Len(t, got, 1)
	assert.Equal(t, "al-farouq", got[0].Username)

	assert.Empty(t, SearchRanked(entries, "w"))
}

// TestSearchRanked_OrderPreservation tests that the output is a
// subsequence of the input in the same relative order.
func TestSearchRanked_OrderPreservation(t *testing.T) {
	entries := []schema.RankedUser{
		{Username: "abc-one", CurrentRank: 1},
		{Username: "xyz", CurrentRank: 2},
		{Username: "abc-two", CurrentRank: 2},
		{Username: "abc-three", CurrentRank: 3},
	}
	got := SearchRanked(entries, "abc")
	require.Len(t, got, 3)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i].CurrentRank, got[i-1].CurrentRank)
	}
	assert.Equal(t, "abc-one", got[0].Username)
	assert.Equal(t, "abc-two", got[1].Username)
	assert.Equal(t, "abc-three", got[2].Username)
}
