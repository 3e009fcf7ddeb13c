package core

import (
	"slices"
	"sort"

	"github.com/jordanopensource/topcontrib/schema"
)

// RankUsers orders entries descending by the chosen metric and assigns
// dense ranks: ties share a rank and the next distinct value takes the
// immediately following rank, with no gaps. The input slice is cloned
// before sorting so shared snapshots are never reordered in place.
func RankUsers(entries []schema.RankedUser, by schema.SortKey) []schema.RankedUser {
	metric := func(e schema.RankedUser) int {
		if by == schema.SortByContributions {
			return e.ContributionsTotalCount
		}
		return e.Score
	}

	ranked := slices.Clone(entries)
	sort.SliceStable(ranked, func(i, j int) bool {
		return metric(ranked[i]) > metric(ranked[j])
	})
	for i := range ranked {
		switch {
		case i == 0:
			ranked[i].CurrentRank = 1
		case metric(ranked[i]) == metric(ranked[i-1]):
			ranked[i].CurrentRank = ranked[i-1].CurrentRank
		default:
			ranked[i].CurrentRank = ranked[i-1].CurrentRank + 1
		}
	}
	return ranked
}

// RankOrganizations orders organizations by repository count and assigns
// dense ranks the same way. Ranks always reflect the descending order;
// an ascending request only reverses the presentation.
func RankOrganizations(entries []schema.RankedOrganization, order schema.SortOrder) []schema.RankedOrganization {
	ranked := slices.Clone(entries)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RepositoriesCount > ranked[j].RepositoriesCount
	})
	for i := range ranked {
		switch {
		case i == 0:
			ranked[i].CurrentRank = 1
		case ranked[i].RepositoriesCount == ranked[i-1].RepositoriesCount:
			ranked[i].CurrentRank = ranked[i-1].CurrentRank
		default:
			ranked[i].CurrentRank = ranked[i-1].CurrentRank + 1
		}
	}
	if order == schema.Ascending {
		slices.Reverse(ranked)
	}
	return ranked
}
