package core

import (
	"strings"

	"github.com/jordanopensource/topcontrib/schema"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// searchTolerance is the maximum Levenshtein distance accepted for a
// non-substring match. Kept tight so search stays near-exact.
const searchTolerance = 2

// SearchRanked narrows a ranked collection to entries whose username or
// name approximately matches the query. Matches are collected by walking
// the ranked slice in order, which preserves leaderboard order; the
// library's ranked search sorts by match quality and is deliberately not
// used here.
func SearchRanked(entries []schema.RankedUser, query string) []schema.RankedUser {
	query = strings.ToLower(strings.TrimSpace(query))
	var out []schema.RankedUser
	for _, e := range entries {
		if matchesQuery(query, e.Username) || matchesQuery(query, e.Name) {
			out = append(out, e)
		}
	}
	return out
}

// matchesQuery reports a case-insensitive substring match, or a whole-
// field match within the edit-distance tolerance for typos. The
// tolerance shrinks for one- and two-character queries, which would
// otherwise be within distance two of almost any short field.
func matchesQuery(query, field string) bool {
	if query == "" || field == "" {
		return false
	}
	field = strings.ToLower(field)
	if strings.Contains(field, query) {
		return true
	}
	tolerance := min(searchTolerance, len(query)-1)
	return fuzzy.LevenshteinDistance(query, field) <= tolerance
}
