package schema

import "time"

// ContributionSummary is the aggregated activity of one user over a
// contribution window.
type ContributionSummary struct {
	ContributionsTotalCount int `json:"contributionsTotalCount"`
	Score                   int `json:"score"`
}

// RankedUser is one user row on a computed leaderboard. It is derived
// per request and never persisted.
type RankedUser struct {
	Username                string `json:"username"`
	Name                    string `json:"name"`
	AvatarURL               string `json:"avatar_url"`
	ProfileURL              string `json:"profile_url"`
	ContributionsTotalCount int    `json:"contributionsTotalCount"`
	Score                   int    `json:"score"`
	IsMember                bool   `json:"isJOSAMember"`
	CurrentRank             int    `json:"currentRank"`
}

// RankedOrganization is one organization row on a computed leaderboard.
type RankedOrganization struct {
	Username          string `json:"username"`
	Name              string `json:"name"`
	AvatarURL         string `json:"avatar_url"`
	ProfileURL        string `json:"profile_url"`
	RepositoriesCount int    `json:"repositories_count"`
	CurrentRank       int    `json:"currentRank"`
}

// UserLeaderboard is the full ranked result before pagination.
// TotalCount is the number of ranked users after filtering and search,
// not the page size.
type UserLeaderboard struct {
	Users      []RankedUser `json:"users"`
	TotalCount int          `json:"totalCount"`
}

// GrowthSeries is a cumulative time series of counts, keyed by year and
// month. Exactly one of Monthly or Daily is populated, according to
// Granularity. Daily slices are pre-sized to the true calendar month
// length and hold the running total as of each day.
type GrowthSeries struct {
	Granularity Granularity           `json:"granularity"`
	Monthly     map[int]map[int]int   `json:"monthly,omitempty"`
	Daily       map[int]map[int][]int `json:"daily,omitempty"`
}

// Stamp is one dated unit of input for the time-bucket accumulator.
// Weight is the number of items the stamp represents (commit batches
// carry their commit count; everything else weighs one).
type Stamp struct {
	At     time.Time
	Weight int
}
