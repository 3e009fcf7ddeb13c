package core

import (
	"time"

	"github.com/jordanopensource/topcontrib/internal/contract"
	"github.com/jordanopensource/topcontrib/schema"
)

// LeaderboardOptions carries the already-parsed request parameters for
// one leaderboard computation. Now is the reference time for relative
// periods and must be injected by the caller.
type LeaderboardOptions struct {
	SortBy      schema.SortKey
	Period      string
	Type        schema.ContributionType
	MembersOnly bool
	Search      string
	Now         time.Time
}

// ComputeUserLeaderboard aggregates, ranks and optionally searches the
// user collection. Every selector is validated up front; an unrecognized
// value is rejected rather than defaulted past. The input slice is read
// only, so shared cache snapshots are safe to pass directly.
func ComputeUserLeaderboard(users []schema.User, opts LeaderboardOptions) (*schema.UserLeaderboard, error) {
	sortBy := opts.SortBy
	if sortBy == "" {
		sortBy = schema.SortByScore
	}
	if _, ok := schema.ValidSortKeys[sortBy]; !ok {
		return nil, contract.InvalidParameter("sort_by", string(opts.SortBy))
	}
	cType := opts.Type
	if cType == "" {
		cType = schema.AllContributions
	}
	if _, ok := schema.ValidContributionTypes[cType]; !ok {
		return nil, contract.InvalidParameter("type", string(opts.Type))
	}
	window, err := ParseWindow(opts.Period, opts.Now)
	if err != nil {
		return nil, err
	}

	aggOpts := AggregateOptions{Window: window, Type: cType}
	entries := make([]schema.RankedUser, 0, len(users))
	for i := range users {
		u := &users[i]
		if opts.MembersOnly && !u.IsMember {
			continue
		}
		summary := AggregateUser(u, aggOpts)
		entries = append(entries, schema.RankedUser{
			Username:                u.Username,
			Name:                    u.Name,
			AvatarURL:               u.AvatarURL,
			ProfileURL:              u.ProfileURL,
			ContributionsTotalCount: summary.ContributionsTotalCount,
			Score:                   summary.Score,
			IsMember:                u.IsMember,
		})
	}

	ranked := RankUsers(entries, sortBy)
	if opts.Search != "" {
		ranked = SearchRanked(ranked, opts.Search)
	}
	return &schema.UserLeaderboard{Users: ranked, TotalCount: len(ranked)}, nil
}

// ComputeOrganizationLeaderboard ranks organizations by repository count.
func ComputeOrganizationLeaderboard(orgs []schema.Organization, order schema.SortOrder) ([]schema.RankedOrganization, error) {
	if order == "" {
		order = schema.Descending
	}
	if _, ok := schema.ValidSortOrders[order]; !ok {
		return nil, contract.InvalidParameter("sort", string(order))
	}

	entries := make([]schema.RankedOrganization, 0, len(orgs))
	for _, o := range orgs {
		entries = append(entries, schema.RankedOrganization{
			Username:          o.Username,
			Name:              o.Name,
			AvatarURL:         o.AvatarURL,
			ProfileURL:        o.ProfileURL,
			RepositoriesCount: o.RepositoriesCount,
		})
	}
	return RankOrganizations(entries, order), nil
}

// Paginate slices a collection by 1-based page number and page size.
// Out-of-range pages yield an empty, non-nil slice.
func Paginate[T any](items []T, page, limit int) []T {
	if limit <= 0 {
		limit = contract.DefaultPageLimit
	}
	if page <= 0 {
		page = 1
	}
	// Bound the page before multiplying so huge values cannot overflow
	// the start offset into a negative slice index.
	if page > len(items)/limit+1 {
		return []T{}
	}
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := min(start+limit, len(items))
	return items[start:end]
}
