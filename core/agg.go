package core

import (
	"math"

	"github.com/jordanopensource/topcontrib/schema"
)

// AggregateOptions selects the window and contribution kinds for one
// aggregation pass.
type AggregateOptions struct {
	Window Window
	Type   schema.ContributionType
}

// AggregateUser folds a user's contribution buckets into a total count
// and a popularity-weighted score over the selected window. Absent
// contribution arrays count as empty; the result is always non-negative.
func AggregateUser(u *schema.User, opts AggregateOptions) schema.ContributionSummary {
	var summary schema.ContributionSummary
	for _, kind := range opts.Type.Kinds() {
		for _, bucket := range u.ContributionsByKind(kind) {
			repoCount := 0
			for _, r := range FilterRecords(bucket.Records, opts.Window) {
				repoCount += kind.Weight(r)
			}
			summary.ContributionsTotalCount += repoCount
			summary.Score += repoScore(repoCount, bucket.StarsCount)
		}
	}
	return summary
}

// repoScore weights a repository's activity count by the log-scaled star
// count, so activity on popular repositories counts disproportionately
// more. Repositories with zero or unset stars are treated as one star,
// which makes their score contribution exactly zero regardless of
// activity; the raw count still feeds the contribution total.
func repoScore(repoCount, stars int) int {
	if stars < 1 {
		stars = 1
	}
	return int(math.Ceil(float64(repoCount) * math.Log10(float64(stars))))
}
