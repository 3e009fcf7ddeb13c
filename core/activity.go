package core

import (
	"time"

	"github.com/jordanopensource/topcontrib/schema"
)

// ContributionStamps flattens every record of the selected kinds across
// all users into weighted stamps for the time-bucket accumulator.
func ContributionStamps(users []schema.User, cType schema.ContributionType) []schema.Stamp {
	var stamps []schema.Stamp
	for i := range users {
		for _, kind := range cType.Kinds() {
			for _, bucket := range users[i].ContributionsByKind(kind) {
				for _, r := range bucket.Records {
					stamps = append(stamps, schema.Stamp{At: r.OccurredAt, Weight: kind.Weight(r)})
				}
			}
		}
	}
	return stamps
}

// CountRecentContributions sums commit activity over the rolling 30-day
// window ending at the reference time.
func CountRecentContributions(users []schema.User, now time.Time) int {
	window := Window{From: now.UTC().AddDate(0, 0, -30), To: now.UTC()}
	count := 0
	for _, s := range ContributionStamps(users, schema.CommitContributions) {
		if window.Contains(s.At) {
			count += s.Weight
		}
	}
	return count
}
