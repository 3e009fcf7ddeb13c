// Package schema defines the data structures shared across the application.
package schema

import "time"

// ContributionRecord is one unit of activity on a repository: a batch of
// commits, or a single issue, pull request or code review event.
// CommitCount is zero for non-commit records.
type ContributionRecord struct {
	OccurredAt  time.Time `json:"occurredAt"`
	CommitCount int       `json:"commitCount,omitempty"`
}

// RepoContribution groups the contribution records a user produced on a
// single repository for a single contribution kind.
type RepoContribution struct {
	RepositoryName string               `json:"repositoryName"`
	StarsCount     int                  `json:"starsCount"`
	URL            string               `json:"url"`
	Records        []ContributionRecord `json:"records"`
}

// User is a contributor as written by the ingestion feed. The serving
// layer treats it as read-only; Score is the last persisted value and is
// informational only, leaderboards recompute it per request.
type User struct {
	Username                 string             `json:"username"`
	Name                     string             `json:"name"`
	AvatarURL                string             `json:"avatar_url"`
	ProfileURL               string             `json:"github_profile_url"`
	CreatedAt                time.Time          `json:"user_createdAt"`
	IsMember                 bool               `json:"isJOSAMember"`
	CommitContributions      []RepoContribution `json:"commit_contributions"`
	IssueContributions       []RepoContribution `json:"issue_contributions"`
	PullRequestContributions []RepoContribution `json:"pr_contributions"`
	CodeReviewContributions  []RepoContribution `json:"code_review_contributions"`
	Score                    int                `json:"score"`
}

// ContributionsByKind returns the repository buckets for one kind.
// An unknown kind yields nil, which aggregation treats as empty.
func (u *User) ContributionsByKind(kind ContributionKind) []RepoContribution {
	switch kind {
	case CommitKind:
		return u.CommitContributions
	case IssueKind:
		return u.IssueContributions
	case PullRequestKind:
		return u.PullRequestContributions
	case CodeReviewKind:
		return u.CodeReviewContributions
	}
	return nil
}

// Repository is a public repository owned by an organization.
type Repository struct {
	Name       string `json:"name"`
	StarsCount int    `json:"starsCount"`
}

// Organization is a GitHub organization as written by the ingestion feed.
type Organization struct {
	Username          string       `json:"username"`
	Name              string       `json:"name"`
	AvatarURL         string       `json:"avatar_url"`
	ProfileURL        string       `json:"github_profile_url"`
	CreatedAt         time.Time    `json:"organization_createdAt"`
	Repositories      []Repository `json:"repositories"`
	Members           []string     `json:"members"`
	RepositoriesCount int          `json:"repositories_count"`
}
