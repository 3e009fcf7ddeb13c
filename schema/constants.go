package schema

// Custom string types for type safety.
type (
	// ContributionKind represents one kind of contribution activity.
	ContributionKind string

	// Period represents a named contribution window.
	Period string

	// SortKey represents the leaderboard ranking metric.
	SortKey string

	// ContributionType selects which kinds count toward a leaderboard.
	ContributionType string

	// Granularity represents the time-bucket size for series aggregation.
	Granularity string

	// SortOrder represents ascending or descending result order.
	SortOrder string

	// OutputMode represents the format of exported output.
	OutputMode string

	// DatabaseBackend represents the database backend for the store.
	DatabaseBackend string
)

// All contribution kinds tracked per user.
const (
	CommitKind      ContributionKind = "commits"
	IssueKind       ContributionKind = "issues"
	PullRequestKind ContributionKind = "pull_requests"
	CodeReviewKind  ContributionKind = "code_reviews"
)

// All named periods supported. PeriodAll is the default when no period
// is requested; explicit "from_to" date pairs are handled separately.
const (
	PeriodAll        Period = "all" // default
	PeriodLast30Days Period = "last_30_days"
	PeriodThisYear   Period = "this_year"
	PeriodLastMonth  Period = "last_month"
	PeriodLastYear   Period = "last_year"
)

// All ranking metrics supported.
const (
	SortByScore         SortKey = "score" // default
	SortByContributions SortKey = "contributions"
)

// All contribution type selectors supported.
const (
	AllContributions    ContributionType = "all" // default
	CommitContributions ContributionType = "commits"
)

// All series granularities supported.
const (
	MonthGranularity Granularity = "month" // default
	DayGranularity   Granularity = "day"
)

// All sort orders supported.
const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc" // default
)

// All output modes supported by the export command.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
)

// AllContributionKinds lists every kind in aggregation order.
var AllContributionKinds = []ContributionKind{CommitKind, IssueKind, PullRequestKind, CodeReviewKind}

// ValidPeriods lists all valid named periods.
var ValidPeriods = map[Period]struct{}{
	PeriodAll:        {},
	PeriodLast30Days: {},
	PeriodThisYear:   {},
	PeriodLastMonth:  {},
	PeriodLastYear:   {},
}

// ValidSortKeys lists all valid ranking metrics.
var ValidSortKeys = map[SortKey]struct{}{
	SortByScore:         {},
	SortByContributions: {},
}

// ValidContributionTypes lists all valid type selectors.
var ValidContributionTypes = map[ContributionType]struct{}{
	AllContributions:    {},
	CommitContributions: {},
}

// ValidGranularities lists all valid series granularities.
var ValidGranularities = map[Granularity]struct{}{
	MonthGranularity: {},
	DayGranularity:   {},
}

// ValidSortOrders lists all valid sort orders.
var ValidSortOrders = map[SortOrder]struct{}{
	Ascending:  {},
	Descending: {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidBackends lists all valid store backends.
var ValidBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
}

// Kinds returns the contribution kinds selected by a type selector.
func (t ContributionType) Kinds() []ContributionKind {
	if t == CommitContributions {
		return []ContributionKind{CommitKind}
	}
	return AllContributionKinds
}

// Weight returns the activity weight of a record for this kind: the
// commit count for commit records, one event otherwise. Negative commit
// counts never occur upstream but clamp to zero anyway.
func (k ContributionKind) Weight(r ContributionRecord) int {
	if k == CommitKind {
		return max(r.CommitCount, 0)
	}
	return 1
}
