package core

import (
	"strings"
	"time"

	"github.com/jordanopensource/topcontrib/internal/contract"
	"github.com/jordanopensource/topcontrib/schema"
)

// Window is a resolved contribution window. A zero From or To means
// unbounded on that side; the zero Window matches everything.
type Window struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t falls inside the window, inclusive on both
// ends.
func (w Window) Contains(t time.Time) bool {
	if !w.From.IsZero() && t.Before(w.From) {
		return false
	}
	if !w.To.IsZero() && t.After(w.To) {
		return false
	}
	return true
}

// ResolveWindow turns a named period into a concrete window relative to
// the injected reference time. Callers pass time.Now() in production;
// tests pin the reference to keep relative windows reproducible.
func ResolveWindow(period schema.Period, now time.Time) (Window, error) {
	now = now.UTC()
	switch period {
	case schema.PeriodAll, "":
		return Window{}, nil
	case schema.PeriodLast30Days:
		return Window{From: now.AddDate(0, 0, -30), To: now}, nil
	case schema.PeriodThisYear:
		return Window{
			From: schema.StartOfYear(now.Year()),
			To:   schema.EndOfDay(time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)),
		}, nil
	case schema.PeriodLastMonth:
		// First day of the current month, minus one month. AddDate on the
		// month start cannot skip short months.
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		start := first.AddDate(0, -1, 0)
		return Window{From: start, To: first.Add(-time.Millisecond)}, nil
	case schema.PeriodLastYear:
		return Window{
			From: schema.StartOfYear(now.Year() - 1),
			To:   schema.StartOfYear(now.Year()).Add(-time.Millisecond),
		}, nil
	}
	return Window{}, contract.InvalidParameter("period", string(period))
}

// ParseWindow resolves a raw period parameter: either a named period or
// an explicit "YYYY-MM-DD_YYYY-MM-DD" pair expanded to whole days.
func ParseWindow(raw string, now time.Time) (Window, error) {
	if from, to, ok := strings.Cut(raw, "_"); ok {
		return parseExplicitRange(raw, from, to)
	}
	return ResolveWindow(schema.Period(raw), now)
}

// parseExplicitRange parses a bare-date pair into an inclusive window.
func parseExplicitRange(raw, from, to string) (Window, error) {
	start, err := time.Parse(contract.DateFormat, from)
	if err != nil {
		return Window{}, contract.InvalidParameter("period", raw)
	}
	end, err := time.Parse(contract.DateFormat, to)
	if err != nil {
		return Window{}, contract.InvalidParameter("period", raw)
	}
	if end.Before(start) {
		return Window{}, contract.InvalidParameter("period", raw)
	}
	return Window{From: schema.StartOfDay(start), To: schema.EndOfDay(end)}, nil
}

// FilterRecords returns the subsequence of records whose occurrence time
// falls inside the window. The input is never modified.
func FilterRecords(records []schema.ContributionRecord, w Window) []schema.ContributionRecord {
	if w == (Window{}) {
		return records
	}
	var out []schema.ContributionRecord
	for _, r := range records {
		if w.Contains(r.OccurredAt) {
			out = append(out, r)
		}
	}
	return out
}
