package core

import (
	"context"
	"sort"
	"time"

	"github.com/jordanopensource/topcontrib/internal/contract"
	"github.com/jordanopensource/topcontrib/schema"
)

// BaselineFunc reports the full-collection count of items dated strictly
// before the given instant. The growth series seeds each year's running
// total from it, so it must consult the whole collection, not the
// range-filtered input.
type BaselineFunc func(ctx context.Context, before time.Time) (int, error)

// StaticBaseline builds a BaselineFunc from an in-memory stamp set, for
// series whose source collection is already loaded (contribution
// activity from the user snapshot).
func StaticBaseline(stamps []schema.Stamp) BaselineFunc {
	return func(_ context.Context, before time.Time) (int, error) {
		count := 0
		for _, s := range stamps {
			if s.At.Before(before) {
				count += stampWeight(s)
			}
		}
		return count, nil
	}
}

// CumulativeSeries buckets weighted stamps by month or day inside the
// window and produces running totals seeded from the pre-year baseline.
// Each emitted bucket holds the cumulative count up to and including
// that bucket, so the series charts directly as a growth curve. Within a
// year, months are emitted from January through the last month holding
// data; day slices cover every day of their month, zero months included,
// carrying the accumulated value forward.
func CumulativeSeries(ctx context.Context, stamps []schema.Stamp, w Window, g schema.Granularity, baseline BaselineFunc) (*schema.GrowthSeries, error) {
	if _, ok := schema.ValidGranularities[g]; !ok {
		return nil, contract.InvalidParameter("aggregation", string(g))
	}

	counts := bucketCounts(stamps, w)
	years := make([]int, 0, len(counts))
	for y := range counts {
		years = append(years, y)
	}
	sort.Ints(years)

	series := &schema.GrowthSeries{Granularity: g}
	if g == schema.MonthGranularity {
		series.Monthly = make(map[int]map[int]int, len(years))
	} else {
		series.Daily = make(map[int]map[int][]int, len(years))
	}

	for _, year := range years {
		base, err := baseline(ctx, schema.StartOfYear(year))
		if err != nil {
			return nil, err
		}
		if g == schema.MonthGranularity {
			series.Monthly[year] = accumulateMonths(counts[year], base)
		} else {
			series.Daily[year] = accumulateDays(counts[year], year, base)
		}
	}
	return series, nil
}

// bucketCounts groups in-window stamps into per-day counters keyed by
// year and month.
func bucketCounts(stamps []schema.Stamp, w Window) map[int]map[time.Month]map[int]int {
	counts := make(map[int]map[time.Month]map[int]int)
	for _, s := range stamps {
		if !w.Contains(s.At) {
			continue
		}
		y, m, d := s.At.UTC().Date()
		if counts[y] == nil {
			counts[y] = make(map[time.Month]map[int]int)
		}
		if counts[y][m] == nil {
			counts[y][m] = make(map[int]int)
		}
		counts[y][m][d] += stampWeight(s)
	}
	return counts
}

// stampWeight treats an unset weight as a single item.
func stampWeight(s schema.Stamp) int {
	if s.Weight == 0 {
		return 1
	}
	return s.Weight
}

// lastMonthWithData returns the highest month holding any count.
func lastMonthWithData(months map[time.Month]map[int]int) time.Month {
	last := time.January
	for m := range months {
		if m > last {
			last = m
		}
	}
	return last
}

// accumulateMonths walks January through the last non-empty month,
// emitting the running total for each, zero months included.
func accumulateMonths(months map[time.Month]map[int]int, base int) map[int]int {
	out := make(map[int]int)
	acc := base
	for m := time.January; m <= lastMonthWithData(months); m++ {
		for _, c := range months[m] {
			acc += c
		}
		out[int(m)] = acc
	}
	return out
}

// accumulateDays does the same at day granularity, pre-sizing each
// month's slice to the true calendar length.
func accumulateDays(months map[time.Month]map[int]int, year, base int) map[int][]int {
	out := make(map[int][]int)
	acc := base
	for m := time.January; m <= lastMonthWithData(months); m++ {
		days := make([]int, schema.DaysIn(year, m))
		for d := 1; d <= len(days); d++ {
			acc += months[m][d]
			days[d-1] = acc
		}
		out[int(m)] = days
	}
	return out
}
