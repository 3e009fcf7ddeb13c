package api

import (
	"context"
	"net/http"
	"time"

	"github.com/jordanopensource/topcontrib/core"
	"github.com/jordanopensource/topcontrib/internal/contract"
	"github.com/jordanopensource/topcontrib/schema"
)

func (s *Server) handleContributions(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.Get(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{
		"success":            true,
		"commits_last_month": core.CountRecentContributions(users, s.now()),
	})
}

// creationSource abstracts the two account-growth collections so both
// stats endpoints share one handler body.
type creationSource struct {
	fetchBetween func(ctx context.Context, from, to time.Time) ([]time.Time, error)
	countBefore  func(ctx context.Context, before time.Time) (int, error)
}

func (s *Server) handleUserStats(w http.ResponseWriter, r *http.Request) {
	s.handleCreationStats(w, r, creationSource{
		fetchBetween: s.store.FetchUsersCreatedBetween,
		countBefore:  s.store.CountUsersCreatedBefore,
	})
}

func (s *Server) handleOrganizationStats(w http.ResponseWriter, r *http.Request) {
	s.handleCreationStats(w, r, creationSource{
		fetchBetween: s.store.FetchOrganizationsCreatedBetween,
		countBefore:  s.store.CountOrganizationsCreatedBefore,
	})
}

// handleCreationStats builds the cumulative account-growth series for
// one collection: creation timestamps inside the window, bucketed and
// accumulated, seeded per year from the full-collection baseline.
func (s *Server) handleCreationStats(w http.ResponseWriter, r *http.Request, src creationSource) {
	window, err := core.ParseWindow(r.URL.Query().Get("period"), s.now())
	if err != nil {
		writeError(w, err)
		return
	}

	from, to := window.From, window.To
	if from.IsZero() {
		from = time.Unix(0, 0).UTC()
	}
	if to.IsZero() {
		to = s.now().UTC()
	}

	created, err := src.fetchBetween(r.Context(), from, to)
	if err != nil {
		writeError(w, err)
		return
	}
	stamps := make([]schema.Stamp, len(created))
	for i, at := range created {
		stamps[i] = schema.Stamp{At: at}
	}

	series, err := core.CumulativeSeries(r.Context(), stamps, window, granularity(r), src.countBefore)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"success": true, "data": seriesPayload(series)})
}

func (s *Server) handleContributionStats(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	cType := schema.ContributionType(q.Get("type"))
	if cType == "" {
		cType = schema.AllContributions
	}
	if _, ok := schema.ValidContributionTypes[cType]; !ok {
		writeError(w, contract.InvalidParameter("type", q.Get("type")))
		return
	}

	window, err := core.ParseWindow(q.Get("period"), s.now())
	if err != nil {
		writeError(w, err)
		return
	}

	users, err := s.users.Get(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	stamps := core.ContributionStamps(users, cType)
	series, err := core.CumulativeSeries(r.Context(), stamps, window, granularity(r), core.StaticBaseline(stamps))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"success": true, "data": seriesPayload(series)})
}

// granularity reads the aggregation selector, defaulting to monthly.
// Validation happens inside the series builder.
func granularity(r *http.Request) schema.Granularity {
	if raw := r.URL.Query().Get("aggregation"); raw != "" {
		return schema.Granularity(raw)
	}
	return schema.MonthGranularity
}

// seriesPayload picks the populated bucket map for the response body.
func seriesPayload(series *schema.GrowthSeries) any {
	if series.Granularity == schema.DayGranularity {
		return series.Daily
	}
	return series.Monthly
}
