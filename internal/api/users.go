package api

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jordanopensource/topcontrib/core"
	"github.com/jordanopensource/topcontrib/internal/contract"
	"github.com/jordanopensource/topcontrib/schema"
)

// contributorsFilter maps the contributors selector to the members-only
// flag. Unrecognized values are rejected, not defaulted past.
func contributorsFilter(raw string) (bool, error) {
	switch raw {
	case "", "all":
		return false, nil
	case "members":
		return true, nil
	}
	return false, contract.InvalidParameter("contributors", raw)
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	membersOnly, err := contributorsFilter(q.Get("contributors"))
	if err != nil {
		writeError(w, err)
		return
	}
	page, limit, err := s.pageParams(r)
	if err != nil {
		writeError(w, err)
		return
	}

	users, err := s.users.Get(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	board, err := core.ComputeUserLeaderboard(users, core.LeaderboardOptions{
		SortBy:      schema.SortKey(q.Get("sort_by")),
		Period:      q.Get("period"),
		Type:        schema.ContributionType(q.Get("type")),
		MembersOnly: membersOnly,
		Search:      q.Get("search"),
		Now:         s.now(),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	body := envelope{
		"success":    true,
		"users":      core.Paginate(board.Users, page, limit),
		"totalCount": board.TotalCount,
	}
	// A broken refresh log should not take the leaderboard down with it,
	// but the failure must not masquerade as "never refreshed" silently.
	switch updated, err := s.store.FetchLatestRefreshTimestamp(r.Context()); {
	case err != nil:
		log.Printf("refresh timestamp lookup failed: %v", err)
	case !updated.IsZero():
		body["updated_at"] = updated.Format(time.RFC3339)
	}
	writeJSON(w, http.StatusOK, body)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.store.FetchUserByUsername(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"success": true, "data": user})
}

func (s *Server) handleGetUserCommits(w http.ResponseWriter, r *http.Request) {
	user, err := s.store.FetchUserByUsername(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"success": true, "data": user.CommitContributions})
}
