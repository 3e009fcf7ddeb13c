package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jordanopensource/topcontrib/core"
	"github.com/jordanopensource/topcontrib/schema"
)

func (s *Server) handleListOrganizations(w http.ResponseWriter, r *http.Request) {
	page, limit, err := s.pageParams(r)
	if err != nil {
		writeError(w, err)
		return
	}

	orgs, err := s.store.FetchAllOrganizations(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	ranked, err := core.ComputeOrganizationLeaderboard(orgs, schema.SortOrder(r.URL.Query().Get("sort")))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		"success":    true,
		"orgs":       core.Paginate(ranked, page, limit),
		"totalCount": len(ranked),
	})
}

func (s *Server) handleGetOrganization(w http.ResponseWriter, r *http.Request) {
	org, err := s.store.FetchOrganizationByUsername(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"success": true, "org": org})
}

func (s *Server) handleGetOrganizationRepos(w http.ResponseWriter, r *http.Request) {
	org, err := s.store.FetchOrganizationByUsername(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"success": true, "data": org.Repositories})
}
