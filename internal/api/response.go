package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/jordanopensource/topcontrib/internal/contract"
)

// envelope is the response body shape shared by every endpoint. All
// payloads carry a success flag beside their data fields.
type envelope map[string]any

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Headers are already out; nothing left to do but log
		log.Printf("Warning: failed to encode response: %v", err)
	}
}

// writeError maps the typed error kinds to status codes. Not-found
// keeps the soft body shape with an explicit null data field. Unknown
// errors are never echoed to the client.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, contract.ErrInvalidParameter):
		writeJSON(w, http.StatusBadRequest, envelope{
			"success": false,
			"message": err.Error(),
		})
	case errors.Is(err, contract.ErrNotFound):
		writeJSON(w, http.StatusNotFound, envelope{
			"success": false,
			"message": err.Error(),
			"data":    nil,
		})
	case errors.Is(err, contract.ErrUpstream):
		writeJSON(w, http.StatusServiceUnavailable, envelope{
			"success": false,
			"message": "data store unavailable",
		})
	default:
		log.Printf("Error: unhandled failure: %v", err)
		writeJSON(w, http.StatusInternalServerError, envelope{
			"success": false,
			"message": "an internal error occurred",
		})
	}
}

// queryInt parses an optional positive integer query parameter.
func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, contract.InvalidParameter(name, raw)
	}
	return n, nil
}

// pageParams reads page and limit, clamping limit to the server cap.
func (s *Server) pageParams(r *http.Request) (page, limit int, err error) {
	page, err = queryInt(r, "page", 1)
	if err != nil {
		return 0, 0, err
	}
	limit, err = queryInt(r, "limit", s.cfg.PageLimit)
	if err != nil {
		return 0, 0, err
	}
	if limit > contract.MaxPageLimit {
		limit = contract.MaxPageLimit
	}
	return page, limit, nil
}
