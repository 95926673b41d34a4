package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dormdesk/dormdesk/internal/store"
	"github.com/dormdesk/dormdesk/pkg/httpx"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// decodeJSON parses a JSON request body into v. On failure it writes a 400
// and returns false; callers just return.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// parsePage reads limit/offset query params with clamped defaults.
func parsePage(r *http.Request) store.Page {
	p := store.Page{Limit: defaultPageLimit}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			p.Limit = min(n, maxPageLimit)
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			p.Offset = n
		}
	}
	return p
}
