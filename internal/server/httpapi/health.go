package httpapi

import (
	"net/http"
)

// handleHealthz reports liveness and database reachability.
func (s *HTTPServer) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if err := s.db.PingContext(r.Context()); err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, map[string]any{"database": "ok"}, "healthy")
}
