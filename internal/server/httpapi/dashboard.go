package httpapi

import (
	"net/http"
)

func (s *HTTPServer) handleDashboardStats(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())
	stats, err := s.dashboard.GetStats(r.Context(), identity.ID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, stats, "channel stats fetched successfully")
}

func (s *HTTPServer) handleDashboardVideos(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())
	page, limit, offset := pagination(r)

	videos, total, err := s.dashboard.ListVideos(r.Context(), identity.ID, videoFilterFrom(r), limit, offset)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, map[string]any{
		"videos": videos,
		"total":  total,
		"page":   page,
		"limit":  limit,
	}, "channel videos fetched successfully")
}
