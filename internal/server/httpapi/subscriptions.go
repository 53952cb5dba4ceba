package httpapi

import (
	"net/http"
)

func (s *HTTPServer) handleToggleSubscription(w http.ResponseWriter, r *http.Request) {
	channelID, err := uuidParam(r, "channelId")
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	identity := identityFrom(r.Context())
	subscribed, err := s.subscriptions.Toggle(r.Context(), identity.ID, channelID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, map[string]any{"subscribed": subscribed}, "subscription toggled successfully")
}

func (s *HTTPServer) handleListSubscribers(w http.ResponseWriter, r *http.Request) {
	channelID, err := uuidParam(r, "channelId")
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	subs, err := s.subscriptions.ListSubscribers(r.Context(), channelID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, map[string]any{"subscribers": subs}, "subscribers fetched successfully")
}

func (s *HTTPServer) handleListSubscribedTo(w http.ResponseWriter, r *http.Request) {
	subscriberID, err := uuidParam(r, "subscriberId")
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	subs, err := s.subscriptions.ListSubscribedTo(r.Context(), subscriberID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, map[string]any{"channels": subs}, "subscribed channels fetched successfully")
}
