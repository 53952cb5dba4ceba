package httpapi

import (
	"net/http"
)

type tweetRequest struct {
	Content string `json:"content"`
}

func (s *HTTPServer) handleCreateTweet(w http.ResponseWriter, r *http.Request) {
	var req tweetRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, r, err)
		return
	}

	identity := identityFrom(r.Context())
	tweet, err := s.tweets.Create(r.Context(), identity.ID, req.Content)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respond(w, http.StatusCreated, tweet, "tweet created successfully")
}

func (s *HTTPServer) handleListUserTweets(w http.ResponseWriter, r *http.Request) {
	userID, err := uuidParam(r, "userId")
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	tweets, err := s.tweets.ListByOwner(r.Context(), userID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, map[string]any{"tweets": tweets}, "tweets fetched successfully")
}

func (s *HTTPServer) handleUpdateTweet(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "tweetId")
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	var req tweetRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, r, err)
		return
	}

	identity := identityFrom(r.Context())
	tweet, err := s.tweets.Update(r.Context(), identity.ID, id, req.Content)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, tweet, "tweet updated successfully")
}

func (s *HTTPServer) handleDeleteTweet(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "tweetId")
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	identity := identityFrom(r.Context())
	if err := s.tweets.Delete(r.Context(), identity.ID, id); err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, nil, "tweet deleted successfully")
}
