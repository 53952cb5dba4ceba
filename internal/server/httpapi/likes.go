package httpapi

import (
	"net/http"

	"github.com/okunevd/streamhub/internal/server/models"
)

func (s *HTTPServer) handleToggleVideoLike(w http.ResponseWriter, r *http.Request) {
	s.handleToggleLike(w, r, models.LikeTargetVideo, "videoId")
}

func (s *HTTPServer) handleToggleCommentLike(w http.ResponseWriter, r *http.Request) {
	s.handleToggleLike(w, r, models.LikeTargetComment, "commentId")
}

func (s *HTTPServer) handleToggleTweetLike(w http.ResponseWriter, r *http.Request) {
	s.handleToggleLike(w, r, models.LikeTargetTweet, "tweetId")
}

func (s *HTTPServer) handleToggleLike(w http.ResponseWriter, r *http.Request, target models.LikeTarget, param string) {
	targetID, err := uuidParam(r, param)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	identity := identityFrom(r.Context())
	liked, err := s.likes.Toggle(r.Context(), identity.ID, target, targetID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, map[string]any{"liked": liked}, "like toggled successfully")
}

func (s *HTTPServer) handleListLikedVideos(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())
	videos, err := s.likes.ListLikedVideos(r.Context(), identity.ID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, map[string]any{"videos": videos}, "liked videos fetched successfully")
}
