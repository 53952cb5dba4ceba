package httpapi

import (
	"net/http"
)

type commentRequest struct {
	Content string `json:"content"`
}

func (s *HTTPServer) handleListComments(w http.ResponseWriter, r *http.Request) {
	videoID, err := uuidParam(r, "videoId")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	page, limit, offset := pagination(r)

	comments, total, err := s.comments.ListByVideo(r.Context(), videoID, limit, offset)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, map[string]any{
		"comments": comments,
		"total":    total,
		"page":     page,
		"limit":    limit,
	}, "comments fetched successfully")
}

func (s *HTTPServer) handleAddComment(w http.ResponseWriter, r *http.Request) {
	videoID, err := uuidParam(r, "videoId")
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	var req commentRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, r, err)
		return
	}

	identity := identityFrom(r.Context())
	comment, err := s.comments.Add(r.Context(), identity.ID, videoID, req.Content)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respond(w, http.StatusCreated, comment, "comment added successfully")
}

func (s *HTTPServer) handleUpdateComment(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "commentId")
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	var req commentRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, r, err)
		return
	}

	identity := identityFrom(r.Context())
	comment, err := s.comments.Update(r.Context(), identity.ID, id, req.Content)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, comment, "comment updated successfully")
}

func (s *HTTPServer) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "commentId")
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	identity := identityFrom(r.Context())
	if err := s.comments.Delete(r.Context(), identity.ID, id); err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, nil, "comment deleted successfully")
}
