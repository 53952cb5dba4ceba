package httpapi

import (
	"context"
	"net/http"

	"github.com/okunevd/streamhub/internal/server/models"
)

type playlistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type playlistUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (s *HTTPServer) handleCreatePlaylist(w http.ResponseWriter, r *http.Request) {
	var req playlistRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, r, err)
		return
	}

	identity := identityFrom(r.Context())
	playlist, err := s.playlists.Create(r.Context(), identity.ID, req.Name, req.Description)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respond(w, http.StatusCreated, playlist, "playlist created successfully")
}

func (s *HTTPServer) handleListUserPlaylists(w http.ResponseWriter, r *http.Request) {
	userID, err := uuidParam(r, "userId")
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	playlists, err := s.playlists.ListByOwner(r.Context(), userID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, map[string]any{"playlists": playlists}, "playlists fetched successfully")
}

func (s *HTTPServer) handleGetPlaylist(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "playlistId")
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	playlist, err := s.playlists.Get(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, playlist, "playlist fetched successfully")
}

func (s *HTTPServer) handleUpdatePlaylist(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "playlistId")
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	var req playlistUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, r, err)
		return
	}

	identity := identityFrom(r.Context())
	playlist, err := s.playlists.Update(r.Context(), identity.ID, id, req.Name, req.Description)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, playlist, "playlist updated successfully")
}

func (s *HTTPServer) handleDeletePlaylist(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "playlistId")
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	identity := identityFrom(r.Context())
	if err := s.playlists.Delete(r.Context(), identity.ID, id); err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, nil, "playlist deleted successfully")
}

func (s *HTTPServer) handleAddPlaylistVideo(w http.ResponseWriter, r *http.Request) {
	s.handlePlaylistMembership(w, r, s.playlists.AddVideo, "video added to playlist")
}

func (s *HTTPServer) handleRemovePlaylistVideo(w http.ResponseWriter, r *http.Request) {
	s.handlePlaylistMembership(w, r, s.playlists.RemoveVideo, "video removed from playlist")
}

func (s *HTTPServer) handlePlaylistMembership(w http.ResponseWriter, r *http.Request,
	op func(ctx context.Context, actorID, playlistID, videoID string) (*models.Playlist, error), message string) {

	videoID, err := uuidParam(r, "videoId")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	playlistID, err := uuidParam(r, "playlistId")
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	identity := identityFrom(r.Context())
	playlist, err := op(r.Context(), identity.ID, playlistID, videoID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, playlist, message)
}
