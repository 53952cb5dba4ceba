package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/okunevd/streamhub/internal/common"
	"github.com/okunevd/streamhub/internal/server/models"
	"github.com/okunevd/streamhub/internal/server/repositories/repomanager"
)

// PlaylistService implements playlist CRUD and ordered video membership.
type PlaylistService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewPlaylistService(db *sql.DB, m repomanager.RepositoryManager) *PlaylistService {
	return &PlaylistService{db: db, repomanager: m}
}

// Create makes a new empty playlist for the caller.
func (s *PlaylistService) Create(ctx context.Context, ownerID, name, description string) (*models.Playlist, error) {
	if name == "" || description == "" {
		return nil, fmt.Errorf("%w: name and description are required", common.ErrorInvalidInput)
	}
	playlist := &models.Playlist{OwnerID: ownerID, Name: name, Description: description}
	return s.repomanager.Playlists(s.db).Create(ctx, playlist)
}

// Get loads a playlist with its videos in insertion order.
func (s *PlaylistService) Get(ctx context.Context, id string) (*models.Playlist, error) {
	return s.repomanager.Playlists(s.db).GetByID(ctx, id)
}

// ListByOwner returns a user's playlists, newest first.
func (s *PlaylistService) ListByOwner(ctx context.Context, ownerID string) ([]*models.Playlist, error) {
	return s.repomanager.Playlists(s.db).ListByOwner(ctx, ownerID)
}

// Update changes name and/or description on the caller's own playlist.
func (s *PlaylistService) Update(ctx context.Context, actorID, id string, name, description *string) (*models.Playlist, error) {
	if name == nil && description == nil {
		return nil, fmt.Errorf("%w: nothing to update", common.ErrorInvalidInput)
	}
	if _, err := s.getOwned(ctx, id, actorID); err != nil {
		return nil, err
	}
	return s.repomanager.Playlists(s.db).Update(ctx, id, name, description)
}

// Delete removes the caller's own playlist.
func (s *PlaylistService) Delete(ctx context.Context, actorID, id string) error {
	if _, err := s.getOwned(ctx, id, actorID); err != nil {
		return err
	}
	return s.repomanager.Playlists(s.db).Delete(ctx, id)
}

// AddVideo appends a video to the caller's own playlist. Adding a video that
// is already present yields ErrorConflict.
func (s *PlaylistService) AddVideo(ctx context.Context, actorID, playlistID, videoID string) (*models.Playlist, error) {
	if _, err := s.getOwned(ctx, playlistID, actorID); err != nil {
		return nil, err
	}
	if _, err := s.repomanager.Videos(s.db).GetByID(ctx, videoID); err != nil {
		return nil, err
	}
	if err := s.repomanager.Playlists(s.db).AddVideo(ctx, playlistID, videoID); err != nil {
		return nil, err
	}
	return s.repomanager.Playlists(s.db).GetByID(ctx, playlistID)
}

// RemoveVideo removes a video from the caller's own playlist. A video not in
// the playlist yields ErrorNotFound.
func (s *PlaylistService) RemoveVideo(ctx context.Context, actorID, playlistID, videoID string) (*models.Playlist, error) {
	if _, err := s.getOwned(ctx, playlistID, actorID); err != nil {
		return nil, err
	}
	if err := s.repomanager.Playlists(s.db).RemoveVideo(ctx, playlistID, videoID); err != nil {
		return nil, err
	}
	return s.repomanager.Playlists(s.db).GetByID(ctx, playlistID)
}

func (s *PlaylistService) getOwned(ctx context.Context, id, actorID string) (*models.Playlist, error) {
	playlist, err := s.repomanager.Playlists(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	if playlist.OwnerID != actorID {
		return nil, common.ErrorUnauthorized
	}
	return playlist, nil
}
