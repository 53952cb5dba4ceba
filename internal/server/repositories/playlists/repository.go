// Package playlists declares the repository contract for playlists and
// their ordered video membership.
package playlists

import (
	"context"

	"github.com/okunevd/streamhub/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, playlist *models.Playlist) (*models.Playlist, error)

	// GetByID loads a playlist with its videos in insertion order.
	GetByID(ctx context.Context, id string) (*models.Playlist, error)

	// ListByOwner returns a user's playlists, newest first, each with its
	// videos in insertion order.
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Playlist, error)

	// Update sets name and/or description; nil fields are untouched.
	Update(ctx context.Context, id string, name, description *string) (*models.Playlist, error)

	Delete(ctx context.Context, id string) error

	// AddVideo appends a video; a video already present yields
	// common.ErrorConflict.
	AddVideo(ctx context.Context, playlistID, videoID string) error

	// RemoveVideo removes a video; a video not in the playlist yields
	// common.ErrorNotFound.
	RemoveVideo(ctx context.Context, playlistID, videoID string) error
}
