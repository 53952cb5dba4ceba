// Package users declares the repository contract for identity records.
package users

import (
	"context"

	"github.com/okunevd/streamhub/internal/server/models"
)

// Repository persists identity records. Methods returning *models.User load
// the sanitized projection (no password hash, no refresh token) unless noted.
type Repository interface {
	// Create inserts a new user. A duplicate handle or email yields
	// common.ErrorConflict.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByID loads the sanitized projection of a user.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// GetByLogin loads the FULL row (including password hash and stored
	// refresh token) for a handle or email. Login is the only caller.
	GetByLogin(ctx context.Context, login string) (*models.User, error)

	// UpdateProfile sets full name and/or email; nil fields are untouched.
	UpdateProfile(ctx context.Context, id string, fullName, email *string) (*models.User, error)

	// UpdateAvatar swaps the avatar URL and returns the previous one.
	UpdateAvatar(ctx context.Context, id, url string) (string, error)

	// UpdateCoverImage swaps the cover image URL and returns the previous one.
	UpdateCoverImage(ctx context.Context, id, url string) (string, error)

	// SetRefreshToken overwrites the stored refresh token. nil clears it.
	SetRefreshToken(ctx context.Context, id string, token *string) error

	// SwapRefreshToken replaces the stored refresh token only if it still
	// equals old (compare-and-swap). Returns false when no row matched,
	// i.e. the token was already rotated, superseded, or cleared.
	SwapRefreshToken(ctx context.Context, id, old, new string) (bool, error)

	// GetChannelProfile aggregates the public channel view for a handle,
	// with IsSubscribed computed relative to viewerID (may be empty).
	GetChannelProfile(ctx context.Context, handle, viewerID string) (*models.ChannelProfile, error)

	// AppendWatchHistory records that the user watched the video.
	AppendWatchHistory(ctx context.Context, userID, videoID string) error

	// GetWatchHistory returns recently watched videos, newest first, each
	// with an owner summary.
	GetWatchHistory(ctx context.Context, userID string, limit, offset int) ([]*models.Video, error)
}
