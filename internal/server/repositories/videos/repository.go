// Package videos declares the repository contract for video records and the
// feed-style listing queries built on top of them.
package videos

import (
	"context"

	"github.com/okunevd/streamhub/internal/server/models"
)

// Repository persists videos and serves listing/aggregation reads.
type Repository interface {
	Create(ctx context.Context, video *models.Video) (*models.Video, error)

	// GetByID loads one video with its owner summary and like count.
	GetByID(ctx context.Context, id string) (*models.Video, error)

	// List returns a page of videos matching the filter plus the total
	// count of matching rows.
	List(ctx context.Context, filter models.VideoFilter, limit, offset int) ([]*models.Video, int64, error)

	// Update sets title/description/thumbnail; nil fields are untouched.
	Update(ctx context.Context, id string, title, description, thumbnail *string) (*models.Video, error)

	// Delete removes the video and returns the deleted row so the caller
	// can clean up media objects.
	Delete(ctx context.Context, id string) (*models.Video, error)

	// TogglePublish flips the published flag and returns the updated row.
	TogglePublish(ctx context.Context, id string) (*models.Video, error)

	// IncrementViews bumps the view counter by one.
	IncrementViews(ctx context.Context, id string) error

	// ListLikedBy returns the videos a user has liked.
	ListLikedBy(ctx context.Context, userID string) ([]*models.Video, error)

	// GetChannelStats aggregates totals for a channel owner.
	GetChannelStats(ctx context.Context, ownerID string) (*models.ChannelStats, error)
}
