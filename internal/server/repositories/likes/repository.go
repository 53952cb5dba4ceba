// Package likes declares the repository contract for like records across
// videos, comments, and tweets.
package likes

import (
	"context"

	"github.com/okunevd/streamhub/internal/server/models"
)

type Repository interface {
	// Find returns the user's like on the given target, or
	// common.ErrorNotFound if none exists.
	Find(ctx context.Context, userID string, target models.LikeTarget, targetID string) (*models.Like, error)

	// Create records a like. A duplicate (user, target) pair yields
	// common.ErrorConflict.
	Create(ctx context.Context, userID string, target models.LikeTarget, targetID string) (*models.Like, error)

	Delete(ctx context.Context, id string) error
}
