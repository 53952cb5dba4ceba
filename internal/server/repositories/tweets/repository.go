// Package tweets declares the repository contract for short-form posts.
package tweets

import (
	"context"

	"github.com/okunevd/streamhub/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, tweet *models.Tweet) (*models.Tweet, error)

	GetByID(ctx context.Context, id string) (*models.Tweet, error)

	// ListByOwner returns a user's tweets, newest first, each with an
	// owner summary and like count.
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Tweet, error)

	UpdateContent(ctx context.Context, id, content string) (*models.Tweet, error)

	Delete(ctx context.Context, id string) error
}
