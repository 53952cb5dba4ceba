// Package comments declares the repository contract for video comments.
package comments

import (
	"context"

	"github.com/okunevd/streamhub/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, comment *models.Comment) (*models.Comment, error)

	GetByID(ctx context.Context, id string) (*models.Comment, error)

	// ListByVideo returns a page of comments for a video, newest first,
	// each with an owner summary and like count, plus the total count.
	ListByVideo(ctx context.Context, videoID string, limit, offset int) ([]*models.Comment, int64, error)

	UpdateContent(ctx context.Context, id, content string) (*models.Comment, error)

	Delete(ctx context.Context, id string) error
}
