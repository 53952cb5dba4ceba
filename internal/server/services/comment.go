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

// CommentService implements comment CRUD under a video.
type CommentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCommentService(db *sql.DB, m repomanager.RepositoryManager) *CommentService {
	return &CommentService{db: db, repomanager: m}
}

// ListByVideo returns a page of a video's comments, newest first, plus the
// total count. An unknown video yields ErrorNotFound.
func (s *CommentService) ListByVideo(ctx context.Context, videoID string, limit, offset int) ([]*models.Comment, int64, error) {
	if _, err := s.repomanager.Videos(s.db).GetByID(ctx, videoID); err != nil {
		return nil, 0, err
	}
	return s.repomanager.Comments(s.db).ListByVideo(ctx, videoID, limit, offset)
}

// Add creates a comment on a video.
func (s *CommentService) Add(ctx context.Context, ownerID, videoID, content string) (*models.Comment, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", common.ErrorInvalidInput)
	}
	if _, err := s.repomanager.Videos(s.db).GetByID(ctx, videoID); err != nil {
		return nil, err
	}
	comment := &models.Comment{VideoID: videoID, OwnerID: ownerID, Content: content}
	return s.repomanager.Comments(s.db).Create(ctx, comment)
}

// Update changes the content of the caller's own comment.
func (s *CommentService) Update(ctx context.Context, actorID, id, content string) (*models.Comment, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", common.ErrorInvalidInput)
	}
	if _, err := s.getOwned(ctx, id, actorID); err != nil {
		return nil, err
	}
	return s.repomanager.Comments(s.db).UpdateContent(ctx, id, content)
}

// Delete removes the caller's own comment.
func (s *CommentService) Delete(ctx context.Context, actorID, id string) error {
	if _, err := s.getOwned(ctx, id, actorID); err != nil {
		return err
	}
	return s.repomanager.Comments(s.db).Delete(ctx, id)
}

func (s *CommentService) getOwned(ctx context.Context, id, actorID string) (*models.Comment, error) {
	comment, err := s.repomanager.Comments(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	if comment.OwnerID != actorID {
		return nil, common.ErrorUnauthorized
	}
	return comment, nil
}
