package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/okunevd/streamhub/internal/common"
	"github.com/okunevd/streamhub/internal/server/models"
	"github.com/okunevd/streamhub/internal/server/repositories/repomanager"
)

// LikeService implements like toggling across videos, comments, and tweets.
type LikeService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewLikeService(db *sql.DB, m repomanager.RepositoryManager) *LikeService {
	return &LikeService{db: db, repomanager: m}
}

// Toggle flips the caller's like on the target: an existing like is removed,
// a missing one is created. Returns true when the target is liked afterwards.
// The target entity must exist.
func (s *LikeService) Toggle(ctx context.Context, userID string, target models.LikeTarget, targetID string) (bool, error) {
	if err := s.checkTargetExists(ctx, target, targetID); err != nil {
		return false, err
	}

	repo := s.repomanager.Likes(s.db)
	like, err := repo.Find(ctx, userID, target, targetID)
	switch {
	case err == nil:
		if err := repo.Delete(ctx, like.ID); err != nil {
			return false, common.ErrorInternal
		}
		return false, nil
	case errors.Is(err, common.ErrorNotFound):
		if _, err := repo.Create(ctx, userID, target, targetID); err != nil {
			// concurrent toggle won the race, the like exists
			if errors.Is(err, common.ErrorConflict) {
				return true, nil
			}
			return false, common.ErrorInternal
		}
		return true, nil
	default:
		return false, common.ErrorInternal
	}
}

// ListLikedVideos returns the videos the user has liked.
func (s *LikeService) ListLikedVideos(ctx context.Context, userID string) ([]*models.Video, error) {
	return s.repomanager.Videos(s.db).ListLikedBy(ctx, userID)
}

func (s *LikeService) checkTargetExists(ctx context.Context, target models.LikeTarget, targetID string) error {
	var err error
	switch target {
	case models.LikeTargetVideo:
		_, err = s.repomanager.Videos(s.db).GetByID(ctx, targetID)
	case models.LikeTargetComment:
		_, err = s.repomanager.Comments(s.db).GetByID(ctx, targetID)
	case models.LikeTargetTweet:
		_, err = s.repomanager.Tweets(s.db).GetByID(ctx, targetID)
	default:
		return common.ErrorInvalidInput
	}
	return err
}
