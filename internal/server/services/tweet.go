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

// TweetService implements CRUD for short-form channel posts.
type TweetService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewTweetService(db *sql.DB, m repomanager.RepositoryManager) *TweetService {
	return &TweetService{db: db, repomanager: m}
}

// Create posts a tweet on the caller's channel.
func (s *TweetService) Create(ctx context.Context, ownerID, content string) (*models.Tweet, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", common.ErrorInvalidInput)
	}
	tweet := &models.Tweet{OwnerID: ownerID, Content: content}
	return s.repomanager.Tweets(s.db).Create(ctx, tweet)
}

// ListByOwner returns a user's tweets, newest first.
func (s *TweetService) ListByOwner(ctx context.Context, ownerID string) ([]*models.Tweet, error) {
	return s.repomanager.Tweets(s.db).ListByOwner(ctx, ownerID)
}

// Update changes the content of the caller's own tweet.
func (s *TweetService) Update(ctx context.Context, actorID, id, content string) (*models.Tweet, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", common.ErrorInvalidInput)
	}
	if _, err := s.getOwned(ctx, id, actorID); err != nil {
		return nil, err
	}
	return s.repomanager.Tweets(s.db).UpdateContent(ctx, id, content)
}

// Delete removes the caller's own tweet.
func (s *TweetService) Delete(ctx context.Context, actorID, id string) error {
	if _, err := s.getOwned(ctx, id, actorID); err != nil {
		return err
	}
	return s.repomanager.Tweets(s.db).Delete(ctx, id)
}

func (s *TweetService) getOwned(ctx context.Context, id, actorID string) (*models.Tweet, error) {
	tweet, err := s.repomanager.Tweets(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	if tweet.OwnerID != actorID {
		return nil, common.ErrorUnauthorized
	}
	return tweet, nil
}
