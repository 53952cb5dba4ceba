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

// SubscriptionService implements channel subscription toggling and listing.
type SubscriptionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewSubscriptionService(db *sql.DB, m repomanager.RepositoryManager) *SubscriptionService {
	return &SubscriptionService{db: db, repomanager: m}
}

// Toggle flips the caller's subscription to a channel. Subscribing to one's
// own channel is not allowed. Returns true when subscribed afterwards.
func (s *SubscriptionService) Toggle(ctx context.Context, subscriberID, channelID string) (bool, error) {
	if subscriberID == channelID {
		return false, fmt.Errorf("%w: cannot subscribe to own channel", common.ErrorInvalidInput)
	}
	if _, err := s.repomanager.Users(s.db).GetByID(ctx, channelID); err != nil {
		return false, err
	}

	repo := s.repomanager.Subscriptions(s.db)
	sub, err := repo.Find(ctx, subscriberID, channelID)
	switch {
	case err == nil:
		if err := repo.Delete(ctx, sub.ID); err != nil {
			return false, common.ErrorInternal
		}
		return false, nil
	case errors.Is(err, common.ErrorNotFound):
		if _, err := repo.Create(ctx, subscriberID, channelID); err != nil {
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

// ListSubscribers returns the users subscribed to a channel.
func (s *SubscriptionService) ListSubscribers(ctx context.Context, channelID string) ([]*models.Subscription, error) {
	return s.repomanager.Subscriptions(s.db).ListSubscribers(ctx, channelID)
}

// ListSubscribedTo returns the channels a user subscribes to.
func (s *SubscriptionService) ListSubscribedTo(ctx context.Context, subscriberID string) ([]*models.Subscription, error) {
	return s.repomanager.Subscriptions(s.db).ListSubscribedTo(ctx, subscriberID)
}
