// Package subscriptions declares the repository contract for channel
// subscriptions.
package subscriptions

import (
	"context"

	"github.com/okunevd/streamhub/internal/server/models"
)

type Repository interface {
	// Find returns the subscription of subscriberID to channelID, or
	// common.ErrorNotFound.
	Find(ctx context.Context, subscriberID, channelID string) (*models.Subscription, error)

	Create(ctx context.Context, subscriberID, channelID string) (*models.Subscription, error)

	Delete(ctx context.Context, id string) error

	// ListSubscribers returns summaries of the users subscribed to a channel.
	ListSubscribers(ctx context.Context, channelID string) ([]*models.Subscription, error)

	// ListSubscribedTo returns the channels a user subscribes to.
	ListSubscribedTo(ctx context.Context, subscriberID string) ([]*models.Subscription, error)
}
