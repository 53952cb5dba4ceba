package models

import "time"

// Subscription records that one user (the subscriber) follows another
// user's channel. The (subscriber, channel) pair is unique.
type Subscription struct {
	ID           string       `json:"id"`
	SubscriberID string       `json:"subscriberId"`
	ChannelID    string       `json:"channelId"`
	Subscriber   *UserSummary `json:"subscriber,omitempty"`
	Channel      *UserSummary `json:"channel,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
}
