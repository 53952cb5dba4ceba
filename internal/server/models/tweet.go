package models

import "time"

// Tweet is a short-form text post on a user's channel.
type Tweet struct {
	ID        string       `json:"id"`
	OwnerID   string       `json:"ownerId"`
	Owner     *UserSummary `json:"owner,omitempty"`
	Content   string       `json:"content"`
	LikeCount int64        `json:"likesCount"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// ChannelStats aggregates a channel's totals for the dashboard.
type ChannelStats struct {
	TotalVideos      int64 `json:"totalVideos"`
	TotalViews       int64 `json:"totalViews"`
	TotalLikes       int64 `json:"totalLikes"`
	TotalSubscribers int64 `json:"totalSubscribers"`
}
