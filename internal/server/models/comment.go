package models

import "time"

// Comment is a user comment on a video.
type Comment struct {
	ID        string       `json:"id"`
	VideoID   string       `json:"videoId"`
	OwnerID   string       `json:"ownerId"`
	Owner     *UserSummary `json:"owner,omitempty"`
	Content   string       `json:"content"`
	LikeCount int64        `json:"likesCount"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}
