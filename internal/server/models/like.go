package models

import "time"

// LikeTarget names the kind of entity a like is attached to.
type LikeTarget string

const (
	LikeTargetVideo   LikeTarget = "video"
	LikeTargetComment LikeTarget = "comment"
	LikeTargetTweet   LikeTarget = "tweet"
)

// Like records that a user liked exactly one target entity. At most one of
// VideoID/CommentID/TweetID is set, matching Target.
type Like struct {
	ID        string     `json:"id"`
	Target    LikeTarget `json:"target"`
	VideoID   *string    `json:"videoId,omitempty"`
	CommentID *string    `json:"commentId,omitempty"`
	TweetID   *string    `json:"tweetId,omitempty"`
	LikedByID string     `json:"likedBy"`
	CreatedAt time.Time  `json:"createdAt"`
}
