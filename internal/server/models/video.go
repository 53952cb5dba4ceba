package models

import "time"

// Video is an uploaded video. VideoFile and Thumbnail are media-store URLs.
// A video is created unpublished; only published videos appear in public
// listings.
type Video struct {
	ID          string       `json:"id"`
	OwnerID     string       `json:"ownerId"`
	Owner       *UserSummary `json:"owner,omitempty"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	VideoFile   string       `json:"videoFile"`
	Thumbnail   string       `json:"thumbnail"`
	Duration    float64      `json:"duration"`
	Views       int64        `json:"views"`
	IsPublished bool         `json:"isPublished"`
	LikeCount   int64        `json:"likesCount"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// VideoFilter narrows and orders video listings.
type VideoFilter struct {
	OwnerID string
	// Query is matched against title and description.
	Query string
	// SortBy is one of "created_at", "views", "title"; empty means created_at.
	SortBy string
	// SortAsc orders ascending when true, descending otherwise.
	SortAsc bool
	// PublishedOnly restricts the listing to published videos.
	PublishedOnly bool
}
