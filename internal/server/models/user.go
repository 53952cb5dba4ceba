// Package models defines the persisted entities of the platform. Password
// hashes and stored refresh tokens never leave the server: both are excluded
// from JSON marshalling and from the sanitized projections used by the
// request guard.
package models

import "time"

// User is the identity record. Handle and Email are globally unique.
// RefreshToken holds the single currently-valid refresh token for the user;
// nil means no active session (never logged in, or logged out).
type User struct {
	ID           string    `json:"id"`
	Handle       string    `json:"handle"`
	Email        string    `json:"email"`
	FullName     string    `json:"fullName"`
	Avatar       string    `json:"avatar"`
	CoverImage   string    `json:"coverImage,omitempty"`
	PasswordHash string    `json:"-"`
	RefreshToken *string   `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserSummary is the owner/actor projection embedded in feed-style reads.
type UserSummary struct {
	ID       string `json:"id"`
	Handle   string `json:"handle"`
	FullName string `json:"fullName"`
	Avatar   string `json:"avatar"`
}

// Summary returns the public projection of a user.
func (u *User) Summary() *UserSummary {
	return &UserSummary{ID: u.ID, Handle: u.Handle, FullName: u.FullName, Avatar: u.Avatar}
}

// ChannelProfile is the aggregated public view of a user's channel.
type ChannelProfile struct {
	UserSummary
	CoverImage        string `json:"coverImage,omitempty"`
	SubscriberCount   int64  `json:"subscribersCount"`
	SubscribedToCount int64  `json:"channelsSubscribedToCount"`
	IsSubscribed      bool   `json:"isSubscribed"`
}
