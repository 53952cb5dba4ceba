// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, and issuing/refreshing JWTs,
// plus profile and channel reads.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/okunevd/streamhub/internal/common"
	"github.com/okunevd/streamhub/internal/server/auth"
	"github.com/okunevd/streamhub/internal/server/config"
	"github.com/okunevd/streamhub/internal/server/media"
	"github.com/okunevd/streamhub/internal/server/models"
	"github.com/okunevd/streamhub/internal/server/repositories/repomanager"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// FileUpload is an incoming media file handed down from the HTTP layer.
type FileUpload struct {
	ContentType string
	Body        io.Reader
}

// RegisterParams carries the registration form. Avatar is required,
// CoverImage is optional.
type RegisterParams struct {
	Handle     string
	Email      string
	FullName   string
	Password   string
	Avatar     *FileUpload
	CoverImage *FileUpload
}

// UserService provides identity operations:
//   - Register / Login / Logout
//   - RefreshTokens: single-use rotation of the stored refresh token
//   - profile reads and avatar/cover updates
type UserService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	media                        media.Store
	accessTokenSecret            []byte
	refreshTokenSecret           []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories, the media
// store, and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, store media.Store, cfg *config.Config) *UserService {
	return &UserService{
		db:                           db,
		repomanager:                  m,
		media:                        store,
		accessTokenSecret:            []byte(cfg.AccessTokenSecret),
		refreshTokenSecret:           []byte(cfg.RefreshTokenSecret),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// Register creates a new user, uploading avatar and optional cover image to
// the media store. A duplicate handle or email yields ErrorConflict.
func (s *UserService) Register(ctx context.Context, params RegisterParams) (*models.User, error) {
	if params.Handle == "" || params.Email == "" || params.FullName == "" || params.Password == "" {
		return nil, fmt.Errorf("%w: handle, email, fullName and password are required", common.ErrorInvalidInput)
	}
	if params.Avatar == nil {
		return nil, fmt.Errorf("%w: avatar file is required", common.ErrorInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	avatarURL, err := s.media.Upload(ctx, "avatars", params.Avatar.ContentType, params.Avatar.Body)
	if err != nil {
		return nil, fmt.Errorf("error uploading avatar: %w", err)
	}

	var coverURL string
	if params.CoverImage != nil {
		coverURL, err = s.media.Upload(ctx, "covers", params.CoverImage.ContentType, params.CoverImage.Body)
		if err != nil {
			return nil, fmt.Errorf("error uploading cover image: %w", err)
		}
	}

	user := &models.User{
		Handle:       params.Handle,
		Email:        params.Email,
		FullName:     params.FullName,
		Avatar:       avatarURL,
		CoverImage:   coverURL,
		PasswordHash: string(hash),
	}
	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return nil, common.ErrorConflict
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login verifies credentials for a handle or email and, on success, mints a
// token pair and stores the refresh token on the user row. Bad credentials
// and unknown logins both collapse to ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, login, password string) (*models.User, *TokenPair, error) {
	if login == "" || password == "" {
		return nil, nil, fmt.Errorf("%w: login and password are required", common.ErrorInvalidInput)
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil, common.ErrorUnauthorized
		}
		return nil, nil, common.ErrorInternal
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil, common.ErrorUnauthorized
	}

	pair, err := s.generateTokenPair(user)
	if err != nil {
		return nil, nil, err
	}
	if err := repo.SetRefreshToken(ctx, user.ID, &pair.RefreshToken); err != nil {
		return nil, nil, common.ErrorInternal
	}

	user.PasswordHash = ""
	user.RefreshToken = nil
	return user, pair, nil
}

// Logout clears the stored refresh token, ending the session everywhere.
func (s *UserService) Logout(ctx context.Context, userID string) error {
	repo := s.repomanager.Users(s.db)
	if err := repo.SetRefreshToken(ctx, userID, nil); err != nil {
		return common.ErrorInternal
	}
	return nil
}

// RefreshTokens validates a refresh token and rotates it in a single
// compare-and-swap against the stored value. A token that no longer matches
// the stored one (already used, superseded by a later login, or cleared by
// logout) yields ErrRefreshTokenReused.
func (s *UserService) RefreshTokens(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := auth.ParseRefreshToken(refreshToken, s.refreshTokenSecret)
	if err != nil {
		return nil, err
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	pair, err := s.generateTokenPair(user)
	if err != nil {
		return nil, err
	}

	swapped, err := repo.SwapRefreshToken(ctx, user.ID, refreshToken, pair.RefreshToken)
	if err != nil {
		return nil, common.ErrorInternal
	}
	if !swapped {
		return nil, common.ErrRefreshTokenReused
	}
	return pair, nil
}

// GetByID returns the sanitized user record.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, id)
}

// UpdateProfile changes full name and/or email. Supplying neither is an error.
func (s *UserService) UpdateProfile(ctx context.Context, id string, fullName, email *string) (*models.User, error) {
	if fullName == nil && email == nil {
		return nil, fmt.Errorf("%w: nothing to update", common.ErrorInvalidInput)
	}
	return s.repomanager.Users(s.db).UpdateProfile(ctx, id, fullName, email)
}

// UpdateAvatar uploads a new avatar, swaps the URL on the user row, and
// deletes the previous media object best-effort.
func (s *UserService) UpdateAvatar(ctx context.Context, id string, file *FileUpload) (*models.User, error) {
	return s.updateImage(ctx, id, file, "avatars", s.repomanager.Users(s.db).UpdateAvatar)
}

// UpdateCoverImage does the same for the cover image.
func (s *UserService) UpdateCoverImage(ctx context.Context, id string, file *FileUpload) (*models.User, error) {
	return s.updateImage(ctx, id, file, "covers", s.repomanager.Users(s.db).UpdateCoverImage)
}

func (s *UserService) updateImage(ctx context.Context, id string, file *FileUpload, kind string,
	swap func(ctx context.Context, id, url string) (string, error)) (*models.User, error) {

	if file == nil {
		return nil, fmt.Errorf("%w: %s file is required", common.ErrorInvalidInput, kind)
	}

	url, err := s.media.Upload(ctx, kind, file.ContentType, file.Body)
	if err != nil {
		return nil, fmt.Errorf("error uploading %s: %w", kind, err)
	}

	prev, err := swap(ctx, id, url)
	if err != nil {
		return nil, err
	}

	// best-effort: a stale object is harmless, a failed request is not
	_ = s.media.Delete(ctx, prev)

	return s.repomanager.Users(s.db).GetByID(ctx, id)
}

// GetChannelProfile aggregates the public channel view for a handle.
// viewerID may be empty for anonymous viewers.
func (s *UserService) GetChannelProfile(ctx context.Context, handle, viewerID string) (*models.ChannelProfile, error) {
	if handle == "" {
		return nil, fmt.Errorf("%w: handle is required", common.ErrorInvalidInput)
	}
	return s.repomanager.Users(s.db).GetChannelProfile(ctx, handle, viewerID)
}

// GetWatchHistory returns the user's recently watched videos, newest first.
func (s *UserService) GetWatchHistory(ctx context.Context, userID string, limit, offset int) ([]*models.Video, error) {
	return s.repomanager.Users(s.db).GetWatchHistory(ctx, userID, limit, offset)
}

func (s *UserService) generateTokenPair(user *models.User) (*TokenPair, error) {
	access, err := auth.GenerateAccessToken(user.ID, user.Email, user.Handle, s.accessTokenSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := auth.GenerateRefreshToken(user.ID, s.refreshTokenSecret, s.refreshTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
