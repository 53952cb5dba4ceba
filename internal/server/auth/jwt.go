// Package auth implements signing and verification of the access/refresh
// token pair. Access tokens assert {user id, email, handle} for a single
// request window; refresh tokens assert only the user id and are mirrored
// into the users table for single-use enforcement.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/okunevd/streamhub/internal/common"
)

// AccessClaims is the payload of a short-lived access token.
type AccessClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
	Email  string `json:"email"`
	Handle string `json:"handle"`
}

// RefreshClaims is the payload of a long-lived refresh token.
type RefreshClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
}

// GenerateAccessToken signs an HS256 access token for the given identity.
func GenerateAccessToken(userID, email, handle string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, AccessClaims{
		RegisteredClaims: registeredClaims(validityDuration),
		UserID:           userID,
		Email:            email,
		Handle:           handle,
	})
	return token.SignedString(secretKey)
}

// GenerateRefreshToken signs an HS256 refresh token carrying only the user id.
func GenerateRefreshToken(userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, RefreshClaims{
		RegisteredClaims: registeredClaims(validityDuration),
		UserID:           userID,
	})
	return token.SignedString(secretKey)
}

// registeredClaims builds the shared claim set. The random jti guarantees
// every minted token is distinct. Without it the expiry is encoded at
// one-second precision and two tokens for the same user minted in the same
// second would be byte-identical, which would defeat the stored-token swap
// that makes refresh tokens single-use.
func registeredClaims(validityDuration time.Duration) jwt.RegisteredClaims {
	now := time.Now()
	return jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
	}
}

// ParseAccessToken verifies signature and expiry and returns the claims.
// Every verification failure (bad signature, expired, malformed) collapses
// to common.ErrInvalidToken so callers cannot distinguish the cases.
func ParseAccessToken(tokenString string, secretKey []byte) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if err := parse(tokenString, claims, secretKey); err != nil {
		return nil, err
	}
	return claims, nil
}

// ParseRefreshToken verifies a refresh token against the refresh secret.
func ParseRefreshToken(tokenString string, secretKey []byte) (*RefreshClaims, error) {
	claims := &RefreshClaims{}
	if err := parse(tokenString, claims, secretKey); err != nil {
		return nil, err
	}
	return claims, nil
}

func parse(tokenString string, claims jwt.Claims, secretKey []byte) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return common.ErrTokenExpired
		}
		return common.ErrInvalidToken
	}
	if !token.Valid {
		return common.ErrInvalidToken
	}
	return nil
}
