package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/okunevd/streamhub/internal/common"
	"github.com/okunevd/streamhub/internal/server/auth"
	"github.com/okunevd/streamhub/internal/server/models"
)

type ctxKey string

const identityKey ctxKey = "identity"

// identityFrom returns the authenticated user, or nil outside guarded routes.
func identityFrom(ctx context.Context) *models.User {
	user, _ := ctx.Value(identityKey).(*models.User)
	return user
}

// extractAccessToken prefers the accessToken cookie and falls back to a
// bearer Authorization header.
func extractAccessToken(r *http.Request) string {
	if c, err := r.Cookie(accessTokenCookie); err == nil && c.Value != "" {
		return c.Value
	}
	h := r.Header.Get("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}

// guard rejects requests without a valid access token, resolves the token's
// user id to an identity record, and attaches the resolved user to the
// request context. A validly signed token for a user that no longer exists
// is rejected the same way as an invalid one.
func (s *HTTPServer) guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractAccessToken(r)
		if token == "" {
			s.respondError(w, r, common.ErrMissingToken)
			return
		}
		claims, err := auth.ParseAccessToken(token, s.accessTokenSecret)
		if err != nil {
			s.respondError(w, r, err)
			return
		}
		user, err := s.users.GetByID(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				err = common.ErrorUnauthorized
			}
			s.respondError(w, r, err)
			return
		}
		ctx := context.WithValue(r.Context(), identityKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requestLogger emits one structured line per request.
func (s *HTTPServer) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start).String(),
		)
	})
}
