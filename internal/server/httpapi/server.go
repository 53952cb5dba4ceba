// Package httpapi exposes the platform's REST surface on chi. Auth travels
// as httpOnly cookies with an Authorization-header fallback; responses use a
// uniform {status, data, message} envelope.
package httpapi

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/okunevd/streamhub/internal/logging"
	"github.com/okunevd/streamhub/internal/server/config"
	"github.com/okunevd/streamhub/internal/server/services"
)

// HTTPServer wires the service layer to the router and owns the listener.
type HTTPServer struct {
	address           string
	logger            logging.Logger
	db                *sql.DB
	users             *services.UserService
	videos            *services.VideoService
	comments          *services.CommentService
	likes             *services.LikeService
	playlists         *services.PlaylistService
	subscriptions     *services.SubscriptionService
	tweets            *services.TweetService
	dashboard         *services.DashboardService
	accessTokenSecret []byte
	cookieSecure      bool
}

func NewHTTPServer(cfg *config.Config, l logging.Logger, db *sql.DB,
	users *services.UserService, videos *services.VideoService,
	comments *services.CommentService, likes *services.LikeService,
	playlists *services.PlaylistService, subscriptions *services.SubscriptionService,
	tweets *services.TweetService, dashboard *services.DashboardService) *HTTPServer {

	return &HTTPServer{
		address:           cfg.EndpointAddr,
		logger:            l.With("module", "http_server"),
		db:                db,
		users:             users,
		videos:            videos,
		comments:          comments,
		likes:             likes,
		playlists:         playlists,
		subscriptions:     subscriptions,
		tweets:            tweets,
		dashboard:         dashboard,
		accessTokenSecret: []byte(cfg.AccessTokenSecret),
		cookieSecure:      cfg.CookieSecure,
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
