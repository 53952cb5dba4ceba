package httpapi

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (s *HTTPServer) routes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealthz)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/register", s.handleRegister)
			r.Post("/login", s.handleLogin)
			r.Post("/refresh-token", s.handleRefreshToken)

			r.Group(func(r chi.Router) {
				r.Use(s.guard)
				r.Post("/logout", s.handleLogout)
				r.Get("/get-user", s.handleGetUser)
				r.Patch("/update-user", s.handleUpdateUser)
				r.Patch("/avatar", s.handleUpdateAvatar)
				r.Patch("/cover-image", s.handleUpdateCoverImage)
				r.Get("/c/{handle}", s.handleChannelProfile)
				r.Get("/watch-history", s.handleWatchHistory)
			})
		})

		r.Route("/videos", func(r chi.Router) {
			r.Use(s.guard)
			r.Get("/", s.handleListVideos)
			r.Post("/", s.handlePublishVideo)
			r.Get("/{videoId}", s.handleGetVideo)
			r.Patch("/{videoId}", s.handleUpdateVideo)
			r.Delete("/{videoId}", s.handleDeleteVideo)
			r.Patch("/toggle/publish/{videoId}", s.handleTogglePublish)
		})

		r.Route("/comments", func(r chi.Router) {
			r.Use(s.guard)
			r.Get("/{videoId}", s.handleListComments)
			r.Post("/{videoId}", s.handleAddComment)
			r.Patch("/c/{commentId}", s.handleUpdateComment)
			r.Delete("/c/{commentId}", s.handleDeleteComment)
		})

		r.Route("/likes", func(r chi.Router) {
			r.Use(s.guard)
			r.Post("/toggle/v/{videoId}", s.handleToggleVideoLike)
			r.Post("/toggle/c/{commentId}", s.handleToggleCommentLike)
			r.Post("/toggle/t/{tweetId}", s.handleToggleTweetLike)
			r.Get("/videos", s.handleListLikedVideos)
		})

		r.Route("/playlists", func(r chi.Router) {
			r.Use(s.guard)
			r.Post("/", s.handleCreatePlaylist)
			r.Get("/user/{userId}", s.handleListUserPlaylists)
			r.Get("/{playlistId}", s.handleGetPlaylist)
			r.Patch("/{playlistId}", s.handleUpdatePlaylist)
			r.Delete("/{playlistId}", s.handleDeletePlaylist)
			r.Patch("/add/{videoId}/{playlistId}", s.handleAddPlaylistVideo)
			r.Patch("/remove/{videoId}/{playlistId}", s.handleRemovePlaylistVideo)
		})

		r.Route("/subscriptions", func(r chi.Router) {
			r.Use(s.guard)
			r.Post("/c/{channelId}", s.handleToggleSubscription)
			r.Get("/c/{channelId}", s.handleListSubscribers)
			r.Get("/u/{subscriberId}", s.handleListSubscribedTo)
		})

		r.Route("/tweets", func(r chi.Router) {
			r.Use(s.guard)
			r.Post("/", s.handleCreateTweet)
			r.Get("/user/{userId}", s.handleListUserTweets)
			r.Patch("/{tweetId}", s.handleUpdateTweet)
			r.Delete("/{tweetId}", s.handleDeleteTweet)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Use(s.guard)
			r.Get("/stats", s.handleDashboardStats)
			r.Get("/videos", s.handleDashboardVideos)
		})
	})

	return r
}
