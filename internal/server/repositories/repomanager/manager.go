package repomanager

import (
	"context"
	"database/sql"

	"github.com/okunevd/streamhub/internal/dbx"
	"github.com/okunevd/streamhub/internal/server/repositories/comments"
	"github.com/okunevd/streamhub/internal/server/repositories/likes"
	"github.com/okunevd/streamhub/internal/server/repositories/playlists"
	"github.com/okunevd/streamhub/internal/server/repositories/subscriptions"
	"github.com/okunevd/streamhub/internal/server/repositories/tweets"
	"github.com/okunevd/streamhub/internal/server/repositories/users"
	"github.com/okunevd/streamhub/internal/server/repositories/videos"
)

// RepositoryManager vends repositories bound to a DBTX, so services can run
// any repository method either on the pool or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Videos(db dbx.DBTX) videos.Repository
	Comments(db dbx.DBTX) comments.Repository
	Likes(db dbx.DBTX) likes.Repository
	Playlists(db dbx.DBTX) playlists.Repository
	Subscriptions(db dbx.DBTX) subscriptions.Repository
	Tweets(db dbx.DBTX) tweets.Repository
}
