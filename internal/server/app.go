// Package server initializes and runs the API server: it opens the database,
// applies migrations, wires repositories into services, and starts the HTTP
// endpoint with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/okunevd/streamhub/internal/logging"
	"github.com/okunevd/streamhub/internal/server/config"
	"github.com/okunevd/streamhub/internal/server/httpapi"
	"github.com/okunevd/streamhub/internal/server/media"
	"github.com/okunevd/streamhub/internal/server/repositories/repomanager"
	"github.com/okunevd/streamhub/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	http   *httpapi.HTTPServer
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := repomanager.OpenDB(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	store := media.NewS3Store(cfg)

	us := services.NewUserService(db, rm, store, cfg)
	vs := services.NewVideoService(db, rm, store)
	cs := services.NewCommentService(db, rm)
	ls := services.NewLikeService(db, rm)
	ps := services.NewPlaylistService(db, rm)
	ss := services.NewSubscriptionService(db, rm)
	ts := services.NewTweetService(db, rm)
	ds := services.NewDashboardService(db, rm)

	httpServer := httpapi.NewHTTPServer(cfg, logger, db, us, vs, cs, ls, ps, ss, ts, ds)

	return &App{config: cfg, logger: logger, db: db, http: httpServer}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.http.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "error closing db", "error", err.Error())
	}
}
