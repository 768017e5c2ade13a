// Package server wires configuration, storage, the job queue and the gRPC
// API into a runnable application.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/hibiken/asynq"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/dmitrijs2005/lovesurprise/internal/logging"
	"github.com/dmitrijs2005/lovesurprise/internal/server/config"
	"github.com/dmitrijs2005/lovesurprise/internal/server/notifications"
	"github.com/dmitrijs2005/lovesurprise/internal/server/photostore"
	"github.com/dmitrijs2005/lovesurprise/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/lovesurprise/internal/server/services"

	gs "github.com/dmitrijs2005/lovesurprise/internal/server/grpc"
)

type App struct {
	config          *config.Config
	logger          logging.Logger
	db              *sql.DB
	queue           *asynq.Client
	userService     *services.UserService
	surpriseService *services.SurpriseService
}

// NewLogger returns the JSON logger used by the server binaries.
func NewLogger(cfg *config.Config) logging.Logger {
	return logging.NewJSON(os.Stdout, logging.ParseLevel(cfg.LogLevel))
}

// OpenDatabase connects to Postgres and applies pending migrations.
func OpenDatabase(ctx context.Context, cfg *config.Config, m repomanager.RepositoryManager) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}
	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db migrations error: %w", err)
	}
	return db, nil
}

func newPhotoStore(ctx context.Context, cfg *config.Config) (photostore.Store, error) {
	store, err := photostore.New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if m, ok := store.(*photostore.MinIOStore); ok {
		if err := m.EnsureBucket(ctx); err != nil {
			return nil, err
		}
	}
	return store, nil
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	rm := repomanager.NewPostgresRepositoryManager()

	db, err := OpenDatabase(ctx, c, rm)
	if err != nil {
		return nil, err
	}

	store, err := newPhotoStore(ctx, c)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	queue := asynq.NewClient(asynq.RedisClientOpt{Addr: c.RedisAddr})
	notifier := notifications.NewEnqueuer(queue)

	return &App{
		config:          c,
		logger:          logger,
		db:              db,
		queue:           queue,
		userService:     services.NewUserService(db, rm, c),
		surpriseService: services.NewSurpriseService(db, rm, store, notifier, logger.With("module", "surprises")),
	}, nil
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService, app.surpriseService, app.config.SecretKey)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or the gRPC server fails, then releases
// the database and queue connections.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	wg.Wait()

	if err := app.queue.Close(); err != nil {
		app.logger.Warn(ctx, "queue close error", "error", err)
	}
	if err := app.db.Close(); err != nil {
		app.logger.Warn(ctx, "db close error", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
