package server

import (
	"context"
	"database/sql"

	"github.com/hibiken/asynq"

	"github.com/dmitrijs2005/lovesurprise/internal/logging"
	"github.com/dmitrijs2005/lovesurprise/internal/server/config"
	"github.com/dmitrijs2005/lovesurprise/internal/server/notifications"
	"github.com/dmitrijs2005/lovesurprise/internal/server/repositories/repomanager"
)

// Worker consumes background jobs such as "surprise viewed" notifications.
type Worker struct {
	logger logging.Logger
	db     *sql.DB
	server *asynq.Server
	mux    *asynq.ServeMux
}

func NewWorker(ctx context.Context, c *config.Config, logger logging.Logger) (*Worker, error) {
	rm := repomanager.NewPostgresRepositoryManager()
	db, err := OpenDatabase(ctx, c, rm)
	if err != nil {
		return nil, err
	}

	srv := asynq.NewServer(asynq.RedisClientOpt{Addr: c.RedisAddr}, asynq.Config{
		Concurrency: c.WorkerConcurrency,
	})
	processor := notifications.NewProcessor(rm.Notifications(db), logger.With("module", "worker"))

	return &Worker{logger: logger, db: db, server: srv, mux: processor.Handler()}, nil
}

// Run processes jobs until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	defer w.db.Close()

	if err := w.server.Start(w.mux); err != nil {
		return err
	}
	w.logger.Info(ctx, "Worker started")

	<-ctx.Done()
	w.server.Shutdown()
	w.logger.Info(ctx, "Worker stopped")
	return nil
}
