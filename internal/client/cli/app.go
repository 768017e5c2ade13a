package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/lovesurprise/internal/client/client"
	"github.com/dmitrijs2005/lovesurprise/internal/client/config"
	"github.com/dmitrijs2005/lovesurprise/internal/client/drafts"
	"github.com/dmitrijs2005/lovesurprise/internal/client/handoff"
	"github.com/dmitrijs2005/lovesurprise/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/lovesurprise/internal/client/repositories/staging"
	"github.com/dmitrijs2005/lovesurprise/internal/client/services"
	"github.com/dmitrijs2005/lovesurprise/internal/logging"
	"github.com/dmitrijs2005/lovesurprise/internal/netx"

	_ "modernc.org/sqlite"
)

type App struct {
	config *config.Config
	db     *sql.DB
	log    logging.Logger

	authService     services.AuthService
	draftService    services.DraftService
	paymentService  services.PaymentService
	surpriseService services.SurpriseService

	userName string
	reader   *bufio.Reader
	out      io.Writer
	now      func() time.Time
}

// NewApp opens the local database, dials the server and wires the services.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	files := staging.NewSQLiteRepository(db)
	kv := metadata.NewSQLiteRepository(db)
	slots := drafts.NewStore(kv)

	seq := handoff.NewSequencer(
		handoff.NewPollingWaiter(apiClient, c.SessionPollAttempts, c.SessionPollInterval, log),
		slots,
		files,
		apiClient,
		netx.NewUploader(nil),
		handoff.Paths{Payment: c.PaymentPath, Draft: c.DraftPath},
		log,
	)

	return &App{
		config:          c,
		db:              db,
		log:             log,
		authService:     services.NewAuthService(apiClient, slots, seq, log),
		draftService:    services.NewDraftService(files, slots),
		paymentService:  services.NewPaymentService(apiClient, kv, c.ShareBaseURL),
		surpriseService: services.NewSurpriseService(apiClient),
		reader:          bufio.NewReader(os.Stdin),
		out:             os.Stdout,
		now:             time.Now,
	}, nil
}

// Run starts the REPL and releases the connection and the database on exit.
func (a *App) Run(ctx context.Context) {
	defer func() {
		_ = a.authService.Close(ctx)
		if a.db != nil {
			_ = a.db.Close()
		}
	}()

	fmt.Fprintln(a.out, "Welcome to LoveSurprise CLI (type 'help' for commands)")
	if err := a.authService.Ping(ctx); err != nil {
		a.log.Warn(ctx, "server not reachable", "addr", a.config.ServerEndpointAddr, "error", err)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

// report prints a command error without ending the session.
func (a *App) report(err error) error {
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
	}
	return err
}
