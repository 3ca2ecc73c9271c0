// Package server wires the storefront services together and runs them: the
// gRPC endpoint and the stale-charge sweeper share one lifecycle and stop
// on SIGINT, SIGTERM or SIGQUIT.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/dmitrijs2005/storefront/internal/server/auth"
	"github.com/dmitrijs2005/storefront/internal/server/config"
	"github.com/dmitrijs2005/storefront/internal/server/mail"
	"github.com/dmitrijs2005/storefront/internal/server/payment"
	"github.com/dmitrijs2005/storefront/internal/server/reconcile"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/storefront/internal/server/services"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/storefront/internal/server/grpc"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	server  *gs.GRPCServer
	sweeper *services.ChargeSweeper
}

// openDB is a seam for tests.
var openDB = func(dsn string) (*sql.DB, error) {
	return sql.Open("pgx", dsn)
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout, c.LogLevel, "app", "storefront")

	db, err := openDB(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	app, err := newApp(ctx, c, logger, db, repomanager.NewPostgresRepositoryManager())
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return app, nil
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger, db *sql.DB, repos repomanager.RepositoryManager) (*App, error) {
	initCtx, cancel := context.WithTimeout(ctx, c.DatabaseTimeout)
	defer cancel()

	if err := db.PingContext(initCtx); err != nil {
		return nil, fmt.Errorf("db ping error: %w", err)
	}
	if err := repos.RunMigrations(initCtx, db); err != nil {
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	gateway, err := newGateway(c)
	if err != nil {
		return nil, err
	}
	mailer, err := newMailer(c, logger)
	if err != nil {
		return nil, err
	}
	recorder, err := newRecorder(ctx, c, logger)
	if err != nil {
		return nil, err
	}

	tokens := auth.NewTokenCodec([]byte(c.SecretKey), c.SessionTTL)
	resolver := auth.NewResolver(tokens, repos.Users(db))

	svc := gs.Services{
		Users:    services.NewUserService(db, repos, tokens, logger),
		Resets:   services.NewResetService(db, repos, tokens, mailer, c.ResetTokenTTL, c.FrontendURL, logger),
		Items:    services.NewItemService(db, repos, logger),
		Carts:    services.NewCartService(db, repos),
		Checkout: services.NewCheckoutService(db, repos, gateway, recorder, c.Currency, c.PaymentTimeout, logger),
		Orders:   services.NewOrderService(db, repos),
	}

	return &App{
		config:  c,
		logger:  logger,
		db:      db,
		server:  gs.NewGRPCServer(c.EndpointAddrGRPC, logger, resolver, svc),
		sweeper: services.NewChargeSweeper(db, repos, recorder, c.StaleChargeAfter, c.SweepInterval, logger),
	}, nil
}

func newGateway(c *config.Config) (payment.Gateway, error) {
	switch c.PaymentProvider {
	case "sandbox":
		return payment.NewSandboxGateway(), nil
	case "mercadopago":
		if c.MercadoPagoAccessToken == "" {
			return nil, fmt.Errorf("payment provider mercadopago needs an access token")
		}
		return payment.NewMercadoPagoGateway(c.MercadoPagoAccessToken, c.MercadoPagoMethodID, c.Currency)
	default:
		return nil, fmt.Errorf("unknown payment provider %q", c.PaymentProvider)
	}
}

func newMailer(c *config.Config, logger logging.Logger) (mail.Sender, error) {
	if c.SMTPHost == "" {
		return mail.NewLogSender(logger), nil
	}
	return mail.NewSMTPSender(c.SMTPHost, c.SMTPPort, c.SMTPUser, c.SMTPPassword, c.MailFrom)
}

func newRecorder(ctx context.Context, c *config.Config, logger logging.Logger) (reconcile.Recorder, error) {
	if c.S3Bucket == "" {
		return reconcile.NewLogRecorder(logger), nil
	}
	return reconcile.NewS3Recorder(ctx, reconcile.S3Options{
		Bucket:       c.S3Bucket,
		Region:       c.S3Region,
		AccessKey:    c.S3RootUser,
		SecretKey:    c.S3RootPassword,
		BaseEndpoint: c.S3BaseEndpoint,
	})
}

// Run serves until a termination signal arrives or a component fails.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app.logger.Info(ctx, "Starting app...")

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return app.server.Run(ctx) })
	g.Go(func() error { return app.sweeper.Run(ctx) })

	err := g.Wait()
	if cerr := app.db.Close(); cerr != nil {
		app.logger.Warn(context.Background(), "db close", "error", cerr)
	}
	app.logger.Info(context.Background(), "Stopped")
	return err
}
