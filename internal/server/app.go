// Package server wires the portal together: credential database, roster
// importer, document vault, services, the Portal gRPC service and the
// Prometheus endpoint. It handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/cameportal/internal/dbx"
	"github.com/dmitrijs2005/cameportal/internal/logging"
	"github.com/dmitrijs2005/cameportal/internal/server/config"
	"github.com/dmitrijs2005/cameportal/internal/server/metrics"
	"github.com/dmitrijs2005/cameportal/internal/server/registry"
	"github.com/dmitrijs2005/cameportal/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/cameportal/internal/server/services"
	"github.com/dmitrijs2005/cameportal/internal/server/session"
	"github.com/dmitrijs2005/cameportal/internal/server/vault"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/cameportal/internal/server/grpc"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	metrics *metrics.Metrics
	grpc    *gs.GRPCServer
}

// NewApp opens the credential database, applies migrations and builds
// every service. Logs go to w.
func NewApp(ctx context.Context, c *config.Config, w io.Writer) (*App, error) {
	logger := logging.New(w, c.LogLevel)

	dialect, err := dbx.DialectFor(c.DatabaseDriver)
	if err != nil {
		return nil, err
	}

	db, err := repomanager.Open(ctx, dialect, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewSQLRepositoryManager(dialect)
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	backend, err := newVaultBackend(ctx, c)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("vault init error: %w", err)
	}

	mx := metrics.New()
	roster := registry.NewImporter(c.RosterPath, logger)
	us := services.NewUserService(db, rm, logger, mx)
	gate := services.NewGate(roster, us, session.NewStore(), c.SecretKey, logger, mx)
	docs := services.NewDocumentService(roster, vault.New(backend, logger), us, logger, mx, c.MaxUploadBytes, c.DownloadURLTTL)
	ents := services.NewEntityService(roster, logger, mx)

	srv := gs.NewGRPCServer(c.EndpointAddrGRPC, logger, gs.Services{
		Gate:      gate,
		Users:     us,
		Documents: docs,
		Entities:  ents,
	}, mx, c.AdminKey, c.OperationTimeout, c.MaxUploadBytes)

	return &App{config: c, logger: logger, db: db, metrics: mx, grpc: srv}, nil
}

func newVaultBackend(ctx context.Context, c *config.Config) (vault.Backend, error) {
	switch c.VaultBackend {
	case config.VaultBackendFS, "":
		return vault.NewFSBackend(c.VaultDir)
	case config.VaultBackendS3:
		return vault.NewS3Backend(ctx, vault.S3Config{
			Region:    c.S3Region,
			Endpoint:  c.S3BaseEndpoint,
			Bucket:    c.S3Bucket,
			Prefix:    c.S3Prefix,
			AccessKey: c.S3AccessKey,
			SecretKey: c.S3SecretKey,
			PathStyle: c.S3PathStyle,
		})
	default:
		return nil, fmt.Errorf("unknown vault backend %q", c.VaultBackend)
	}
}

func (app *App) runMetricsServer(ctx context.Context, g *errgroup.Group) {
	srv := &http.Server{
		Addr:              app.config.MetricsAddr,
		Handler:           app.metrics.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g.Go(func() error {
		app.logger.Info(ctx, "Starting metrics server", "address", app.config.MetricsAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
}

// Run serves until ctx is cancelled, SIGINT/SIGTERM arrives or a listener
// fails, then closes the database.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	defer func() {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, "closing database", "error", err)
		}
	}()

	app.logger.Info(ctx, "Starting app...")

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return app.grpc.Run(gctx)
	})

	if app.config.MetricsAddr != "" {
		app.runMetricsServer(gctx, g)
	}

	err := g.Wait()
	app.logger.Info(context.WithoutCancel(ctx), "App stopped")
	return err
}
