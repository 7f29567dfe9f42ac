// Package server wires the SealKeeper services together and runs them: it
// picks the storage, snapshot and mail backends from the configuration,
// serves gRPC, sweeps expired access codes and shuts down on a signal.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/sealkeeper/internal/cryptox"
	"github.com/dmitrijs2005/sealkeeper/internal/logging"
	"github.com/dmitrijs2005/sealkeeper/internal/server/config"
	"github.com/dmitrijs2005/sealkeeper/internal/server/mail"
	"github.com/dmitrijs2005/sealkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/sealkeeper/internal/server/services"
	"github.com/dmitrijs2005/sealkeeper/internal/server/snapshots"

	gs "github.com/dmitrijs2005/sealkeeper/internal/server/grpc"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	repos   repomanager.RepositoryManager
	store   snapshots.Store
	mailer  mail.Mailer
	seals   *services.SealRegistry
	shares  *services.ShareManager
	sweeper *services.Sweeper
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	return newApp(ctx, c, logging.NewJSONLogger(os.Stdout, c.LogLevel))
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	hasher, err := cryptox.NewHasher(c.HashAlgorithm)
	if err != nil {
		return nil, err
	}

	repos, err := openRepositories(ctx, c, logger)
	if err != nil {
		return nil, err
	}

	store, err := openStore(ctx, c, logger)
	if err != nil {
		_ = repos.Close()
		return nil, err
	}

	var mailer mail.Mailer
	if c.MailEndpoint != "" {
		mailer = mail.NewHTTPMailer(c.MailEndpoint, c.MailAPIKey, c.MailFrom, c.MailTimeout)
	} else {
		mailer = mail.NewLogMailer(logger)
	}

	seals := services.NewSealRegistry(repos, hasher, store, logger)
	shares := services.NewShareManager(repos, mailer, store, logger, services.ShareSettings{
		CodeValidity:    c.CodeValidityDuration,
		MaxCodeAttempts: c.MaxCodeAttempts,
		PreviewRunes:    c.PreviewRunes,
		PresignTTL:      c.PresignTTL,
		PublicBaseURL:   c.PublicBaseURL,
	})

	return &App{
		config:  c,
		logger:  logger,
		repos:   repos,
		store:   store,
		mailer:  mailer,
		seals:   seals,
		shares:  shares,
		sweeper: services.NewSweeper(shares, c.SweepInterval, logger),
	}, nil
}

func openRepositories(ctx context.Context, c *config.Config, logger logging.Logger) (repomanager.RepositoryManager, error) {
	if c.DatabaseDSN == "" {
		logger.Warn(ctx, "no database configured, data is kept in memory")
		return repomanager.NewMemoryRepositoryManager(), nil
	}

	rm, err := repomanager.NewPostgresRepositoryManager(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := rm.RunMigrations(ctx); err != nil {
		_ = rm.Close()
		return nil, fmt.Errorf("db migrations: %w", err)
	}
	return rm, nil
}

// openStore returns nil when no bucket is configured; seals are then
// kept without a snapshot.
func openStore(ctx context.Context, c *config.Config, logger logging.Logger) (snapshots.Store, error) {
	if c.S3Bucket == "" {
		logger.Warn(ctx, "no snapshot bucket configured, manuscript text is not archived")
		return nil, nil
	}
	s, err := snapshots.NewS3Store(ctx, snapshots.S3Config{
		Region:    c.S3Region,
		AccessKey: c.S3RootUser,
		SecretKey: c.S3RootPassword,
		Endpoint:  c.S3BaseEndpoint,
		Bucket:    c.S3Bucket,
	})
	if err != nil {
		return nil, fmt.Errorf("snapshot store: %w", err)
	}
	return s, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.seals, app.shares, app.config.SecretKey)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// closes the repositories.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.sweeper.Run(ctx)
	}()

	wg.Wait()

	app.logger.Info(context.Background(), "Stopped, closing storage")
	return app.repos.Close()
}
