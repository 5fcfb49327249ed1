// Package server initializes and runs the Gatekeeper server: it selects
// the authentication backend, opens the credential store when one is
// needed, runs migrations, and starts the HTTP session gateway with
// graceful shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/gatekeeper/internal/logging"
	"github.com/dmitrijs2005/gatekeeper/internal/server/config"
	"github.com/dmitrijs2005/gatekeeper/internal/server/httpapi"
	"github.com/dmitrijs2005/gatekeeper/internal/server/identity"
	"github.com/dmitrijs2005/gatekeeper/internal/server/password"
	"github.com/dmitrijs2005/gatekeeper/internal/server/proxy"
	"github.com/dmitrijs2005/gatekeeper/internal/server/shared/db"
	"github.com/dmitrijs2005/gatekeeper/internal/server/users"
)

var _ identity.Provider = (*users.Service)(nil)

type App struct {
	config   *config.Config
	logger   logging.Logger
	manager  db.RepositoryManager
	provider identity.Provider
}

// NewApp wires the application from configuration. The backend is chosen
// here, once; everything downstream sees only an identity.Provider.
func NewApp(cfg *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout)

	app := &App{config: cfg, logger: logger}

	switch cfg.AuthBackend {
	case config.BackendProxy:
		app.provider = proxy.New(cfg.UpstreamBaseURL, cfg.UpstreamTimeout, logger)

	case config.BackendLocal:
		var m db.RepositoryManager
		var err error

		switch cfg.StoreDriver {
		case config.StoreMemory:
			m = db.NewInMemoryRepositoryManager()
		default:
			m, err = db.NewPostgresRepositoryManager(cfg.DatabaseDSN)
			if err != nil {
				return nil, fmt.Errorf("db init error: %w", err)
			}
		}

		app.manager = m
		app.provider = users.NewService(m.Users(), password.New(), cfg)

	default:
		return nil, fmt.Errorf("unknown auth backend %q", cfg.AuthBackend)
	}

	return app, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "backend", app.config.AuthBackend)

	app.initSignalHandler(cancelFunc)

	if app.manager != nil {
		if err := app.manager.RunMigrations(ctx); err != nil {
			return fmt.Errorf("migration error: %w", err)
		}
		defer func() {
			if err := app.manager.Close(); err != nil {
				app.logger.Error(ctx, "error closing store", "error", err.Error())
			}
		}()
	}

	srv := httpapi.NewServer(app.config, app.provider, app.logger)
	return srv.Run(ctx)
}
