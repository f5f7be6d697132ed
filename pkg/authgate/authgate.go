// Package authgate assembles the sign-up and sign-in HTTP boundary around
// use cases supplied by the host application.
//
//	app, err := authgate.New(cfg, mySignUp, mySignIn)
//	...
//	go app.Start()
//	defer app.Shutdown(ctx)
//
// Run does the same with configuration read from AUTHGATE_* variables and
// blocks until SIGINT or SIGTERM.
package authgate

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/deppfellow/authgate/internal/config"
	"github.com/deppfellow/authgate/internal/handler"
	"github.com/deppfellow/authgate/internal/logger"
	"github.com/deppfellow/authgate/internal/router"
	"github.com/deppfellow/authgate/internal/server"
	"github.com/deppfellow/authgate/internal/service"
	"github.com/deppfellow/authgate/pkg/usecase"
)

// Config is the application configuration.
type Config = config.Config

// DefaultShutdownTimeout bounds graceful shutdown in Run.
const DefaultShutdownTimeout = 30 * time.Second

// LoadConfig reads AUTHGATE_* environment variables (and .env).
func LoadConfig() (*Config, error) {
	return config.LoadConfig()
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return config.Default()
}

// App is an assembled, not yet started, HTTP boundary.
type App struct {
	server  *server.Server
	handler http.Handler
}

// New wires logging, middleware, controllers and routes.
func New(cfg *Config, signUp usecase.SignUp, signIn usecase.SignIn) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if cfg.Observability == nil {
		cfg.Observability = config.DefaultObservabilityConfig()
	}

	loggerService, err := logger.NewLoggerService(cfg.Observability)
	if err != nil {
		return nil, err
	}

	log := logger.NewLogger(cfg.Observability, loggerService)

	return newApp(cfg, &log, loggerService, signUp, signIn)
}

func newApp(cfg *Config, log *zerolog.Logger, loggerService *logger.LoggerService, signUp usecase.SignUp, signIn usecase.SignIn) (*App, error) {
	services, err := service.NewServices(signUp, signIn)
	if err != nil {
		return nil, err
	}

	srv, err := server.New(cfg, log, loggerService)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize server: %w", err)
	}

	r := router.NewRouter(srv, handler.NewHandlers(srv, services))
	srv.SetupHTTPServer(r)

	return &App{server: srv, handler: r}, nil
}

// Handler returns the routed http.Handler, for embedding or tests.
func (a *App) Handler() http.Handler {
	return a.handler
}

// Start listens on the configured port and blocks until Shutdown.
func (a *App) Start() error {
	return a.server.Start()
}

// Shutdown drains in-flight requests until ctx expires.
func (a *App) Shutdown(ctx context.Context) error {
	return a.server.Shutdown(ctx)
}

// Run loads configuration, serves, and shuts down gracefully on SIGINT or SIGTERM.
func Run(signUp usecase.SignUp, signIn usecase.SignIn) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	app, err := New(cfg, signUp, signIn)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.server.Logger.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
	defer cancel()

	if err := app.Shutdown(shutdownCtx); err != nil {
		return err
	}

	return <-errCh
}
