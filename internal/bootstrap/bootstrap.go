// Package bootstrap owns the shared service lifecycle: configuration,
// logging, metrics, the token validator every service gates with, the
// HTTP server and its graceful shutdown. Service binaries differ only in
// the Setup callback that wires their domain routes.
package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"corebank/internal/domain/auth"
	"corebank/internal/platform/config"
	platformerrors "corebank/internal/platform/errors"
	"corebank/internal/platform/logging"
	"corebank/internal/platform/metrics"
	httptransport "corebank/internal/transport/http"
)

const shutdownGrace = 10 * time.Second

// State carries the shared pieces handed to a service's Setup callback.
type State struct {
	Config    *config.Config
	Logger    *logging.Logger
	Metrics   *metrics.Registry
	Codec     *auth.Codec
	Validator *auth.Validator

	cleanups []func(context.Context) error
}

// OnShutdown registers a cleanup run after the HTTP server drains.
func (s *State) OnShutdown(fn func(context.Context) error) {
	if fn != nil {
		s.cleanups = append(s.cleanups, fn)
	}
}

// Registrar attaches a set of routes to the built router.
type Registrar interface {
	Register(router *httptransport.Router)
}

// Options describes one service binary.
type Options struct {
	// Service is the fleet-visible name ("auth-service" etc.).
	Service string
	// Namespace prefixes the service's metric names.
	Namespace string
	// Setup wires the service's domain and returns its route registrars
	// plus the dependency prober for the health endpoint (nil when the
	// service has no external store).
	Setup func(state *State) ([]Registrar, httptransport.Prober, error)
}

// Run starts the service and blocks until a signal or a fatal error.
func Run(rootCtx context.Context, opts Options) error {
	if opts.Service == "" || opts.Setup == nil {
		return platformerrors.New(
			platformerrors.KindBootstrap,
			"bootstrap run",
			"service name and setup callback required",
		)
	}

	signalCtx, stop := signal.NotifyContext(rootCtx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewLoader(opts.Service).Load()
	if err != nil {
		return err
	}

	logger := logging.New(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.Service.Name,
	})

	reg := metrics.NewRegistry(opts.Namespace)

	codec, err := auth.NewCodec(cfg.Auth.Secret, cfg.Auth.TokenTTL)
	if err != nil {
		return platformerrors.Wrap(
			platformerrors.KindBootstrap,
			"bootstrap run",
			"build token codec",
			err,
		)
	}

	state := &State{
		Config:    cfg,
		Logger:    logger,
		Metrics:   reg,
		Codec:     codec,
		Validator: auth.NewValidator(codec),
	}

	registrars, prober, err := opts.Setup(state)
	if err != nil {
		return platformerrors.Wrap(
			platformerrors.KindBootstrap,
			"bootstrap run",
			"service setup failed",
			err,
		)
	}

	router, err := httptransport.Build(httptransport.Options{
		Config:    cfg,
		Logger:    logger,
		Metrics:   reg,
		Validator: state.Validator,
		Prober:    prober,
	})
	if err != nil {
		return err
	}
	for _, r := range registrars {
		r.Register(router)
	}

	httpServer := &http.Server{
		Addr:    cfg.Service.IP + ":" + strconv.Itoa(cfg.Service.Port),
		Handler: router.Engine,
	}

	group, groupCtx := errgroup.WithContext(signalCtx)

	group.Go(func() error {
		logger.Slog().Info("http server started",
			slog.String("addr", httpServer.Addr),
		)

		go func() {
			<-groupCtx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
			defer cancel()

			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				logger.Slog().Error("http server shutdown failed", slog.Any("error", err))
			}
		}()

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	err = group.Wait()

	cleanupCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	for _, cleanup := range state.cleanups {
		if cerr := cleanup(cleanupCtx); cerr != nil {
			logger.Slog().Warn("cleanup failed", slog.Any("error", cerr))
		}
	}

	if err != nil {
		return err
	}
	logger.Slog().Info("service stopped")
	return nil
}
