package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/yungbote/lessongen/internal/config"
	"github.com/yungbote/lessongen/internal/modules/generation"
	"github.com/yungbote/lessongen/internal/observability"
	"github.com/yungbote/lessongen/internal/platform/logger"
)

// Version is stamped at build time with -ldflags "-X ...app.Version=...".
var Version = "dev"

type App struct {
	Log       *logger.Logger
	Cfg       *config.Config
	Usecases  generation.Usecases
	Router    *gin.Engine
	shutdowns []func(context.Context) error
}

// New wires config, logger, telemetry, generator, usecases and router.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, errors.New("app: nil config")
	}
	log, err := logger.New(cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return newWithLogger(ctx, cfg, log)
}

func newWithLogger(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	if cfg.Env == "production" || cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	otelShutdown := observability.InitOTel(ctx, log, observability.OtelConfig{
		Telemetry:   cfg.Telemetry,
		Environment: cfg.Env,
		Version:     Version,
	})

	gen, err := newGenerator(ctx, cfg.Generator, log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init generator: %w", err)
	}

	uc := generation.New(generation.Deps{
		Log:       log,
		Generator: gen,
	})

	handlerset := wireHandlers(uc)
	router := wireRouter(cfg, log, handlerset)

	log.Info("app initialized",
		"env", cfg.Env,
		"generator", cfg.Generator.Provider,
		"model", cfg.Generator.Model,
		"telemetry", cfg.Telemetry.Enabled,
	)

	return &App{
		Log:       log,
		Cfg:       cfg,
		Usecases:  uc,
		Router:    router,
		shutdowns: []func(context.Context) error{otelShutdown},
	}, nil
}

// Run serves HTTP until ctx is cancelled, then drains within
// HTTP.ShutdownTimeout.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	srv := &http.Server{
		Addr:              a.Cfg.HTTP.Addr,
		Handler:           a.Router,
		ReadHeaderTimeout: a.Cfg.HTTP.ReadHeaderTimeout.Duration,
		IdleTimeout:       a.Cfg.HTTP.IdleTimeout.Duration,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Log.Info("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Cfg.HTTP.ShutdownTimeout.Duration)
		defer cancel()
		a.Log.Info("http server shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}

func (a *App) Close() {
	if a == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for _, fn := range a.shutdowns {
		if fn == nil {
			continue
		}
		if err := fn(ctx); err != nil && a.Log != nil {
			a.Log.Warn("shutdown hook failed", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
