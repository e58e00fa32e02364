package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	studioui "github.com/fitpulse/studio-ui"
	"github.com/fitpulse/studio-ui/config"
	"github.com/fitpulse/studio-ui/internal/adapters/fitness"
	redisadapter "github.com/fitpulse/studio-ui/internal/adapters/redis"
	httpx "github.com/fitpulse/studio-ui/internal/http"
	"github.com/fitpulse/studio-ui/internal/service"
)

// BuildHandler wires adapters, services, and routes into the root handler.
func BuildHandler(cfg *config.AppConfig, redisClient *redis.Client, logger *slog.Logger) (http.Handler, error) {
	templateFS, staticFS, err := assetFilesystems(cfg.IsDev)
	if err != nil {
		return nil, err
	}

	renderer, err := httpx.NewTemplateRenderer(httpx.TemplateRendererConfig{
		TemplateFS: templateFS,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}

	api := fitness.NewClient(cfg.Backend, fitness.Options{Logger: logger})
	sessions := service.NewSessionService(service.SessionServiceOptions{
		API:      api,
		Sessions: redisadapter.NewSessionStore(redisClient, cfg.Session),
		Logger:   logger,
	})

	handlers := &httpx.Handlers{
		Sessions:     sessions,
		API:          api,
		Renderer:     renderer,
		Logger:       logger,
		CookieName:   cfg.Session.CookieName,
		CookieDomain: cfg.HTTP.CookieDomain,
		SecureCookie: !cfg.IsDev,
	}
	return httpx.NewRouter(handlers, staticFS), nil
}

// assetFilesystems picks disk assets in dev for hot reloading, embedded
// assets otherwise.
func assetFilesystems(isDev bool) (templates fs.FS, static fs.FS, err error) {
	if isDev {
		return os.DirFS("frontend/templates"), os.DirFS("frontend/static"), nil
	}
	templates, err = fs.Sub(studioui.TemplateFS, "frontend/templates")
	if err != nil {
		return nil, nil, fmt.Errorf("embedded templates: %w", err)
	}
	static, err = fs.Sub(studioui.StaticFS, "frontend/static")
	if err != nil {
		return nil, nil, fmt.Errorf("embedded static assets: %w", err)
	}
	return templates, static, nil
}

// RunServer serves until the context is canceled or a termination signal
// arrives, then drains connections within the configured shutdown window.
func RunServer(ctx context.Context, cfg *config.AppConfig, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", cfg.HTTP.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
