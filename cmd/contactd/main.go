// Command contactd runs the REST contact service. It wires high-level
// dependencies and keeps the server lifecycle small; business logic lives
// in the internal/contact packages.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	contacthandler "contacthub/internal/contact/handler"
	contactmetrics "contacthub/internal/contact/metrics"
	"contacthub/internal/contact/seed"
	"contacthub/internal/contact/service"
	"contacthub/internal/contact/store"
	"contacthub/internal/platform/config"
	"contacthub/internal/platform/database"
	"contacthub/internal/platform/health"
	"contacthub/internal/platform/logger"
	"contacthub/internal/platform/middleware"
)

func main() {
	cfg := config.ContactServiceFromEnv()
	log := logger.New("contactd", cfg.Environment)

	log.Info("initializing contact service", "addr", cfg.Addr, "environment", cfg.Environment)

	dbCfg := database.DefaultConfig()
	dbCfg.URL = cfg.DatabaseURL
	pool, err := database.New(dbCfg)
	if err != nil {
		log.Error("database init failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close() //nolint:errcheck // best-effort cleanup at exit

	healthHandler := health.New(cfg.Environment)

	ctx := context.Background()
	var contactStore store.Store
	if pool != nil {
		pg := store.NewPostgres(pool.DB())
		if err := pg.EnsureSchema(ctx); err != nil {
			log.Error("schema setup failed", "error", err)
			os.Exit(1)
		}
		contactStore = pg
		healthHandler.RegisterCheck("database", func() error {
			checkCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return pool.Health(checkCtx)
		})
		log.Info("using postgres store")
	} else {
		contactStore = store.NewInMemory()
		log.Warn("DATABASE_URL not set, using in-memory store")
	}

	if err := seed.Ensure(ctx, contactStore, log); err != nil {
		log.Error("seeding failed", "error", err)
		os.Exit(1)
	}

	svc := service.New(contactStore,
		service.WithLogger(log),
		service.WithMetrics(contactmetrics.New()),
	)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	healthHandler.Register(router)
	router.Handle("/metrics", promhttp.Handler())
	contacthandler.New(svc, log).Register(router)

	if err := run(cfg.Addr, router, log); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// run serves until SIGINT, then shuts down gracefully.
func run(addr string, handler http.Handler, log *slog.Logger) error {
	srv := &http.Server{Addr: addr, Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting http server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down server gracefully")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
