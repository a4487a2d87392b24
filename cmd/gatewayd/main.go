// Command gatewayd runs the GraphQL gateway in front of the contact
// service. The gateway holds no persistent state; every contact it
// serves is a transient projection of a contact service response.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"contacthub/internal/gateway/backend"
	gatewaygraphql "contacthub/internal/gateway/graphql"
	gatewaymetrics "contacthub/internal/gateway/metrics"
	"contacthub/internal/platform/config"
	"contacthub/internal/platform/health"
	"contacthub/internal/platform/logger"
	"contacthub/internal/platform/middleware"
)

func main() {
	cfg := config.GatewayFromEnv()
	log := logger.New("gatewayd", cfg.Environment)

	log.Info("initializing gateway",
		"addr", cfg.Addr,
		"contact_service_url", cfg.ContactServiceURL,
		"environment", cfg.Environment,
	)

	client := backend.New(cfg.ContactServiceURL,
		backend.WithLogger(log),
		backend.WithMetrics(gatewaymetrics.New()),
	)

	resolver := gatewaygraphql.NewResolver(client, log)

	healthHandler := health.New(cfg.Environment)
	healthHandler.RegisterCheck("contact-service", func() error {
		checkCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if _, err := client.ListContacts(checkCtx); err != nil {
			return fmt.Errorf("contact service: %w", err)
		}
		return nil
	})

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	healthHandler.Register(router)
	router.Handle("/metrics", promhttp.Handler())
	router.Handle("/graphql", gatewaygraphql.NewHandler(resolver))

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
