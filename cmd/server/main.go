// Command server runs the voterguide catalog API. All wiring happens here:
// stores (PostgreSQL or in-memory), the redis read cache, the audit
// pipeline (Kafka or log sink), metrics, and the HTTP surface.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"voterguide/internal/audit"
	"voterguide/internal/catalog/cache"
	"voterguide/internal/catalog/handler"
	"voterguide/internal/catalog/metrics"
	"voterguide/internal/catalog/service"
	jwttoken "voterguide/internal/jwt_token"
	"voterguide/internal/platform/config"
	"voterguide/internal/platform/httpserver"
	"voterguide/internal/platform/logger"
	"voterguide/internal/platform/middleware"
	redisplatform "voterguide/internal/platform/redis"
)

const auditTopic = "voterguide.audit"

func main() {
	cfg := config.FromEnv()
	log := logger.New()

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	stores, runner, closeStores, err := buildStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStores()

	redisClient, err := redisplatform.New(cfg.RedisURL)
	if err != nil {
		return err
	}
	var readCache *cache.Cache
	if redisClient != nil {
		defer redisClient.Close()
		readCache = cache.New(redisClient, log)
	}

	sink, err := buildAuditSink(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer sink.Close()
	inbox := make(chan audit.Event, 256)
	worker := audit.NewWorker(sink, inbox, log)
	publisher := audit.NewPublisher(inbox, log)

	catalog := service.New(stores,
		service.WithLogger(log),
		service.WithTxRunner(runner),
		service.WithAuditPublisher(publisher),
		service.WithMetrics(metrics.New()),
		service.WithCache(readCache),
	)

	jwtService := jwttoken.NewJWTService(cfg.JWTSigningKey, "voterguide", "voterguide")
	h := handler.New(catalog, log, jwttoken.NewJWTServiceAdapter(jwtService))

	router := chi.NewRouter()
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(log))
	router.Use(middleware.ContentTypeJSON)
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Handle("/metrics", promhttp.Handler())
	h.Register(router)

	srv := httpserver.New(cfg.Addr, router)
	log.Info("starting voterguide", "addr", cfg.Addr)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := worker.Run(ctx); !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func buildAuditSink(ctx context.Context, cfg config.Server, log *slog.Logger) (audit.Sink, error) {
	if cfg.KafkaBrokers == "" {
		return audit.NewLogSink(log), nil
	}
	return audit.NewKafkaSink(ctx, strings.Split(cfg.KafkaBrokers, ","), auditTopic)
}
