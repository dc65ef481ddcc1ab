package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"pochita-clinic/internal/adapters/backend/clinicapi"
	"pochita-clinic/internal/adapters/session/memory"
	"pochita-clinic/internal/adapters/session/redisstore"
	"pochita-clinic/internal/adapters/storage/kv"
	"pochita-clinic/internal/config"
	"pochita-clinic/internal/notifications"
	"pochita-clinic/internal/observability/metrics"
	"pochita-clinic/internal/platform/logger"
	"pochita-clinic/internal/ports/auth"
	"pochita-clinic/internal/router"
)

func main() {
	cfg := config.Load()

	log := logger.Must(logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		App:    cfg.AppName,
	}))
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Redis es opcional: sin REDIS_ADDR las sesiones y el agregado
	// viven en memoria (dev).
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal("redis unreachable", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
	}

	var sessions auth.Store
	if rdb != nil {
		sessions = redisstore.NewStore(rdb, cfg.SessionTTL)
	} else {
		sessions = memory.NewStore()
	}

	backend, err := pickKVBackend(cfg, rdb)
	if err != nil {
		log.Fatal("storage backend", zap.Error(err))
	}

	api := clinicapi.NewClient(clinicapi.Config{
		BaseURL: cfg.BackendBaseURL,
		Timeout: cfg.BackendTimeout,
	})

	hub := notifications.NewHub(log.Named("notifications"))
	httpMetrics := metrics.NewHTTPMetrics(prometheus.DefaultRegisterer)

	// Cancelaciones del vet en el servicio remoto -> aviso a todos los
	// clientes conectados.
	sub := clinicapi.NewSubscriber(api, log.Named("events"), func(ev clinicapi.VetCancelEvent) {
		hub.BroadcastVetCancel(ev.VetID)
		httpMetrics.SetWSClients(hub.ClientCount())
	})
	go sub.Run(ctx)

	handler := router.NewRouter(router.Options{
		Logger:   log,
		Sessions: sessions,
		API:      api,
		Hub:      hub,
		Metrics:  httpMetrics,
		KV:       backend,
		Location: cfg.Location(),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("starting server", zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("server error", zap.Error(err))
	}
	log.Info("server stopped")
}

// pickKVBackend elige dónde vive el agregado local: Postgres si hay
// DSN, Redis si hay addr, memoria en cualquier otro caso.
func pickKVBackend(cfg config.Config, rdb *redis.Client) (kv.Store, error) {
	if cfg.DBDSN != "" {
		db, err := kv.OpenPostgres(cfg.DBDSN)
		if err != nil {
			return nil, err
		}
		if err := kv.EnsureSchema(context.Background(), db); err != nil {
			return nil, err
		}
		return kv.NewPostgresStore(db), nil
	}
	if rdb != nil {
		return kv.NewRedisStore(rdb), nil
	}
	return kv.NewMemoryStore(), nil
}
