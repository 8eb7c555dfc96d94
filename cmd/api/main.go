package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"parcel-tracker/internal/core/auth"
	"parcel-tracker/internal/core/cache"
	"parcel-tracker/internal/core/config"
	"parcel-tracker/internal/core/logger"
	"parcel-tracker/internal/core/metrics"
	"parcel-tracker/internal/core/server"
	orderadapter "parcel-tracker/internal/features/orders/adapters"
	"parcel-tracker/internal/features/orders/domain"
	orderhandler "parcel-tracker/internal/features/orders/handler"
	orderservice "parcel-tracker/internal/features/orders/service"
	trackingadapter "parcel-tracker/internal/features/tracking/adapters"
	trackinghandler "parcel-tracker/internal/features/tracking/handler"
	trackingservice "parcel-tracker/internal/features/tracking/service"

	"go.uber.org/zap"
)

// @title Parcel Tracker API
// @version 1.0
// @description Order lifecycle and public parcel tracking.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by the admin token.
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.Bool("strict_transitions", cfg.Orders.StrictTransitions),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	// Order store
	repo := orderadapter.NewMemoryOrderRepository()
	if cfg.SeedDemoData {
		if err := orderadapter.Seed(ctx, repo); err != nil {
			l.Fatal("Failed to seed demo orders", zap.Error(err))
		}
		l.Info("Demo orders loaded")
	}

	// Optional tracking cache
	trackingOpts := []trackingservice.Option{trackingservice.WithRecorder(m)}
	var checks []server.HealthCheck
	var trackingCache *trackingadapter.RedisTrackingCache
	if cfg.Redis.Enabled() {
		redisAdapter, err := cache.NewRedisAdapter(cfg.Redis.URL)
		if err != nil {
			l.Fatal("Failed to configure Redis", zap.Error(err))
		}
		defer redisAdapter.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = redisAdapter.Ping(pingCtx)
		cancel()
		if err != nil {
			l.Fatal("Redis Health Check Failed", zap.Error(err))
		}
		l.Info("Redis connection verified", zap.Duration("tracking_ttl", cfg.Redis.TrackingTTL()))

		trackingCache = trackingadapter.NewRedisTrackingCache(redisAdapter, cfg.Redis.TrackingTTL())
		trackingOpts = append(trackingOpts, trackingservice.WithCache(trackingCache))
		checks = append(checks, server.HealthCheck{Name: "redis", Check: redisAdapter.Ping})
	} else {
		l.Info("REDIS_URL not set, tracking cache disabled")
	}

	// Order lifecycle
	policy := domain.Unrestricted
	if cfg.Orders.StrictTransitions {
		policy = domain.Strict
	}
	orderOpts := []orderservice.Option{
		orderservice.WithTransitionPolicy(policy),
		orderservice.WithRecorder(m),
	}
	if trackingCache != nil {
		orderOpts = append(orderOpts, orderservice.WithInvalidator(trackingCache))
	}
	orderService := orderservice.NewOrderService(
		repo,
		orderadapter.NewRandomCodeGenerator(cfg.Orders.TrackingCodePrefix, cfg.Orders.TrackingCodeLength),
		orderadapter.UUIDGenerator{},
		orderOpts...,
	)
	m.MustRegister(metrics.NewOrderCollector(orderService))

	// Tracking lookup
	trackingSvc := trackingservice.NewTrackingService(repo, trackingOpts...)

	srv := server.New(cfg, m, checks...)

	// Register Routes
	trackinghandler.NewTrackingHandler(trackingSvc).RegisterRoutes(srv.App)

	orders := srv.App.Group("/orders", auth.RequireBearer(auth.NewStaticToken(cfg.AdminToken)))
	orderhandler.NewOrderHandler(orderService).RegisterRoutes(orders)

	go func() {
		<-ctx.Done()
		l.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			l.Error("Graceful shutdown failed", zap.Error(err))
		}
	}()

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
