package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	recpb "BookMarket/api/recommendations/v1"
	"BookMarket/internal/catalog"
	"BookMarket/internal/config"
	"BookMarket/internal/marketplace"
	"BookMarket/pkg/kit"
)

const service = "marketplace"

func main() {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		_, _ = os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, err := kit.NewLogger(service, cfg.Logging.Level, cfg.Logging.Development)
	if err != nil {
		_, _ = os.Stderr.WriteString("logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg.Marketplace, log); err != nil {
		log.Error("marketplace stopped", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(cfg config.MarketplaceConfig, log *zap.Logger) error {
	category, err := catalog.ParseCategory(cfg.Category)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	// Once shutdown starts, a second signal kills the process.
	context.AfterFunc(ctx, stop)

	conn, err := marketplace.Dial(cfg.RecommendationsAddr)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	s := &marketplace.Server{
		Recs:       marketplace.NewBreakerClient(recpb.NewRecommendationsClient(conn), marketplace.BreakerSettings{}, log),
		Log:        log,
		UserID:     cfg.UserID,
		Category:   recpb.BookCategory(category),
		MaxResults: int32(cfg.MaxResults),
		Timeout:    cfg.RequestTimeout,
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	h := marketplace.NewHandler(s, marketplace.HTTPDeps{
		Log:                log,
		Service:            service,
		Registry:           reg,
		MetricsEnabled:     true,
		MetricsToken:       cfg.MetricsToken,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		Health:             marketplace.GRPCHealth{Client: healthpb.NewHealthClient(conn)},
	})

	log.Info("recommendations upstream", zap.String("addr", cfg.RecommendationsAddr))
	return kit.RunHTTPServer(ctx, cfg.ListenAddr, h, log, cfg.ShutdownGrace)
}
