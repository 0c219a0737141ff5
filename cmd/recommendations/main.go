package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"BookMarket/internal/catalog"
	"BookMarket/internal/config"
	"BookMarket/internal/recommendations"
	"BookMarket/pkg/kit"
)

const (
	service         = "recommendations"
	catalogDeadline = 10 * time.Second
	adminGrace      = 5 * time.Second
)

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

	if err := run(cfg.Recommendations, log); err != nil {
		log.Error("recommendations stopped", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(cfg config.RecommendationsConfig, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	// Once shutdown starts, a second signal kills the process.
	context.AfterFunc(ctx, stop)

	lctx, cancel := context.WithTimeout(ctx, catalogDeadline)
	books, err := catalog.Load(lctx, catalog.Source{
		Kind:        cfg.CatalogSource,
		File:        cfg.CatalogFile,
		DatabaseURL: cfg.DatabaseURL,
	})
	cancel()
	if err != nil {
		return err
	}
	log.Info("catalog loaded",
		zap.String("source", cfg.CatalogSource),
		zap.Int("categories", len(books.Categories())),
		zap.Int("books", books.Len()),
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	gs := recommendations.NewGRPCServer(recommendations.NewService(books), recommendations.GRPCDeps{
		Log:           log,
		Service:       service,
		Registry:      reg,
		Workers:       cfg.Workers,
		ShutdownGrace: cfg.ShutdownGrace,
	})

	lis, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		return err
	}

	// The admin port outlives the gRPC drain so /readyz can report it.
	adminCtx, stopAdmin := context.WithCancel(context.Background())
	defer stopAdmin()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer stopAdmin()
		return gs.Serve(gctx, lis)
	})

	if cfg.AdminAddr != "" {
		admin := recommendations.NewAdminHandler(gs, recommendations.HTTPDeps{
			Log:          log,
			Service:      service + "-admin",
			Registry:     reg,
			MetricsToken: cfg.MetricsToken,
		})
		g.Go(func() error {
			return kit.RunHTTPServer(adminCtx, cfg.AdminAddr, admin, log, adminGrace)
		})
	}

	return g.Wait()
}
