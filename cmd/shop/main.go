package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"ClothingShop/internal/catalog"
	"ClothingShop/internal/config"
	"ClothingShop/internal/nav"
	"ClothingShop/internal/shop"
	"ClothingShop/pkg/kit"
)

const service = "shop"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := kit.NewLogger(service, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	store, err := catalog.LoadDefault()
	if err != nil {
		log.Fatal("load catalog failed", zap.Error(err))
	}
	log.Info("catalog loaded", zap.Int("products", store.Len()))

	sessions := nav.NewMemStore(cfg.Sessions.Max)
	limiter := kit.NewIPRateLimiter(cfg.Sessions.RateLimit, time.Minute)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	s := &shop.Server{
		Resolver: catalog.NewResolver(store),
		Sessions: sessions,
		Log:      log,
	}

	h := shop.NewHandler(s, shop.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       reg,
		MetricsEnabled: cfg.Metrics.Enabled,
		MetricsToken:   cfg.Metrics.Token,
		SessionLimiter: limiter,
	})

	sweeper := &shop.Sweeper{
		Sessions: sessions,
		Limiter:  limiter,
		TTL:      cfg.Sessions.TTL,
		Interval: cfg.Sessions.SweepInterval,
		Log:      log,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return sweeper.Run(gctx) })
	g.Go(func() error {
		return kit.RunHTTPServer(gctx, cfg.Addr(), h, log, cfg.Server.ShutdownTimeout)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
	log.Info("shutdown complete")
}
