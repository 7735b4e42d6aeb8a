package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/Spok95/fuc-warehouse/internal/config"
	"github.com/Spok95/fuc-warehouse/internal/domain/materials"
	"github.com/Spok95/fuc-warehouse/internal/domain/shipments"
	httpx "github.com/Spok95/fuc-warehouse/internal/infra/http"
	"github.com/Spok95/fuc-warehouse/internal/infra/logger"
	"github.com/Spok95/fuc-warehouse/internal/infra/metrics"
	"github.com/Spok95/fuc-warehouse/internal/scheduler"
	"github.com/Spok95/fuc-warehouse/internal/warehouse"
)

func main() {
	cfgPath := flag.String("config", "config/example.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.App.Env)

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Error("bad timezone", "tz", cfg.App.Timezone, "err", err)
		return
	}

	seed, err := loadSeed(cfg.Warehouse.SeedFile, loc)
	if err != nil {
		log.Error("seed load failed", "err", err)
		return
	}
	store, err := materials.NewStore(seed...)
	if err != nil {
		log.Error("seed rejected", "err", err)
		return
	}
	log.Info("warehouse seeded", "records", store.Len(), "file", cfg.Warehouse.SeedFile)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m, err := metrics.New(reg)
	if err != nil {
		log.Error("metrics init failed", "err", err)
		return
	}

	engine := warehouse.New(store, shipments.NewLedger(),
		warehouse.WithLogger(logger.Named(log, "warehouse")),
		warehouse.WithRecorder(m),
		warehouse.WithClock(func() time.Time { return time.Now().In(loc) }),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Report.Cron != "" {
		sch, err := scheduler.New(cfg.Report.Cron, loc, cfg.Report.Dir, engine, logger.Named(log, "scheduler"))
		if err != nil {
			log.Error("scheduler init failed", "err", err)
			return
		}
		sch.Start()
		defer sch.Stop()
	}

	srv := httpx.New(cfg.HTTP.Addr, cfg.Metrics.Enabled, reg, engine, logger.Named(log, "http"))
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server error", "err", err)
		}
	}()
	log.Info("HTTP server started", "addr", cfg.HTTP.Addr)

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("graceful shutdown complete")
}
