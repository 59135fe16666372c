package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"spacex-dashboard/internal/api"
	"spacex-dashboard/internal/api/handler"
	"spacex-dashboard/internal/config"
	"spacex-dashboard/internal/dashboard"
	"spacex-dashboard/internal/dataset"
	"spacex-dashboard/internal/export"
	"spacex-dashboard/internal/store"
	"spacex-dashboard/pkg/router"

	"github.com/spf13/pflag"
)

// @title SpaceX Launch Records Dashboard API
// @version 1.0
// @description Launch success and payload charts over the SpaceX launch dataset.
// @host localhost:8050
// @BasePath /api/v1
func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loadCtx, cancel := context.WithTimeout(ctx, cfg.Dataset.FetchTimeout)
	ds, err := dataset.Load(loadCtx, cfg.Dataset.Path)
	cancel()
	if err != nil {
		log.Fatalf("❌ Failed to load dataset: %v", err)
	}

	// Init DB
	var repo *store.Repository
	if cfg.Store.Path != "" {
		repo, err = store.Open(cfg.Store.Path)
		if err != nil {
			log.Fatalf("❌ Failed to open journal: %v", err)
		}
		defer repo.Close()
		log.Printf("💾 Journal: %s", cfg.Store.Path)
	} else {
		log.Printf("💾 Journal disabled")
	}

	exports := export.NewManager(cfg.Output.Dir)
	if err := exports.Outputs.EnsureOutputDirExists(); err != nil {
		log.Fatalf("❌ Failed to create output directory: %v", err)
	}

	slider := dashboard.SliderOptions{Step: cfg.Slider.Step, MarkInterval: cfg.Slider.MarkInterval}
	h := handler.New(ds, slider, repo, exports)

	// Create router
	r := router.New()

	// Register API routes
	api.RegisterRoutes(r, h)

	// Start server
	if err := r.Start(ctx, cfg.Server.Addr, cfg.Server.ShutdownTimeout); err != nil {
		log.Printf("❌ %v", err)
		repo.Close()
		os.Exit(1)
	}
}
