package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/amalanberkah/internal/config"
	"github.com/amalanberkah/internal/db"
	"github.com/amalanberkah/internal/handler"
	"github.com/amalanberkah/internal/realtime"
	"github.com/amalanberkah/internal/router"
	"github.com/amalanberkah/internal/scheduler"
	"github.com/amalanberkah/internal/service"
)

func main() {
	cfg := config.Load()

	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("init database: %v", err)
	}
	if cfg.AdminEmail != "" {
		if err := db.EnsureAdmin(cfg.AdminEmail); err != nil {
			log.Printf("ensure admin %s: %v", cfg.AdminEmail, err)
		}
	}

	hub := realtime.NewHub()
	progress := service.NewProgressService(db.DB)
	autosave := service.NewAutosaver(progress, hub, cfg.AutosaveDelay)
	api := handler.NewAPI(db.DB, autosave, hub)

	jobs := scheduler.New(service.NewAnalyticsService(db.DB))
	jobs.Start()
	defer jobs.Stop()

	// Flush pending autosaves on shutdown so the last burst of toggles is
	// not lost with the process.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-stop
		autosave.Close()
		jobs.Stop()
		os.Exit(0)
	}()

	r := router.New(api, cfg)
	log.Printf("listening on %s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
