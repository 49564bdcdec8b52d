// Command arcticsim runs the Frostline Arctic strategy campaign server.
package main

import (
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/talgya/frostline/internal/api"
	"github.com/talgya/frostline/internal/config"
	"github.com/talgya/frostline/internal/engine"
	"github.com/talgya/frostline/internal/persistence"
	"github.com/talgya/frostline/internal/world"
)

func main() {
	configPath := flag.String("config", "frostline.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.Server.LogLevel),
	}))
	slog.SetDefault(logger)

	slog.Info("Frostline: Arctic Strategy Campaign 2030-2050")

	// ── Database ──────────────────────────────────────────────────────
	os.MkdirAll(filepath.Dir(cfg.Database.Path), 0755)
	db, err := persistence.Open(cfg.Database.Path)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database opened", "path", cfg.Database.Path)

	// ── Campaign ──────────────────────────────────────────────────────
	player := world.FactionID(cfg.Campaign.Player)
	game := engine.NewGame(player, cfg.Campaign.Seed)
	slog.Info("campaign started",
		"player", game.World.Player,
		"year", game.World.Year,
		"seed", cfg.Campaign.Seed,
	)

	if err := db.SaveCampaign(game); err != nil {
		slog.Error("initial save failed", "error", err)
	}

	// ── HTTP API ──────────────────────────────────────────────────────
	adminKey := os.Getenv("FROSTLINE_ADMIN_KEY")
	if adminKey == "" {
		slog.Warn("FROSTLINE_ADMIN_KEY not set, control endpoints will be disabled")
	}

	hub := api.NewHub()
	go hub.Run()

	server := &api.Server{
		Game:     game,
		DB:       db,
		Hub:      hub,
		Port:     cfg.Server.Port,
		AdminKey: adminKey,
	}
	server.Start()

	// ── Auto-advance loop (optional) ──────────────────────────────────
	stopAuto := make(chan struct{})
	if cfg.Campaign.AutoAdvance {
		delay := time.Duration(cfg.Campaign.TurnDelayMS) * time.Millisecond
		slog.Info("auto-advance enabled", "delay", delay)
		go func() {
			ticker := time.NewTicker(delay)
			defer ticker.Stop()
			for {
				select {
				case <-stopAuto:
					return
				case <-ticker.C:
					server.AdvanceAndSave()
					if game.Ended != nil {
						return
					}
				}
			}
		}()
	}

	// ── Shutdown ──────────────────────────────────────────────────────
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	close(stopAuto)
	slog.Info("shutting down, saving campaign")
	if err := db.SaveCampaign(game); err != nil {
		slog.Error("final save failed", "error", err)
	}
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
