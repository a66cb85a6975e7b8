package main

import (
	"log"

	"github.com/speedscore/roundtracker/internal"
	"github.com/speedscore/roundtracker/internal/api"
	"github.com/speedscore/roundtracker/internal/auth"
	"github.com/speedscore/roundtracker/internal/config"
	"github.com/speedscore/roundtracker/internal/store"
)

func main() {
	cfg := config.Load()

	logger, err := internal.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	repo, err := store.NewRepository(cfg, logger)
	if err != nil {
		logger.Fatalf("failed to init storage: %v", err)
	}

	app := api.NewApp(repo, logger)
	provider := auth.NewLocalProvider(cfg.AuthToken, cfg.DemoEmail, logger)
	router := api.NewRouter(app, provider)

	logger.Infof("round tracker listening on %s (backend=%s)", cfg.ListenAddr, cfg.Backend)
	if err := router.Run(cfg.ListenAddr); err != nil {
		logger.Fatalf("server exited: %v", err)
	}
}
