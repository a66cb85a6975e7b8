package store

import (
	"fmt"

	"github.com/speedscore/roundtracker/internal"
	"github.com/speedscore/roundtracker/internal/config"
)

// NewRepository builds the durable backend the config selects.
func NewRepository(cfg *config.Config, logger internal.Logger) (UserDataRepository, error) {
	switch cfg.Backend {
	case "file":
		return NewFileRepository(cfg.DataFile, logger)
	case "postgres":
		return NewPostgresRepository(cfg.DSN, logger)
	default:
		return nil, fmt.Errorf("store: unknown storage backend %q", cfg.Backend)
	}
}
