package app

import (
	"fmt"

	"github.com/permutei/permutei-core/internal/mirror"
	"github.com/permutei/permutei-core/internal/platform/logger"
)

func openSlotStore(cfg MirrorConfig, log *logger.Logger) (mirror.SlotStore, error) {
	switch cfg.Backend {
	case "", "file":
		log.Info("mirror backend: file", "dir", cfg.DataDir)
		return mirror.NewFileStore(cfg.DataDir)
	case "redis":
		log.Info("mirror backend: redis", "addr", cfg.RedisAddr)
		return mirror.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	case "sqlite":
		log.Info("mirror backend: sqlite", "path", cfg.SQLitePath)
		return mirror.NewSQLiteStore(cfg.SQLitePath)
	case "memory":
		log.Info("mirror backend: memory (state will not survive restarts)")
		return mirror.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown mirror backend %q", cfg.Backend)
	}
}
