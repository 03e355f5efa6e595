package app

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/permutei/permutei-core/internal/platform/envutil"
	"github.com/permutei/permutei-core/internal/platform/logger"
)

type MirrorConfig struct {
	// Backend selects the slot store: file, redis, sqlite or memory.
	Backend       string `yaml:"backend"`
	DataDir       string `yaml:"data_dir"`
	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`
	SQLitePath    string `yaml:"sqlite_path"`
}

type Config struct {
	HTTPAddr string       `yaml:"http_addr"`
	LogMode  string       `yaml:"log_mode"`
	Mirror   MirrorConfig `yaml:"mirror"`
}

// LoadConfig layers defaults, an optional yaml file (PERMUTEI_CONFIG, falling
// back to ./config.yaml when present) and finally environment variables.
func LoadConfig(log *logger.Logger) Config {
	cfg := Config{
		HTTPAddr: ":8080",
		LogMode:  "development",
		Mirror: MirrorConfig{
			Backend:    "file",
			DataDir:    "data",
			RedisAddr:  "localhost:6379",
			SQLitePath: "data/permutei.db",
		},
	}

	path := envutil.String("PERMUTEI_CONFIG", "config.yaml")
	if raw, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			log.Warn("config file unreadable, keeping defaults", "path", path, "error", err)
		} else {
			log.Info("config file loaded", "path", path)
		}
	}

	cfg.HTTPAddr = envutil.String("HTTP_ADDR", cfg.HTTPAddr)
	cfg.LogMode = envutil.String("LOG_MODE", cfg.LogMode)
	cfg.Mirror.Backend = envutil.String("MIRROR_BACKEND", cfg.Mirror.Backend)
	cfg.Mirror.DataDir = envutil.String("MIRROR_DATA_DIR", cfg.Mirror.DataDir)
	cfg.Mirror.RedisAddr = envutil.String("MIRROR_REDIS_ADDR", cfg.Mirror.RedisAddr)
	cfg.Mirror.RedisPassword = envutil.String("MIRROR_REDIS_PASSWORD", cfg.Mirror.RedisPassword)
	cfg.Mirror.RedisDB = envutil.Int("MIRROR_REDIS_DB", cfg.Mirror.RedisDB)
	cfg.Mirror.SQLitePath = envutil.String("MIRROR_SQLITE_PATH", cfg.Mirror.SQLitePath)
	return cfg
}
