package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the sync binaries need from the environment.
type Config struct {
	CatalogDatabaseURL string        `envconfig:"CATALOG_DATABASE_URL" required:"true"`
	FeedDatabaseURL    string        `envconfig:"FEED_DATABASE_URL" required:"true"`
	RedisURL           string        `envconfig:"REDIS_URL"`
	MetricsPort        string        `envconfig:"METRICS_PORT" default:"9090"`
	SyncInterval       time.Duration `envconfig:"SYNC_INTERVAL" default:"24h"`
	ImageTimeout       time.Duration `envconfig:"IMAGE_TIMEOUT" default:"10s"`
	ImageCacheTTL      time.Duration `envconfig:"IMAGE_CACHE_TTL" default:"168h"`
	RunLockTTL         time.Duration `envconfig:"RUN_LOCK_TTL" default:"2h"`
	SnapshotPath       string        `envconfig:"SNAPSHOT_PATH"`
}

// Load reads .env (when present) and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process config: %w", err)
	}
	return &cfg, nil
}
