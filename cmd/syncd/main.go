package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"foodsync/internal/catalog"
	"foodsync/internal/classify"
	"foodsync/internal/config"
	"foodsync/internal/db"
	"foodsync/internal/feed"
	"foodsync/internal/images"
	"foodsync/internal/observability"
	"foodsync/internal/scheduler"
	"foodsync/internal/syncer"
)

// Daemon entry point: runs the classification+reconciliation pipeline on a
// fixed schedule until interrupted. For a single manual run use cmd/sync.
func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("load config", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalogDB, err := db.New(cfg.CatalogDatabaseURL)
	if err != nil {
		log.Fatalw("open catalog database", "err", err)
	}
	defer catalogDB.Close()

	feedPool, err := db.NewPool(ctx, cfg.FeedDatabaseURL)
	if err != nil {
		log.Fatalw("open feed database", "err", err)
	}
	defer feedPool.Close()

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalw("parse redis url", "err", err)
		}
		rdb = redis.NewClient(opt)
		defer rdb.Close()
	}

	observability.Start(cfg.MetricsPort)

	var resolver images.Resolver = images.NewGoogleResolver(cfg.ImageTimeout, log)
	if rdb != nil {
		resolver = images.NewCachedResolver(resolver, rdb, cfg.ImageCacheTTL, log)
	}

	store := catalog.NewPostgresStore(catalogDB)
	pcfg := syncer.PipelineConfig{
		Feed:         feed.NewPostgresSource(feedPool),
		Partitioner:  classify.NewPartitioner(classify.NewClassifier(classify.DefaultRules)),
		Reconciler:   syncer.NewReconciler(store, resolver, log),
		Store:        store,
		LockTTL:      cfg.RunLockTTL,
		SnapshotPath: cfg.SnapshotPath,
		Log:          log,
	}
	if rdb != nil {
		pcfg.Lock = rdb
	}
	pipeline := syncer.NewPipeline(pcfg)

	log.Infow("scheduler starting", "interval", cfg.SyncInterval, "metricsPort", cfg.MetricsPort)
	scheduler.New(pipeline, cfg.SyncInterval, log).Start(ctx)
	log.Info("scheduler stopped")
}
