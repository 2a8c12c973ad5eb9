package main

import (
	"context"
	"flag"
	"os"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"foodsync/internal/catalog"
	"foodsync/internal/classify"
	"foodsync/internal/config"
	"foodsync/internal/db"
	"foodsync/internal/feed"
	"foodsync/internal/images"
	"foodsync/internal/syncer"
)

// go run cmd/sync/main.go
// go run cmd/sync/main.go -skip-images
//
// Runs the full pipeline exactly once and exits nonzero on failure. Meant
// for operational testing; the scheduled daemon lives in cmd/syncd.
func main() {
	skipImages := flag.Bool("skip-images", false, "do not resolve product images")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("load config", "err", err)
	}

	ctx := context.Background()

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

	var resolver images.Resolver = images.NewGoogleResolver(cfg.ImageTimeout, log)
	if *skipImages {
		resolver = images.NopResolver{}
	} else if rdb != nil {
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

	if _, err := pipeline.Run(ctx); err != nil {
		log.Errorw("sync failed", "err", err)
		os.Exit(1)
	}
}
