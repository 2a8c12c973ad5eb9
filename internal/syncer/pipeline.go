package syncer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"foodsync/internal/catalog"
	"foodsync/internal/classify"
	"foodsync/internal/feed"
	"foodsync/internal/model"
	"foodsync/internal/observability"
)

// ErrRunInProgress is returned when a run is rejected because another run
// still holds the lock.
var ErrRunInProgress = errors.New("sync run already in progress")

const runLockKey = "foodsync:run-lock"

// Locker is the slice of the redis client the run lock needs. Keeping it
// narrow lets tests stand in for redis with prefabricated command results.
type Locker interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// PipelineConfig wires a Pipeline. Lock is optional; without it the
// single-daemon scheduling model is the only overlap protection.
type PipelineConfig struct {
	Feed         feed.Source
	Partitioner  *classify.Partitioner
	Reconciler   *Reconciler
	Store        catalog.Store
	Lock         Locker
	LockTTL      time.Duration
	SnapshotPath string
	Log          *zap.SugaredLogger
}

// Pipeline is the full sync run: fetch feed, filter and partition, snapshot,
// reconcile into the catalog, report counters. Only feed unavailability is
// run-fatal; everything downstream degrades per item or per category.
type Pipeline struct {
	cfg PipelineConfig
}

func NewPipeline(cfg PipelineConfig) *Pipeline {
	return &Pipeline{cfg: cfg}
}

// Run executes one sync pass. Concurrency-safe across processes when a lock
// is configured: the second caller gets ErrRunInProgress instead of racing
// the lookup-or-create sequence.
func (p *Pipeline) Run(ctx context.Context) (model.SyncSummary, error) {
	if p.cfg.Lock != nil {
		unlock, err := p.acquireLock(ctx)
		if err != nil {
			observability.RunFailures.Inc()
			return model.SyncSummary{}, err
		}
		if unlock != nil {
			defer unlock()
		}
	}

	log := p.cfg.Log
	start := time.Now()

	preCats, preProds := p.counts(ctx)
	log.Infow("sync starting", "categories", preCats, "products", preProds)

	items, err := p.cfg.Feed.Fetch(ctx)
	if err != nil {
		observability.RunFailures.Inc()
		return model.SyncSummary{}, fmt.Errorf("fetch feed: %w", err)
	}
	log.Infow("feed fetched", "items", len(items))

	buckets, rejected := p.cfg.Partitioner.Partition(items)
	for _, rej := range rejected {
		log.Infow("item excluded", "title", rej.Item.Title, "reason", rej.Reason)
	}
	log.Infow("feed partitioned", "categories", len(buckets), "rejected", len(rejected))

	if p.cfg.SnapshotPath != "" {
		if err := feed.WriteSnapshot(p.cfg.SnapshotPath, buckets); err != nil {
			log.Warnw("snapshot write failed", "path", p.cfg.SnapshotPath, "err", err)
		}
	}

	sum := p.cfg.Reconciler.Reconcile(ctx, buckets)
	sum.Rejected = len(rejected)

	observability.CategoriesCreated.Add(float64(sum.CategoriesCreated))
	observability.ProductsCreated.Add(float64(sum.ProductsCreated))
	observability.ProductsUpdated.Add(float64(sum.ProductsUpdated))
	observability.ItemsProcessed.Add(float64(sum.TotalProcessed))
	observability.ItemsRejected.Add(float64(sum.Rejected))
	observability.RunDuration.Observe(time.Since(start).Seconds())

	postCats, postProds := p.counts(ctx)
	log.Infow("sync finished",
		"duration", time.Since(start),
		"categoriesCreated", sum.CategoriesCreated,
		"productsCreated", sum.ProductsCreated,
		"productsUpdated", sum.ProductsUpdated,
		"totalProcessed", sum.TotalProcessed,
		"rejected", sum.Rejected,
		"categories", postCats,
		"products", postProds,
	)
	return sum, nil
}

// acquireLock takes the Redis run lock. A lock error is logged and ignored
// so an unavailable Redis cannot block the nightly sync.
func (p *Pipeline) acquireLock(ctx context.Context) (func(), error) {
	ok, err := p.cfg.Lock.SetNX(ctx, runLockKey, time.Now().Format(time.RFC3339), p.cfg.LockTTL).Result()
	if err != nil {
		p.cfg.Log.Warnw("run lock unavailable, proceeding without it", "err", err)
		return nil, nil
	}
	if !ok {
		return nil, ErrRunInProgress
	}
	return func() {
		if err := p.cfg.Lock.Del(context.WithoutCancel(ctx), runLockKey).Err(); err != nil {
			p.cfg.Log.Warnw("run lock release failed", "err", err)
		}
	}, nil
}

// counts reads the catalog totals for run logging. Read-only observability,
// failures are logged and reported as zero.
func (p *Pipeline) counts(ctx context.Context) (categories, products int) {
	var err error
	if categories, err = p.cfg.Store.CountCategories(ctx); err != nil {
		p.cfg.Log.Warnw("category count failed", "err", err)
	}
	if products, err = p.cfg.Store.CountProducts(ctx); err != nil {
		p.cfg.Log.Warnw("product count failed", "err", err)
	}
	return categories, products
}
