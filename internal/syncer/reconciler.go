package syncer

import (
	"context"

	"go.uber.org/zap"

	"foodsync/internal/catalog"
	"foodsync/internal/images"
	"foodsync/internal/model"
)

// Reconciler merges partitioned feed items into the persistent catalog with
// create-or-update semantics. A product either gets created (when no product
// with the same name exists in its category) or updated (price always, image
// only when currently absent). Nothing is ever deleted.
//
// Failures are contained close to their origin: a category that cannot be
// created skips its whole bucket, a product write that fails skips that item
// only. Neither aborts the run.
type Reconciler struct {
	store    catalog.Store
	resolver images.Resolver
	log      *zap.SugaredLogger
}

func NewReconciler(store catalog.Store, resolver images.Resolver, log *zap.SugaredLogger) *Reconciler {
	return &Reconciler{store: store, resolver: resolver, log: log}
}

// Reconcile processes buckets in the order delivered by the partitioner and
// items in feed order within each bucket.
func (r *Reconciler) Reconcile(ctx context.Context, buckets []model.Bucket) model.SyncSummary {
	var sum model.SyncSummary
	for _, b := range buckets {
		cat, err := r.ensureCategory(ctx, b.Label, &sum)
		if err != nil {
			r.log.Errorw("category unavailable, skipping bucket",
				"category", b.Label, "items", len(b.Items), "err", err)
			continue
		}
		for _, item := range b.Items {
			if err := r.syncItem(ctx, cat, item, &sum); err != nil {
				r.log.Errorw("product sync failed",
					"title", item.Title, "category", b.Label, "externalId", item.ExternalID, "err", err)
			}
		}
	}
	return sum
}

func (r *Reconciler) ensureCategory(ctx context.Context, name string, sum *model.SyncSummary) (*catalog.Category, error) {
	cat, err := r.store.FindCategoryByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if cat != nil {
		return cat, nil
	}
	cat, err = r.store.CreateCategory(ctx, name)
	if err != nil {
		return nil, err
	}
	sum.CategoriesCreated++
	r.log.Infow("category created", "category", name, "id", cat.ID)
	return cat, nil
}

func (r *Reconciler) syncItem(ctx context.Context, cat *catalog.Category, item model.RawItem, sum *model.SyncSummary) error {
	existing, err := r.store.FindProductByNameAndCategory(ctx, item.Title, cat.ID)
	if err != nil {
		return err
	}

	if existing != nil {
		upd := catalog.ProductUpdate{Price: item.Price}
		if existing.ImageURL == nil || *existing.ImageURL == "" {
			// Backfill: a product that went in without an image gets another
			// lookup on every run until one sticks.
			if u := r.resolver.Resolve(ctx, item.Title); u != "" {
				upd.ImageURL = &u
			}
		}
		if err := r.store.UpdateProduct(ctx, existing.ID, upd); err != nil {
			return err
		}
		sum.ProductsUpdated++
	} else {
		var img *string
		if u := r.resolver.Resolve(ctx, item.Title); u != "" {
			img = &u
		}
		if _, err := r.store.CreateProduct(ctx, catalog.NewProduct{
			Name:       item.Title,
			Price:      item.Price,
			CategoryID: cat.ID,
			ImageURL:   img,
		}); err != nil {
			return err
		}
		sum.ProductsCreated++
	}

	sum.TotalProcessed++
	return nil
}
