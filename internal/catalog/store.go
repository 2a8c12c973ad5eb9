package catalog

import (
	"context"
	"time"
)

// Category is a persisted catalog category. Names are the lookup key the
// sync pipeline uses; the store does not enforce uniqueness, so lookups
// follow a documented first-match order instead.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// Product is a persisted catalog product. (Name, CategoryID) is the logical
// key for reconciliation.
type Product struct {
	ID         string
	Name       string
	Price      float64
	ImageURL   *string
	CategoryID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewProduct carries the fields for a product insert. ImageURL nil means the
// product is created without an image.
type NewProduct struct {
	Name       string
	Price      float64
	CategoryID string
	ImageURL   *string
}

// ProductUpdate carries the fields for a product update. Price is always
// written; ImageURL is written only when non-nil.
type ProductUpdate struct {
	Price    float64
	ImageURL *string
}

// Store is the catalog persistence boundary consumed by the reconciler.
// Find methods return (nil, nil) when nothing matches.
type Store interface {
	FindCategoryByName(ctx context.Context, name string) (*Category, error)
	CreateCategory(ctx context.Context, name string) (*Category, error)
	FindProductByNameAndCategory(ctx context.Context, name, categoryID string) (*Product, error)
	CreateProduct(ctx context.Context, p NewProduct) (*Product, error)
	UpdateProduct(ctx context.Context, id string, upd ProductUpdate) error
	CountCategories(ctx context.Context) (int, error)
	CountProducts(ctx context.Context) (int, error)
}
