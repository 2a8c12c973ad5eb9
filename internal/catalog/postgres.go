package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// PostgresStore implements Store on top of database/sql with the pq driver.
//
// Expected schema:
//
//	CREATE TABLE categories (
//	    id         TEXT PRIMARY KEY,
//	    name       TEXT NOT NULL,
//	    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
//	CREATE TABLE products (
//	    id          TEXT PRIMARY KEY,
//	    name        TEXT NOT NULL,
//	    price       NUMERIC NOT NULL,
//	    image_url   TEXT,
//	    category_id TEXT NOT NULL REFERENCES categories(id),
//	    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
//	    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
type PostgresStore struct {
	DB *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{DB: db}
}

// FindCategoryByName returns the oldest category with the given name, or
// (nil, nil) when none exists. Ordering by created_at then id makes the
// first-match contract deterministic even if duplicate names sneak in.
func (s *PostgresStore) FindCategoryByName(ctx context.Context, name string) (*Category, error) {
	var c Category
	err := s.DB.QueryRowContext(ctx, `
		SELECT id, name, created_at
		FROM categories
		WHERE name = $1
		ORDER BY created_at, id
		LIMIT 1
	`, name).Scan(&c.ID, &c.Name, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category %q: %w", name, err)
	}
	return &c, nil
}

func (s *PostgresStore) CreateCategory(ctx context.Context, name string) (*Category, error) {
	var c Category
	err := s.DB.QueryRowContext(ctx, `
		INSERT INTO categories (id, name)
		VALUES ($1, $2)
		RETURNING id, name, created_at
	`, uuid.New().String(), name).Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create category %q: %w", name, err)
	}
	return &c, nil
}

// FindProductByNameAndCategory returns the oldest product with the exact
// name inside a category, or (nil, nil) when none exists.
func (s *PostgresStore) FindProductByNameAndCategory(ctx context.Context, name, categoryID string) (*Product, error) {
	var p Product
	err := s.DB.QueryRowContext(ctx, `
		SELECT id, name, price, image_url, category_id, created_at, updated_at
		FROM products
		WHERE name = $1 AND category_id = $2
		ORDER BY created_at, id
		LIMIT 1
	`, name, categoryID).Scan(&p.ID, &p.Name, &p.Price, &p.ImageURL, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find product %q: %w", name, err)
	}
	return &p, nil
}

func (s *PostgresStore) CreateProduct(ctx context.Context, np NewProduct) (*Product, error) {
	var p Product
	err := s.DB.QueryRowContext(ctx, `
		INSERT INTO products (id, name, price, image_url, category_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, price, image_url, category_id, created_at, updated_at
	`, uuid.New().String(), np.Name, np.Price, np.ImageURL, np.CategoryID).
		Scan(&p.ID, &p.Name, &p.Price, &p.ImageURL, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create product %q: %w", np.Name, err)
	}
	return &p, nil
}

// UpdateProduct always rewrites the price. The image is written only when
// the update carries one, so an existing image is never cleared.
func (s *PostgresStore) UpdateProduct(ctx context.Context, id string, upd ProductUpdate) error {
	var err error
	if upd.ImageURL != nil {
		_, err = s.DB.ExecContext(ctx, `
			UPDATE products
			SET price = $1, image_url = $2, updated_at = now()
			WHERE id = $3
		`, upd.Price, *upd.ImageURL, id)
	} else {
		_, err = s.DB.ExecContext(ctx, `
			UPDATE products
			SET price = $1, updated_at = now()
			WHERE id = $2
		`, upd.Price, id)
	}
	if err != nil {
		return fmt.Errorf("update product %s: %w", id, err)
	}
	return nil
}

func (s *PostgresStore) CountCategories(ctx context.Context) (int, error) {
	var n int
	err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&n)
	return n, err
}

func (s *PostgresStore) CountProducts(ctx context.Context) (int, error) {
	var n int
	err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&n)
	return n, err
}
