package feed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"foodsync/internal/model"
)

// Source delivers the raw upstream inventory feed. No ordering guarantee is
// assumed; the pipeline treats the feed as an unordered snapshot.
type Source interface {
	Fetch(ctx context.Context) ([]model.RawItem, error)
}

// PostgresSource reads the inventory replica the ERP exports. Only active
// items with a name and a positive sale price are fed into the pipeline.
type PostgresSource struct {
	Pool *pgxpool.Pool
}

func NewPostgresSource(pool *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{Pool: pool}
}

func (s *PostgresSource) Fetch(ctx context.Context) ([]model.RawItem, error) {
	rows, err := s.Pool.Query(ctx, `
		SELECT DISTINCT st.id, st.name, sup.price, st.active
		FROM stock st
		JOIN stock_unit su ON su.stock_id = st.id
		JOIN stock_unit_price sup ON sup.stock_unit_id = su.id
		WHERE st.active
			AND st.name IS NOT NULL
			AND st.last_purchase_price > 0
			AND sup.price > 0
	`)
	if err != nil {
		return nil, fmt.Errorf("query inventory feed: %w", err)
	}
	defer rows.Close()

	var items []model.RawItem
	for rows.Next() {
		var it model.RawItem
		if err := rows.Scan(&it.ExternalID, &it.Title, &it.Price, &it.IsActive); err != nil {
			return nil, fmt.Errorf("scan inventory row: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read inventory feed: %w", err)
	}
	return items, nil
}
