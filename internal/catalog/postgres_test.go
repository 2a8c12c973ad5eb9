package catalog

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *PostgresStore) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return db, mock, NewPostgresStore(db)
}

func ptrTo[T any](v T) *T { return &v }

func TestFindCategoryByNameFound(t *testing.T) {
	db, mock, store := newMockStore(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, created_at")).
		WithArgs("Temel Gıda").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).
			AddRow("cat-1", "Temel Gıda", now))

	cat, err := store.FindCategoryByName(context.Background(), "Temel Gıda")
	require.NoError(t, err)
	require.NotNil(t, cat)
	assert.Equal(t, "cat-1", cat.ID)
	assert.Equal(t, "Temel Gıda", cat.Name)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindCategoryByNameAbsent(t *testing.T) {
	db, mock, store := newMockStore(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, created_at")).
		WithArgs("İçecekler").
		WillReturnError(sql.ErrNoRows)

	cat, err := store.FindCategoryByName(context.Background(), "İçecekler")
	require.NoError(t, err)
	assert.Nil(t, cat)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCategory(t *testing.T) {
	db, mock, store := newMockStore(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO categories")).
		WithArgs(sqlmock.AnyArg(), "İçecekler").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).
			AddRow("cat-2", "İçecekler", now))

	cat, err := store.CreateCategory(context.Background(), "İçecekler")
	require.NoError(t, err)
	assert.Equal(t, "cat-2", cat.ID)
	assert.Equal(t, "İçecekler", cat.Name)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCategoryStoreError(t *testing.T) {
	db, mock, store := newMockStore(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO categories")).
		WithArgs(sqlmock.AnyArg(), "İçecekler").
		WillReturnError(errors.New("connection reset"))

	cat, err := store.CreateCategory(context.Background(), "İçecekler")
	require.Error(t, err)
	assert.Nil(t, cat)
}

func TestFindProductByNameAndCategory(t *testing.T) {
	db, mock, store := newMockStore(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, price, image_url, category_id, created_at, updated_at")).
		WithArgs("Süt 1 LT", "cat-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "image_url", "category_id", "created_at", "updated_at"}).
			AddRow("prod-1", "Süt 1 LT", 25.0, nil, "cat-1", now, now))

	p, err := store.FindProductByNameAndCategory(context.Background(), "Süt 1 LT", "cat-1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "prod-1", p.ID)
	assert.Equal(t, 25.0, p.Price)
	assert.Nil(t, p.ImageURL)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindProductAbsent(t *testing.T) {
	db, mock, store := newMockStore(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, price, image_url, category_id, created_at, updated_at")).
		WithArgs("Pepsi 1 LT", "cat-2").
		WillReturnError(sql.ErrNoRows)

	p, err := store.FindProductByNameAndCategory(context.Background(), "Pepsi 1 LT", "cat-2")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestCreateProduct(t *testing.T) {
	db, mock, store := newMockStore(t)
	defer db.Close()

	now := time.Now()
	img := ptrTo("http://img.example.com/sut.jpg")
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO products")).
		WithArgs(sqlmock.AnyArg(), "Süt 1 LT", 25.0, *img, "cat-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "image_url", "category_id", "created_at", "updated_at"}).
			AddRow("prod-1", "Süt 1 LT", 25.0, *img, "cat-1", now, now))

	p, err := store.CreateProduct(context.Background(), NewProduct{
		Name: "Süt 1 LT", Price: 25, CategoryID: "cat-1", ImageURL: img,
	})
	require.NoError(t, err)
	require.NotNil(t, p.ImageURL)
	assert.Equal(t, *img, *p.ImageURL)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProductPriceOnly(t *testing.T) {
	db, mock, store := newMockStore(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("SET price = $1, updated_at = now()")).
		WithArgs(30.0, "prod-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.UpdateProduct(context.Background(), "prod-1", ProductUpdate{Price: 30})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProductWithImage(t *testing.T) {
	db, mock, store := newMockStore(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("SET price = $1, image_url = $2, updated_at = now()")).
		WithArgs(30.0, "http://img.example.com/sut.jpg", "prod-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.UpdateProduct(context.Background(), "prod-1", ProductUpdate{
		Price:    30,
		ImageURL: ptrTo("http://img.example.com/sut.jpg"),
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCounts(t *testing.T) {
	db, mock, store := newMockStore(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM categories")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(23))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM products")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(812))

	cats, err := store.CountCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 23, cats)

	prods, err := store.CountProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 812, prods)
}
