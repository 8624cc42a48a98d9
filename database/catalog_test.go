package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jknair0/beforeeach"
	"github.com/stretchr/testify/assert"
)

var (
	db   *sql.DB
	mock sqlmock.Sqlmock
)

func setUp() {
	db, mock, _ = sqlmock.New()
}

func tearDown() {
	db.Close()
}

var it = beforeeach.Create(setUp, tearDown)

func productColumns() []string {
	return []string{"id", "name", "brand", "image_url", "is_beverage",
		"serving_size", "sugar", "salt", "sat_fat", "protein", "ingredients"}
}

func TestReloadAndLookup(t *testing.T) {
	it(func() {
		mock.ExpectQuery("SELECT id, name, brand").WillReturnRows(
			sqlmock.NewRows(productColumns()).
				AddRow("p1", "Cola Classic", "Colaco", "https://img/cola.jpg", true,
					330.0, 10.6, 0.0, 0.0, 0.0, `["carbonated water", "sugar"]`).
				AddRow("p2", "Protein Bar", nil, nil, false,
					45.0, 12.0, 0.1, 4.0, 20.0, nil))
		mock.ExpectQuery("SELECT product_id, alert FROM product_alerts").WillReturnRows(
			sqlmock.NewRows([]string{"product_id", "alert"}).
				AddRow("p1", "Advisory A").
				AddRow("p1", "Advisory B"))

		svc := NewCatalogService(db)
		err := svc.Reload(context.Background())
		assert.NoError(t, err)

		p, ok := svc.Product("p1")
		assert.True(t, ok)
		assert.Equal(t, "Cola Classic", p.Name)
		assert.Equal(t, "Colaco", p.Brand)
		assert.True(t, p.IsBeverage)
		assert.Len(t, p.Ingredients, 2)

		p2, ok := svc.Product("p2")
		assert.True(t, ok)
		assert.Empty(t, p2.Brand)
		assert.Nil(t, p2.Ingredients)

		_, ok = svc.Product("missing")
		assert.False(t, ok)

		assert.Equal(t, []string{"Advisory A", "Advisory B"}, svc.Alerts("p1"))
		assert.Equal(t, []string{}, svc.Alerts("p2"))

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReloadMalformedIngredientsAreSkipped(t *testing.T) {
	it(func() {
		mock.ExpectQuery("SELECT id, name, brand").WillReturnRows(
			sqlmock.NewRows(productColumns()).
				AddRow("p1", "Soup", nil, nil, false, 0.0, 1.0, 0.5, 0.2, 2.0, `{broken`))
		mock.ExpectQuery("SELECT product_id, alert FROM product_alerts").WillReturnRows(
			sqlmock.NewRows([]string{"product_id", "alert"}))

		svc := NewCatalogService(db)
		err := svc.Reload(context.Background())
		assert.NoError(t, err)

		p, ok := svc.Product("p1")
		assert.True(t, ok)
		assert.Nil(t, p.Ingredients, "malformed ingredients degrade to none")
	})
}

func TestReloadFailureKeepsPreviousSnapshot(t *testing.T) {
	it(func() {
		mock.ExpectQuery("SELECT id, name, brand").WillReturnRows(
			sqlmock.NewRows(productColumns()).
				AddRow("p1", "Cola Classic", nil, nil, true, 330.0, 10.6, 0.0, 0.0, 0.0, nil))
		mock.ExpectQuery("SELECT product_id, alert FROM product_alerts").WillReturnRows(
			sqlmock.NewRows([]string{"product_id", "alert"}))

		svc := NewCatalogService(db)
		assert.NoError(t, svc.Reload(context.Background()))

		mock.ExpectQuery("SELECT id, name, brand").
			WillReturnError(errors.New("connection lost"))

		err := svc.Reload(context.Background())
		assert.Error(t, err)

		_, ok := svc.Product("p1")
		assert.True(t, ok, "failed reload must not clobber the current snapshot")
	})
}

func TestEmptySnapshotBeforeReload(t *testing.T) {
	it(func() {
		svc := NewCatalogService(db)

		_, ok := svc.Product("anything")
		assert.False(t, ok)
		assert.Equal(t, []string{}, svc.Alerts("anything"))
	})
}
