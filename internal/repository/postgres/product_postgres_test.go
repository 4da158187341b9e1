package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopapi/internal/repository"
)

var productDetailColumns = []string{
	"id", "title", "slug", "description", "quantity", "sold", "price", "price_after_discount",
	"colors", "image_cover", "images", "category_id", "sub_category_id", "brand_id", "supplier_id",
	"ratings_average", "ratings_quantity", "created_at", "updated_at",
	"cname", "cimage", "sname", "bname", "bimage",
}

func TestProductPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewProductPostgres(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM products p JOIN categories c (.+) WHERE p.id = \$1`).
		WithArgs("p-1").
		WillReturnRows(sqlmock.NewRows(productDetailColumns).AddRow(
			"p-1", "Galaxy Phone", "galaxy-phone", "A phone with a long description", 5, 2, "199.99", "149.99",
			`["black","white"]`, "cover.png", `[]`, "c-1", "s-1", "b-1", nil,
			"4.50", 10, now, now,
			"Phones", "cat.png", "Android", "Samsung", "brand.png",
		))

	p, err := repo.FindByID(context.Background(), "p-1")
	require.NoError(t, err)

	assert.Equal(t, "199.99", p.Price.StringFixed(2))
	assert.True(t, p.PriceAfterDiscount.Valid)
	assert.Equal(t, []string{"black", "white"}, []string(p.Colors))
	assert.Empty(t, p.Images)
	assert.Equal(t, 4.5, p.RatingsAverage)
	require.NotNil(t, p.Brand)
	assert.Equal(t, "Samsung", p.Brand.Name)
	assert.Equal(t, "Android", p.SubCategory.Name)
	assert.Nil(t, p.SupplierID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewProductPostgres(db)

	t.Run("filters and title sort", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM products p WHERE \(p.title ILIKE \$1 OR p.description ILIKE \$1\) AND p.category_id = \$2 AND p.price >= \$3 AND p.quantity < \$4`).
			WithArgs("%phone%", "c-1", 10.0, 5.0).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(`ORDER BY p.title DESC, p.id DESC LIMIT \$5 OFFSET \$6`).
			WithArgs("%phone%", "c-1", 10.0, 5.0, 5, 0).
			WillReturnRows(sqlmock.NewRows(productDetailColumns))

		res, err := repo.List(context.Background(), repository.ProductFilter{
			Keyword:    "phone",
			CategoryID: "c-1",
			Ranges: []repository.RangeFilter{
				{Field: "price", Op: repository.OpGTE, Value: 10},
				{Field: "quantity", Op: repository.OpLT, Value: 5},
			},
			SortByTitle: true,
			SortDesc:    true,
			PageQuery:   repository.PageQuery{Limit: 5, Offset: 0},
		})
		require.NoError(t, err)
		assert.Equal(t, 0, res.Total)
		assert.Empty(t, res.Items)
	})

	t.Run("unknown range field", func(t *testing.T) {
		_, err := repo.List(context.Background(), repository.ProductFilter{
			Ranges: []repository.RangeFilter{{Field: "password", Op: repository.OpGT, Value: 1}},
		})
		assert.ErrorContains(t, err, "unknown range field")
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRangeColumnsCoverRangeFields(t *testing.T) {
	for _, f := range repository.RangeFields {
		_, ok := productRangeColumns[f]
		assert.True(t, ok, f)
	}
}
