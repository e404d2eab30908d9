package repo

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/grocery-pos/internal/models"
)

func TestCreateProduct(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresProductRepository(db)

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO products`).
		WithArgs("Milk 1L", 2, "8901234567890", 1.99, 1.20, 40, 10, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "created_at", "updated_at"}).
			AddRow(7, now, now))

	barcode := "8901234567890"
	created, err := repo.Create(models.Product{
		Name:              "Milk 1L",
		CategoryID:        intPtr(2),
		Barcode:           &barcode,
		Price:             1.99,
		CostPrice:         1.20,
		Quantity:          40,
		LowStockThreshold: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, created.ID)
	assert.Equal(t, now, created.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProductNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresProductRepository(db)

	mock.ExpectExec(`UPDATE products`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err = repo.Update(models.Product{ID: 999, Name: "Ghost", Price: 1})
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestDeleteProduct(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresProductRepository(db)

	mock.ExpectExec(`DELETE FROM products`).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(7))

	mock.ExpectExec(`DELETE FROM products`).
		WithArgs(999).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.ErrorIs(t, repo.Delete(999), ErrProductNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func productRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"product_id", "product_name", "category_id", "category_name",
		"barcode", "price", "cost_price", "quantity",
		"low_stock_threshold", "expiry_date", "description",
		"created_at", "updated_at",
	})
}

func TestGetAllProductsNoFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresProductRepository(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM products p LEFT JOIN categories c`).
		WillReturnRows(productRows().
			AddRow(1, "Bread", 1, "Bakery", nil, 2.50, 1.10, 30, 10, nil, nil, now, now))

	products, err := repo.GetAll(ProductFilter{})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Bread", products[0].Name)
	assert.Equal(t, "Bakery", *products[0].CategoryName)
}

func TestGetAllProductsWithSearchAndCategory(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresProductRepository(db)

	// Search matches name or barcode case-insensitively; category is exact.
	mock.ExpectQuery(`WHERE \(p.product_name ILIKE \$1 OR p.barcode ILIKE \$2\) AND p.category_id = \$3`).
		WithArgs("%milk%", "%milk%", 2).
		WillReturnRows(productRows())

	products, err := repo.GetAll(ProductFilter{Search: "milk", CategoryID: intPtr(2)})
	require.NoError(t, err)
	assert.Empty(t, products)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchInStock(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresProductRepository(db)

	mock.ExpectQuery(`WHERE \(product_name ILIKE \$1 OR barcode ILIKE \$2\) AND quantity > \$3`).
		WithArgs("%mil%", "%mil%", 0).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "product_name", "barcode", "price", "quantity"}).
			AddRow(7, "Milk 1L", "8901234567890", 1.99, 12))

	products, err := repo.SearchInStock("mil", 20)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 12, products[0].Quantity)
	require.NoError(t, mock.ExpectationsWereMet())
}
