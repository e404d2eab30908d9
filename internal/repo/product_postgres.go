package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/rogerio-castellano/grocery-pos/internal/models"
)

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

func (r *PostgresProductRepository) Create(p models.Product) (models.Product, error) {
	query := `INSERT INTO products (product_name, category_id, barcode, price, cost_price, quantity, low_stock_threshold, expiry_date, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING product_id, created_at, updated_at`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query,
		p.Name, p.CategoryID, p.Barcode, p.Price, p.CostPrice,
		p.Quantity, p.LowStockThreshold, p.ExpiryDate, p.Description,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to insert product: %w", err)
	}
	return p, nil
}

func (r *PostgresProductRepository) Update(p models.Product) (models.Product, error) {
	query := `UPDATE products
		SET product_name = $1, category_id = $2, barcode = $3, price = $4,
		    cost_price = $5, quantity = $6, low_stock_threshold = $7,
		    expiry_date = $8, description = $9, updated_at = now()
		WHERE product_id = $10`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query,
		p.Name, p.CategoryID, p.Barcode, p.Price, p.CostPrice,
		p.Quantity, p.LowStockThreshold, p.ExpiryDate, p.Description, p.ID)
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to update product: %w", err)
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (r *PostgresProductRepository) Delete(id int) error {
	query := `DELETE FROM products WHERE product_id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// GetAll lists products joined with their category name, optionally
// narrowed by a case-insensitive name/barcode match and an exact category.
func (r *PostgresProductRepository) GetAll(filter ProductFilter) ([]models.Product, error) {
	q := sq.Select(
		"p.product_id", "p.product_name", "p.category_id", "c.category_name",
		"p.barcode", "p.price", "p.cost_price", "p.quantity",
		"p.low_stock_threshold", "p.expiry_date", "p.description",
		"p.created_at", "p.updated_at",
	).
		From("products p").
		LeftJoin("categories c ON p.category_id = c.category_id").
		OrderBy("p.product_name").
		PlaceholderFormat(sq.Dollar)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where(sq.Or{
			sq.ILike{"p.product_name": pattern},
			sq.ILike{"p.barcode": pattern},
		})
	}
	if filter.CategoryID != nil {
		q = q.Where(sq.Eq{"p.category_id": *filter.CategoryID})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build product query: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.CategoryID, &p.CategoryName,
			&p.Barcode, &p.Price, &p.CostPrice, &p.Quantity,
			&p.LowStockThreshold, &p.ExpiryDate, &p.Description,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// SearchInStock is the billing lookup: in-stock products matching the
// query on name or barcode, capped at limit.
func (r *PostgresProductRepository) SearchInStock(query string, limit int) ([]models.Product, error) {
	pattern := "%" + query + "%"
	q := sq.Select("product_id", "product_name", "barcode", "price", "quantity").
		From("products").
		Where(sq.Or{
			sq.ILike{"product_name": pattern},
			sq.ILike{"barcode": pattern},
		}).
		Where(sq.Gt{"quantity": 0}).
		OrderBy("product_name").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build search query: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Barcode, &p.Price, &p.Quantity); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
