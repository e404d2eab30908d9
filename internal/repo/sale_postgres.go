package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/rogerio-castellano/grocery-pos/internal/models"
)

type PostgresSaleRepository struct {
	db       *sql.DB
	invoices *InvoiceSequence
}

func NewPostgresSaleRepository(db *sql.DB) *PostgresSaleRepository {
	return &PostgresSaleRepository{db: db, invoices: NewInvoiceSequence()}
}

// Create runs the billing workflow in one transaction: insert the sale,
// insert each line item and decrement its product's stock, insert the
// payment transaction, and bump the customer's purchase total when a
// customer is attached. Any failure rolls the whole sale back.
//
// Stock decrements and the purchase total are relative updates executed in
// the database, never computed in Go, so concurrent sales against the same
// product cannot lose updates.
func (r *PostgresSaleRepository) Create(sale models.Sale, items []models.SaleItem) (models.Sale, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Sale{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	sale.InvoiceNumber = r.invoices.Next()
	sale.Status = "Completed"

	err = tx.QueryRowContext(ctx, `
		INSERT INTO sales (customer_id, subtotal, discount_amount, tax_amount,
		                   total_amount, payment_method, invoice_number, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING sale_id, sale_date`,
		sale.CustomerID, sale.Subtotal, sale.DiscountAmount, sale.TaxAmount,
		sale.TotalAmount, sale.PaymentMethod, sale.InvoiceNumber, sale.Notes,
	).Scan(&sale.ID, &sale.SaleDate)
	if err != nil {
		return models.Sale{}, fmt.Errorf("failed to insert sale: %w", err)
	}

	for _, item := range items {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO sale_items (sale_id, product_id, quantity, unit_price, total_price)
			VALUES ($1, $2, $3, $4, $5)`,
			sale.ID, item.ProductID, item.Quantity, item.UnitPrice, item.TotalPrice)
		if err != nil {
			return models.Sale{}, fmt.Errorf("failed to insert sale item: %w", err)
		}

		// Guarded relative decrement: zero rows means the product is
		// missing or the sale would drive its quantity negative.
		res, err := tx.ExecContext(ctx, `
			UPDATE products
			SET quantity = quantity - $1, updated_at = now()
			WHERE product_id = $2 AND quantity - $1 >= 0`,
			item.Quantity, item.ProductID)
		if err != nil {
			return models.Sale{}, fmt.Errorf("failed to update stock: %w", err)
		}
		if rowsAffected, _ := res.RowsAffected(); rowsAffected == 0 {
			return models.Sale{}, fmt.Errorf("product %d: %w", item.ProductID, ErrInsufficientStock)
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO transactions (sale_id, amount, payment_method, status)
		VALUES ($1, $2, $3, 'Completed')`,
		sale.ID, sale.TotalAmount, sale.PaymentMethod)
	if err != nil {
		return models.Sale{}, fmt.Errorf("failed to insert transaction: %w", err)
	}

	if sale.CustomerID != nil {
		_, err = tx.ExecContext(ctx, `
			UPDATE customers
			SET total_purchases = total_purchases + $1
			WHERE customer_id = $2`,
			sale.TotalAmount, *sale.CustomerID)
		if err != nil {
			return models.Sale{}, fmt.Errorf("failed to update customer total: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Sale{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return sale, nil
}

// GetAll lists sales joined with their customer name, newest first, with
// inclusive date bounds.
func (r *PostgresSaleRepository) GetAll(dates DateRange) ([]models.Sale, error) {
	q := sq.Select(
		"s.sale_id", "s.customer_id", "c.customer_name", "s.subtotal",
		"s.discount_amount", "s.tax_amount", "s.total_amount",
		"s.payment_method", "s.invoice_number", "s.notes", "s.status", "s.sale_date",
	).
		From("sales s").
		LeftJoin("customers c ON s.customer_id = c.customer_id").
		OrderBy("s.sale_date DESC").
		PlaceholderFormat(sq.Dollar)

	if dates.Start != nil {
		q = q.Where(sq.Expr("s.sale_date::date >= ?", *dates.Start))
	}
	if dates.End != nil {
		q = q.Where(sq.Expr("s.sale_date::date <= ?", *dates.End))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sales query: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	return scanSales(rows)
}

// GetByID returns a sale with its customer contact fields and line items.
func (r *PostgresSaleRepository) GetByID(id int) (models.SaleDetail, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var d models.SaleDetail
	err := r.db.QueryRowContext(ctx, `
		SELECT s.sale_id, s.customer_id, c.customer_name, s.subtotal,
		       s.discount_amount, s.tax_amount, s.total_amount,
		       s.payment_method, s.invoice_number, s.notes, s.status,
		       s.sale_date, c.phone, c.address
		FROM sales s
		LEFT JOIN customers c ON s.customer_id = c.customer_id
		WHERE s.sale_id = $1`, id,
	).Scan(
		&d.ID, &d.CustomerID, &d.CustomerName, &d.Subtotal,
		&d.DiscountAmount, &d.TaxAmount, &d.TotalAmount,
		&d.PaymentMethod, &d.InvoiceNumber, &d.Notes, &d.Status,
		&d.SaleDate, &d.Phone, &d.Address,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SaleDetail{}, ErrSaleNotFound
	}
	if err != nil {
		return models.SaleDetail{}, fmt.Errorf("failed to query sale: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT si.sale_item_id, si.sale_id, si.product_id, p.product_name,
		       si.quantity, si.unit_price, si.total_price
		FROM sale_items si
		JOIN products p ON si.product_id = p.product_id
		WHERE si.sale_id = $1
		ORDER BY si.sale_item_id`, id)
	if err != nil {
		return models.SaleDetail{}, fmt.Errorf("failed to query sale items: %w", err)
	}
	defer rows.Close()

	d.Items = []models.SaleItem{}
	for rows.Next() {
		var item models.SaleItem
		if err := rows.Scan(
			&item.ID, &item.SaleID, &item.ProductID, &item.ProductName,
			&item.Quantity, &item.UnitPrice, &item.TotalPrice,
		); err != nil {
			return models.SaleDetail{}, err
		}
		d.Items = append(d.Items, item)
	}
	return d, rows.Err()
}

// GetByCustomer returns the customer's most recent sales, capped at limit.
func (r *PostgresSaleRepository) GetByCustomer(customerID, limit int) ([]models.Sale, error) {
	query := `
		SELECT s.sale_id, s.customer_id, c.customer_name, s.subtotal,
		       s.discount_amount, s.tax_amount, s.total_amount,
		       s.payment_method, s.invoice_number, s.notes, s.status, s.sale_date
		FROM sales s
		LEFT JOIN customers c ON s.customer_id = c.customer_id
		WHERE s.customer_id = $1
		ORDER BY s.sale_date DESC
		LIMIT $2`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, customerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query customer history: %w", err)
	}
	defer rows.Close()

	return scanSales(rows)
}

func scanSales(rows *sql.Rows) ([]models.Sale, error) {
	var sales []models.Sale
	for rows.Next() {
		var s models.Sale
		if err := rows.Scan(
			&s.ID, &s.CustomerID, &s.CustomerName, &s.Subtotal,
			&s.DiscountAmount, &s.TaxAmount, &s.TotalAmount,
			&s.PaymentMethod, &s.InvoiceNumber, &s.Notes, &s.Status, &s.SaleDate,
		); err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}
