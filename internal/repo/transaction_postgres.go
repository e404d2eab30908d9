package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/rogerio-castellano/grocery-pos/internal/models"
)

type PostgresTransactionRepository struct {
	db *sql.DB
}

func NewPostgresTransactionRepository(db *sql.DB) *PostgresTransactionRepository {
	return &PostgresTransactionRepository{db: db}
}

// GetAll lists transactions joined with their sale's invoice number and
// customer name, newest first, with inclusive date bounds.
func (r *PostgresTransactionRepository) GetAll(dates DateRange) ([]models.Transaction, error) {
	q := sq.Select(
		"t.transaction_id", "t.sale_id", "t.amount", "t.payment_method",
		"t.status", "t.transaction_date", "s.invoice_number", "c.customer_name",
	).
		From("transactions t").
		LeftJoin("sales s ON t.sale_id = s.sale_id").
		LeftJoin("customers c ON s.customer_id = c.customer_id").
		OrderBy("t.transaction_date DESC").
		PlaceholderFormat(sq.Dollar)

	if dates.Start != nil {
		q = q.Where(sq.Expr("t.transaction_date::date >= ?", *dates.Start))
	}
	if dates.End != nil {
		q = q.Where(sq.Expr("t.transaction_date::date <= ?", *dates.End))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build transactions query: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

func scanTransactions(rows *sql.Rows) ([]models.Transaction, error) {
	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(
			&t.ID, &t.SaleID, &t.Amount, &t.PaymentMethod,
			&t.Status, &t.TransactionDate, &t.InvoiceNumber, &t.CustomerName,
		); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}
