package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/rogerio-castellano/grocery-pos/internal/models"
)

type PostgresCustomerRepository struct {
	db *sql.DB
}

func NewPostgresCustomerRepository(db *sql.DB) *PostgresCustomerRepository {
	return &PostgresCustomerRepository{db: db}
}

func (r *PostgresCustomerRepository) Create(c models.Customer) (models.Customer, error) {
	query := `INSERT INTO customers (customer_name, phone, email, address)
		VALUES ($1, $2, $3, $4)
		RETURNING customer_id, total_purchases, created_at`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, c.Name, c.Phone, c.Email, c.Address).
		Scan(&c.ID, &c.TotalPurchases, &c.CreatedAt)
	if err != nil {
		return models.Customer{}, fmt.Errorf("failed to insert customer: %w", err)
	}
	return c, nil
}

// Update writes contact fields only. total_purchases moves exclusively
// through the sale workflow's relative increment.
func (r *PostgresCustomerRepository) Update(c models.Customer) (models.Customer, error) {
	query := `UPDATE customers
		SET customer_name = $1, phone = $2, email = $3, address = $4
		WHERE customer_id = $5`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, c.Name, c.Phone, c.Email, c.Address, c.ID)
	if err != nil {
		return models.Customer{}, fmt.Errorf("failed to update customer: %w", err)
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (r *PostgresCustomerRepository) Delete(id int) error {
	query := `DELETE FROM customers WHERE customer_id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

// GetAll lists customers, optionally matched case-insensitively on name or
// phone.
func (r *PostgresCustomerRepository) GetAll(search string) ([]models.Customer, error) {
	q := sq.Select(
		"customer_id", "customer_name", "phone", "email", "address",
		"total_purchases", "created_at",
	).
		From("customers").
		OrderBy("customer_name").
		PlaceholderFormat(sq.Dollar)

	if search != "" {
		pattern := "%" + search + "%"
		q = q.Where(sq.Or{
			sq.ILike{"customer_name": pattern},
			sq.ILike{"phone": pattern},
		})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build customer query: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	var customers []models.Customer
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address,
			&c.TotalPurchases, &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}
