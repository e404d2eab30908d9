package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		category_id   SERIAL PRIMARY KEY,
		category_name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		product_id          SERIAL PRIMARY KEY,
		product_name        TEXT NOT NULL,
		category_id         INT REFERENCES categories (category_id),
		barcode             TEXT,
		price               NUMERIC(10,2) NOT NULL,
		cost_price          NUMERIC(10,2) NOT NULL DEFAULT 0,
		quantity            INT NOT NULL DEFAULT 0,
		low_stock_threshold INT NOT NULL DEFAULT 10,
		expiry_date         DATE,
		description         TEXT,
		created_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at          TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		customer_id     SERIAL PRIMARY KEY,
		customer_name   TEXT NOT NULL,
		phone           TEXT,
		email           TEXT,
		address         TEXT,
		total_purchases NUMERIC(12,2) NOT NULL DEFAULT 0,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		sale_id         SERIAL PRIMARY KEY,
		customer_id     INT REFERENCES customers (customer_id),
		subtotal        NUMERIC(12,2) NOT NULL,
		discount_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
		tax_amount      NUMERIC(12,2) NOT NULL DEFAULT 0,
		total_amount    NUMERIC(12,2) NOT NULL,
		payment_method  TEXT NOT NULL,
		invoice_number  TEXT NOT NULL UNIQUE,
		notes           TEXT,
		status          TEXT NOT NULL DEFAULT 'Completed',
		sale_date       TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS sale_items (
		sale_item_id SERIAL PRIMARY KEY,
		sale_id      INT NOT NULL REFERENCES sales (sale_id) ON DELETE CASCADE,
		product_id   INT NOT NULL REFERENCES products (product_id),
		quantity     INT NOT NULL,
		unit_price   NUMERIC(10,2) NOT NULL,
		total_price  NUMERIC(12,2) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		transaction_id   SERIAL PRIMARY KEY,
		sale_id          INT NOT NULL REFERENCES sales (sale_id),
		amount           NUMERIC(12,2) NOT NULL,
		payment_method   TEXT NOT NULL,
		status           TEXT NOT NULL DEFAULT 'Completed',
		transaction_date TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_sale_date ON sales (sale_date)`,
	`CREATE INDEX IF NOT EXISTS idx_sale_items_sale_id ON sale_items (sale_id)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_sale_id ON transactions (sale_id)`,
}

// EnsureSchema creates the store schema when it does not exist yet. All
// statements are idempotent, so it is safe to run on every startup.
func EnsureSchema(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
