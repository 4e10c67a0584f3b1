package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"foodcart/order-svc/internal/domain"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS restaurants (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(50) NOT NULL,
		address VARCHAR(100) NOT NULL DEFAULT '',
		contact_phone VARCHAR(50) NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS product_categories (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(50) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(50) NOT NULL,
		category_id BIGINT REFERENCES product_categories(id) ON DELETE SET NULL,
		price NUMERIC(8, 2) NOT NULL CHECK (price >= 0),
		image TEXT NOT NULL DEFAULT '',
		special_status BOOLEAN NOT NULL DEFAULT FALSE,
		description VARCHAR(200) NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS products_special_status_idx ON products (special_status)`,
	`CREATE TABLE IF NOT EXISTS menu_entries (
		id BIGSERIAL PRIMARY KEY,
		restaurant_id BIGINT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		product_id BIGINT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
		availability BOOLEAN NOT NULL DEFAULT TRUE,
		UNIQUE (restaurant_id, product_id)
	)`,
	`CREATE INDEX IF NOT EXISTS menu_entries_availability_idx ON menu_entries (availability)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id BIGSERIAL PRIMARY KEY,
		payment VARCHAR(20) NOT NULL DEFAULT 'CASH',
		status VARCHAR(20) NOT NULL DEFAULT 'NEW',
		firstname VARCHAR(90) NOT NULL,
		lastname VARCHAR(100) NOT NULL,
		phone_number VARCHAR(32) NOT NULL,
		address VARCHAR(100) NOT NULL,
		total_price NUMERIC(10, 2) NOT NULL DEFAULT 0 CHECK (total_price >= 0),
		comment TEXT NOT NULL DEFAULT '',
		registered_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		called_at TIMESTAMPTZ,
		delivered_at TIMESTAMPTZ,
		restaurant_id BIGINT REFERENCES restaurants(id) ON DELETE SET NULL
	)`,
	`CREATE INDEX IF NOT EXISTS orders_status_idx ON orders (status)`,
	`CREATE INDEX IF NOT EXISTS orders_lastname_idx ON orders (lastname)`,
	`CREATE INDEX IF NOT EXISTS orders_phone_number_idx ON orders (phone_number)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id BIGSERIAL PRIMARY KEY,
		order_id BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		product_id BIGINT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
		quantity INTEGER NOT NULL CHECK (quantity > 0),
		price NUMERIC(8, 2) NOT NULL CHECK (price >= 0),
		UNIQUE (order_id, product_id)
	)`,
}

// EnsureSchema creates missing tables and indexes.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", firstLine(stmt), err)
		}
	}
	return nil
}

func firstLine(s string) string {
	for i, c := range s {
		if c == '\n' {
			return s[:i]
		}
	}
	return s
}

const (
	foreignKeyViolation    = "23503"
	numericValueOutOfRange = "22003"
)

func isNumericOverflow(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == numericValueOutOfRange
}

// notFoundOnForeignKey turns a dangling reference into ErrNotFound.
func notFoundOnForeignKey(err error, what string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
		return fmt.Errorf("%s: %w", what, domain.ErrNotFound)
	}
	return err
}
