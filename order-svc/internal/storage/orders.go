package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"foodcart/order-svc/internal/domain"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const orderColumns = `id, payment, status, firstname, lastname, phone_number, address,
	total_price, comment, registered_at, called_at, delivered_at, restaurant_id`

// CreateOrder inserts the order and its items in one read-committed
// transaction. Each item copies the product's current price, and the order
// total is recomputed from the inserted items before commit, so no reader
// ever sees a total that disagrees with the items.
func (r *PostgresRepository) CreateOrder(ctx context.Context, validated *domain.ValidatedOrder) (*domain.Order, error) {
	tx, err := r.DB.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, creationFailed("begin transaction", err)
	}
	defer tx.Rollback()

	order := &domain.Order{
		Payment:     validated.Payment,
		Status:      domain.StatusNew,
		Firstname:   validated.Firstname,
		Lastname:    validated.Lastname,
		PhoneNumber: validated.PhoneNumber,
		Address:     validated.Address,
		Comment:     validated.Comment,
		TotalPrice:  decimal.Zero,
		Items:       make([]domain.OrderItem, 0, len(validated.Lines)),
	}

	if err := tx.QueryRowContext(ctx, `
		INSERT INTO orders (payment, status, firstname, lastname, phone_number, address, total_price, comment)
		VALUES ($1, $2, $3, $4, $5, $6, 0, $7)
		RETURNING id, registered_at`,
		order.Payment, order.Status, order.Firstname, order.Lastname, order.PhoneNumber, order.Address, order.Comment,
	).Scan(&order.ID, &order.RegisteredAt); err != nil {
		return nil, creationFailed("insert order", err)
	}

	for _, line := range validated.Lines {
		var price decimal.Decimal
		err := tx.QueryRowContext(ctx, "SELECT price FROM products WHERE id = $1", line.ProductID).Scan(&price)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, creationFailed("load product price", domain.ProductError(domain.ErrNotFound, line.ProductID))
		}
		if err != nil {
			return nil, creationFailed("load product price", err)
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, price)
			VALUES ($1, $2, $3, $4)`,
			order.ID, line.ProductID, line.Quantity, price); err != nil {
			if isNumericOverflow(err) {
				return nil, domain.OrderTooLarge()
			}
			return nil, creationFailed("insert order item", err)
		}

		order.Items = append(order.Items, domain.OrderItem{
			OrderID:   order.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     price,
		})
	}

	order.TotalPrice = domain.TotalCost(order.Items)
	if order.TotalPrice.GreaterThan(domain.MaxOrderTotal) {
		return nil, domain.OrderTooLarge()
	}
	if _, err := tx.ExecContext(ctx, "UPDATE orders SET total_price = $1 WHERE id = $2", order.TotalPrice, order.ID); err != nil {
		if isNumericOverflow(err) {
			return nil, domain.OrderTooLarge()
		}
		return nil, creationFailed("update total price", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, creationFailed("commit", err)
	}
	return order, nil
}

func creationFailed(step string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrOrderCreationFailed, step, err)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (domain.Order, error) {
	var (
		order        domain.Order
		calledAt     sql.NullTime
		deliveredAt  sql.NullTime
		restaurantID sql.NullInt64
	)
	err := row.Scan(&order.ID, &order.Payment, &order.Status, &order.Firstname, &order.Lastname,
		&order.PhoneNumber, &order.Address, &order.TotalPrice, &order.Comment, &order.RegisteredAt,
		&calledAt, &deliveredAt, &restaurantID)
	if err != nil {
		return order, err
	}
	if calledAt.Valid {
		order.CalledAt = &calledAt.Time
	}
	if deliveredAt.Valid {
		order.DeliveredAt = &deliveredAt.Time
	}
	if restaurantID.Valid {
		order.RestaurantID = &restaurantID.Int64
	}
	return order, nil
}

func (r *PostgresRepository) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := scanOrder(r.DB.QueryRowContext(ctx, "SELECT "+orderColumns+" FROM orders WHERE id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("order %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	items, err := r.itemsByOrder(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	order.Items = items[id]
	return &order, nil
}

// ListActiveOrders returns every order not yet READY, NEW first, then
// COOKING, then DELIVERY, oldest id first within a status.
func (r *PostgresRepository) ListActiveOrders(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE status <> $1
		ORDER BY CASE status
			WHEN 'NEW' THEN 0
			WHEN 'COOKING' THEN 1
			WHEN 'DELIVERY' THEN 2
			ELSE 3
		END, id`, domain.StatusReady)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]int64, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}
	items, err := r.itemsByOrder(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = items[orders[i].ID]
	}
	return orders, nil
}

func (r *PostgresRepository) itemsByOrder(ctx context.Context, orderIDs []int64) (map[int64][]domain.OrderItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT order_id, product_id, quantity, price
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY order_id, id`, pq.Array(orderIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[int64][]domain.OrderItem, len(orderIDs))
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.OrderID, &item.ProductID, &item.Quantity, &item.Price); err != nil {
			return nil, err
		}
		items[item.OrderID] = append(items[item.OrderID], item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) ProductIDsByOrder(ctx context.Context, orderIDs []int64) (map[int64][]int64, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT order_id, product_id FROM order_items WHERE order_id = ANY($1)",
		pq.Array(orderIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make(map[int64][]int64, len(orderIDs))
	for rows.Next() {
		var orderID, productID int64
		if err := rows.Scan(&orderID, &productID); err != nil {
			return nil, err
		}
		products[orderID] = append(products[orderID], productID)
	}
	return products, rows.Err()
}

// UpdateStatus applies change only if the order is still in change.From.
func (r *PostgresRepository) UpdateStatus(ctx context.Context, id int64, change domain.StatusChange) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE orders SET
			status = $1,
			called_at = CASE WHEN $2::boolean THEN COALESCE(called_at, $4::timestamptz) ELSE called_at END,
			delivered_at = CASE WHEN $3::boolean THEN COALESCE(delivered_at, $4::timestamptz) ELSE delivered_at END
		WHERE id = $5 AND status = $6`,
		change.To, change.StampCall, change.StampDeliver, change.At, id, change.From)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: order %d is no longer %s", domain.ErrInvalidStatusTransition, id, change.From)
	}
	return nil
}
