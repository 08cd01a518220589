package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/safar/go-order-api/internal/database"
	"github.com/safar/go-order-api/internal/models"
)

// CreateOrder inserts an order referencing an existing user and product.
// The insert is a single atomic statement; a dangling user or product
// reference trips the foreign key constraint and fails with
// database.ErrDanglingReference, leaving no row behind.
func CreateOrder(ctx context.Context, q database.Querier, userID, productID int64, orderDate time.Time, status string) (*models.Order, error) {
	order := &models.Order{}

	query := `
		INSERT INTO orders (user_id, product_id, order_date, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, product_id, order_date, status`

	err := q.QueryRowContext(ctx, query, userID, productID, orderDate, status).Scan(
		&order.ID,
		&order.UserID,
		&order.ProductID,
		&order.OrderDate,
		&order.Status,
	)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return nil, database.ErrDanglingReference
		}
		return nil, fmt.Errorf("create order: %w", err)
	}

	return order, nil
}

// GetOrderForOwner fetches the order matching both id and owner in one
// query. The combined filter is the authorization boundary: another user's
// order never leaves the database, it just does not match.
func GetOrderForOwner(ctx context.Context, q database.Querier, orderID, userID int64) (*models.Order, error) {
	return scanOrderRow(q.QueryRowContext(ctx, `
		SELECT id, user_id, product_id, order_date, status
		FROM orders
		WHERE id = $1 AND user_id = $2`,
		orderID, userID))
}

// GetOrderForOwnerLocked is GetOrderForOwner with the row locked until tx
// ends, serializing concurrent amend/cancel on the same order.
func GetOrderForOwnerLocked(ctx context.Context, tx *sql.Tx, orderID, userID int64) (*models.Order, error) {
	return scanOrderRow(tx.QueryRowContext(ctx, `
		SELECT id, user_id, product_id, order_date, status
		FROM orders
		WHERE id = $1 AND user_id = $2
		FOR UPDATE`,
		orderID, userID))
}

func scanOrderRow(row *sql.Row) (*models.Order, error) {
	order := &models.Order{}
	err := row.Scan(
		&order.ID,
		&order.UserID,
		&order.ProductID,
		&order.OrderDate,
		&order.Status,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, database.ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

func ListOrdersForUser(ctx context.Context, q database.Querier, userID int64) ([]models.Order, error) {
	query := `
		SELECT id, user_id, product_id, order_date, status
		FROM orders
		WHERE user_id = $1
		ORDER BY id`

	rows, err := q.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var order models.Order
		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.ProductID,
			&order.OrderDate,
			&order.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return orders, nil
}

// UpdateOrderDate sets the date of an already resolved order. Taking the
// record rather than a bare id keeps the existence check with the caller,
// so authorization failures stay distinguishable from not-found.
func UpdateOrderDate(ctx context.Context, q database.Querier, order *models.Order, newDate time.Time) (*models.Order, error) {
	updated := &models.Order{}

	query := `
		UPDATE orders
		SET order_date = $1
		WHERE id = $2
		RETURNING id, user_id, product_id, order_date, status`

	err := q.QueryRowContext(ctx, query, newDate, order.ID).Scan(
		&updated.ID,
		&updated.UserID,
		&updated.ProductID,
		&updated.OrderDate,
		&updated.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("update order date: %w", err)
	}

	return updated, nil
}

// DeleteOrder removes an already resolved order.
func DeleteOrder(ctx context.Context, q database.Querier, order *models.Order) error {
	if _, err := q.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, order.ID); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}
