package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/safar/go-order-api/internal/auth"
	"github.com/safar/go-order-api/internal/database"
	"github.com/safar/go-order-api/internal/models"
	"github.com/safar/go-order-api/internal/store"
)

// OrderService drives the order lifecycle. Every operation that reads or
// mutates an existing order authorizes through the auth gate before touching
// the row.
type OrderService struct {
	db *sql.DB
}

func NewOrderService(db *sql.DB) *OrderService {
	return &OrderService{db: db}
}

// Place creates an order. Placement is open: no credential is checked,
// matching the registration model; only the references must resolve.
func (s *OrderService) Place(ctx context.Context, userID, productID int64, orderDate time.Time, status string) (*models.Order, error) {
	if status == "" {
		status = models.OrderStatusCreated
	}
	return store.CreateOrder(ctx, s.db, userID, productID, orderDate, status)
}

func (s *OrderService) ListForOwner(ctx context.Context, userID int64, password string) ([]models.Order, error) {
	authz, err := auth.AuthorizeOwner(ctx, s.db, userID, password)
	if err != nil {
		return nil, err
	}
	return authz.Orders, nil
}

func (s *OrderService) GetOne(ctx context.Context, userID int64, password string, orderID int64) (*models.Order, error) {
	authz, err := auth.AuthorizeOrder(ctx, s.db, userID, password, orderID)
	if err != nil {
		return nil, err
	}
	return authz.Order, nil
}

// AmendDate authorizes and then updates the order date inside one
// transaction. The target row stays locked between the authorization read
// and the write, so the mutation either completes or the order is untouched.
func (s *OrderService) AmendDate(ctx context.Context, userID int64, password string, orderID int64, newDate time.Time) (*models.Order, error) {
	var updated *models.Order

	err := database.WithTransaction(ctx, s.db, database.DefaultTxOptions(), func(tx *sql.Tx) error {
		authz, err := auth.AuthorizeOrderForUpdate(ctx, tx, userID, password, orderID)
		if err != nil {
			return err
		}

		updated, err = store.UpdateOrderDate(ctx, tx, authz.Order, newDate)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Cancel authorizes, deletes the order, and returns a snapshot of its last
// persisted fields. The snapshot is the caller-visible confirmation; the
// record itself is gone.
func (s *OrderService) Cancel(ctx context.Context, userID int64, password string, orderID int64) (*models.Order, error) {
	var snapshot models.Order

	err := database.WithTransaction(ctx, s.db, database.DefaultTxOptions(), func(tx *sql.Tx) error {
		authz, err := auth.AuthorizeOrderForUpdate(ctx, tx, userID, password, orderID)
		if err != nil {
			return err
		}

		snapshot = *authz.Order
		return store.DeleteOrder(ctx, tx, authz.Order)
	})
	if err != nil {
		return nil, err
	}

	return &snapshot, nil
}
