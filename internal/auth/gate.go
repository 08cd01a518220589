// Package auth is the single choke point for order access: no other package
// reads or mutates an order without an AuthorizedContext from here.
package auth

import (
	"context"
	"database/sql"

	"github.com/safar/go-order-api/internal/database"
	"github.com/safar/go-order-api/internal/models"
	"github.com/safar/go-order-api/internal/store"
)

// AuthorizedContext is the credential-verified user plus the order records
// they are permitted to act on for this request.
type AuthorizedContext struct {
	User   *models.User
	Orders []models.Order
	Order  *models.Order
}

// authenticate resolves the user first and only then checks the credential,
// so both failure modes cost a store lookup and callers see them in a fixed
// internal order.
func authenticate(ctx context.Context, q database.Querier, userID int64, password string) (*models.User, error) {
	user, err := store.GetUser(ctx, q, userID)
	if err != nil {
		return nil, err
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return nil, database.ErrInvalidCredential
	}

	return user, nil
}

// AuthorizeOwner authenticates the user and resolves every order they own.
// Fails with database.ErrNoOrders when the user owns none.
func AuthorizeOwner(ctx context.Context, q database.Querier, userID int64, password string) (*AuthorizedContext, error) {
	user, err := authenticate(ctx, q, userID, password)
	if err != nil {
		return nil, err
	}

	orders, err := store.ListOrdersForUser(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, database.ErrNoOrders
	}

	return &AuthorizedContext{User: user, Orders: orders}, nil
}

// AuthorizeOrder authenticates the user and narrows to the one order matching
// both orderID and userID. The combined filter is the ownership boundary: an
// order belonging to someone else is indistinguishable from a missing one.
func AuthorizeOrder(ctx context.Context, q database.Querier, userID int64, password string, orderID int64) (*AuthorizedContext, error) {
	user, err := authenticate(ctx, q, userID, password)
	if err != nil {
		return nil, err
	}

	order, err := store.GetOrderForOwner(ctx, q, orderID, userID)
	if err != nil {
		return nil, err
	}

	return &AuthorizedContext{User: user, Order: order}, nil
}

// AuthorizeOrderForUpdate is AuthorizeOrder with the order row locked for the
// duration of tx, so a following mutation cannot interleave with a concurrent
// amend or cancel of the same order.
func AuthorizeOrderForUpdate(ctx context.Context, tx *sql.Tx, userID int64, password string, orderID int64) (*AuthorizedContext, error) {
	user, err := authenticate(ctx, tx, userID, password)
	if err != nil {
		return nil, err
	}

	order, err := store.GetOrderForOwnerLocked(ctx, tx, orderID, userID)
	if err != nil {
		return nil, err
	}

	return &AuthorizedContext{User: user, Order: order}, nil
}
