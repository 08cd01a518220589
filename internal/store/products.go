package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/safar/go-order-api/internal/database"
	"github.com/safar/go-order-api/internal/models"
	"github.com/shopspring/decimal"
)

func CreateProduct(ctx context.Context, q database.Querier, name, description string, price decimal.Decimal) (*models.Product, error) {
	product := &models.Product{}

	query := `
		INSERT INTO products (name, description, price)
		VALUES ($1, $2, $3)
		RETURNING id, name, description, price`

	err := q.QueryRowContext(ctx, query, name, description, price).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
	)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	return product, nil
}

func GetProduct(ctx context.Context, q database.Querier, id int64) (*models.Product, error) {
	product := &models.Product{}

	query := `
		SELECT id, name, description, price
		FROM products
		WHERE id = $1`

	err := q.QueryRowContext(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, database.ErrProductNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}

	return product, nil
}

// GetProductsByName returns every product with the given name. An empty
// slice means absence; the caller decides how to surface that.
func GetProductsByName(ctx context.Context, q database.Querier, name string) ([]models.Product, error) {
	query := `
		SELECT id, name, description, price
		FROM products
		WHERE name = $1
		ORDER BY id`

	rows, err := q.QueryContext(ctx, query, name)
	if err != nil {
		return nil, fmt.Errorf("get products by name: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var product models.Product
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Description,
			&product.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return products, nil
}
