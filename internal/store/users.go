package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/safar/go-order-api/internal/database"
	"github.com/safar/go-order-api/internal/models"
)

// CreateUser registers a new user. The email uniqueness constraint is
// enforced by the database; a duplicate fails with database.ErrEmailTaken
// and never overwrites the existing record.
func CreateUser(ctx context.Context, q database.Querier, firstName, lastName, email, passwordHash string) (*models.User, error) {
	user := &models.User{}

	query := `
		INSERT INTO users (first_name, last_name, email, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, first_name, last_name, email, password_hash`

	err := q.QueryRowContext(ctx, query, firstName, lastName, email, passwordHash).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PasswordHash,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, database.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func GetUser(ctx context.Context, q database.Querier, id int64) (*models.User, error) {
	user := &models.User{}

	query := `
		SELECT id, first_name, last_name, email, password_hash
		FROM users
		WHERE id = $1`

	err := q.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PasswordHash,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, database.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return user, nil
}
