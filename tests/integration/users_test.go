package integration

import (
	"context"
	"errors"
	"testing"

	"github.com/safar/go-order-api/internal/auth"
	"github.com/safar/go-order-api/internal/database"
	"github.com/safar/go-order-api/internal/store"
)

func TestCreateUser(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	hash, err := auth.HashPassword("qwerty")
	if err != nil {
		t.Fatalf("Hash password: %v", err)
	}

	user, err := store.CreateUser(ctx, db, "Ada", "Lovelace", "ada@example.com", hash)
	if err != nil {
		t.Fatalf("Create user: %v", err)
	}

	if user.ID == 0 {
		t.Error("User ID should not be 0")
	}
	if user.Email != "ada@example.com" {
		t.Errorf("Expected email ada@example.com, got %s", user.Email)
	}
	if user.PasswordHash == "qwerty" {
		t.Error("Stored credential must be a hash, not the plaintext")
	}

	fetched, err := store.GetUser(ctx, db, user.ID)
	if err != nil {
		t.Fatalf("Get user: %v", err)
	}
	if !auth.VerifyPassword("qwerty", fetched.PasswordHash) {
		t.Error("Stored hash should verify the original password")
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	hash, err := auth.HashPassword("pass-a")
	if err != nil {
		t.Fatalf("Hash password: %v", err)
	}

	first, err := store.CreateUser(ctx, db, "User", "A", "a@x.com", hash)
	if err != nil {
		t.Fatalf("Create user: %v", err)
	}

	_, err = store.CreateUser(ctx, db, "User", "A", "a@x.com", hash)
	if !errors.Is(err, database.ErrEmailTaken) {
		t.Fatalf("Expected ErrEmailTaken, got %v", err)
	}

	// The original record must be untouched.
	fetched, err := store.GetUser(ctx, db, first.ID)
	if err != nil {
		t.Fatalf("Get user: %v", err)
	}
	if fetched.Email != "a@x.com" || fetched.FirstName != "User" {
		t.Errorf("Original user changed after duplicate registration: %+v", fetched)
	}
}

func TestGetUserNotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := store.GetUser(context.Background(), db, 99999)
	if !errors.Is(err, database.ErrUserNotFound) {
		t.Fatalf("Expected ErrUserNotFound, got %v", err)
	}
}
