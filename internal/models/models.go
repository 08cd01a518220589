package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	// PasswordHash is the bcrypt hash of the user's password.
	// Never serialized into responses.
	PasswordHash string `json:"-"`
}

type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
}

type Order struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ProductID int64     `json:"product_id"`
	OrderDate time.Time `json:"order_date"`
	Status    string    `json:"status"`
}

const OrderStatusCreated = "created"
