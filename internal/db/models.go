package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	FirstName    *string
	LastName     *string
	Role         string
	CreatedAt    time.Time
}

type Category struct {
	ID          uuid.UUID
	Name        string
	Description *string
	CreatedAt   time.Time
}

type Product struct {
	ID            uuid.UUID
	SellerID      uuid.UUID
	CategoryID    *uuid.UUID
	Name          string
	Description   string
	Price         decimal.Decimal
	StockQuantity int
	ImageUrl      *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type CartItem struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	AddedAt   time.Time
}

type Order struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	TotalAmount decimal.Decimal
	Currency    string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type OrderItem struct {
	ID              uuid.UUID
	OrderID         uuid.UUID
	ProductID       uuid.UUID
	Quantity        int
	PriceAtPurchase decimal.Decimal
}
