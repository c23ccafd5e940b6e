package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Cart struct {
	UserID uuid.UUID
	Items  []CartItem
}

// CartItem is a cart line joined with the current state of its product.
type CartItem struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	Quantity  int

	ProductName   string
	Price         decimal.Decimal
	StockQuantity int
	ImageURL      *string

	AddedAt time.Time
}

// CheckoutLine is one cart line as read under the product row lock.
type CheckoutLine struct {
	CartItemID    uuid.UUID
	ProductID     uuid.UUID
	Quantity      int
	UnitPrice     decimal.Decimal
	StockQuantity int
}

func (l CheckoutLine) LineTotal() decimal.Decimal {
	return LineTotal(l.UnitPrice, l.Quantity)
}
