package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/shopcore/internal/domain"
)

type CartRepository interface {
	GetCart(ctx context.Context, userID uuid.UUID) (domain.Cart, error)

	// AddItem reports capped=true when the resulting quantity was limited by the product stock.
	AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (item domain.CartItem, capped bool, err error)
	UpdateItemQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) (domain.CartItem, error)
	DeleteItem(ctx context.Context, userID, itemID uuid.UUID) (bool, error)
}
