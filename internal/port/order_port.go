package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/shopcore/internal/domain"
	"golang.org/x/text/currency"
)

// CheckoutRepository turns a user's cart into an order in a single transaction.
type CheckoutRepository interface {
	PlaceOrder(ctx context.Context, userID uuid.UUID, unit currency.Unit) (domain.Order, error)
}

type OrderRepository interface {
	GetUserOrder(ctx context.Context, userID, orderID uuid.UUID) (domain.Order, error)
	ListUserOrders(ctx context.Context, userID uuid.UUID) ([]domain.Order, error)

	SearchOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)

	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus) (domain.Order, error)
}
