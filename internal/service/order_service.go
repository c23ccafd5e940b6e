package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/shopcore/internal/domain"
	"github.com/nikolayk812/shopcore/internal/port"
	"github.com/rs/zerolog"
	"golang.org/x/text/currency"
)

type OrderService struct {
	checkout  port.CheckoutRepository
	orders    port.OrderRepository
	publisher port.EventPublisher
	currency  currency.Unit
	logger    zerolog.Logger
}

func NewOrderService(
	checkout port.CheckoutRepository,
	orders port.OrderRepository,
	publisher port.EventPublisher,
	unit currency.Unit,
	logger zerolog.Logger,
) (*OrderService, error) {
	if checkout == nil {
		return nil, errors.New("checkout repository is nil")
	}
	if orders == nil {
		return nil, errors.New("order repository is nil")
	}
	if publisher == nil {
		return nil, errors.New("publisher is nil")
	}

	return &OrderService{
		checkout:  checkout,
		orders:    orders,
		publisher: publisher,
		currency:  unit,
		logger:    logger.With().Str("component", "orders").Logger(),
	}, nil
}

// PlaceOrder checks out the user's cart. The returned error is domain.ErrEmptyCart,
// a *domain.InsufficientStockError or a *domain.StoreError.
// The order.placed event is published after commit and its failure never undoes the order.
func (s *OrderService) PlaceOrder(ctx context.Context, userID uuid.UUID) (domain.OrderSummary, error) {
	logger := s.logger.With().Str("user_id", userID.String()).Logger()

	order, err := s.checkout.PlaceOrder(ctx, userID, s.currency)
	if err != nil {
		var stockErr *domain.InsufficientStockError

		switch {
		case errors.Is(err, domain.ErrEmptyCart):
			logger.Warn().Str("reason", "empty_cart").Msg("order rejected")
			return domain.OrderSummary{}, domain.ErrEmptyCart
		case errors.As(err, &stockErr):
			logger.Warn().
				Str("reason", "insufficient_stock").
				Str("product_id", stockErr.ProductID.String()).
				Int("requested", stockErr.Requested).
				Int("available", stockErr.Available).
				Msg("order rejected")
			return domain.OrderSummary{}, stockErr
		default:
			logger.Error().Err(err).Msg("order placement failed")
			return domain.OrderSummary{}, &domain.StoreError{Op: "place order", Err: err}
		}
	}

	summary := domain.NewOrderSummary(order)

	logger.Info().
		Str("order_id", order.ID.String()).
		Str("total", summary.TotalAmount).
		Str("currency", summary.Currency).
		Int("lines", len(order.Items)).
		Msg("order placed")

	if err := s.publisher.PublishOrderPlaced(ctx, summary); err != nil {
		logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("publish order placed")
	}

	return summary, nil
}

func (s *OrderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]domain.Order, error) {
	orders, err := s.orders.ListUserOrders(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("orders.ListUserOrders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (domain.Order, error) {
	order, err := s.orders.GetUserOrder(ctx, userID, orderID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("orders.GetUserOrder: %w", err)
	}
	return order, nil
}

func (s *OrderService) ListAllOrders(ctx context.Context, actor domain.User, filter domain.OrderFilter) ([]domain.Order, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	orders, err := s.orders.SearchOrders(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("orders.SearchOrders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) UpdateOrderStatus(ctx context.Context, actor domain.User, orderID uuid.UUID, status domain.OrderStatus) (domain.Order, error) {
	if actor.Role != domain.RoleAdmin {
		return domain.Order{}, domain.ErrForbidden
	}

	order, err := s.orders.UpdateOrderStatus(ctx, orderID, status)
	if err != nil {
		return domain.Order{}, fmt.Errorf("orders.UpdateOrderStatus: %w", err)
	}

	s.logger.Info().
		Str("order_id", orderID.String()).
		Str("status", string(status)).
		Str("admin_id", actor.ID.String()).
		Msg("order status updated")

	return order, nil
}
