package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nikolayk812/shopcore/internal/db"
	"github.com/nikolayk812/shopcore/internal/domain"
	"github.com/nikolayk812/shopcore/internal/port"
	"github.com/samber/lo"
	"golang.org/x/text/currency"
)

type orderRepository struct {
	q        *db.Queries
	beginner TxBeginner
}

func NewOrder(pool Pool) port.OrderRepository {
	return &orderRepository{
		q:        db.New(pool),
		beginner: pool,
	}
}

func NewOrderWithTx(tx pgx.Tx) port.OrderRepository {
	return &orderRepository{
		q:        db.New(tx),
		beginner: nil, // use provided transaction instead
	}
}

// GetUserOrder returns the order with its lines only if it belongs to userID.
func (r *orderRepository) GetUserOrder(ctx context.Context, userID, orderID uuid.UUID) (domain.Order, error) {
	var o domain.Order

	order, err := withTx(ctx, r.beginner, r.q, func(q *db.Queries) (domain.Order, error) {
		dbOrder, err := q.GetUserOrder(ctx, db.GetUserOrderParams{ID: orderID, UserID: userID})
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return o, fmt.Errorf("q.GetUserOrder: %w", domain.ErrNotFound)
			}
			return o, fmt.Errorf("q.GetUserOrder: %w", err)
		}

		dbOrderItems, err := q.GetOrderItems(ctx, orderID)
		if err != nil {
			return o, fmt.Errorf("q.GetOrderItems: %w", err)
		}

		domainOrder, err := mapDBOrderToDomain(dbOrder)
		if err != nil {
			return o, fmt.Errorf("mapDBOrderToDomain: %w", err)
		}

		domainOrder.Items = lo.Map(dbOrderItems, func(row db.GetOrderItemsRow, _ int) domain.OrderItem {
			return mapGetOrderItemsRowToDomain(row)
		})

		return domainOrder, nil
	})
	if err != nil {
		return o, fmt.Errorf("withTx: %w", err)
	}

	return order, nil
}

// ListUserOrders returns order headers, newest first, without lines.
func (r *orderRepository) ListUserOrders(ctx context.Context, userID uuid.UUID) ([]domain.Order, error) {
	dbOrders, err := r.q.ListUserOrders(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("q.ListUserOrders: %w", err)
	}

	orders := make([]domain.Order, 0, len(dbOrders))
	for _, dbOrder := range dbOrders {
		order, err := mapDBOrderToDomain(dbOrder)
		if err != nil {
			return nil, fmt.Errorf("mapDBOrderToDomain: %w", err)
		}
		orders = append(orders, order)
	}

	return orders, nil
}

func (r *orderRepository) SearchOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	if err := filter.Validate(); err != nil {
		return nil, fmt.Errorf("filter.Validate: %w", err)
	}

	dbOrders, err := r.q.SearchOrders(ctx, mapDomainOrderFilterToDBFilter(filter))
	if err != nil {
		return nil, fmt.Errorf("q.SearchOrders: %w", err)
	}

	orders := make([]domain.Order, 0, len(dbOrders))
	for _, row := range dbOrders {
		order, err := mapSearchOrdersRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapSearchOrdersRowToDomain: %w", err)
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// UpdateOrderStatus changes only status and updated_at.
func (r *orderRepository) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus) (domain.Order, error) {
	var o domain.Order

	if orderID == uuid.Nil {
		return o, errors.New("orderID is empty")
	}

	if _, err := domain.ToOrderStatus(string(status)); err != nil {
		return o, fmt.Errorf("domain.ToOrderStatus[%s]: %w", status, err)
	}

	dbOrder, err := r.q.UpdateOrderStatus(ctx, db.UpdateOrderStatusParams{
		ID:     orderID,
		Status: string(status),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return o, fmt.Errorf("q.UpdateOrderStatus: %w", domain.ErrNotFound)
		}
		return o, fmt.Errorf("q.UpdateOrderStatus: %w", err)
	}

	order, err := mapDBOrderToDomain(dbOrder)
	if err != nil {
		return o, fmt.Errorf("mapDBOrderToDomain: %w", err)
	}

	return order, nil
}

func mapDomainOrderFilterToDBFilter(filter domain.OrderFilter) db.SearchOrdersParams {
	statuses := lo.Map(filter.Statuses, func(s domain.OrderStatus, _ int) string {
		return string(s)
	})

	var createdAfter, createdBefore *time.Time

	if filter.CreatedAt != nil {
		createdAfter = filter.CreatedAt.After
		createdBefore = filter.CreatedAt.Before
	}

	return db.SearchOrdersParams{
		IDs:      nilSliceIfEmpty(filter.IDs),
		UserIDs:  nilSliceIfEmpty(filter.UserIDs),
		Statuses: nilSliceIfEmpty(statuses),
		After:    createdAfter,
		Before:   createdBefore,
	}
}

func mapDBOrderToDomain(dbOrder db.Order) (domain.Order, error) {
	var o domain.Order

	status, err := domain.ToOrderStatus(dbOrder.Status)
	if err != nil {
		return o, fmt.Errorf("domain.ToOrderStatus[%s]: %w", dbOrder.Status, err)
	}

	parsedCurrency, err := currency.ParseISO(dbOrder.Currency)
	if err != nil {
		return o, fmt.Errorf("currency[%s] is not valid: %w", dbOrder.Currency, err)
	}

	return domain.Order{
		ID:        dbOrder.ID,
		UserID:    dbOrder.UserID,
		Total:     domain.Money{Amount: dbOrder.TotalAmount, Currency: parsedCurrency},
		Status:    status,
		CreatedAt: dbOrder.CreatedAt,
		UpdatedAt: dbOrder.UpdatedAt,
	}, nil
}

func mapSearchOrdersRowToDomain(row db.SearchOrdersRow) (domain.Order, error) {
	order, err := mapDBOrderToDomain(db.Order{
		ID:          row.ID,
		UserID:      row.UserID,
		TotalAmount: row.TotalAmount,
		Currency:    row.Currency,
		Status:      row.Status,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	})
	if err != nil {
		return order, err
	}

	order.Username = row.Username

	return order, nil
}

func mapGetOrderItemsRowToDomain(row db.GetOrderItemsRow) domain.OrderItem {
	return domain.OrderItem{
		ID:              row.ID,
		ProductID:       row.ProductID,
		Quantity:        row.Quantity,
		PriceAtPurchase: row.PriceAtPurchase,
		ProductName:     lo.FromPtr(row.ProductName),
		ProductImageURL: row.ProductImageUrl,
	}
}
