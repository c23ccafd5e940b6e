package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nikolayk812/shopcore/internal/db"
	"github.com/nikolayk812/shopcore/internal/domain"
	"github.com/nikolayk812/shopcore/internal/port"
	"github.com/samber/lo"
	"golang.org/x/text/currency"
)

type checkoutRepository struct {
	q        *db.Queries
	beginner TxBeginner
}

func NewCheckout(pool Pool) port.CheckoutRepository {
	return &checkoutRepository{
		q:        db.New(pool),
		beginner: pool,
	}
}

func NewCheckoutWithTx(tx pgx.Tx) port.CheckoutRepository {
	return &checkoutRepository{
		q:        db.New(tx),
		beginner: nil, // use provided transaction instead
	}
}

// PlaceOrder converts the user's cart into a pending order. Either every step below is committed
// or none is: lock and read the cart lines, validate stock, insert the order with its lines,
// decrement stock and clear the cart.
func (r *checkoutRepository) PlaceOrder(ctx context.Context, userID uuid.UUID, unit currency.Unit) (domain.Order, error) {
	var o domain.Order

	if userID == uuid.Nil {
		return o, errors.New("userID is empty")
	}

	order, err := withTx(ctx, r.beginner, r.q, func(q *db.Queries) (domain.Order, error) {
		rows, err := q.LockCartForCheckout(ctx, userID)
		if err != nil {
			return o, fmt.Errorf("q.LockCartForCheckout: %w", err)
		}

		if len(rows) == 0 {
			return o, domain.ErrEmptyCart
		}

		lines := lo.Map(rows, func(row db.LockCartForCheckoutRow, _ int) domain.CheckoutLine {
			return mapLockCartForCheckoutRowToDomain(row)
		})

		if err := validateStock(lines); err != nil {
			return o, err
		}

		order, err := insertOrder(ctx, q, userID, unit, lines)
		if err != nil {
			return o, fmt.Errorf("insertOrder: %w", err)
		}

		if err := decrementStock(ctx, q, lines); err != nil {
			return o, fmt.Errorf("decrementStock: %w", err)
		}

		if _, err := q.ClearCart(ctx, userID); err != nil {
			return o, fmt.Errorf("q.ClearCart: %w", err)
		}

		return order, nil
	})
	if err != nil {
		return o, fmt.Errorf("withTx: %w", err)
	}

	return order, nil
}

// validateStock returns the first line whose quantity exceeds the locked stock.
func validateStock(lines []domain.CheckoutLine) error {
	for _, line := range lines {
		if line.Quantity > line.StockQuantity {
			return &domain.InsufficientStockError{
				ProductID: line.ProductID,
				Requested: line.Quantity,
				Available: line.StockQuantity,
			}
		}
	}
	return nil
}

func insertOrder(ctx context.Context, q *db.Queries, userID uuid.UUID, unit currency.Unit, lines []domain.CheckoutLine) (domain.Order, error) {
	var o domain.Order

	total := domain.SumLines(lines, domain.CheckoutLine.LineTotal)

	inserted, err := q.InsertOrder(ctx, db.InsertOrderParams{
		UserID:      userID,
		TotalAmount: total,
		Currency:    unit.String(),
		Status:      string(domain.OrderStatusPending),
	})
	if err != nil {
		return o, fmt.Errorf("q.InsertOrder: %w", err)
	}

	items := make([]domain.OrderItem, 0, len(lines))
	for _, line := range lines {
		itemID, err := q.InsertOrderItem(ctx, db.InsertOrderItemParams{
			OrderID:         inserted.ID,
			ProductID:       line.ProductID,
			Quantity:        line.Quantity,
			PriceAtPurchase: line.UnitPrice,
		})
		if err != nil {
			return o, fmt.Errorf("q.InsertOrderItem[%s]: %w", line.ProductID, err)
		}

		items = append(items, domain.OrderItem{
			ID:              itemID,
			ProductID:       line.ProductID,
			Quantity:        line.Quantity,
			PriceAtPurchase: line.UnitPrice,
		})
	}

	return domain.Order{
		ID:        inserted.ID,
		UserID:    userID,
		Total:     domain.Money{Amount: total, Currency: unit},
		Items:     items,
		Status:    domain.OrderStatusPending,
		CreatedAt: inserted.CreatedAt,
		UpdatedAt: inserted.UpdatedAt,
	}, nil
}

func decrementStock(ctx context.Context, q *db.Queries, lines []domain.CheckoutLine) error {
	for _, line := range lines {
		cmdTag, err := q.DecrementStock(ctx, db.DecrementStockParams{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
		if err != nil {
			return fmt.Errorf("q.DecrementStock[%s]: %w", line.ProductID, err)
		}

		// the row is locked and validated, a miss means the stock invariant is broken
		if cmdTag.RowsAffected() == 0 {
			return fmt.Errorf("q.DecrementStock[%s]: no rows updated", line.ProductID)
		}
	}
	return nil
}

func mapLockCartForCheckoutRowToDomain(row db.LockCartForCheckoutRow) domain.CheckoutLine {
	return domain.CheckoutLine{
		CartItemID:    row.ID,
		ProductID:     row.ProductID,
		Quantity:      row.Quantity,
		UnitPrice:     row.Price,
		StockQuantity: row.StockQuantity,
	}
}
