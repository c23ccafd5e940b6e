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
)

type cartRepository struct {
	q        *db.Queries
	beginner TxBeginner
}

func NewCart(pool Pool) port.CartRepository {
	return &cartRepository{
		q:        db.New(pool),
		beginner: pool,
	}
}

func NewCartWithTx(tx pgx.Tx) port.CartRepository {
	return &cartRepository{
		q:        db.New(tx),
		beginner: nil, // use provided transaction instead
	}
}

func (r *cartRepository) GetCart(ctx context.Context, userID uuid.UUID) (domain.Cart, error) {
	var c domain.Cart

	dbCartItems, err := r.q.GetCart(ctx, userID)
	if err != nil {
		return c, fmt.Errorf("q.GetCart: %w", err)
	}

	return domain.Cart{
		UserID: userID,
		Items:  lo.Map(dbCartItems, func(row db.GetCartRow, _ int) domain.CartItem { return mapGetCartRowToDomain(row) }),
	}, nil
}

// AddItem adds quantity to the existing line for the product, or creates the line.
// The resulting quantity never exceeds the product stock read in the same transaction.
func (r *cartRepository) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (domain.CartItem, bool, error) {
	type result struct {
		item   domain.CartItem
		capped bool
	}

	if quantity <= 0 {
		return domain.CartItem{}, false, errors.New("quantity must be positive")
	}

	res, err := withTx(ctx, r.beginner, r.q, func(q *db.Queries) (result, error) {
		var zero result

		stock, err := q.GetProductStock(ctx, productID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return zero, fmt.Errorf("q.GetProductStock: %w", domain.ErrNotFound)
			}
			return zero, fmt.Errorf("q.GetProductStock: %w", err)
		}

		if stock == 0 {
			return zero, &domain.InsufficientStockError{ProductID: productID, Requested: quantity}
		}

		row, err := q.UpsertCartItem(ctx, db.UpsertCartItemParams{
			UserID:    userID,
			ProductID: productID,
			Quantity:  quantity,
			Available: stock,
		})
		if err != nil {
			if isPgError(err, pgForeignKeyViolation) {
				return zero, fmt.Errorf("q.UpsertCartItem: %w", domain.ErrNotFound)
			}
			return zero, fmt.Errorf("q.UpsertCartItem: %w", err)
		}

		return result{
			item: domain.CartItem{
				ID:            row.ID,
				ProductID:     row.ProductID,
				Quantity:      row.Quantity,
				StockQuantity: stock,
				AddedAt:       row.AddedAt,
			},
			capped: row.Capped,
		}, nil
	})
	if err != nil {
		return domain.CartItem{}, false, fmt.Errorf("withTx: %w", err)
	}

	return res.item, res.capped, nil
}

// UpdateItemQuantity sets the quantity of a line owned by userID, rejecting quantities above stock.
func (r *cartRepository) UpdateItemQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) (domain.CartItem, error) {
	var ci domain.CartItem

	if quantity <= 0 {
		return ci, errors.New("quantity must be positive")
	}

	item, err := withTx(ctx, r.beginner, r.q, func(q *db.Queries) (domain.CartItem, error) {
		stock, err := q.GetCartItemStock(ctx, db.GetCartItemStockParams{ID: itemID, UserID: userID})
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ci, fmt.Errorf("q.GetCartItemStock: %w", domain.ErrNotFound)
			}
			return ci, fmt.Errorf("q.GetCartItemStock: %w", err)
		}

		if quantity > stock.StockQuantity {
			return ci, &domain.InsufficientStockError{
				ProductID: stock.ProductID,
				Requested: quantity,
				Available: stock.StockQuantity,
			}
		}

		row, err := q.UpdateCartItemQuantity(ctx, db.UpdateCartItemQuantityParams{
			ID:       itemID,
			UserID:   userID,
			Quantity: quantity,
		})
		if err != nil {
			return ci, fmt.Errorf("q.UpdateCartItemQuantity: %w", err)
		}

		return domain.CartItem{
			ID:            row.ID,
			ProductID:     row.ProductID,
			Quantity:      row.Quantity,
			StockQuantity: stock.StockQuantity,
			AddedAt:       row.AddedAt,
		}, nil
	})
	if err != nil {
		return ci, fmt.Errorf("withTx: %w", err)
	}

	return item, nil
}

func (r *cartRepository) DeleteItem(ctx context.Context, userID, itemID uuid.UUID) (bool, error) {
	cmdTag, err := r.q.DeleteCartItem(ctx, db.DeleteCartItemParams{
		ID:     itemID,
		UserID: userID,
	})
	if err != nil {
		return false, fmt.Errorf("q.DeleteCartItem: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}

func mapGetCartRowToDomain(row db.GetCartRow) domain.CartItem {
	return domain.CartItem{
		ID:            row.ID,
		ProductID:     row.ProductID,
		Quantity:      row.Quantity,
		ProductName:   row.Name,
		Price:         row.Price,
		StockQuantity: row.StockQuantity,
		ImageURL:      row.ImageUrl,
		AddedAt:       row.AddedAt,
	}
}
