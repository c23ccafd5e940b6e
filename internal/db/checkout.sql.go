package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// Rows come back in product id order, which is also the order the product locks are taken in.
const lockCartForCheckout = `-- name: LockCartForCheckout :many
SELECT ci.id, ci.product_id, ci.quantity, p.price, p.stock_quantity
FROM cart_items ci
JOIN products p ON p.id = ci.product_id
WHERE ci.user_id = $1
ORDER BY p.id
FOR UPDATE OF p
`

type LockCartForCheckoutRow struct {
	ID            uuid.UUID
	ProductID     uuid.UUID
	Quantity      int
	Price         decimal.Decimal
	StockQuantity int
}

func (q *Queries) LockCartForCheckout(ctx context.Context, userID uuid.UUID) ([]LockCartForCheckoutRow, error) {
	rows, err := q.db.Query(ctx, lockCartForCheckout, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []LockCartForCheckoutRow
	for rows.Next() {
		var i LockCartForCheckoutRow
		if err := rows.Scan(
			&i.ID,
			&i.ProductID,
			&i.Quantity,
			&i.Price,
			&i.StockQuantity,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const insertOrder = `-- name: InsertOrder :one
INSERT INTO orders (user_id, total_amount, currency, status)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at, updated_at
`

type InsertOrderParams struct {
	UserID      uuid.UUID
	TotalAmount decimal.Decimal
	Currency    string
	Status      string
}

type InsertOrderRow struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (q *Queries) InsertOrder(ctx context.Context, arg InsertOrderParams) (InsertOrderRow, error) {
	row := q.db.QueryRow(ctx, insertOrder,
		arg.UserID,
		arg.TotalAmount,
		arg.Currency,
		arg.Status,
	)
	var i InsertOrderRow
	err := row.Scan(&i.ID, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const insertOrderItem = `-- name: InsertOrderItem :one
INSERT INTO order_items (order_id, product_id, quantity, price_at_purchase)
VALUES ($1, $2, $3, $4)
RETURNING id
`

type InsertOrderItemParams struct {
	OrderID         uuid.UUID
	ProductID       uuid.UUID
	Quantity        int
	PriceAtPurchase decimal.Decimal
}

func (q *Queries) InsertOrderItem(ctx context.Context, arg InsertOrderItemParams) (uuid.UUID, error) {
	row := q.db.QueryRow(ctx, insertOrderItem,
		arg.OrderID,
		arg.ProductID,
		arg.Quantity,
		arg.PriceAtPurchase,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const decrementStock = `-- name: DecrementStock :execresult
UPDATE products
SET stock_quantity = stock_quantity - $2, updated_at = now()
WHERE id = $1 AND stock_quantity >= $2
`

type DecrementStockParams struct {
	ProductID uuid.UUID
	Quantity  int
}

func (q *Queries) DecrementStock(ctx context.Context, arg DecrementStockParams) (pgconn.CommandTag, error) {
	return q.db.Exec(ctx, decrementStock, arg.ProductID, arg.Quantity)
}

const clearCart = `-- name: ClearCart :execresult
DELETE FROM cart_items WHERE user_id = $1
`

func (q *Queries) ClearCart(ctx context.Context, userID uuid.UUID) (pgconn.CommandTag, error) {
	return q.db.Exec(ctx, clearCart, userID)
}
