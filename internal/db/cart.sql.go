package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

const getCart = `-- name: GetCart :many
SELECT ci.id, ci.product_id, ci.quantity, ci.added_at, p.name, p.price, p.image_url, p.stock_quantity
FROM cart_items ci
JOIN products p ON p.id = ci.product_id
WHERE ci.user_id = $1
ORDER BY ci.added_at DESC
`

type GetCartRow struct {
	ID            uuid.UUID
	ProductID     uuid.UUID
	Quantity      int
	AddedAt       time.Time
	Name          string
	Price         decimal.Decimal
	ImageUrl      *string
	StockQuantity int
}

func (q *Queries) GetCart(ctx context.Context, userID uuid.UUID) ([]GetCartRow, error) {
	rows, err := q.db.Query(ctx, getCart, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetCartRow
	for rows.Next() {
		var i GetCartRow
		if err := rows.Scan(
			&i.ID,
			&i.ProductID,
			&i.Quantity,
			&i.AddedAt,
			&i.Name,
			&i.Price,
			&i.ImageUrl,
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

// Capped reports that the requested quantity did not fit into the available stock.
const upsertCartItem = `-- name: UpsertCartItem :one
WITH prev AS (
    SELECT quantity FROM cart_items WHERE user_id = $1 AND product_id = $2
)
INSERT INTO cart_items (user_id, product_id, quantity)
VALUES ($1, $2, LEAST($3::int, $4::int))
ON CONFLICT (user_id, product_id) DO UPDATE
SET quantity = LEAST(cart_items.quantity + $3::int, $4::int), added_at = now()
RETURNING id, user_id, product_id, quantity, added_at,
    (COALESCE((SELECT quantity FROM prev), 0) + $3::int > $4::int) AS capped
`

type UpsertCartItemParams struct {
	UserID    uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	Available int
}

type UpsertCartItemRow struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	AddedAt   time.Time
	Capped    bool
}

func (q *Queries) UpsertCartItem(ctx context.Context, arg UpsertCartItemParams) (UpsertCartItemRow, error) {
	row := q.db.QueryRow(ctx, upsertCartItem,
		arg.UserID,
		arg.ProductID,
		arg.Quantity,
		arg.Available,
	)
	var i UpsertCartItemRow
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.ProductID,
		&i.Quantity,
		&i.AddedAt,
		&i.Capped,
	)
	return i, err
}

const getCartItemStock = `-- name: GetCartItemStock :one
SELECT ci.product_id, p.stock_quantity
FROM cart_items ci
JOIN products p ON p.id = ci.product_id
WHERE ci.id = $1 AND ci.user_id = $2
`

type GetCartItemStockParams struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

type GetCartItemStockRow struct {
	ProductID     uuid.UUID
	StockQuantity int
}

func (q *Queries) GetCartItemStock(ctx context.Context, arg GetCartItemStockParams) (GetCartItemStockRow, error) {
	row := q.db.QueryRow(ctx, getCartItemStock, arg.ID, arg.UserID)
	var i GetCartItemStockRow
	err := row.Scan(&i.ProductID, &i.StockQuantity)
	return i, err
}

const updateCartItemQuantity = `-- name: UpdateCartItemQuantity :one
UPDATE cart_items
SET quantity = $3
WHERE id = $1 AND user_id = $2
RETURNING id, user_id, product_id, quantity, added_at
`

type UpdateCartItemQuantityParams struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Quantity int
}

func (q *Queries) UpdateCartItemQuantity(ctx context.Context, arg UpdateCartItemQuantityParams) (CartItem, error) {
	row := q.db.QueryRow(ctx, updateCartItemQuantity, arg.ID, arg.UserID, arg.Quantity)
	var i CartItem
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.ProductID,
		&i.Quantity,
		&i.AddedAt,
	)
	return i, err
}

const deleteCartItem = `-- name: DeleteCartItem :execresult
DELETE FROM cart_items WHERE id = $1 AND user_id = $2
`

type DeleteCartItemParams struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

func (q *Queries) DeleteCartItem(ctx context.Context, arg DeleteCartItemParams) (pgconn.CommandTag, error) {
	return q.db.Exec(ctx, deleteCartItem, arg.ID, arg.UserID)
}
