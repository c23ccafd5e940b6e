package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

const productColumns = `p.id, p.seller_id, p.category_id, p.name, p.description, p.price, p.stock_quantity,
    p.image_url, p.created_at, p.updated_at, c.name, u.username`

const listProducts = `-- name: ListProducts :many
SELECT ` + productColumns + `
FROM products p
LEFT JOIN categories c ON c.id = p.category_id
LEFT JOIN users u ON u.id = p.seller_id
WHERE ($1::text IS NULL OR lower(p.name) LIKE '%%' || lower($1::text) || '%%' OR lower(p.description) LIKE '%%' || lower($1::text) || '%%')
  AND ($2::text IS NULL OR lower(c.name) = lower($2::text))
  AND ($3::numeric IS NULL OR p.price >= $3::numeric)
  AND ($4::numeric IS NULL OR p.price <= $4::numeric)
ORDER BY %s %s, p.id
`

// sortable columns accepted by ListProducts, anything else falls back to created_at.
var productSortColumns = map[string]string{
	"created_at": "p.created_at",
	"name":       "p.name",
	"price":      "p.price",
}

type ListProductsParams struct {
	Search    *string
	Category  *string
	MinPrice  *decimal.Decimal
	MaxPrice  *decimal.Decimal
	SortBy    string
	Ascending bool
}

type ProductRow struct {
	ID             uuid.UUID
	SellerID       uuid.UUID
	CategoryID     *uuid.UUID
	Name           string
	Description    string
	Price          decimal.Decimal
	StockQuantity  int
	ImageUrl       *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	CategoryName   *string
	SellerUsername *string
}

func listProductsQuery(sortBy string, ascending bool) string {
	column, ok := productSortColumns[sortBy]
	if !ok {
		column = productSortColumns["created_at"]
	}
	direction := "DESC"
	if ascending {
		direction = "ASC"
	}
	return fmt.Sprintf(listProducts, column, direction)
}

func (q *Queries) ListProducts(ctx context.Context, arg ListProductsParams) ([]ProductRow, error) {
	rows, err := q.db.Query(ctx, listProductsQuery(arg.SortBy, arg.Ascending),
		arg.Search,
		arg.Category,
		arg.MinPrice,
		arg.MaxPrice,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ProductRow
	for rows.Next() {
		var i ProductRow
		if err := scanProductRow(rows, &i); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProductRow(row scanner, i *ProductRow) error {
	return row.Scan(
		&i.ID,
		&i.SellerID,
		&i.CategoryID,
		&i.Name,
		&i.Description,
		&i.Price,
		&i.StockQuantity,
		&i.ImageUrl,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.CategoryName,
		&i.SellerUsername,
	)
}

const getProduct = `-- name: GetProduct :one
SELECT ` + productColumns + `
FROM products p
LEFT JOIN categories c ON c.id = p.category_id
LEFT JOIN users u ON u.id = p.seller_id
WHERE p.id = $1
`

func (q *Queries) GetProduct(ctx context.Context, id uuid.UUID) (ProductRow, error) {
	row := q.db.QueryRow(ctx, getProduct, id)
	var i ProductRow
	err := scanProductRow(row, &i)
	return i, err
}

const getProductStock = `-- name: GetProductStock :one
SELECT stock_quantity FROM products WHERE id = $1
`

func (q *Queries) GetProductStock(ctx context.Context, id uuid.UUID) (int, error) {
	row := q.db.QueryRow(ctx, getProductStock, id)
	var stockQuantity int
	err := row.Scan(&stockQuantity)
	return stockQuantity, err
}

const getProductSeller = `-- name: GetProductSeller :one
SELECT seller_id FROM products WHERE id = $1
`

func (q *Queries) GetProductSeller(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	row := q.db.QueryRow(ctx, getProductSeller, id)
	var sellerID uuid.UUID
	err := row.Scan(&sellerID)
	return sellerID, err
}

const insertProduct = `-- name: InsertProduct :one
INSERT INTO products (seller_id, category_id, name, description, price, stock_quantity, image_url)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, seller_id, category_id, name, description, price, stock_quantity, image_url, created_at, updated_at
`

type InsertProductParams struct {
	SellerID      uuid.UUID
	CategoryID    *uuid.UUID
	Name          string
	Description   string
	Price         decimal.Decimal
	StockQuantity int
	ImageUrl      *string
}

func (q *Queries) InsertProduct(ctx context.Context, arg InsertProductParams) (Product, error) {
	row := q.db.QueryRow(ctx, insertProduct,
		arg.SellerID,
		arg.CategoryID,
		arg.Name,
		arg.Description,
		arg.Price,
		arg.StockQuantity,
		arg.ImageUrl,
	)
	var i Product
	err := row.Scan(
		&i.ID,
		&i.SellerID,
		&i.CategoryID,
		&i.Name,
		&i.Description,
		&i.Price,
		&i.StockQuantity,
		&i.ImageUrl,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateProduct = `-- name: UpdateProduct :one
UPDATE products
SET category_id = $2, name = $3, description = $4, price = $5, stock_quantity = $6, image_url = $7,
    updated_at = now()
WHERE id = $1
RETURNING id, seller_id, category_id, name, description, price, stock_quantity, image_url, created_at, updated_at
`

type UpdateProductParams struct {
	ID            uuid.UUID
	CategoryID    *uuid.UUID
	Name          string
	Description   string
	Price         decimal.Decimal
	StockQuantity int
	ImageUrl      *string
}

func (q *Queries) UpdateProduct(ctx context.Context, arg UpdateProductParams) (Product, error) {
	row := q.db.QueryRow(ctx, updateProduct,
		arg.ID,
		arg.CategoryID,
		arg.Name,
		arg.Description,
		arg.Price,
		arg.StockQuantity,
		arg.ImageUrl,
	)
	var i Product
	err := row.Scan(
		&i.ID,
		&i.SellerID,
		&i.CategoryID,
		&i.Name,
		&i.Description,
		&i.Price,
		&i.StockQuantity,
		&i.ImageUrl,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const deleteProduct = `-- name: DeleteProduct :execresult
DELETE FROM products WHERE id = $1
`

func (q *Queries) DeleteProduct(ctx context.Context, id uuid.UUID) (pgconn.CommandTag, error) {
	return q.db.Exec(ctx, deleteProduct, id)
}
