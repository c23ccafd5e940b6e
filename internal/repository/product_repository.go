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

// ErrInvalidCategory is returned when a product references an unknown category.
var ErrInvalidCategory = errors.New("invalid category id")

type productRepository struct {
	q *db.Queries
}

func NewProduct(pool Pool) port.ProductRepository {
	return &productRepository{
		q: db.New(pool),
	}
}

func (r *productRepository) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	rows, err := r.q.ListProducts(ctx, db.ListProductsParams{
		Search:    nilIfEmpty(filter.Search),
		Category:  nilIfEmpty(filter.Category),
		MinPrice:  filter.MinPrice,
		MaxPrice:  filter.MaxPrice,
		SortBy:    string(filter.SortBy),
		Ascending: filter.Ascending,
	})
	if err != nil {
		return nil, fmt.Errorf("q.ListProducts: %w", err)
	}

	return lo.Map(rows, func(row db.ProductRow, _ int) domain.Product { return mapProductRowToDomain(row) }), nil
}

func (r *productRepository) GetProduct(ctx context.Context, productID uuid.UUID) (domain.Product, error) {
	row, err := r.q.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, fmt.Errorf("q.GetProduct: %w", domain.ErrNotFound)
		}
		return domain.Product{}, fmt.Errorf("q.GetProduct: %w", err)
	}

	return mapProductRowToDomain(row), nil
}

func (r *productRepository) GetProductSeller(ctx context.Context, productID uuid.UUID) (uuid.UUID, error) {
	sellerID, err := r.q.GetProductSeller(ctx, productID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, fmt.Errorf("q.GetProductSeller: %w", domain.ErrNotFound)
		}
		return uuid.Nil, fmt.Errorf("q.GetProductSeller: %w", err)
	}

	return sellerID, nil
}

func (r *productRepository) InsertProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	if err := product.Validate(); err != nil {
		return domain.Product{}, fmt.Errorf("product.Validate: %w", err)
	}

	dbProduct, err := r.q.InsertProduct(ctx, db.InsertProductParams{
		SellerID:      product.SellerID,
		CategoryID:    product.CategoryID,
		Name:          product.Name,
		Description:   product.Description,
		Price:         product.Price,
		StockQuantity: product.StockQuantity,
		ImageUrl:      product.ImageURL,
	})
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return domain.Product{}, fmt.Errorf("q.InsertProduct: %w", ErrInvalidCategory)
		}
		return domain.Product{}, fmt.Errorf("q.InsertProduct: %w", err)
	}

	return mapDBProductToDomain(dbProduct), nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	if err := product.Validate(); err != nil {
		return domain.Product{}, fmt.Errorf("product.Validate: %w", err)
	}

	dbProduct, err := r.q.UpdateProduct(ctx, db.UpdateProductParams{
		ID:            product.ID,
		CategoryID:    product.CategoryID,
		Name:          product.Name,
		Description:   product.Description,
		Price:         product.Price,
		StockQuantity: product.StockQuantity,
		ImageUrl:      product.ImageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return domain.Product{}, fmt.Errorf("q.UpdateProduct: %w", domain.ErrNotFound)
		case isPgError(err, pgForeignKeyViolation):
			return domain.Product{}, fmt.Errorf("q.UpdateProduct: %w", ErrInvalidCategory)
		}
		return domain.Product{}, fmt.Errorf("q.UpdateProduct: %w", err)
	}

	return mapDBProductToDomain(dbProduct), nil
}

// DeleteProduct fails with domain.ErrConflict while order lines still reference the product.
func (r *productRepository) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	cmdTag, err := r.q.DeleteProduct(ctx, productID)
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return fmt.Errorf("q.DeleteProduct: product is referenced by orders: %w", domain.ErrConflict)
		}
		return fmt.Errorf("q.DeleteProduct: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("q.DeleteProduct: %w", domain.ErrNotFound)
	}

	return nil
}

func mapProductRowToDomain(row db.ProductRow) domain.Product {
	return domain.Product{
		ID:             row.ID,
		SellerID:       row.SellerID,
		CategoryID:     row.CategoryID,
		Name:           row.Name,
		Description:    row.Description,
		Price:          row.Price,
		StockQuantity:  row.StockQuantity,
		ImageURL:       row.ImageUrl,
		CategoryName:   row.CategoryName,
		SellerUsername: row.SellerUsername,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

func mapDBProductToDomain(p db.Product) domain.Product {
	return domain.Product{
		ID:            p.ID,
		SellerID:      p.SellerID,
		CategoryID:    p.CategoryID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		ImageURL:      p.ImageUrl,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
