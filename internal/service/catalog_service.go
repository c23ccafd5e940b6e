package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/shopcore/internal/domain"
	"github.com/nikolayk812/shopcore/internal/port"
)

type CatalogService struct {
	products   port.ProductRepository
	categories port.CategoryRepository
}

func NewCatalogService(products port.ProductRepository, categories port.CategoryRepository) *CatalogService {
	return &CatalogService{
		products:   products,
		categories: categories,
	}
}

func (s *CatalogService) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	products, err := s.products.ListProducts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("products.ListProducts: %w", err)
	}
	return products, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, productID uuid.UUID) (domain.Product, error) {
	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return domain.Product{}, fmt.Errorf("products.GetProduct: %w", err)
	}
	return product, nil
}

// CreateProduct is allowed to sellers and admins, the actor becomes the seller.
func (s *CatalogService) CreateProduct(ctx context.Context, actor domain.User, product domain.Product) (domain.Product, error) {
	if actor.Role != domain.RoleSeller && actor.Role != domain.RoleAdmin {
		return domain.Product{}, domain.ErrForbidden
	}

	product.SellerID = actor.ID

	created, err := s.products.InsertProduct(ctx, product)
	if err != nil {
		return domain.Product{}, fmt.Errorf("products.InsertProduct: %w", err)
	}
	return created, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, actor domain.User, product domain.Product) (domain.Product, error) {
	if err := s.authorize(ctx, actor, product.ID); err != nil {
		return domain.Product{}, err
	}

	updated, err := s.products.UpdateProduct(ctx, product)
	if err != nil {
		return domain.Product{}, fmt.Errorf("products.UpdateProduct: %w", err)
	}
	return updated, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, actor domain.User, productID uuid.UUID) error {
	if err := s.authorize(ctx, actor, productID); err != nil {
		return err
	}

	if err := s.products.DeleteProduct(ctx, productID); err != nil {
		return fmt.Errorf("products.DeleteProduct: %w", err)
	}
	return nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("categories.ListCategories: %w", err)
	}
	return categories, nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, actor domain.User, category domain.Category) (domain.Category, error) {
	if actor.Role != domain.RoleAdmin {
		return domain.Category{}, domain.ErrForbidden
	}

	created, err := s.categories.InsertCategory(ctx, category)
	if err != nil {
		return domain.Category{}, fmt.Errorf("categories.InsertCategory: %w", err)
	}
	return created, nil
}

func (s *CatalogService) authorize(ctx context.Context, actor domain.User, productID uuid.UUID) error {
	sellerID, err := s.products.GetProductSeller(ctx, productID)
	if err != nil {
		return fmt.Errorf("products.GetProductSeller: %w", err)
	}

	if !actor.CanManage(sellerID) {
		return domain.ErrForbidden
	}
	return nil
}
