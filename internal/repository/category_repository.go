package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nikolayk812/shopcore/internal/db"
	"github.com/nikolayk812/shopcore/internal/domain"
	"github.com/nikolayk812/shopcore/internal/port"
	"github.com/samber/lo"
)

type categoryRepository struct {
	q *db.Queries
}

func NewCategory(pool Pool) port.CategoryRepository {
	return &categoryRepository{
		q: db.New(pool),
	}
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	dbCategories, err := r.q.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListCategories: %w", err)
	}

	return lo.Map(dbCategories, func(c db.Category, _ int) domain.Category { return mapDBCategoryToDomain(c) }), nil
}

func (r *categoryRepository) InsertCategory(ctx context.Context, category domain.Category) (domain.Category, error) {
	if strings.TrimSpace(category.Name) == "" {
		return domain.Category{}, errors.New("category name is required")
	}

	dbCategory, err := r.q.InsertCategory(ctx, db.InsertCategoryParams{
		Name:        category.Name,
		Description: category.Description,
	})
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return domain.Category{}, fmt.Errorf("q.InsertCategory: category: %w", domain.ErrConflict)
		}
		return domain.Category{}, fmt.Errorf("q.InsertCategory: %w", err)
	}

	return mapDBCategoryToDomain(dbCategory), nil
}

func mapDBCategoryToDomain(c db.Category) domain.Category {
	return domain.Category{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}
