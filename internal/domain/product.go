package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uuid.UUID
	SellerID    uuid.UUID
	CategoryID  *uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal

	StockQuantity int
	ImageURL      *string

	// read-side joins
	CategoryName   *string
	SellerUsername *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Description) == "" {
		return errors.New("name and description are required")
	}

	if !p.Price.IsPositive() {
		return errors.New("price must be a positive number")
	}

	if p.StockQuantity < 0 {
		return errors.New("stock quantity must be a non-negative integer")
	}

	return nil
}

type ProductSort string

const (
	ProductSortCreatedAt ProductSort = "created_at"
	ProductSortName      ProductSort = "name"
	ProductSortPrice     ProductSort = "price"
)

func ToProductSort(s string) (ProductSort, bool) {
	switch sort := ProductSort(strings.ToLower(s)); sort {
	case ProductSortCreatedAt, ProductSortName, ProductSortPrice:
		return sort, true
	}
	return "", false
}

type ProductFilter struct {
	Search   string
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal

	SortBy    ProductSort
	Ascending bool
}
