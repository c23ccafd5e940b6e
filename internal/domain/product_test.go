package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/nikolayk812/shopcore/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductValidate(t *testing.T) {
	valid := domain.Product{
		Name:          "Lamp",
		Description:   "Desk lamp",
		Price:         decimal.RequireFromString("12.50"),
		StockQuantity: 3,
	}

	tests := []struct {
		name      string
		mutate    func(p *domain.Product)
		wantError string
	}{
		{name: "valid product: ok", mutate: func(*domain.Product) {}},
		{name: "zero stock: ok", mutate: func(p *domain.Product) { p.StockQuantity = 0 }},
		{name: "blank name: fail", mutate: func(p *domain.Product) { p.Name = " " }, wantError: "name and description are required"},
		{name: "zero price: fail", mutate: func(p *domain.Product) { p.Price = decimal.Zero }, wantError: "price must be a positive number"},
		{name: "negative stock: fail", mutate: func(p *domain.Product) { p.StockQuantity = -1 }, wantError: "stock quantity must be a non-negative integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)

			err := p.Validate()
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestToProductSort(t *testing.T) {
	sort, ok := domain.ToProductSort("PRICE")
	assert.True(t, ok)
	assert.Equal(t, domain.ProductSortPrice, sort)

	_, ok = domain.ToProductSort("stock_quantity")
	assert.False(t, ok)
}

func TestUserCanManage(t *testing.T) {
	sellerID := uuid.New()

	assert.True(t, domain.User{ID: sellerID, Role: domain.RoleSeller}.CanManage(sellerID))
	assert.False(t, domain.User{ID: uuid.New(), Role: domain.RoleSeller}.CanManage(sellerID))
	assert.True(t, domain.User{ID: uuid.New(), Role: domain.RoleAdmin}.CanManage(sellerID))
}

func TestInsufficientStockError(t *testing.T) {
	productID := uuid.MustParse("6f1c1d6e-4b8f-4a57-9d55-0b1b2f0f7a11")
	err := &domain.InsufficientStockError{ProductID: productID, Requested: 2, Available: 1}

	assert.EqualError(t, err, "insufficient stock for product 6f1c1d6e-4b8f-4a57-9d55-0b1b2f0f7a11: requested 2, available 1")
}
