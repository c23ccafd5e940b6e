package repository_test

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/shopcore/internal/domain"
	"github.com/nikolayk812/shopcore/internal/repository"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

// seeder creates rows through the repositories under test.
type seeder struct {
	t    *testing.T
	pool *pgxpool.Pool
}

func (s seeder) user(role domain.Role) domain.User {
	s.t.Helper()

	user, err := repository.NewUser(s.pool).InsertUser(s.t.Context(), randomUser(role))
	require.NoError(s.t, err)

	return user
}

func (s seeder) product(sellerID uuid.UUID, price string, stock int) domain.Product {
	s.t.Helper()

	p := randomProduct(sellerID)
	p.Price = decimal.RequireFromString(price)
	p.StockQuantity = stock

	product, err := repository.NewProduct(s.pool).InsertProduct(s.t.Context(), p)
	require.NoError(s.t, err)

	return product
}

func (s seeder) cartLine(userID, productID uuid.UUID, quantity int) domain.CartItem {
	s.t.Helper()

	item, capped, err := repository.NewCart(s.pool).AddItem(s.t.Context(), userID, productID, quantity)
	require.NoError(s.t, err)
	require.False(s.t, capped)

	return item
}

func (s seeder) setStock(productID uuid.UUID, stock int) {
	s.t.Helper()

	_, err := s.pool.Exec(s.t.Context(), "UPDATE products SET stock_quantity = $2 WHERE id = $1", productID, stock)
	require.NoError(s.t, err)
}

func (s seeder) stock(productID uuid.UUID) int {
	s.t.Helper()

	var stock int
	err := s.pool.QueryRow(s.t.Context(), "SELECT stock_quantity FROM products WHERE id = $1", productID).Scan(&stock)
	require.NoError(s.t, err)

	return stock
}

func (s seeder) count(table string) int {
	s.t.Helper()

	var n int
	err := s.pool.QueryRow(s.t.Context(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(s.t, err)

	return n
}

func truncateAll(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, "TRUNCATE TABLE order_items, orders, cart_items, products, categories, users CASCADE")
	return err
}

func randomUser(role domain.Role) domain.User {
	return domain.User{
		Username:     gofakeit.Username() + gofakeit.DigitN(6),
		Email:        gofakeit.DigitN(6) + gofakeit.Email(),
		PasswordHash: gofakeit.Password(true, true, true, false, false, 20),
		FirstName:    lo.ToPtr(gofakeit.FirstName()),
		LastName:     lo.ToPtr(gofakeit.LastName()),
		Role:         role,
	}
}

func randomProduct(sellerID uuid.UUID) domain.Product {
	return domain.Product{
		SellerID:      sellerID,
		Name:          gofakeit.ProductName(),
		Description:   gofakeit.ProductDescription(),
		Price:         decimal.NewFromFloat(gofakeit.Price(1, 100)).Round(2),
		StockQuantity: gofakeit.Number(1, 50),
		ImageURL:      lo.ToPtr(gofakeit.URL()),
	}
}

func assertOrder(t *testing.T, expected, actual domain.Order) {
	t.Helper()

	comparer := cmp.Comparer(func(x, y currency.Unit) bool {
		return x.String() == y.String()
	})

	decimalComparer := cmp.Comparer(func(x, y decimal.Decimal) bool {
		return x.Equal(y)
	})

	opts := cmp.Options{
		cmpopts.IgnoreFields(domain.Order{}, "ID", "CreatedAt", "UpdatedAt", "Username"),
		cmpopts.IgnoreFields(domain.OrderItem{}, "ID", "ProductName", "ProductImageURL"),
		cmpopts.SortSlices(func(a, b domain.OrderItem) bool {
			return a.ProductID.String() < b.ProductID.String()
		}),
		cmpopts.EquateEmpty(),
	}

	diff := cmp.Diff(expected, actual, comparer, decimalComparer, opts)
	assert.Empty(t, diff)
}
