package repository_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/shopcore/internal/domain"
	"github.com/nikolayk812/shopcore/internal/repository"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"golang.org/x/text/currency"
)

type catalogRepositorySuite struct {
	suite.Suite

	pool      *pgxpool.Pool
	container testcontainers.Container
}

// entry point to run the tests in the suite
func TestCatalogRepositorySuite(t *testing.T) {
	suite.Run(t, new(catalogRepositorySuite))
}

// before all tests in the suite
func (suite *catalogRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	var (
		connStr string
		err     error
	)

	suite.container, connStr, err = startPostgres(ctx)
	suite.Require().NoError(err)

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.Require().NoError(err)
}

// after all tests in the suite
func (suite *catalogRepositorySuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
	if suite.container != nil {
		suite.NoError(suite.container.Terminate(suite.T().Context()))
	}
}

func (suite *catalogRepositorySuite) TearDownTest() {
	suite.NoError(truncateAll(suite.T().Context(), suite.pool))
}

func (suite *catalogRepositorySuite) TestListProducts() {
	t := suite.T()
	ctx := t.Context()
	s := seeder{t: t, pool: suite.pool}

	categories := repository.NewCategory(suite.pool)
	books, err := categories.InsertCategory(ctx, domain.Category{Name: "Books"})
	require.NoError(t, err)

	seller := s.user(domain.RoleSeller)
	products := repository.NewProduct(suite.pool)

	insert := func(name, description, price string, categoryID *uuid.UUID) domain.Product {
		p := randomProduct(seller.ID)
		p.Name = name
		p.Description = description
		p.Price = decimal.RequireFromString(price)
		p.CategoryID = categoryID
		inserted, err := products.InsertProduct(ctx, p)
		require.NoError(t, err)
		return inserted
	}

	novel := insert("Blue Novel", "a long story", "15.00", &books.ID)
	lamp := insert("Desk Lamp", "bright blue light", "40.00", nil)
	mug := insert("Mug", "ceramic", "8.00", nil)

	tests := []struct {
		name    string
		filter  domain.ProductFilter
		wantIDs []uuid.UUID
	}{
		{
			name:    "no filter: newest first",
			filter:  domain.ProductFilter{},
			wantIDs: []uuid.UUID{mug.ID, lamp.ID, novel.ID},
		},
		{
			name:    "search name or description, case insensitive",
			filter:  domain.ProductFilter{Search: "BLUE", SortBy: domain.ProductSortName, Ascending: true},
			wantIDs: []uuid.UUID{novel.ID, lamp.ID},
		},
		{
			name:    "category by name",
			filter:  domain.ProductFilter{Category: "books"},
			wantIDs: []uuid.UUID{novel.ID},
		},
		{
			name: "price range sorted by price ascending",
			filter: domain.ProductFilter{
				MinPrice:  lo.ToPtr(decimal.RequireFromString("8.00")),
				MaxPrice:  lo.ToPtr(decimal.RequireFromString("15.00")),
				SortBy:    domain.ProductSortPrice,
				Ascending: true,
			},
			wantIDs: []uuid.UUID{mug.ID, novel.ID},
		},
		{
			name:    "sorted by price descending",
			filter:  domain.ProductFilter{SortBy: domain.ProductSortPrice},
			wantIDs: []uuid.UUID{lamp.ID, novel.ID, mug.ID},
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()

			actual, err := products.ListProducts(t.Context(), tt.filter)
			require.NoError(t, err)

			assert.Equal(t, tt.wantIDs, lo.Map(actual, func(p domain.Product, _ int) uuid.UUID { return p.ID }))
		})
	}

	got, err := products.GetProduct(ctx, novel.ID)
	require.NoError(t, err)
	assert.Equal(t, "Books", lo.FromPtr(got.CategoryName))
	assert.Equal(t, seller.Username, lo.FromPtr(got.SellerUsername))
}

func (suite *catalogRepositorySuite) TestProductLifecycle() {
	t := suite.T()
	ctx := t.Context()
	s := seeder{t: t, pool: suite.pool}

	products := repository.NewProduct(suite.pool)
	seller := s.user(domain.RoleSeller)

	_, err := products.GetProduct(ctx, uuid.New())
	require.EqualError(t, err, "q.GetProduct: not found")

	invalid := randomProduct(seller.ID)
	invalid.Price = decimal.Zero
	_, err = products.InsertProduct(ctx, invalid)
	require.EqualError(t, err, "product.Validate: price must be a positive number")

	badCategory := randomProduct(seller.ID)
	badCategory.CategoryID = lo.ToPtr(uuid.New())
	_, err = products.InsertProduct(ctx, badCategory)
	require.ErrorIs(t, err, repository.ErrInvalidCategory)

	product := s.product(seller.ID, "9.99", 3)

	sellerID, err := products.GetProductSeller(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, seller.ID, sellerID)

	product.Name = "Renamed"
	updated, err := products.UpdateProduct(ctx, product)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)

	missing := product
	missing.ID = uuid.New()
	_, err = products.UpdateProduct(ctx, missing)
	require.EqualError(t, err, "q.UpdateProduct: not found")

	// referenced by an order line: cannot delete
	buyer := s.user(domain.RoleBuyer)
	s.cartLine(buyer.ID, product.ID, 1)
	_, err = repository.NewCheckout(suite.pool).PlaceOrder(ctx, buyer.ID, currency.USD)
	require.NoError(t, err)

	err = products.DeleteProduct(ctx, product.ID)
	require.ErrorIs(t, err, domain.ErrConflict)

	other := s.product(seller.ID, "1.00", 1)
	require.NoError(t, products.DeleteProduct(ctx, other.ID))

	err = products.DeleteProduct(ctx, other.ID)
	require.EqualError(t, err, "q.DeleteProduct: not found")
}

func (suite *catalogRepositorySuite) TestCategories() {
	t := suite.T()
	ctx := t.Context()

	categories := repository.NewCategory(suite.pool)

	_, err := categories.InsertCategory(ctx, domain.Category{Name: "Toys", Description: lo.ToPtr("for kids")})
	require.NoError(t, err)
	_, err = categories.InsertCategory(ctx, domain.Category{Name: "Garden"})
	require.NoError(t, err)

	_, err = categories.InsertCategory(ctx, domain.Category{Name: "Toys"})
	require.ErrorIs(t, err, domain.ErrConflict)

	_, err = categories.InsertCategory(ctx, domain.Category{Name: " "})
	require.EqualError(t, err, "category name is required")

	list, err := categories.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Garden", "Toys"}, lo.Map(list, func(c domain.Category, _ int) string { return c.Name }))
}

func (suite *catalogRepositorySuite) TestUsers() {
	t := suite.T()
	ctx := t.Context()

	users := repository.NewUser(suite.pool)

	user, err := users.InsertUser(ctx, randomUser(domain.RoleSeller))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)

	duplicate := randomUser(domain.RoleBuyer)
	duplicate.Email = user.Email
	_, err = users.InsertUser(ctx, duplicate)
	require.ErrorIs(t, err, domain.ErrConflict)

	byEmail, err := users.GetUserByLogin(ctx, user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byUsername, err := users.GetUserByLogin(ctx, user.Username)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleSeller, byUsername.Role)

	byID, err := users.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, byID.Email)

	_, err = users.GetUser(ctx, uuid.New())
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = users.GetUserByLogin(ctx, "nobody")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
