package service_test

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/nikolayk812/shopcore/internal/domain"
	"golang.org/x/text/currency"
)

type fakeCheckout struct {
	order domain.Order
	err   error

	gotUnit currency.Unit
}

func (f *fakeCheckout) PlaceOrder(_ context.Context, userID uuid.UUID, unit currency.Unit) (domain.Order, error) {
	f.gotUnit = unit
	if f.err != nil {
		return domain.Order{}, f.err
	}
	order := f.order
	order.UserID = userID
	return order, nil
}

type fakeOrders struct {
	orders []domain.Order
	err    error

	gotFilter domain.OrderFilter
}

func (f *fakeOrders) GetUserOrder(_ context.Context, userID, orderID uuid.UUID) (domain.Order, error) {
	for _, o := range f.orders {
		if o.ID == orderID && o.UserID == userID {
			return o, nil
		}
	}
	return domain.Order{}, domain.ErrNotFound
}

func (f *fakeOrders) ListUserOrders(_ context.Context, userID uuid.UUID) ([]domain.Order, error) {
	var result []domain.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			result = append(result, o)
		}
	}
	return result, f.err
}

func (f *fakeOrders) SearchOrders(_ context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	f.gotFilter = filter
	return f.orders, f.err
}

func (f *fakeOrders) UpdateOrderStatus(_ context.Context, orderID uuid.UUID, status domain.OrderStatus) (domain.Order, error) {
	for i, o := range f.orders {
		if o.ID == orderID {
			f.orders[i].Status = status
			return f.orders[i], nil
		}
	}
	return domain.Order{}, domain.ErrNotFound
}

type fakePublisher struct {
	mu        sync.Mutex
	summaries []domain.OrderSummary
	err       error
}

func (f *fakePublisher) PublishOrderPlaced(_ context.Context, summary domain.OrderSummary) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.summaries = append(f.summaries, summary)
	return f.err
}

type fakeUsers struct {
	byID map[uuid.UUID]domain.User
	err  error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: map[uuid.UUID]domain.User{}}
}

func (f *fakeUsers) InsertUser(_ context.Context, user domain.User) (domain.User, error) {
	if f.err != nil {
		return domain.User{}, f.err
	}
	for _, u := range f.byID {
		if u.Email == user.Email || u.Username == user.Username {
			return domain.User{}, domain.ErrConflict
		}
	}
	user.ID = uuid.New()
	f.byID[user.ID] = user
	return user, nil
}

func (f *fakeUsers) GetUser(_ context.Context, userID uuid.UUID) (domain.User, error) {
	u, ok := f.byID[userID]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) GetUserByLogin(_ context.Context, login string) (domain.User, error) {
	if f.err != nil {
		return domain.User{}, f.err
	}
	for _, u := range f.byID {
		if u.Email == login || u.Username == login {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

type fakeProducts struct {
	products map[uuid.UUID]domain.Product
	deleted  []uuid.UUID
}

func (f *fakeProducts) ListProducts(context.Context, domain.ProductFilter) ([]domain.Product, error) {
	var result []domain.Product
	for _, p := range f.products {
		result = append(result, p)
	}
	return result, nil
}

func (f *fakeProducts) GetProduct(_ context.Context, productID uuid.UUID) (domain.Product, error) {
	p, ok := f.products[productID]
	if !ok {
		return domain.Product{}, domain.ErrNotFound
	}
	return p, nil
}

func (f *fakeProducts) GetProductSeller(_ context.Context, productID uuid.UUID) (uuid.UUID, error) {
	p, ok := f.products[productID]
	if !ok {
		return uuid.Nil, domain.ErrNotFound
	}
	return p.SellerID, nil
}

func (f *fakeProducts) InsertProduct(_ context.Context, product domain.Product) (domain.Product, error) {
	product.ID = uuid.New()
	f.products[product.ID] = product
	return product, nil
}

func (f *fakeProducts) UpdateProduct(_ context.Context, product domain.Product) (domain.Product, error) {
	existing := f.products[product.ID]
	product.SellerID = existing.SellerID
	f.products[product.ID] = product
	return product, nil
}

func (f *fakeProducts) DeleteProduct(_ context.Context, productID uuid.UUID) error {
	f.deleted = append(f.deleted, productID)
	delete(f.products, productID)
	return nil
}

type fakeCategories struct {
	categories []domain.Category
}

func (f *fakeCategories) ListCategories(context.Context) ([]domain.Category, error) {
	return f.categories, nil
}

func (f *fakeCategories) InsertCategory(_ context.Context, c domain.Category) (domain.Category, error) {
	c.ID = uuid.New()
	f.categories = append(f.categories, c)
	return c, nil
}
