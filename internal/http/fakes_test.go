package httpapi_test

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/nikolayk812/shopcore/internal/domain"
	"github.com/nikolayk812/shopcore/internal/service"
)

type fakeAuth struct {
	user  domain.User
	token string
	err   error

	gotRegister service.RegisterInput
}

func (f *fakeAuth) Register(_ context.Context, in service.RegisterInput) (domain.User, error) {
	f.gotRegister = in
	if f.err != nil {
		return domain.User{}, f.err
	}
	return f.user, nil
}

func (f *fakeAuth) Login(_ context.Context, _, _ string) (string, domain.User, error) {
	if f.err != nil {
		return "", domain.User{}, f.err
	}
	return f.token, f.user, nil
}

func (f *fakeAuth) Profile(_ context.Context, userID uuid.UUID) (domain.User, error) {
	if f.user.ID != userID {
		return domain.User{}, domain.ErrNotFound
	}
	return f.user, nil
}

type fakeCatalog struct {
	products   []domain.Product
	categories []domain.Category
	err        error

	gotFilter  domain.ProductFilter
	gotProduct domain.Product
	gotActor   domain.User
}

func (f *fakeCatalog) ListProducts(_ context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	f.gotFilter = filter
	return f.products, f.err
}

func (f *fakeCatalog) GetProduct(_ context.Context, productID uuid.UUID) (domain.Product, error) {
	for _, p := range f.products {
		if p.ID == productID {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrNotFound
}

func (f *fakeCatalog) CreateProduct(_ context.Context, actor domain.User, product domain.Product) (domain.Product, error) {
	f.gotActor = actor
	f.gotProduct = product
	if f.err != nil {
		return domain.Product{}, f.err
	}
	product.ID = uuid.New()
	product.SellerID = actor.ID
	return product, nil
}

func (f *fakeCatalog) UpdateProduct(_ context.Context, actor domain.User, product domain.Product) (domain.Product, error) {
	f.gotActor = actor
	f.gotProduct = product
	return product, f.err
}

func (f *fakeCatalog) DeleteProduct(_ context.Context, actor domain.User, _ uuid.UUID) error {
	f.gotActor = actor
	return f.err
}

func (f *fakeCatalog) ListCategories(_ context.Context) ([]domain.Category, error) {
	return f.categories, f.err
}

func (f *fakeCatalog) CreateCategory(_ context.Context, actor domain.User, category domain.Category) (domain.Category, error) {
	f.gotActor = actor
	if actor.Role != domain.RoleAdmin {
		return domain.Category{}, domain.ErrForbidden
	}
	category.ID = uuid.New()
	return category, f.err
}

type fakeOrders struct {
	summary domain.OrderSummary
	orders  []domain.Order
	err     error

	gotFilter domain.OrderFilter
	gotStatus domain.OrderStatus
}

func (f *fakeOrders) PlaceOrder(_ context.Context, userID uuid.UUID) (domain.OrderSummary, error) {
	if f.err != nil {
		return domain.OrderSummary{}, f.err
	}
	summary := f.summary
	summary.UserID = userID
	return summary, nil
}

func (f *fakeOrders) ListOrders(_ context.Context, _ uuid.UUID) ([]domain.Order, error) {
	return f.orders, f.err
}

func (f *fakeOrders) GetOrder(_ context.Context, userID, orderID uuid.UUID) (domain.Order, error) {
	for _, o := range f.orders {
		if o.ID == orderID && o.UserID == userID {
			return o, nil
		}
	}
	return domain.Order{}, domain.ErrNotFound
}

func (f *fakeOrders) ListAllOrders(_ context.Context, actor domain.User, filter domain.OrderFilter) ([]domain.Order, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	f.gotFilter = filter
	return f.orders, f.err
}

func (f *fakeOrders) UpdateOrderStatus(_ context.Context, actor domain.User, orderID uuid.UUID, status domain.OrderStatus) (domain.Order, error) {
	if actor.Role != domain.RoleAdmin {
		return domain.Order{}, domain.ErrForbidden
	}
	f.gotStatus = status
	for _, o := range f.orders {
		if o.ID == orderID {
			o.Status = status
			return o, nil
		}
	}
	return domain.Order{}, domain.ErrNotFound
}

type fakeCart struct {
	cart   domain.Cart
	item   domain.CartItem
	capped bool
	found  bool
	err    error

	gotQuantity int
}

func (f *fakeCart) GetCart(_ context.Context, userID uuid.UUID) (domain.Cart, error) {
	cart := f.cart
	cart.UserID = userID
	return cart, f.err
}

func (f *fakeCart) AddItem(_ context.Context, _, productID uuid.UUID, quantity int) (domain.CartItem, bool, error) {
	f.gotQuantity = quantity
	if f.err != nil {
		return domain.CartItem{}, false, f.err
	}
	item := f.item
	item.ProductID = productID
	return item, f.capped, nil
}

func (f *fakeCart) UpdateItemQuantity(_ context.Context, _, itemID uuid.UUID, quantity int) (domain.CartItem, error) {
	f.gotQuantity = quantity
	if f.err != nil {
		return domain.CartItem{}, f.err
	}
	item := f.item
	item.ID = itemID
	item.Quantity = quantity
	return item, nil
}

func (f *fakeCart) DeleteItem(_ context.Context, _, _ uuid.UUID) (bool, error) {
	return f.found, f.err
}

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(context.Context) error {
	return f.err
}

var errBoom = errors.New("connection refused")
