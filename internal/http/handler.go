package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/nikolayk812/shopcore/internal/domain"
	"github.com/nikolayk812/shopcore/internal/port"
	"github.com/nikolayk812/shopcore/internal/service"
)

type AuthService interface {
	Register(ctx context.Context, in service.RegisterInput) (domain.User, error)
	Login(ctx context.Context, emailOrUsername, password string) (string, domain.User, error)
	Profile(ctx context.Context, userID uuid.UUID) (domain.User, error)
}

type CatalogService interface {
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	GetProduct(ctx context.Context, productID uuid.UUID) (domain.Product, error)
	CreateProduct(ctx context.Context, actor domain.User, product domain.Product) (domain.Product, error)
	UpdateProduct(ctx context.Context, actor domain.User, product domain.Product) (domain.Product, error)
	DeleteProduct(ctx context.Context, actor domain.User, productID uuid.UUID) error
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, actor domain.User, category domain.Category) (domain.Category, error)
}

type OrderService interface {
	PlaceOrder(ctx context.Context, userID uuid.UUID) (domain.OrderSummary, error)
	ListOrders(ctx context.Context, userID uuid.UUID) ([]domain.Order, error)
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (domain.Order, error)
	ListAllOrders(ctx context.Context, actor domain.User, filter domain.OrderFilter) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, actor domain.User, orderID uuid.UUID, status domain.OrderStatus) (domain.Order, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	auth    AuthService
	catalog CatalogService
	orders  OrderService
	cart    port.CartRepository
	db      Pinger
}

func NewHandler(
	authService AuthService,
	catalog CatalogService,
	orders OrderService,
	cart port.CartRepository,
	db Pinger,
) (*Handler, error) {
	if authService == nil {
		return nil, errors.New("auth service is nil")
	}
	if catalog == nil {
		return nil, errors.New("catalog service is nil")
	}
	if orders == nil {
		return nil, errors.New("order service is nil")
	}
	if cart == nil {
		return nil, errors.New("cart repository is nil")
	}
	if db == nil {
		return nil, errors.New("db pinger is nil")
	}

	return &Handler{
		auth:    authService,
		catalog: catalog,
		orders:  orders,
		cart:    cart,
		db:      db,
	}, nil
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) DBTest(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "database connected"})
}

// pathUUID parses a chi URL parameter, answering 400 when it is not a uuid.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(urlParam(r, name))
	if err != nil {
		writeError(w, http.StatusBadRequest, name+" is not a valid id")
		return uuid.Nil, false
	}
	return id, true
}

// mustIdentity is used behind authenticate, which always sets the identity.
func mustIdentity(w http.ResponseWriter, r *http.Request) (domain.User, bool) {
	identity, ok := identityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "access token required")
		return domain.User{}, false
	}
	return identity.User(), true
}
