package httpapi

import (
	"time"

	"github.com/nikolayk812/shopcore/internal/domain"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName *string   `json:"firstName,omitempty"`
	LastName  *string   `json:"lastName,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

type productResponse struct {
	ID             string    `json:"id"`
	SellerID       string    `json:"sellerId"`
	SellerUsername *string   `json:"sellerUsername,omitempty"`
	CategoryID     *string   `json:"categoryId"`
	CategoryName   *string   `json:"categoryName,omitempty"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Price          string    `json:"price"`
	StockQuantity  int       `json:"stockQuantity"`
	ImageURL       *string   `json:"imageUrl"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func toProductResponse(p domain.Product) productResponse {
	var categoryID *string
	if p.CategoryID != nil {
		categoryID = lo.ToPtr(p.CategoryID.String())
	}

	return productResponse{
		ID:             p.ID.String(),
		SellerID:       p.SellerID.String(),
		SellerUsername: p.SellerUsername,
		CategoryID:     categoryID,
		CategoryName:   p.CategoryName,
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price.StringFixed(domain.MoneyScale),
		StockQuantity:  p.StockQuantity,
		ImageURL:       p.ImageURL,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

type categoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toCategoryResponse(c domain.Category) categoryResponse {
	return categoryResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}

type cartItemResponse struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"productId"`
	Quantity      int       `json:"quantity"`
	Name          string    `json:"name,omitempty"`
	Price         string    `json:"price,omitempty"`
	StockQuantity int       `json:"stockQuantity"`
	ImageURL      *string   `json:"imageUrl,omitempty"`
	AddedAt       time.Time `json:"addedAt"`
}

func toCartItemResponse(i domain.CartItem) cartItemResponse {
	var price string
	if !i.Price.IsZero() {
		price = i.Price.StringFixed(domain.MoneyScale)
	}

	return cartItemResponse{
		ID:            i.ID.String(),
		ProductID:     i.ProductID.String(),
		Quantity:      i.Quantity,
		Name:          i.ProductName,
		Price:         price,
		StockQuantity: i.StockQuantity,
		ImageURL:      i.ImageURL,
		AddedAt:       i.AddedAt,
	}
}

type cartResponse struct {
	Items []cartItemResponse `json:"items"`
	Total string             `json:"total"`
}

func toCartResponse(c domain.Cart) cartResponse {
	total := domain.SumLines(c.Items, func(i domain.CartItem) decimal.Decimal {
		return domain.LineTotal(i.Price, i.Quantity)
	})

	return cartResponse{
		Items: lo.Map(c.Items, func(i domain.CartItem, _ int) cartItemResponse {
			return toCartItemResponse(i)
		}),
		Total: total.StringFixed(domain.MoneyScale),
	}
}

type orderItemResponse struct {
	ID              string  `json:"id,omitempty"`
	ProductID       string  `json:"productId"`
	ProductName     string  `json:"productName,omitempty"`
	ProductImageURL *string `json:"productImageUrl,omitempty"`
	Quantity        int     `json:"quantity"`
	PriceAtPurchase string  `json:"priceAtPurchase"`
}

type orderResponse struct {
	ID          string              `json:"id"`
	UserID      string              `json:"userId"`
	Username    string              `json:"username,omitempty"`
	TotalAmount string              `json:"totalAmount"`
	Currency    string              `json:"currency"`
	Status      string              `json:"status"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
	Items       []orderItemResponse `json:"items"`
}

func toOrderResponse(o domain.Order) orderResponse {
	return orderResponse{
		ID:          o.ID.String(),
		UserID:      o.UserID.String(),
		Username:    o.Username,
		TotalAmount: o.Total.String(),
		Currency:    o.Total.Currency.String(),
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
		Items: lo.Map(o.Items, func(i domain.OrderItem, _ int) orderItemResponse {
			return orderItemResponse{
				ID:              i.ID.String(),
				ProductID:       i.ProductID.String(),
				ProductName:     i.ProductName,
				ProductImageURL: i.ProductImageURL,
				Quantity:        i.Quantity,
				PriceAtPurchase: i.PriceAtPurchase.StringFixed(domain.MoneyScale),
			}
		}),
	}
}

// orderSummaryResponse is the body of a successful checkout.
type orderSummaryResponse struct {
	OrderID     string              `json:"orderId"`
	UserID      string              `json:"userId"`
	TotalAmount string              `json:"totalAmount"`
	Currency    string              `json:"currency"`
	Status      string              `json:"status"`
	CreatedAt   time.Time           `json:"createdAt"`
	Items       []orderItemResponse `json:"items"`
}

func toOrderSummaryResponse(s domain.OrderSummary) orderSummaryResponse {
	return orderSummaryResponse{
		OrderID:     s.OrderID.String(),
		UserID:      s.UserID.String(),
		TotalAmount: s.TotalAmount,
		Currency:    s.Currency,
		Status:      string(s.Status),
		CreatedAt:   s.CreatedAt,
		Items: lo.Map(s.Items, func(i domain.OrderSummaryItem, _ int) orderItemResponse {
			return orderItemResponse{
				ProductID:       i.ProductID.String(),
				Quantity:        i.Quantity,
				PriceAtPurchase: i.PriceAtPurchase,
			}
		}),
	}
}
