package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Total  Money
	Items  []OrderItem
	Status OrderStatus

	// Username is filled by admin listings only.
	Username string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderItem struct {
	ID              uuid.UUID
	ProductID       uuid.UUID
	Quantity        int
	PriceAtPurchase decimal.Decimal

	// read-side enrichment, never stored on the order line
	ProductName     string
	ProductImageURL *string
}

func (i OrderItem) LineTotal() decimal.Decimal {
	return LineTotal(i.PriceAtPurchase, i.Quantity)
}

// OrderSummary is the result of a successful checkout.
type OrderSummary struct {
	OrderID     uuid.UUID
	UserID      uuid.UUID
	TotalAmount string
	Currency    string
	Status      OrderStatus
	CreatedAt   time.Time
	Items       []OrderSummaryItem
}

type OrderSummaryItem struct {
	ProductID       uuid.UUID
	Quantity        int
	PriceAtPurchase string
}

func NewOrderSummary(o Order) OrderSummary {
	items := make([]OrderSummaryItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderSummaryItem{
			ProductID:       item.ProductID,
			Quantity:        item.Quantity,
			PriceAtPurchase: item.PriceAtPurchase.StringFixed(MoneyScale),
		})
	}

	return OrderSummary{
		OrderID:     o.ID,
		UserID:      o.UserID,
		TotalAmount: o.Total.String(),
		Currency:    o.Total.Currency.String(),
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
		Items:       items,
	}
}
