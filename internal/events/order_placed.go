package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/shopcore/internal/domain"
	"github.com/samber/lo"
)

type OrderPlacedItem struct {
	ProductID       string `json:"productId"`
	Quantity        int    `json:"quantity"`
	PriceAtPurchase string `json:"priceAtPurchase"`
}

// OrderPlacedPayload keeps amounts as fixed two-decimal strings.
type OrderPlacedPayload struct {
	OrderID     string            `json:"orderId"`
	UserID      string            `json:"userId"`
	TotalAmount string            `json:"totalAmount"`
	Currency    string            `json:"currency"`
	Status      string            `json:"status"`
	Items       []OrderPlacedItem `json:"items"`
	PlacedAt    time.Time         `json:"placedAt"`
}

type OrderPlacedEnvelope = Envelope[OrderPlacedPayload]

func newOrderPlacedEnvelope(summary domain.OrderSummary, eventID uuid.UUID, now time.Time) OrderPlacedEnvelope {
	return OrderPlacedEnvelope{
		EventName:    orderPlacedEventName,
		EventVersion: orderPlacedEventVer,
		EventID:      eventID.String(),
		Producer:     producerName,
		PartitionKey: summary.UserID.String(),
		OccurredAt:   now.UTC(),
		Payload: OrderPlacedPayload{
			OrderID:     summary.OrderID.String(),
			UserID:      summary.UserID.String(),
			TotalAmount: summary.TotalAmount,
			Currency:    summary.Currency,
			Status:      string(summary.Status),
			Items: lo.Map(summary.Items, func(item domain.OrderSummaryItem, _ int) OrderPlacedItem {
				return OrderPlacedItem{
					ProductID:       item.ProductID.String(),
					Quantity:        item.Quantity,
					PriceAtPurchase: item.PriceAtPurchase,
				}
			}),
			PlacedAt: summary.CreatedAt.UTC(),
		},
	}
}
