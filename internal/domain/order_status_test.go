package domain_test

import (
	"testing"

	"github.com/nikolayk812/shopcore/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToOrderStatus(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      domain.OrderStatus
		wantError string
	}{
		{name: "pending: ok", input: "pending", want: domain.OrderStatusPending},
		{name: "processing: ok", input: "processing", want: domain.OrderStatusProcessing},
		{name: "shipped: ok", input: "shipped", want: domain.OrderStatusShipped},
		{name: "delivered: ok", input: "delivered", want: domain.OrderStatusDelivered},
		{name: "cancelled: ok", input: "cancelled", want: domain.OrderStatusCancelled},
		{name: "upper case: fail", input: "PENDING", wantError: "invalid order status"},
		{name: "empty: fail", input: "", wantError: "invalid order status"},
		{name: "unknown: fail", input: "refunded", wantError: "invalid order status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ToOrderStatus(tt.input)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrderStatuses(t *testing.T) {
	assert.ElementsMatch(t, []domain.OrderStatus{
		domain.OrderStatusPending,
		domain.OrderStatusProcessing,
		domain.OrderStatusShipped,
		domain.OrderStatusDelivered,
		domain.OrderStatusCancelled,
	}, domain.OrderStatuses())
}
