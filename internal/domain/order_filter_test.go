package domain_test

import (
	"testing"
	"time"

	"github.com/nikolayk812/shopcore/internal/domain"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestOrderFilterValidate(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name      string
		filter    domain.OrderFilter
		wantError string
	}{
		{
			name:   "empty filter matches all: ok",
			filter: domain.OrderFilter{},
		},
		{
			name: "valid statuses: ok",
			filter: domain.OrderFilter{
				Statuses: []domain.OrderStatus{domain.OrderStatusPending, domain.OrderStatusShipped},
			},
		},
		{
			name: "unknown status: fail",
			filter: domain.OrderFilter{
				Statuses: []domain.OrderStatus{"lost"},
			},
			wantError: "status[lost]: invalid order status",
		},
		{
			name: "empty time range: fail",
			filter: domain.OrderFilter{
				CreatedAt: &domain.TimeRange{},
			},
			wantError: "createdAt: both Before and After are nil",
		},
		{
			name: "inverted time range: fail",
			filter: domain.OrderFilter{
				CreatedAt: &domain.TimeRange{
					Before: lo.ToPtr(now.Add(-time.Hour)),
					After:  lo.ToPtr(now),
				},
			},
			wantError: "createdAt: before is before After",
		},
		{
			name: "bounded time range: ok",
			filter: domain.OrderFilter{
				CreatedAt: &domain.TimeRange{
					Before: lo.ToPtr(now),
					After:  lo.ToPtr(now.Add(-time.Hour)),
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filter.Validate()
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
		})
	}
}
