package port

import (
	"context"

	"github.com/nikolayk812/shopcore/internal/domain"
)

type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, summary domain.OrderSummary) error
}
