package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/shopcore/internal/domain"
)

type UserRepository interface {
	InsertUser(ctx context.Context, user domain.User) (domain.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (domain.User, error)
	GetUserByLogin(ctx context.Context, emailOrUsername string) (domain.User, error)
}
