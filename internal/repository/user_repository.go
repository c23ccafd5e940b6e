package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nikolayk812/shopcore/internal/db"
	"github.com/nikolayk812/shopcore/internal/domain"
	"github.com/nikolayk812/shopcore/internal/port"
)

type userRepository struct {
	q *db.Queries
}

func NewUser(pool Pool) port.UserRepository {
	return &userRepository{
		q: db.New(pool),
	}
}

// InsertUser returns domain.ErrConflict when the username or email is taken.
func (r *userRepository) InsertUser(ctx context.Context, user domain.User) (domain.User, error) {
	dbUser, err := r.q.InsertUser(ctx, db.InsertUserParams{
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Role:         string(user.Role),
	})
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return domain.User{}, fmt.Errorf("q.InsertUser: username or email: %w", domain.ErrConflict)
		}
		return domain.User{}, fmt.Errorf("q.InsertUser: %w", err)
	}

	return mapDBUserToDomain(dbUser)
}

func (r *userRepository) GetUser(ctx context.Context, userID uuid.UUID) (domain.User, error) {
	dbUser, err := r.q.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, fmt.Errorf("q.GetUser: %w", domain.ErrNotFound)
		}
		return domain.User{}, fmt.Errorf("q.GetUser: %w", err)
	}

	return mapDBUserToDomain(dbUser)
}

func (r *userRepository) GetUserByLogin(ctx context.Context, emailOrUsername string) (domain.User, error) {
	dbUser, err := r.q.GetUserByLogin(ctx, emailOrUsername)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, fmt.Errorf("q.GetUserByLogin: %w", domain.ErrNotFound)
		}
		return domain.User{}, fmt.Errorf("q.GetUserByLogin: %w", err)
	}

	return mapDBUserToDomain(dbUser)
}

func mapDBUserToDomain(u db.User) (domain.User, error) {
	role, err := domain.ToRole(u.Role)
	if err != nil {
		return domain.User{}, fmt.Errorf("domain.ToRole[%s]: %w", u.Role, err)
	}

	return domain.User{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Role:         role,
		CreatedAt:    u.CreatedAt,
	}, nil
}
