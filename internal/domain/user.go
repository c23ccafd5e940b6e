package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

func ToRole(s string) (Role, error) {
	switch role := Role(s); role {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return role, nil
	}
	return "", errors.New("invalid role")
}

type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	FirstName    *string
	LastName     *string
	Role         Role

	CreatedAt time.Time
}

// CanManage reports whether the user may modify a product owned by sellerID.
func (u User) CanManage(sellerID uuid.UUID) bool {
	return u.Role == RoleAdmin || u.ID == sellerID
}
