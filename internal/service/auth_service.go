package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/nikolayk812/shopcore/internal/domain"
	"github.com/nikolayk812/shopcore/internal/port"
)

type TokenIssuer interface {
	Issue(user domain.User) (string, error)
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(hashed, plain string) (bool, error)
}

type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName *string
	LastName  *string
	Role      string
}

func (in RegisterInput) Validate() error {
	if strings.TrimSpace(in.Username) == "" || strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return errors.New("username, email, and password are required")
	}
	if !strings.Contains(in.Email, "@") {
		return errors.New("email is not valid")
	}
	return nil
}

type AuthService struct {
	users     port.UserRepository
	tokens    TokenIssuer
	passwords PasswordHasher
}

func NewAuthService(users port.UserRepository, tokens TokenIssuer, passwords PasswordHasher) *AuthService {
	return &AuthService{
		users:     users,
		tokens:    tokens,
		passwords: passwords,
	}
}

// Register creates a user, role defaults to buyer.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	if err := in.Validate(); err != nil {
		return domain.User{}, err
	}

	role := domain.RoleBuyer
	if in.Role != "" {
		parsed, err := domain.ToRole(in.Role)
		if err != nil {
			return domain.User{}, fmt.Errorf("domain.ToRole[%s]: %w", in.Role, err)
		}
		role = parsed
	}

	hashed, err := s.passwords.Hash(in.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("passwords.Hash: %w", err)
	}

	user, err := s.users.InsertUser(ctx, domain.User{
		Username:     strings.TrimSpace(in.Username),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: hashed,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         role,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("users.InsertUser: %w", err)
	}

	return user, nil
}

// Login returns a signed token. Unknown login and wrong password are indistinguishable.
func (s *AuthService) Login(ctx context.Context, emailOrUsername, password string) (string, domain.User, error) {
	if emailOrUsername == "" || password == "" {
		return "", domain.User{}, domain.ErrInvalidCredentials
	}

	user, err := s.users.GetUserByLogin(ctx, emailOrUsername)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.User{}, domain.ErrInvalidCredentials
		}
		return "", domain.User{}, fmt.Errorf("users.GetUserByLogin: %w", err)
	}

	ok, err := s.passwords.Verify(user.PasswordHash, password)
	if err != nil {
		return "", domain.User{}, fmt.Errorf("passwords.Verify: %w", err)
	}
	if !ok {
		return "", domain.User{}, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", domain.User{}, fmt.Errorf("tokens.Issue: %w", err)
	}

	return token, user, nil
}

func (s *AuthService) Profile(ctx context.Context, userID uuid.UUID) (domain.User, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("users.GetUser: %w", err)
	}
	return user, nil
}
