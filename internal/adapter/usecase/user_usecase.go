package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"adreward/internal/auth"
	"adreward/internal/core/domain"
	"adreward/internal/core/port"
)

const bcryptCost = 12

// UserUseCase implements port.UserUseCase: registration, the JWT token
// flows and wallet queries.
type UserUseCase struct {
	users  port.UserRepository
	tokens *auth.TokenManager
}

// NewUserUseCase creates a new usecase with the provided repository and
// token manager.
func NewUserUseCase(users port.UserRepository, tokens *auth.TokenManager) *UserUseCase {
	return &UserUseCase{users: users, tokens: tokens}
}

func (u *UserUseCase) Register(ctx context.Context, in port.RegisterInput) (*domain.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, port.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login verifies the credentials and issues a fresh token pair. An unknown
// email and a wrong password are indistinguishable to the caller.
func (u *UserUseCase) Login(ctx context.Context, email, password string) (*port.AuthResult, error) {
	if email == "" || password == "" {
		return nil, port.ErrInvalidInput
	}

	user, err := u.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, port.ErrNotFound) {
		return nil, port.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, port.ErrInvalidCredentials
	}

	return u.issuePair(ctx, user)
}

// Refresh rotates the token pair. The presented token must verify against
// the refresh secret and match the token stored for the user, so a stolen
// pair is invalidated by the next legitimate refresh.
func (u *UserUseCase) Refresh(ctx context.Context, refreshToken string) (*port.AuthResult, error) {
	if refreshToken == "" {
		return nil, port.ErrInvalidInput
	}

	claims, err := u.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return nil, port.ErrInvalidCredentials
	}
	user, err := u.users.GetByID(ctx, claims.Subject)
	if errors.Is(err, port.ErrNotFound) {
		return nil, port.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if user.RefreshToken == "" || user.RefreshToken != refreshToken {
		return nil, port.ErrInvalidCredentials
	}

	return u.issuePair(ctx, user)
}

func (u *UserUseCase) issuePair(ctx context.Context, user *domain.User) (*port.AuthResult, error) {
	access, err := u.tokens.NewAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	refresh, err := u.tokens.NewRefreshToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	if err := u.users.StoreRefreshToken(ctx, user.ID, refresh); err != nil {
		return nil, err
	}
	user.RefreshToken = refresh
	return &port.AuthResult{AccessToken: access, RefreshToken: refresh, User: user}, nil
}

func (u *UserUseCase) Logout(ctx context.Context, userID string) error {
	return u.users.StoreRefreshToken(ctx, userID, "")
}

func (u *UserUseCase) WalletBalance(ctx context.Context, userID string) (*port.WalletBalance, error) {
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &port.WalletBalance{Name: user.Name, WalletBalance: user.WalletBalance}, nil
}

func (u *UserUseCase) Transactions(ctx context.Context, userID string, limit int) ([]domain.WalletTransaction, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return u.users.ListTransactions(ctx, userID, limit)
}

func (u *UserUseCase) ListUsers(ctx context.Context) ([]domain.User, error) {
	return u.users.List(ctx)
}
