package port

import (
	"context"

	"adreward/internal/core/domain"
)

// RewardUseCase is the primary port into the reward engine.
type RewardUseCase interface {
	// RecordInteraction validates the candidate interaction, enforces the
	// one-view-plus-one-click eligibility rule for its (user, ad, ip)
	// triple, computes the reward from the ad's prices and atomically
	// credits the user's wallet while persisting the record, returning the
	// credited amount. On failure nothing is persisted and no balance
	// changes.
	RecordInteraction(ctx context.Context, in RecordInteractionInput) (int64, error)
}

// RecordInteractionInput carries the candidate interaction. UserID and
// IPAddress come from the authenticated request, AdID and Type from the
// request payload.
type RecordInteractionInput struct {
	UserID    string
	AdID      string
	Type      domain.InteractionType
	IPAddress string
}

// AdUseCase exposes the ad catalog operations.
type AdUseCase interface {
	// Create registers a new ad. Only admins may create ads; ErrForbidden
	// is returned otherwise.
	Create(ctx context.Context, in CreateAdInput) (*domain.Ad, error)
	List(ctx context.Context) ([]domain.Ad, error)
	ListByCreator(ctx context.Context, userID string) ([]domain.Ad, error)
	GetByID(ctx context.Context, id string) (*domain.Ad, error)
}

type CreateAdInput struct {
	Title         string
	Description   string
	ImageURL      string
	RedirectURL   string
	PricePerView  int64
	PricePerClick int64
	CreatedBy     string
}

// UserUseCase exposes registration, token flows and wallet queries.
type UserUseCase interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Login verifies the credentials and issues a fresh token pair, storing
	// the refresh token on the user row.
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// Refresh rotates the token pair. The presented refresh token must be
	// valid and match the one stored for the user.
	Refresh(ctx context.Context, refreshToken string) (*AuthResult, error)
	Logout(ctx context.Context, userID string) error
	WalletBalance(ctx context.Context, userID string) (*WalletBalance, error)
	Transactions(ctx context.Context, userID string, limit int) ([]domain.WalletTransaction, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// AuthResult is returned by Login and Refresh.
type AuthResult struct {
	AccessToken  string
	RefreshToken string
	User         *domain.User
}

// WalletBalance is the wallet query result: the balance plus the user's
// display name, mirroring what the balance endpoint returns.
type WalletBalance struct {
	Name          string
	WalletBalance int64
}
