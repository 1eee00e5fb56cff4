package port

import (
	"context"

	"adreward/internal/core/domain"
)

// UserRepository is the outbound port for the user ledger. Implementations
// must return ErrNotFound for unknown ids/emails and ErrEmailTaken when a
// create collides with an existing email.
type UserRepository interface {
	Create(ctx context.Context, u domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	// StoreRefreshToken persists the user's current refresh token; an empty
	// token clears it.
	StoreRefreshToken(ctx context.Context, userID, token string) error
	// ListTransactions returns the user's wallet ledger, newest first.
	ListTransactions(ctx context.Context, userID string, limit int) ([]domain.WalletTransaction, error)
}

// AdRepository is the outbound port for the ad catalog.
type AdRepository interface {
	Create(ctx context.Context, ad domain.Ad) error
	GetByID(ctx context.Context, id string) (*domain.Ad, error)
	List(ctx context.Context) ([]domain.Ad, error)
	ListByCreator(ctx context.Context, userID string) ([]domain.Ad, error)
}

// InteractionRepository owns the append-only interaction record store and
// the wallet credit transaction. Implementations must be concurrency-safe.
type InteractionRepository interface {
	// ListByTriple returns every interaction recorded for the exact
	// (user, ad, ip) combination, regardless of type.
	ListByTriple(ctx context.Context, userID, adID, ipAddress string) ([]domain.Interaction, error)
	// CreditAndRecord applies reward to the user's wallet balance, inserts
	// the interaction record and appends a ledger row as one atomic unit.
	// It serializes racing requests for the user, re-checks eligibility for
	// the record's triple under that serialization, and returns
	// ErrAlreadyInteracted when the triple turned terminal in the meantime.
	// Either every write commits or none does.
	CreditAndRecord(ctx context.Context, rec domain.Interaction, reward int64) error
}
