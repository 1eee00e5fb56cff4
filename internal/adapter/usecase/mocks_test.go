package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"adreward/internal/core/domain"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, u domain.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if us := args.Get(0); us != nil {
		return us.([]domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) StoreRefreshToken(ctx context.Context, userID, token string) error {
	return m.Called(ctx, userID, token).Error(0)
}

func (m *mockUserRepo) ListTransactions(ctx context.Context, userID string, limit int) ([]domain.WalletTransaction, error) {
	args := m.Called(ctx, userID, limit)
	if ts := args.Get(0); ts != nil {
		return ts.([]domain.WalletTransaction), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockAdRepo struct{ mock.Mock }

func (m *mockAdRepo) Create(ctx context.Context, ad domain.Ad) error {
	return m.Called(ctx, ad).Error(0)
}

func (m *mockAdRepo) GetByID(ctx context.Context, id string) (*domain.Ad, error) {
	args := m.Called(ctx, id)
	if ad := args.Get(0); ad != nil {
		return ad.(*domain.Ad), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAdRepo) List(ctx context.Context) ([]domain.Ad, error) {
	args := m.Called(ctx)
	if ads := args.Get(0); ads != nil {
		return ads.([]domain.Ad), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAdRepo) ListByCreator(ctx context.Context, userID string) ([]domain.Ad, error) {
	args := m.Called(ctx, userID)
	if ads := args.Get(0); ads != nil {
		return ads.([]domain.Ad), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockInteractionRepo struct{ mock.Mock }

func (m *mockInteractionRepo) ListByTriple(ctx context.Context, userID, adID, ipAddress string) ([]domain.Interaction, error) {
	args := m.Called(ctx, userID, adID, ipAddress)
	if its := args.Get(0); its != nil {
		return its.([]domain.Interaction), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInteractionRepo) CreditAndRecord(ctx context.Context, rec domain.Interaction, reward int64) error {
	return m.Called(ctx, rec, reward).Error(0)
}
