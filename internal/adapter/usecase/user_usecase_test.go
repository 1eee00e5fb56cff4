package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"adreward/internal/auth"
	"adreward/internal/config/configs"
	"adreward/internal/core/domain"
	"adreward/internal/core/port"
)

func testTokens() *auth.TokenManager {
	return auth.NewTokenManager(configs.Auth{
		AccessSecret:  "test-access",
		RefreshSecret: "test-refresh",
		AccessTTL:     time.Minute,
		RefreshTTL:    time.Hour,
	})
}

func TestRegisterHashesPassword(t *testing.T) {
	users := &mockUserRepo{}
	var created domain.User
	users.On("Create", mock.Anything, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) { created = args.Get(1).(domain.User) }).
		Return(nil)

	u := NewUserUseCase(users, testTokens())
	out, err := u.Register(context.Background(), port.RegisterInput{
		Name: "Alice", Email: "Alice@Example.com", Password: "s3cret",
	})
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", created.Email)
	assert.Equal(t, domain.RoleUser, created.Role)
	assert.True(t, created.Active)
	assert.Zero(t, created.WalletBalance)
	assert.NotEqual(t, "s3cret", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("s3cret")))
	assert.Equal(t, created.ID, out.ID)
}

func TestRegisterRequiresAllFields(t *testing.T) {
	u := NewUserUseCase(&mockUserRepo{}, testTokens())
	_, err := u.Register(context.Background(), port.RegisterInput{Name: "Bob"})
	assert.ErrorIs(t, err, port.ErrInvalidInput)
}

func loginUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.User{
		ID:           "4b2c6d8e-1a3f-45e7-9c0b-2d4f6a8c0e12",
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		Active:       true,
	}
}

func TestLoginIssuesAndStoresTokenPair(t *testing.T) {
	user := loginUser(t, "s3cret")
	users := &mockUserRepo{}
	users.On("GetByEmail", mock.Anything, "alice@example.com").Return(user, nil)
	users.On("StoreRefreshToken", mock.Anything, user.ID, mock.AnythingOfType("string")).Return(nil)

	tokens := testTokens()
	u := NewUserUseCase(users, tokens)
	res, err := u.Login(context.Background(), "alice@example.com", "s3cret")
	require.NoError(t, err)

	claims, err := tokens.ParseAccess(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.Subject)
	assert.Equal(t, domain.RoleUser, claims.Role)

	_, err = tokens.ParseRefresh(res.RefreshToken)
	require.NoError(t, err)
	users.AssertCalled(t, "StoreRefreshToken", mock.Anything, user.ID, res.RefreshToken)
}

func TestLoginWrongPassword(t *testing.T) {
	users := &mockUserRepo{}
	users.On("GetByEmail", mock.Anything, "alice@example.com").Return(loginUser(t, "s3cret"), nil)

	u := NewUserUseCase(users, testTokens())
	_, err := u.Login(context.Background(), "alice@example.com", "wrong")
	assert.ErrorIs(t, err, port.ErrInvalidCredentials)
}

func TestLoginUnknownEmailIndistinguishable(t *testing.T) {
	users := &mockUserRepo{}
	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, port.ErrNotFound)

	u := NewUserUseCase(users, testTokens())
	_, err := u.Login(context.Background(), "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, port.ErrInvalidCredentials)
}

func TestRefreshRotatesPair(t *testing.T) {
	tokens := testTokens()
	user := loginUser(t, "s3cret")
	stored, err := tokens.NewRefreshToken(user.ID, user.Role)
	require.NoError(t, err)
	user.RefreshToken = stored

	users := &mockUserRepo{}
	users.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	users.On("StoreRefreshToken", mock.Anything, user.ID, mock.AnythingOfType("string")).Return(nil)

	u := NewUserUseCase(users, tokens)
	res, err := u.Refresh(context.Background(), stored)
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	users.AssertCalled(t, "StoreRefreshToken", mock.Anything, user.ID, res.RefreshToken)
}

func TestRefreshRejectsStaleToken(t *testing.T) {
	tokens := testTokens()
	user := loginUser(t, "s3cret")
	stale, err := tokens.NewRefreshToken(user.ID, user.Role)
	require.NoError(t, err)
	// the stored token moved on; the presented one no longer matches
	user.RefreshToken = "rotated-away"

	users := &mockUserRepo{}
	users.On("GetByID", mock.Anything, user.ID).Return(user, nil)

	u := NewUserUseCase(users, tokens)
	_, err = u.Refresh(context.Background(), stale)
	assert.ErrorIs(t, err, port.ErrInvalidCredentials)
}

func TestLogoutClearsRefreshToken(t *testing.T) {
	users := &mockUserRepo{}
	users.On("StoreRefreshToken", mock.Anything, "u1", "").Return(nil)

	u := NewUserUseCase(users, testTokens())
	require.NoError(t, u.Logout(context.Background(), "u1"))
	users.AssertExpectations(t)
}

func TestWalletBalance(t *testing.T) {
	users := &mockUserRepo{}
	users.On("GetByID", mock.Anything, "u1").
		Return(&domain.User{ID: "u1", Name: "Alice", WalletBalance: 42}, nil)

	u := NewUserUseCase(users, testTokens())
	res, err := u.WalletBalance(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", res.Name)
	assert.Equal(t, int64(42), res.WalletBalance)
}

func TestTransactionsClampsLimit(t *testing.T) {
	users := &mockUserRepo{}
	users.On("ListTransactions", mock.Anything, "u1", 50).
		Return([]domain.WalletTransaction{}, nil)

	u := NewUserUseCase(users, testTokens())
	_, err := u.Transactions(context.Background(), "u1", -3)
	require.NoError(t, err)
	users.AssertExpectations(t)
}
