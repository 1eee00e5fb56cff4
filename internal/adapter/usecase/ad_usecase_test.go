package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adreward/internal/core/domain"
	"adreward/internal/core/port"
)

func validAdInput(createdBy string) port.CreateAdInput {
	return port.CreateAdInput{
		Title:         "Autumn sale",
		Description:   "Half price on everything",
		ImageURL:      "https://example.com/banner.png",
		RedirectURL:   "https://example.com/sale",
		PricePerView:  5,
		PricePerClick: 10,
		CreatedBy:     createdBy,
	}
}

func TestCreateAdAsAdmin(t *testing.T) {
	ads := &mockAdRepo{}
	users := &mockUserRepo{}
	users.On("GetByID", mock.Anything, "admin-1").
		Return(&domain.User{ID: "admin-1", Role: domain.RoleAdmin}, nil)
	ads.On("Create", mock.Anything, mock.MatchedBy(func(ad domain.Ad) bool {
		return ad.ID != "" && ad.CreatedBy == "admin-1" && ad.PricePerView == 5
	})).Return(nil)

	u := NewAdUseCase(ads, users)
	ad, err := u.Create(context.Background(), validAdInput("admin-1"))
	require.NoError(t, err)
	assert.Equal(t, "Autumn sale", ad.Title)
	ads.AssertExpectations(t)
}

func TestCreateAdForbiddenForNonAdmin(t *testing.T) {
	ads := &mockAdRepo{}
	users := &mockUserRepo{}
	users.On("GetByID", mock.Anything, "user-1").
		Return(&domain.User{ID: "user-1", Role: domain.RoleUser}, nil)

	u := NewAdUseCase(ads, users)
	_, err := u.Create(context.Background(), validAdInput("user-1"))
	assert.ErrorIs(t, err, port.ErrForbidden)
	ads.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateAdValidatesFields(t *testing.T) {
	in := validAdInput("admin-1")
	in.Title = ""

	u := NewAdUseCase(&mockAdRepo{}, &mockUserRepo{})
	_, err := u.Create(context.Background(), in)
	assert.ErrorIs(t, err, port.ErrInvalidInput)
}

func TestCreateAdRejectsNegativePrices(t *testing.T) {
	in := validAdInput("admin-1")
	in.PricePerClick = -1

	u := NewAdUseCase(&mockAdRepo{}, &mockUserRepo{})
	_, err := u.Create(context.Background(), in)
	assert.ErrorIs(t, err, port.ErrInvalidInput)
}

func TestGetByIDRejectsMalformedID(t *testing.T) {
	u := NewAdUseCase(&mockAdRepo{}, &mockUserRepo{})
	_, err := u.GetByID(context.Background(), "42")
	assert.ErrorIs(t, err, port.ErrInvalidInput)
}

func TestGetByIDPassesThrough(t *testing.T) {
	ads := &mockAdRepo{}
	ads.On("GetByID", mock.Anything, testAdID).Return(testAd(), nil)

	u := NewAdUseCase(ads, &mockUserRepo{})
	ad, err := u.GetByID(context.Background(), testAdID)
	require.NoError(t, err)
	assert.Equal(t, testAdID, ad.ID)
}
