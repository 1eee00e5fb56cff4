package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"adreward/internal/core/domain"
	"adreward/internal/core/port"
)

// AdUseCase implements port.AdUseCase for the ad catalog.
type AdUseCase struct {
	ads   port.AdRepository
	users port.UserRepository
}

// NewAdUseCase creates a new usecase with the provided repositories.
func NewAdUseCase(ads port.AdRepository, users port.UserRepository) *AdUseCase {
	return &AdUseCase{ads: ads, users: users}
}

// Create registers a new ad. The creator must exist and hold the ADMIN
// role; the route guard already checks the role claim, this re-checks
// against the stored user.
func (u *AdUseCase) Create(ctx context.Context, in port.CreateAdInput) (*domain.Ad, error) {
	if in.Title == "" || in.Description == "" || in.ImageURL == "" || in.RedirectURL == "" ||
		in.PricePerView < 0 || in.PricePerClick < 0 {
		return nil, port.ErrInvalidInput
	}

	creator, err := u.users.GetByID(ctx, in.CreatedBy)
	if err != nil {
		return nil, err
	}
	if creator.Role != domain.RoleAdmin {
		return nil, port.ErrForbidden
	}

	ad := domain.Ad{
		ID:            uuid.NewString(),
		Title:         in.Title,
		Description:   in.Description,
		ImageURL:      in.ImageURL,
		RedirectURL:   in.RedirectURL,
		PricePerView:  in.PricePerView,
		PricePerClick: in.PricePerClick,
		CreatedBy:     creator.ID,
		CreatedAt:     time.Now().UTC(),
	}
	if err := u.ads.Create(ctx, ad); err != nil {
		return nil, err
	}
	return &ad, nil
}

func (u *AdUseCase) List(ctx context.Context) ([]domain.Ad, error) {
	return u.ads.List(ctx)
}

func (u *AdUseCase) ListByCreator(ctx context.Context, userID string) ([]domain.Ad, error) {
	return u.ads.ListByCreator(ctx, userID)
}

func (u *AdUseCase) GetByID(ctx context.Context, id string) (*domain.Ad, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, port.ErrInvalidInput
	}
	return u.ads.GetByID(ctx, id)
}
