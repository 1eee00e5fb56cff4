package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"adreward/internal/core/domain"
	"adreward/internal/core/port"
)

// RewardUseCase implements port.RewardUseCase: the engine that records a
// user-ad-IP interaction, enforces the one-view-plus-one-click eligibility
// rule and atomically credits the user's wallet.
type RewardUseCase struct {
	ads          port.AdRepository
	interactions port.InteractionRepository
}

// NewRewardUseCase creates a new usecase with the provided repositories.
func NewRewardUseCase(ads port.AdRepository, interactions port.InteractionRepository) *RewardUseCase {
	return &RewardUseCase{ads: ads, interactions: interactions}
}

// RecordInteraction runs the single linear flow: validate, check
// eligibility against the triple's history, resolve the reward from the
// ad, then hand the credit and the record to the repository as one
// transactional unit. It returns the credited amount. Any failure aborts
// the whole operation with no partial effects; nothing is retried here.
func (u *RewardUseCase) RecordInteraction(ctx context.Context, in port.RecordInteractionInput) (int64, error) {
	if in.UserID == "" || in.AdID == "" || in.IPAddress == "" || !in.Type.Valid() {
		return 0, port.ErrInvalidInput
	}
	// A malformed ad id is a caller error, not an unknown ad.
	if _, err := uuid.Parse(in.AdID); err != nil {
		return 0, port.ErrInvalidInput
	}

	prior, err := u.interactions.ListByTriple(ctx, in.UserID, in.AdID, in.IPAddress)
	if err != nil {
		return 0, err
	}
	if !domain.Eligible(prior) {
		return 0, port.ErrAlreadyInteracted
	}

	ad, err := u.ads.GetByID(ctx, in.AdID)
	if err != nil {
		return 0, err
	}
	reward := ad.RewardFor(in.Type)

	rec := domain.Interaction{
		ID:        uuid.NewString(),
		UserID:    in.UserID,
		AdID:      in.AdID,
		Type:      in.Type,
		IPAddress: in.IPAddress,
		CreatedAt: time.Now().UTC(),
	}
	// The repository re-checks eligibility under the user-row lock; the
	// check above is only the unlocked fast path.
	if err := u.interactions.CreditAndRecord(ctx, rec, reward); err != nil {
		return 0, err
	}
	return reward, nil
}
