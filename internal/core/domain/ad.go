package domain

import "time"

// Ad is an advertiser-registered ad. Prices are the reward paid out to a
// user per interaction, stored in integer minor units (e.g. cents).
type Ad struct {
	ID            string
	Title         string
	Description   string
	ImageURL      string
	RedirectURL   string
	PricePerView  int64
	PricePerClick int64
	CreatedBy     string
	CreatedAt     time.Time
}

// RewardFor returns the wallet credit for one interaction of the given type.
func (a *Ad) RewardFor(t InteractionType) int64 {
	if t == InteractionView {
		return a.PricePerView
	}
	return a.PricePerClick
}
