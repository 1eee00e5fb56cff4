package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEligible(t *testing.T) {
	view := Interaction{Type: InteractionView}
	click := Interaction{Type: InteractionClick}

	cases := []struct {
		name  string
		prior []Interaction
		want  bool
	}{
		{"empty history", nil, true},
		{"only a view", []Interaction{view}, true},
		{"only a click", []Interaction{click}, true},
		{"repeated views", []Interaction{view, view, view}, true},
		{"repeated clicks", []Interaction{click, click}, true},
		{"view then click", []Interaction{view, click}, false},
		{"click then view", []Interaction{click, view}, false},
		{"terminal among repeats", []Interaction{view, view, click}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Eligible(tc.prior))
		})
	}
}

func TestInteractionTypeValid(t *testing.T) {
	assert.True(t, InteractionView.Valid())
	assert.True(t, InteractionClick.Valid())
	assert.False(t, InteractionType("hover").Valid())
	assert.False(t, InteractionType("").Valid())
}

func TestRewardFor(t *testing.T) {
	ad := Ad{PricePerView: 5, PricePerClick: 10}
	assert.Equal(t, int64(5), ad.RewardFor(InteractionView))
	assert.Equal(t, int64(10), ad.RewardFor(InteractionClick))
}
