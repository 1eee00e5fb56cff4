package domain

import "time"

// InteractionType distinguishes the two rewardable ad events.
type InteractionType string

const (
	InteractionView  InteractionType = "view"
	InteractionClick InteractionType = "click"
)

// Valid reports whether t is one of the known interaction types.
func (t InteractionType) Valid() bool {
	return t == InteractionView || t == InteractionClick
}

// Interaction is one record of a user viewing or clicking an ad from a
// given network origin. Records are append-only: they are written once
// when the interaction is accepted and never updated or deleted.
type Interaction struct {
	ID        string
	UserID    string
	AdID      string
	Type      InteractionType
	IPAddress string
	CreatedAt time.Time
}

// Eligible reports whether a new interaction may be recorded for a
// (user, ad, ip) triple, given the triple's full prior history regardless
// of type. A triple becomes terminal once it holds both a view and a
// click; until then an interaction of either type is accepted, including
// a repeat of a type already present.
func Eligible(prior []Interaction) bool {
	var hasViewed, hasClicked bool
	for _, it := range prior {
		switch it.Type {
		case InteractionView:
			hasViewed = true
		case InteractionClick:
			hasClicked = true
		}
	}
	return !(hasViewed && hasClicked)
}
