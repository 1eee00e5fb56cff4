package domain

import "time"

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User is an end user of the platform. WalletBalance is a non-negative
// accumulator in integer minor units; it only ever grows through the
// reward engine's crediting step.
type User struct {
	ID            string
	Name          string
	Email         string
	PasswordHash  string
	Role          string
	Active        bool
	WalletBalance int64
	RefreshToken  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
