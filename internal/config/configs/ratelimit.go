package configs

import "time"

// RateLimit configures the sliding-window limiter applied to the auth
// endpoints. Requests beyond Limit within Window from a single client IP
// are rejected with 429.
type RateLimit struct {
	Limit  int           `env:"LIMIT" envDefault:"100"`
	Window time.Duration `env:"WINDOW" envDefault:"15m"`
}
