package configs

import "time"

// Auth configures the JWT token manager. Access and refresh tokens are
// signed with separate HMAC secrets so a refresh token can never pass as
// an access token. The defaults are development-only values.
type Auth struct {
	AccessSecret  string        `env:"ACCESS_SECRET" envDefault:"dev-access-secret"`
	RefreshSecret string        `env:"REFRESH_SECRET" envDefault:"dev-refresh-secret"`
	AccessTTL     time.Duration `env:"ACCESS_TTL" envDefault:"15m"`
	RefreshTTL    time.Duration `env:"REFRESH_TTL" envDefault:"168h"`
}
