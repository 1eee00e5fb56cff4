package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"log/slog"

	"adreward/internal/auth"
	"adreward/internal/core/domain"
	"adreward/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: it holds the usecases, the token manager for the auth middleware,
// the rate limiter guarding the auth endpoints, and a logger for
// structured logging. Routes are registered on a chi.Router.
type Handler struct {
	rewards port.RewardUseCase
	ads     port.AdUseCase
	users   port.UserUseCase
	tokens  *auth.TokenManager
	limiter *RateLimiter
	logger  *slog.Logger
	router  chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(
	rewards port.RewardUseCase,
	ads port.AdUseCase,
	users port.UserUseCase,
	tokens *auth.TokenManager,
	limiter *RateLimiter,
	logger *slog.Logger,
) *Handler {
	h := &Handler{
		rewards: rewards,
		ads:     ads,
		users:   users,
		tokens:  tokens,
		limiter: limiter,
		logger:  logger,
	}
	r := chi.NewRouter()

	r.Get("/healthz", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", h.handleRegister)
			r.With(h.rateLimit).Post("/login", h.handleLogin)
			r.With(h.rateLimit).Post("/refresh", h.handleRefresh)
			r.With(h.rateLimit, h.authenticate).Post("/logout", h.handleLogout)
			r.With(h.authenticate, h.requireRole(domain.RoleAdmin)).Get("/", h.handleListUsers)
			r.With(h.authenticate).Get("/wallet-balance", h.handleWalletBalance)
			r.With(h.authenticate).Get("/transactions", h.handleTransactions)
		})
		r.Route("/ads", func(r chi.Router) {
			r.With(h.authenticate, h.requireRole(domain.RoleAdmin)).Post("/", h.handleCreateAd)
			r.With(h.authenticate).Get("/", h.handleListAds)
			r.With(h.authenticate).Get("/mine", h.handleMyAds)
			r.Get("/{id}", h.handleAdByID)
		})
		r.With(h.authenticate).Post("/interactions", h.handleInteraction)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
