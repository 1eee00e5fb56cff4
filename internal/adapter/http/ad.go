package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"adreward/internal/core/domain"
	"adreward/internal/core/port"
)

type createAdRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	ImageURL      string `json:"imageUrl"`
	RedirectURL   string `json:"redirectUrl"`
	PricePerView  int64  `json:"pricePerView"`
	PricePerClick int64  `json:"pricePerClick"`
}

type adResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	ImageURL      string    `json:"imageUrl"`
	RedirectURL   string    `json:"redirectUrl"`
	PricePerView  int64     `json:"pricePerView"`
	PricePerClick int64     `json:"pricePerClick"`
	CreatedBy     string    `json:"createdBy"`
	CreatedAt     time.Time `json:"createdAt"`
}

func toAdResponse(ad *domain.Ad) adResponse {
	return adResponse{
		ID:            ad.ID,
		Title:         ad.Title,
		Description:   ad.Description,
		ImageURL:      ad.ImageURL,
		RedirectURL:   ad.RedirectURL,
		PricePerView:  ad.PricePerView,
		PricePerClick: ad.PricePerClick,
		CreatedBy:     ad.CreatedBy,
		CreatedAt:     ad.CreatedAt,
	}
}

func toAdResponses(ads []domain.Ad) []adResponse {
	out := make([]adResponse, 0, len(ads))
	for i := range ads {
		out = append(out, toAdResponse(&ads[i]))
	}
	return out
}

// handleCreateAd registers a new ad. The route is guarded by the ADMIN
// role; the usecase re-checks against the stored user.
func (h *Handler) handleCreateAd(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	if claims == nil {
		writeMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req createAdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	ad, err := h.ads.Create(r.Context(), port.CreateAdInput{
		Title:         req.Title,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		RedirectURL:   req.RedirectURL,
		PricePerView:  req.PricePerView,
		PricePerClick: req.PricePerClick,
		CreatedBy:     claims.Subject,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "ad created successfully",
		"ad":      toAdResponse(ad),
	})
}

func (h *Handler) handleListAds(w http.ResponseWriter, r *http.Request) {
	ads, err := h.ads.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ads": toAdResponses(ads)})
}

// handleMyAds lists the ads created by the authenticated caller.
func (h *Handler) handleMyAds(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	if claims == nil {
		writeMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	ads, err := h.ads.ListByCreator(r.Context(), claims.Subject)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ads": toAdResponses(ads)})
}

func (h *Handler) handleAdByID(w http.ResponseWriter, r *http.Request) {
	ad, err := h.ads.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ad": toAdResponse(ad)})
}
