package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"adreward/internal/core/domain"
	"adreward/internal/core/port"
	"adreward/internal/metrics"
)

type interactionRequest struct {
	AdID            string `json:"adId"`
	InteractionType string `json:"interactionType"`
}

// handleInteraction records a view or click against an ad and credits the
// caller's wallet. The user id comes from the verified token, the network
// origin from the connection; only adId and the interaction type travel
// in the body. Duplicate interactions for an exhausted (user, ad, ip)
// triple answer 409.
func (h *Handler) handleInteraction(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	if claims == nil {
		writeMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req interactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	in := port.RecordInteractionInput{
		UserID:    claims.Subject,
		AdID:      req.AdID,
		Type:      domain.InteractionType(req.InteractionType),
		IPAddress: clientIP(r),
	}
	reward, err := h.rewards.RecordInteraction(r.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, port.ErrAlreadyInteracted):
			metrics.InteractionsRejected.WithLabelValues("already_interacted").Inc()
		case errors.Is(err, port.ErrInvalidInput):
			metrics.InteractionsRejected.WithLabelValues("invalid_input").Inc()
		case errors.Is(err, port.ErrNotFound):
			metrics.InteractionsRejected.WithLabelValues("not_found").Inc()
		default:
			metrics.InteractionsRejected.WithLabelValues("internal").Inc()
		}
		h.writeError(w, r, err)
		return
	}

	metrics.InteractionsAccepted.WithLabelValues(req.InteractionType).Inc()
	metrics.RewardUnitsCredited.Add(float64(reward))
	writeMessage(w, http.StatusOK, "ad interaction recorded successfully")
}
