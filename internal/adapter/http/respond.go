package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"adreward/internal/core/port"
)

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Message: msg})
}

// writeError maps the port error taxonomy onto HTTP status codes:
// invalid input 400, bad credentials 401, forbidden 403, not found 404,
// duplicate interaction or taken email 409, anything else 500. Unexpected
// errors are logged and returned with a generic body.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, port.ErrInvalidInput):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, port.ErrInvalidCredentials):
		writeMessage(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, port.ErrForbidden):
		writeMessage(w, http.StatusForbidden, err.Error())
	case errors.Is(err, port.ErrNotFound):
		writeMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, port.ErrAlreadyInteracted), errors.Is(err, port.ErrEmailTaken):
		writeMessage(w, http.StatusConflict, err.Error())
	default:
		h.logger.Error("request failed",
			slog.String("path", r.URL.Path), slog.Any("error", err))
		writeMessage(w, http.StatusInternalServerError, "internal error")
	}
}
