package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/teco-Runi/task-manager-app/internal/service"
)

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the service error taxonomy onto HTTP statuses: validation,
// conflict and auth failures are 400 with the service message, anything else
// is a logged 500 with a generic message.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var (
		validationErr *service.ValidationError
		conflictErr   *service.ConflictError
		authErr       *service.AuthError
	)
	switch {
	case errors.As(err, &validationErr), errors.As(err, &conflictErr), errors.As(err, &authErr):
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: err.Error()})
	default:
		h.log.Errorf("request failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "Server error"})
	}
}
