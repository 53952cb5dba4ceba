package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okunevd/streamhub/internal/common"
)

// envelope is the uniform success payload.
type envelope struct {
	Status  int    `json:"status"`
	Data    any    `json:"data"`
	Message string `json:"message"`
}

// errorEnvelope is the uniform failure payload.
type errorEnvelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (s *HTTPServer) respond(w http.ResponseWriter, status int, data any, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope{Status: status, Data: data, Message: message}); err != nil {
		s.logger.Error(context.Background(), "error encoding response", "error", err.Error())
	}
}

// respondError maps sentinel errors to HTTP statuses. Anything unrecognized
// is a 500 whose detail stays in the log, not the response.
func (s *HTTPServer) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, common.ErrorInvalidInput):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, common.ErrorNotFound):
		status, message = http.StatusNotFound, "not found"
	case errors.Is(err, common.ErrorConflict):
		status, message = http.StatusConflict, "already exists"
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrMissingToken),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrRefreshTokenReused):
		status, message = http.StatusUnauthorized, err.Error()
	default:
		s.logger.Error(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err.Error())
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorEnvelope{Status: status, Message: message})
}
