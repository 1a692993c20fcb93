package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/phylax/contracts/events"
	"github.com/phylax/contracts/internal/outbox"
	"github.com/phylax/contracts/models"
	"github.com/phylax/contracts/schema"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Entity  string `json:"entity,omitempty"`
	Field   string `json:"field,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// respondRaw writes an already encoded JSON body.
func respondRaw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeError(w http.ResponseWriter, err error) {
	if cve, ok := schema.AsValidationError(err); ok {
		respondJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Code:    "invalid",
			Message: cve.Error(),
			Entity:  cve.Entity,
			Field:   cve.Field,
			Reason:  cve.Reason,
		})
		return
	}

	var status int
	var code, message string
	switch {
	case errors.Is(err, ErrUnauthorized):
		status, code, message = http.StatusUnauthorized, "unauthorized", "unauthorized"
	case errors.Is(err, ErrForbidden):
		status, code, message = http.StatusForbidden, "forbidden", "forbidden"
	case errors.Is(err, ErrNotFound), errors.Is(err, models.ErrUnknownContract), errors.Is(err, events.ErrUnknownEventType):
		status, code, message = http.StatusNotFound, "not_found", err.Error()
	case errors.Is(err, ErrInvalid):
		status, code, message = http.StatusBadRequest, "bad_request", err.Error()
	case errors.Is(err, outbox.ErrFull), errors.Is(err, ErrUnavailable):
		status, code, message = http.StatusServiceUnavailable, "unavailable", "event queue is full"
	default:
		status, code, message = http.StatusInternalServerError, "internal", "internal error"
	}
	respondJSON(w, status, errorResponse{Code: code, Message: message})
}
