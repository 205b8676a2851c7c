package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"sponsorback/internal/billing"
	"sponsorback/internal/deal/lifecycle"
	"sponsorback/internal/models"
	"sponsorback/internal/services"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps domain errors onto HTTP statuses. Unknown errors are
// reported as 500 without leaking internals.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrProposalNotFound),
		errors.Is(err, models.ErrEventNotFound),
		errors.Is(err, models.ErrTierNotFound),
		errors.Is(err, models.ErrInvoiceNotFound),
		errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrMessageNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, lifecycle.ErrTerminalStatus),
		errors.Is(err, models.ErrAlreadyPaid),
		errors.Is(err, models.ErrDuplicateEmail),
		errors.Is(err, models.ErrDuplicateID):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, lifecycle.ErrUnknownStatus),
		errors.Is(err, lifecycle.ErrInvalidAmount),
		errors.Is(err, lifecycle.ErrInvalidCurrency),
		errors.Is(err, billing.ErrInvalidRate):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrMissingFields),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrEmptyMessage):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, models.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
