package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/Outfitter_Go/internal/domain"
	"github.com/osse101/Outfitter_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	// Encode first so a failure can still become a 500
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError maps a service error to a status and user message and logs it.
// Client errors are logged at Info; anything mapped to 500 is logged at Error.
func respondServiceError(w http.ResponseWriter, r *http.Request, action string, err error) {
	status, message := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceFailed, "action", action, "error", err)
	} else {
		log.Info(LogMsgServiceRejected, "action", action, "status", status, "error", err)
	}
	respondError(w, status, message)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError   = "Something went wrong"
	ErrMsgInvalidInputError    = "Invalid request. Please check your inputs."
	ErrMsgNotEnoughMoneyError  = "Not enough money"
	ErrMsgNotEnoughItemsError  = "Not enough items"
	ErrMsgInvalidCredentials   = "Invalid or missing credentials"
	ErrMsgWrongCredentials     = "Login id or password is incorrect"
	ErrMsgForbiddenError       = "That character belongs to another account"
	ErrMsgCharacterNotFoundErr = "Character not found"
	ErrMsgItemNotFoundError    = "Item not found"
	ErrMsgAccountNotFoundError = "Account not found"
	ErrMsgNotInInventoryError  = "You don't have that item"
	ErrMsgNotEquippedError     = "That item is not equipped"
	ErrMsgConflictError        = "Already exists"
	ErrMsgAlreadyEquippedError = "That item is already equipped"
	ErrMsgShuttingDownError    = "Server is shutting down, try again shortly"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Errors that match no sentinel are reported as a generic 500 and never leak their text.
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgGenericServerError

	// 400
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughMoneyError
	case errors.Is(err, domain.ErrInsufficientStock):
		return http.StatusBadRequest, ErrMsgNotEnoughItemsError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError

	// 401
	case errors.Is(err, domain.ErrWrongCredentials):
		return http.StatusUnauthorized, ErrMsgWrongCredentials
	case errors.Is(err, domain.ErrInvalidToken), errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, ErrMsgInvalidCredentials

	// 403
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, ErrMsgForbiddenError

	// 404
	case errors.Is(err, domain.ErrCharacterNotFound):
		return http.StatusNotFound, ErrMsgCharacterNotFoundErr
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, ErrMsgAccountNotFoundError
	case errors.Is(err, domain.ErrItemNotOwned):
		return http.StatusNotFound, ErrMsgNotInInventoryError
	case errors.Is(err, domain.ErrNotEquipped):
		return http.StatusNotFound, ErrMsgNotEquippedError

	// 409
	case errors.Is(err, domain.ErrAlreadyEquipped):
		return http.StatusConflict, ErrMsgAlreadyEquippedError
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, ErrMsgConflictError

	// 503
	case errors.Is(err, domain.ErrShuttingDown):
		return http.StatusServiceUnavailable, ErrMsgShuttingDownError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
