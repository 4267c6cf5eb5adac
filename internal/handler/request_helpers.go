package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/Outfitter_Go/internal/logger"
	"github.com/osse101/Outfitter_Go/internal/middleware"
)

// URL parameter names shared with the router
const (
	ParamCharacterID = "characterID"
	ParamItemCode    = "itemCode"
)

// DecodeAndValidateRequest decodes a JSON request body, validates it, and returns appropriate errors.
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req EquipRequest
//	if err := DecodeAndValidateRequest(r, w, &req, ActionEquip); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf(LogMsgDecodeFailedFmt, actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf(LogMsgRequestDecodedFmt, actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Info(LogMsgValidationFailed, "action", actionName, "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// characterIDParam parses the {characterID} path segment.
// On failure the 400 response has already been written.
func characterIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, ParamCharacterID)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		logger.FromContext(r.Context()).Info(LogMsgInvalidPathParam, "param", ParamCharacterID, "value", raw)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidCharacterID)
		return 0, false
	}
	return id, true
}

// itemCodeParam parses the {itemCode} path segment
func itemCodeParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, ParamItemCode)
	code, err := strconv.Atoi(raw)
	if err != nil || code < 1 {
		logger.FromContext(r.Context()).Info(LogMsgInvalidPathParam, "param", ParamItemCode, "value", raw)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidItemCode)
		return 0, false
	}
	return code, true
}

// callerAccountID returns the account id stored by the bearer middleware.
// Routes that need it are mounted behind middleware.RequireBearer, so a miss is a wiring bug;
// it still answers 401 rather than acting anonymously.
func callerAccountID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		logger.FromContext(r.Context()).Error(LogMsgMissingCaller, "path", r.URL.Path)
		respondError(w, http.StatusUnauthorized, ErrMsgMissingCaller)
		return 0, false
	}
	return id, true
}
