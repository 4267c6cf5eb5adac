package handler

import (
	"net/http"

	"github.com/osse101/Outfitter_Go/internal/character"
	"github.com/osse101/Outfitter_Go/internal/logger"
)

type CreateCharacterRequest struct {
	Name string `json:"name" validate:"required,max=30,excludesall=\x00\n\r\t"`
}

type CreateCharacterResponse struct {
	CharacterID int64 `json:"character_id"`
}

// HandleCreateCharacter creates a character owned by the caller
// @Summary Create character
// @Tags characters
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateCharacterRequest true "Character name"
// @Success 201 {object} DataResponse{data=CreateCharacterResponse}
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/characters [post]
func HandleCreateCharacter(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := callerAccountID(w, r)
		if !ok {
			return
		}

		var req CreateCharacterRequest
		if err := DecodeAndValidateRequest(r, w, &req, ActionCreateCharacter); err != nil {
			return
		}

		created, err := svc.Create(r.Context(), caller, req.Name)
		if err != nil {
			respondServiceError(w, r, ActionCreateCharacter, err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgCharacterCreated, "character_id", created.ID, "account_id", caller)
		respondJSON(w, http.StatusCreated, DataResponse{
			Message: MsgCharacterCreated,
			Data:    CreateCharacterResponse{CharacterID: created.ID},
		})
	}
}

// HandleGetCharacter returns a character's public view, plus money for its owner
// @Summary Character detail
// @Tags characters
// @Security BearerAuth
// @Produce json
// @Param characterID path int true "Character ID"
// @Success 200 {object} DataResponse{data=domain.CharacterView}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/{characterID} [get]
func HandleGetCharacter(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := callerAccountID(w, r)
		if !ok {
			return
		}
		characterID, ok := characterIDParam(w, r)
		if !ok {
			return
		}

		view, err := svc.Get(r.Context(), characterID, caller)
		if err != nil {
			respondServiceError(w, r, ActionGetCharacter, err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: view})
	}
}

// HandleDeleteCharacter deletes a character owned by the caller
// @Summary Delete character
// @Tags characters
// @Security BearerAuth
// @Produce json
// @Param characterID path int true "Character ID"
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/{characterID} [delete]
func HandleDeleteCharacter(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := callerAccountID(w, r)
		if !ok {
			return
		}
		characterID, ok := characterIDParam(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), characterID, caller); err != nil {
			respondServiceError(w, r, ActionDeleteCharacter, err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgCharacterDeleted, "character_id", characterID, "account_id", caller)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCharacterDeleted})
	}
}
