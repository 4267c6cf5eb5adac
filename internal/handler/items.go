package handler

import (
	"net/http"

	"github.com/osse101/Outfitter_Go/internal/catalog"
)

// HandleListItems lists the catalog without stat blocks
// @Summary List items
// @Tags items
// @Produce json
// @Success 200 {object} DataResponse{data=[]domain.ItemSummary}
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/items [get]
func HandleListItems(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respondServiceError(w, r, ActionListItems, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: items})
	}
}

// HandleGetItem returns one catalog item with its stats
// @Summary Item detail
// @Tags items
// @Produce json
// @Param itemCode path int true "Item code"
// @Success 200 {object} DataResponse{data=domain.Item}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/{itemCode} [get]
func HandleGetItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code, ok := itemCodeParam(w, r)
		if !ok {
			return
		}

		item, err := svc.Lookup(r.Context(), code)
		if err != nil {
			respondServiceError(w, r, ActionGetItem, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: item})
	}
}
