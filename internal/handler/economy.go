package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/osse101/Outfitter_Go/internal/domain"
	"github.com/osse101/Outfitter_Go/internal/economy"
	"github.com/osse101/Outfitter_Go/internal/logger"
)

// LineItemRequest is one item code and quantity in a buy or sell body
type LineItemRequest struct {
	ItemCode int `json:"item_code" validate:"required,min=1"`
	Count    int `json:"count" validate:"min=1,max=10000"`
}

// TradeRequest is the body of buy and sell. It accepts either a bare JSON
// array of line items or an object of the form {"items": [...]}.
type TradeRequest struct {
	Items []LineItemRequest `json:"items" validate:"required,min=1,max=50,dive"`
}

// UnmarshalJSON accepts both body shapes
func (t *TradeRequest) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(trimmed, &t.Items)
	}
	type plain TradeRequest
	return json.Unmarshal(trimmed, (*plain)(t))
}

func (t *TradeRequest) lineItems() []domain.LineItem {
	items := make([]domain.LineItem, len(t.Items))
	for i, it := range t.Items {
		items[i] = domain.LineItem{ItemCode: it.ItemCode, Count: it.Count}
	}
	return items
}

// BalanceResponse reports a character's balance after a money-changing call
type BalanceResponse struct {
	CharacterID int64 `json:"character_id"`
	Money       int   `json:"money"`
}

// EquipRequest names the item to equip or unequip
type EquipRequest struct {
	ItemCode int `json:"item_code" validate:"required,min=1"`
}

// HandleReward credits the fixed reward to the caller's character
// @Summary Earn money
// @Description Adds the fixed reward amount to the character's balance
// @Tags economy
// @Security BearerAuth
// @Produce json
// @Param characterID path int true "Character ID"
// @Success 201 {object} DataResponse{data=BalanceResponse}
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/{characterID}/reward [post]
func HandleReward(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := callerAccountID(w, r)
		if !ok {
			return
		}
		characterID, ok := characterIDParam(w, r)
		if !ok {
			return
		}

		balance, err := svc.Reward(r.Context(), characterID, caller)
		if err != nil {
			respondServiceError(w, r, ActionReward, err)
			return
		}

		respondJSON(w, http.StatusCreated, DataResponse{
			Message: MsgRewardGranted,
			Data:    BalanceResponse{CharacterID: characterID, Money: balance},
		})
	}
}

// HandleBuy buys every listed item or none of them
// @Summary Buy items
// @Tags economy
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param characterID path int true "Character ID"
// @Param request body []LineItemRequest true "Items to buy"
// @Success 201 {object} DataResponse{data=BalanceResponse}
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/{characterID}/buy [post]
func HandleBuy(svc economy.Service) http.HandlerFunc {
	return handleTrade(svc.Buy, ActionBuy, MsgPurchaseComplete)
}

// HandleSell sells every listed item or none of them, at 60% of price rounded down
// @Summary Sell items
// @Tags economy
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param characterID path int true "Character ID"
// @Param request body []LineItemRequest true "Items to sell"
// @Success 201 {object} DataResponse{data=BalanceResponse}
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/{characterID}/sell [post]
func HandleSell(svc economy.Service) http.HandlerFunc {
	return handleTrade(svc.Sell, ActionSell, MsgSaleComplete)
}

// tradeFunc is the shape shared by economy.Service Buy and Sell
type tradeFunc func(ctx context.Context, characterID, callerAccountID int64, items []domain.LineItem) (int, error)

func handleTrade(trade tradeFunc, action, successMsg string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := callerAccountID(w, r)
		if !ok {
			return
		}
		characterID, ok := characterIDParam(w, r)
		if !ok {
			return
		}

		var req TradeRequest
		if err := DecodeAndValidateRequest(r, w, &req, action); err != nil {
			return
		}

		balance, err := trade(r.Context(), characterID, caller, req.lineItems())
		if err != nil {
			respondServiceError(w, r, action, err)
			return
		}

		logger.FromContext(r.Context()).Info(fmt.Sprintf(LogMsgTradeCompletedFmt, action),
			"character_id", characterID, "lines", len(req.Items), "money", balance)
		respondJSON(w, http.StatusCreated, DataResponse{
			Message: successMsg,
			Data:    BalanceResponse{CharacterID: characterID, Money: balance},
		})
	}
}

// HandleEquip moves one item from the inventory onto the character
// @Summary Equip item
// @Tags equipment
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param characterID path int true "Character ID"
// @Param request body EquipRequest true "Item to equip"
// @Success 201 {object} DataResponse{data=economy.EquipResult}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/characters/{characterID}/equip [post]
func HandleEquip(svc economy.Service) http.HandlerFunc {
	return handleEquipment(svc.Equip, ActionEquip)
}

// HandleUnequip returns one equipped item to the inventory
// @Summary Unequip item
// @Tags equipment
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param characterID path int true "Character ID"
// @Param request body EquipRequest true "Item to unequip"
// @Success 201 {object} DataResponse{data=economy.EquipResult}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/{characterID}/unequip [post]
func HandleUnequip(svc economy.Service) http.HandlerFunc {
	return handleEquipment(svc.Unequip, ActionUnequip)
}

type equipmentFunc func(ctx context.Context, characterID, callerAccountID int64, itemCode int) (*economy.EquipResult, error)

func handleEquipment(change equipmentFunc, action string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := callerAccountID(w, r)
		if !ok {
			return
		}
		characterID, ok := characterIDParam(w, r)
		if !ok {
			return
		}

		var req EquipRequest
		if err := DecodeAndValidateRequest(r, w, &req, action); err != nil {
			return
		}

		result, err := change(r.Context(), characterID, caller, req.ItemCode)
		if err != nil {
			respondServiceError(w, r, action, err)
			return
		}

		logger.FromContext(r.Context()).Info(fmt.Sprintf(LogMsgEquipmentChangeFmt, action),
			"character_id", characterID, "item_code", req.ItemCode)
		respondJSON(w, http.StatusCreated, DataResponse{Message: result.Message, Data: result})
	}
}

// HandleGetInventory lists the caller's unequipped items
// @Summary Inventory
// @Tags equipment
// @Security BearerAuth
// @Produce json
// @Param characterID path int true "Character ID"
// @Success 200 {object} DataResponse{data=[]domain.InventoryLine}
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/{characterID}/inventory [get]
func HandleGetInventory(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := callerAccountID(w, r)
		if !ok {
			return
		}
		characterID, ok := characterIDParam(w, r)
		if !ok {
			return
		}

		lines, err := svc.GetInventory(r.Context(), characterID, caller)
		if err != nil {
			respondServiceError(w, r, ActionGetInventory, err)
			return
		}
		if lines == nil {
			lines = []domain.InventoryLine{}
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: lines})
	}
}

// HandleGetEquipment lists what a character is wearing. Public.
// @Summary Equipment
// @Tags equipment
// @Produce json
// @Param characterID path int true "Character ID"
// @Success 200 {object} DataResponse{data=[]domain.EquippedItem}
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/{characterID}/equipment [get]
func HandleGetEquipment(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		characterID, ok := characterIDParam(w, r)
		if !ok {
			return
		}

		equipped, err := svc.GetEquipment(r.Context(), characterID)
		if err != nil {
			respondServiceError(w, r, ActionGetEquipment, err)
			return
		}
		if equipped == nil {
			equipped = []domain.EquippedItem{}
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: equipped})
	}
}
