package economy

import (
	"fmt"

	"github.com/osse101/Outfitter_Go/internal/domain"
)

// validateLineItems checks a buy/sell payload without touching storage
func validateLineItems(items []domain.LineItem) error {
	if len(items) == 0 {
		return fmt.Errorf(ErrMsgEmptyItemListFmt, domain.ErrInvalidInput)
	}
	if len(items) > domain.MaxLineItemsPerRequest {
		return fmt.Errorf(ErrMsgTooManyLineItemsFmt, len(items), domain.MaxLineItemsPerRequest, domain.ErrInvalidInput)
	}
	for _, item := range items {
		if err := validateItemCode(item.ItemCode); err != nil {
			return err
		}
		if err := validateQuantity(item.ItemCode, item.Count); err != nil {
			return err
		}
	}
	return nil
}

// validateQuantity validates the transaction quantity
func validateQuantity(itemCode, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf(ErrMsgInvalidQuantityFmt, quantity, itemCode, domain.ErrInvalidInput)
	}
	if quantity > domain.MaxTransactionQuantity {
		return fmt.Errorf(ErrMsgQuantityExceedsMaxFmt, quantity, domain.MaxTransactionQuantity, domain.ErrInvalidInput)
	}
	return nil
}

func validateItemCode(itemCode int) error {
	if itemCode < 1 {
		return fmt.Errorf(ErrMsgInvalidItemCodeFmt, itemCode, domain.ErrInvalidInput)
	}
	return nil
}

// itemCodes returns the distinct codes of a payload in request order
func itemCodes(items []domain.LineItem) []int {
	seen := make(map[int]struct{}, len(items))
	codes := make([]int, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ItemCode]; ok {
			continue
		}
		seen[item.ItemCode] = struct{}{}
		codes = append(codes, item.ItemCode)
	}
	return codes
}
