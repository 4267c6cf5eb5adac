package economy

// ==================== Economy Rules ====================

// RewardAmount is the currency credited by one Reward call
const RewardAmount = 100

// Sell rate is SellRateNumerator/SellRateDenominator of the catalog price.
// Kept as integers so income is floored without float rounding.
const (
	SellRateNumerator   = 60
	SellRateDenominator = 100
)

// ==================== Error Messages ====================

// Formatted error messages for validation
const (
	ErrMsgEmptyItemListFmt      = "no items in request: %w"
	ErrMsgTooManyLineItemsFmt   = "request has %d line items, maximum is %d: %w"
	ErrMsgInvalidQuantityFmt    = "invalid quantity %d for item %d: %w"
	ErrMsgQuantityExceedsMaxFmt = "quantity %d exceeds maximum allowed (%d): %w"
	ErrMsgInvalidItemCodeFmt    = "invalid item code %d: %w"
	ErrMsgInvalidCharacterFmt   = "invalid character id %d: %w"
)

// Formatted error messages for preconditions
const (
	ErrMsgNotOwnerFmt           = "character %d: %w"
	ErrMsgBuyItemFailedFmt      = "failed to buy item %d: %w"
	ErrMsgSellItemFailedFmt     = "failed to sell item %d: %w"
	ErrMsgEquipItemFailedFmt    = "failed to equip item %d: %w"
	ErrMsgUnequipItemFailedFmt  = "failed to unequip item %d: %w"
	ErrMsgItemNotInInventoryFmt = "item %d: %w"
)

// Database operation error messages
const (
	ErrMsgGetCharacterFailed      = "failed to get character: %w"
	ErrMsgResolveItemsFailed      = "failed to resolve items: %w"
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgLockCharacterFailed     = "failed to lock character: %w"
	ErrMsgAdjustMoneyFailed       = "failed to adjust money: %w"
	ErrMsgAdjustStatsFailed       = "failed to adjust stats: %w"
	ErrMsgGetInventoryFailed      = "failed to get inventory: %w"
	ErrMsgListEquipmentFailed     = "failed to list equipment: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
)

// Shutdown error messages
const (
	ErrMsgShutdownTimedOut       = "shutdown timed out: %w"
	ErrMsgRejectedDuringShutdown = "economy operation rejected: %w"
)

// ==================== Log Messages ====================

// Service operation log messages
const (
	LogMsgBuyCalled          = "Buy called"
	LogMsgItemsPurchased     = "Items purchased"
	LogMsgSellCalled         = "Sell called"
	LogMsgItemsSold          = "Items sold"
	LogMsgEquipCalled        = "Equip called"
	LogMsgItemEquipped       = "Item equipped"
	LogMsgUnequipCalled      = "Unequip called"
	LogMsgItemUnequipped     = "Item unequipped"
	LogMsgRewardCalled       = "Reward called"
	LogMsgRewardGranted      = "Reward granted"
	LogMsgOperationRejected  = "Economy operation rejected"
	LogMsgOperationFailed    = "Economy operation failed"
	LogMsgEconomyShutdown    = "Economy service shutting down, waiting for in-flight operations..."
	LogMsgEconomyShutdownEnd = "Economy service shut down"
)

// ==================== Display Messages ====================

// Confirmation messages returned to the caller, formatted with the item's display name
const (
	MsgItemEquippedFmt   = "%s equipped"
	MsgItemUnequippedFmt = "%s unequipped"
)

// ==================== Failure Reasons ====================

// Reason label values for metrics.EconomyFailures
const (
	ReasonInvalidInput      = "invalid_input"
	ReasonNotFound          = "not_found"
	ReasonForbidden         = "forbidden"
	ReasonInsufficientFunds = "insufficient_funds"
	ReasonInsufficientStock = "insufficient_stock"
	ReasonItemNotOwned      = "item_not_owned"
	ReasonAlreadyEquipped   = "already_equipped"
	ReasonNotEquipped       = "not_equipped"
	ReasonShuttingDown      = "shutting_down"
	ReasonUnexpected        = "unexpected"
)
