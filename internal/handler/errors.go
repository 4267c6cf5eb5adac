package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Path parameter error messages
	ErrMsgInvalidCharacterID = "Invalid character id"
	ErrMsgInvalidItemCode    = "Invalid item code"

	// Authentication error messages
	ErrMsgMissingCaller = "Invalid or missing credentials"
)

// Success messages for API responses
const (
	MsgAccountCreated   = "Account created"
	MsgLoggedIn         = "Logged in"
	MsgCharacterCreated = "Character created"
	MsgCharacterDeleted = "Character deleted"
	MsgRewardGranted    = "Reward granted"
	MsgPurchaseComplete = "Purchase complete"
	MsgSaleComplete     = "Sale complete"
)

// Action names used in logs and DecodeAndValidateRequest
const (
	ActionSignup          = "Signup"
	ActionLogin           = "Login"
	ActionCreateCharacter = "Create character"
	ActionGetCharacter    = "Get character"
	ActionDeleteCharacter = "Delete character"
	ActionReward          = "Reward"
	ActionBuy             = "Buy items"
	ActionSell            = "Sell items"
	ActionEquip           = "Equip item"
	ActionUnequip         = "Unequip item"
	ActionGetInventory    = "Get inventory"
	ActionGetEquipment    = "Get equipment"
	ActionListItems       = "List items"
	ActionGetItem         = "Get item"
)

// Log messages
const (
	LogMsgDecodeFailedFmt    = "Failed to decode %s request"
	LogMsgRequestDecodedFmt  = "%s request decoded"
	LogMsgValidationFailed   = "Request validation failed"
	LogMsgServiceRejected    = "Request rejected"
	LogMsgServiceFailed      = "Request failed"
	LogMsgEncodeFailed       = "Failed to encode JSON response"
	LogMsgWriteFailed        = "Failed to write response buffer"
	LogMsgReadinessFailed    = "Readiness check failed"
	LogMsgMissingCaller      = "Authenticated route reached without an account id"
	LogMsgInvalidPathParam   = "Invalid path parameter"
	LogMsgAccountCreated     = "Account created"
	LogMsgCharacterCreated   = "Character created"
	LogMsgCharacterDeleted   = "Character deleted"
	LogMsgTradeCompletedFmt  = "%s completed"
	LogMsgEquipmentChangeFmt = "%s completed"
)
