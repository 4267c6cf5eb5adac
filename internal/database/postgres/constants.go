package postgres

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction = "failed to begin transaction: %w"
	ErrMsgFailedToCommit           = "failed to commit transaction: %w"
)

// Error Messages - Character Operations
const (
	ErrMsgGetCharacterFailed    = "failed to get character %d: %w"
	ErrMsgLockCharacterFailed   = "failed to lock character %d: %w"
	ErrMsgCreateCharacterFailed = "failed to create character: %w"
	ErrMsgDeleteCharacterFailed = "failed to delete character %d: %w"
	ErrMsgAdjustMoneyFailed     = "failed to adjust money for character %d: %w"
	ErrMsgAdjustStatsFailed     = "failed to adjust stats for character %d: %w"
)

// Error Messages - Inventory and Equipment Operations
const (
	ErrMsgListInventoryFailed   = "failed to list inventory: %w"
	ErrMsgGetInventoryFailed    = "failed to get inventory line: %w"
	ErrMsgAddInventoryFailed    = "failed to add inventory: %w"
	ErrMsgRemoveInventoryFailed = "failed to remove inventory: %w"
	ErrMsgListEquipmentFailed   = "failed to list equipment: %w"
	ErrMsgGetEquippedFailed     = "failed to get equipped item: %w"
	ErrMsgInsertEquippedFailed  = "failed to insert equipped item: %w"
	ErrMsgDeleteEquippedFailed  = "failed to delete equipped item: %w"
)

// Error Messages - Account Operations
const (
	ErrMsgCreateAccountFailed = "failed to create account: %w"
	ErrMsgGetAccountFailed    = "failed to get account: %w"
)

// Error Messages - Item Operations
const (
	ErrMsgListItemsFailed    = "failed to list items: %w"
	ErrMsgGetItemFailed      = "failed to get item %d: %w"
	ErrMsgGetItemsFailed     = "failed to get items by code: %w"
	ErrMsgUpsertItemFailed   = "failed to upsert item %d: %w"
	ErrMsgGetSyncMetaFailed  = "failed to get sync metadata: %w"
	ErrMsgUpsertSyncMetaFail = "failed to upsert sync metadata: %w"
)
