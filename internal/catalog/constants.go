package catalog

// ConfigFileName is the sync metadata key for the catalog file
const ConfigFileName = "items.json"

// Cache defaults
const (
	DefaultCacheSize   = 512
	CacheSchemaVersion = "1.0"
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read items config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse items config: %w"
	ErrMsgSchemaValidationFmt  = "schema validation failed for %s: %w"
	ErrMsgStatConfigFileFailed = "failed to stat config file: %w"
	ErrMsgReadForHashFailed    = "failed to read config file: %w"
)

// Validation error messages
const (
	ErrMsgConfigNil           = "config is nil"
	ErrMsgNoItemsDefined      = "no items defined"
	ErrFmtItemInvalidCode     = "%w: item at index %d has invalid item_code %d"
	ErrFmtItemEmptyName       = "%w: item %d has empty name"
	ErrFmtItemNegativePrice   = "%w: item %d has negative price"
	ErrFmtItemPriceTooHigh    = "%w: item %d price exceeds %d"
	ErrFmtDuplicateCode       = "%w: %d"
	ErrFmtDuplicateName       = "%w: '%s'"
	ErrMsgCheckFileChangeFail = "failed to check if file changed: %w"
)

// Database operation error messages
const (
	ErrMsgListItemsFailed   = "failed to list items: %w"
	ErrMsgGetItemFailed     = "failed to get item %d: %w"
	ErrMsgGetItemsFailed    = "failed to get items: %w"
	ErrMsgUpsertItemsFailed = "failed to upsert items: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgConfigUnchanged      = "Items config file unchanged, skipping sync"
	LogMsgSyncCompleted        = "Items sync completed"
	LogMsgUpdateMetadataFailed = "Failed to update sync metadata"
	LogMsgCacheInvalidated     = "Item cache invalidated"
)
