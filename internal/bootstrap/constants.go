package bootstrap

// File System Permissions
const (
	DirPermission     = 0755
	LogFilePermission = 0644
)

// Logger Configuration
const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"
	LogFileNamePattern     = "session_%s.log"
	LogFileExtension       = ".log"

	// LogFileRetentionCount is how many session logs survive a cleanup, including the new one
	LogFileRetentionCount = 10
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting outfitter"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory: %w"
	ErrMsgFailedOpenLogFile   = "failed to open log file: %w"
)

// Catalog sync messages
const (
	LogMsgSyncingItems   = "Syncing items from JSON config..."
	LogMsgItemsSynced    = "Items synced successfully"
	LogMsgItemsUnchanged = "Items config unchanged, sync skipped"

	ErrMsgFailedLoadItems = "failed to load items config: %w"
	ErrMsgInvalidItems    = "invalid items config: %w"
	ErrMsgFailedSyncItems = "failed to sync items to database: %w"
)

// Shutdown Messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgDatabaseClosed       = "Database pool closed"

	// LogMsgServiceShutdownFailed is appended to the service name
	LogMsgServiceShutdownFailed = " service shutdown failed"

	ServiceNameEconomy = "economy"
)
