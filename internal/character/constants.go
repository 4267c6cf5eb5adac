package character

// Error messages
const (
	ErrMsgNameRequiredFmt       = "character name is required: %w"
	ErrMsgNameTooLongFmt        = "character name longer than %d characters: %w"
	ErrMsgInvalidCharacterIDFmt = "invalid character id %d: %w"
	ErrMsgNotOwnerFmt           = "character %d: %w"
	ErrMsgCreateFailed          = "failed to create character: %w"
	ErrMsgGetFailed             = "failed to get character: %w"
	ErrMsgDeleteFailed          = "failed to delete character: %w"
)

// Log messages
const (
	LogMsgCharacterCreated = "Character created"
	LogMsgCharacterDeleted = "Character deleted"
)
