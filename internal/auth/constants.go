package auth

import "time"

// Signup rules
const (
	MinPasswordLength = 6
	MaxPasswordLength = 72 // bcrypt ignores anything past 72 bytes
	MaxLoginIDLength  = 30
	MaxNameLength     = 30
)

// Token settings
const (
	TokenIssuer      = "outfitter"
	DefaultTokenTTL  = 12 * time.Hour
	SigningAlgorithm = "HS256"
)

// Error messages
const (
	ErrMsgInvalidLoginIDFmt    = "login id must be 1-%d lowercase letters or digits: %w"
	ErrMsgPasswordTooShortFmt  = "password must be at least %d characters: %w"
	ErrMsgPasswordTooLongFmt   = "password must be at most %d bytes: %w"
	ErrMsgPasswordMismatchFmt  = "password confirmation does not match: %w"
	ErrMsgNameRequiredFmt      = "name is required and at most %d characters: %w"
	ErrMsgHashPasswordFailed   = "failed to hash password: %w"
	ErrMsgCreateAccountFailed  = "failed to create account: %w"
	ErrMsgGetAccountFailed     = "failed to get account: %w"
	ErrMsgSignTokenFailed      = "failed to sign token: %w"
	ErrMsgParseTokenFmt        = "%w: %v"
	ErrMsgInvalidSubjectFmt    = "%w: subject %q"
	ErrMsgAccountGoneFmt       = "%w: account %d no longer exists"
	ErrMsgMissingSigningSecret = "signing secret is empty"
)

// Log messages
const (
	LogMsgAccountCreated = "Account created"
	LogMsgLoginSucceeded = "Login succeeded"
	LogMsgLoginFailed    = "Login failed"
	LogMsgTokenRejected  = "Token rejected"
)
