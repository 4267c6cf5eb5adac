package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Character errors
	ErrMsgCharacterNotFound = "character not found"
	ErrMsgForbidden         = "character belongs to another account"

	// Account errors
	ErrMsgAccountNotFound  = "account not found"
	ErrMsgWrongCredentials = "wrong credentials"
	ErrMsgUnauthenticated  = "unauthenticated"
	ErrMsgInvalidToken     = "invalid token"

	// Item errors
	ErrMsgItemNotFound = "item not found"

	// Inventory errors
	ErrMsgItemNotOwned      = "item not in inventory"
	ErrMsgInsufficientStock = "insufficient stock"

	// Equipment errors
	ErrMsgAlreadyEquipped = "item already equipped"
	ErrMsgNotEquipped     = "item not equipped"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Uniqueness errors
	ErrMsgConflict = "already exists"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Transaction errors
	ErrMsgTxClosed = "tx is closed"

	// Lifecycle errors
	ErrMsgShuttingDown = "service is shutting down"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// NotFound family
	ErrCharacterNotFound = errors.New(ErrMsgCharacterNotFound)
	ErrAccountNotFound   = errors.New(ErrMsgAccountNotFound)
	ErrItemNotFound      = errors.New(ErrMsgItemNotFound)

	// Ownership
	ErrForbidden = errors.New(ErrMsgForbidden)

	// Conflict family
	ErrConflict        = errors.New(ErrMsgConflict)
	ErrAlreadyEquipped = errors.New(ErrMsgAlreadyEquipped)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// Economy errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// Inventory errors
	ErrInsufficientStock = errors.New(ErrMsgInsufficientStock)
	ErrItemNotOwned      = errors.New(ErrMsgItemNotOwned)

	// Equipment errors
	ErrNotEquipped = errors.New(ErrMsgNotEquipped)

	// Authentication errors
	ErrUnauthenticated  = errors.New(ErrMsgUnauthenticated)
	ErrInvalidToken     = errors.New(ErrMsgInvalidToken)
	ErrWrongCredentials = errors.New(ErrMsgWrongCredentials)

	// Lifecycle errors
	ErrShuttingDown = errors.New(ErrMsgShuttingDown)
)
