package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Validator Tests - Demonstrating 5-Case Testing Model
// =============================================================================

func TestValidator_LoginIDValidation(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		loginID string
		wantErr bool
	}{
		// CASE 1: Best Case
		{"letters", "alice", false},
		{"letters and digits", "alice42", false},
		{"digits only", "1234", false},

		// CASE 2: Boundary Case
		{"one char", "a", false},
		{"exactly max length", strings.Repeat("a", 30), false},
		{"over max length", strings.Repeat("a", 31), true},

		// CASE 4: Invalid Case
		{"empty", "", true},
		{"uppercase", "Alice", true},
		{"underscore", "al_ice", true},
		{"space", "al ice", true},
		{"non ascii", "alicé", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := SignupRequest{
				LoginID:         tt.loginID,
				Password:        "secret1",
				ConfirmPassword: "secret1",
				Name:            "Alice",
			}

			err := v.ValidateStruct(input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_LineItemQuantity(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name     string
		quantity int
		wantErr  bool
	}{
		// CASE 1: Best Case
		{"valid quantity", 10, false},

		// CASE 2: Boundary Case
		{"negative", -1, true},
		{"zero", 0, true},
		{"one", 1, false},
		{"max allowed", 10000, false},
		{"over max", 10001, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := TradeRequest{Items: []LineItemRequest{{ItemCode: 1, Count: tt.quantity}}}

			err := v.ValidateStruct(input)

			if tt.wantErr {
				assert.Error(t, err, "Expected validation error for quantity=%d", tt.quantity)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_TradeRequestSize(t *testing.T) {
	InitValidator()
	v := GetValidator()

	require.Error(t, v.ValidateStruct(TradeRequest{}))
	require.Error(t, v.ValidateStruct(TradeRequest{Items: []LineItemRequest{}}))

	tooMany := make([]LineItemRequest, 51)
	for i := range tooMany {
		tooMany[i] = LineItemRequest{ItemCode: i + 1, Count: 1}
	}
	require.Error(t, v.ValidateStruct(TradeRequest{Items: tooMany}))
	require.NoError(t, v.ValidateStruct(TradeRequest{Items: tooMany[:50]}))
}

func TestFormatValidationError_UsesJSONPaths(t *testing.T) {
	InitValidator()

	t.Run("nested line item", func(t *testing.T) {
		err := GetValidator().ValidateStruct(TradeRequest{Items: []LineItemRequest{
			{ItemCode: 1, Count: 1},
			{ItemCode: 2, Count: 0},
		}})
		require.Error(t, err)

		fields := FormatValidationError(err)

		assert.Equal(t, map[string]string{"items[1].count": "Must be at least 1"}, fields)
	})

	t.Run("signup form", func(t *testing.T) {
		err := GetValidator().ValidateStruct(SignupRequest{
			LoginID:         "Bad_ID",
			Password:        "abc",
			ConfirmPassword: "abd",
		})
		require.Error(t, err)

		fields := FormatValidationError(err)

		assert.Equal(t, "Use lowercase letters and digits only", fields["login_id"])
		assert.Equal(t, "Must be at least 6 characters", fields["password"])
		assert.Contains(t, fields["confirm_password"], "Must match")
		assert.Equal(t, "This field is required", fields["name"])
	})

	t.Run("non validation error", func(t *testing.T) {
		fields := FormatValidationError(assert.AnError)
		assert.Equal(t, "Invalid request format", fields["error"])
	})

	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})
}
