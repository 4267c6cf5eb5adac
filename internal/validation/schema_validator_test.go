package validation

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Resolved upward from the package directory to the module root
const catalogSchema = "configs/schemas/items.schema.json"

func TestCatalogSchema(t *testing.T) {
	v := NewSchemaValidator()

	tests := []struct {
		name    string
		data    string
		wantErr error
		errPath string
	}{
		{
			name: "valid catalog",
			data: `{"version": "1", "items": [
				{"item_code": 1, "name": "Wooden Sword", "price": 1000, "stats": {"pow": 10}},
				{"item_code": 2, "name": "Potion", "price": 0}
			]}`,
		},
		{
			name: "negative stats are allowed",
			data: `{"version": "1", "items": [{"item_code": 3, "name": "Cursed Ring", "price": 5, "stats": {"hp": -20}}]}`,
		},
		{
			name:    "missing version",
			data:    `{"items": [{"item_code": 1, "name": "x", "price": 1}]}`,
			wantErr: ErrSchemaViolation,
			errPath: "(root)",
		},
		{
			name:    "empty item list",
			data:    `{"version": "1", "items": []}`,
			wantErr: ErrSchemaViolation,
			errPath: "/items",
		},
		{
			name:    "zero item code",
			data:    `{"version": "1", "items": [{"item_code": 0, "name": "x", "price": 1}]}`,
			wantErr: ErrSchemaViolation,
			errPath: "/items/0/item_code",
		},
		{
			name:    "negative price",
			data:    `{"version": "1", "items": [{"item_code": 1, "name": "x", "price": -1}]}`,
			wantErr: ErrSchemaViolation,
			errPath: "/items/0/price",
		},
		{
			name:    "price above cap",
			data:    `{"version": "1", "items": [{"item_code": 1, "name": "x", "price": 1000000001}]}`,
			wantErr: ErrSchemaViolation,
			errPath: "/items/0/price",
		},
		{
			name:    "fractional stat",
			data:    `{"version": "1", "items": [{"item_code": 1, "name": "x", "price": 1, "stats": {"hp": 1.5}}]}`,
			wantErr: ErrSchemaViolation,
			errPath: "/items/0/stats/hp",
		},
		{
			name:    "uppercase stat name",
			data:    `{"version": "1", "items": [{"item_code": 1, "name": "x", "price": 1, "stats": {"HP": 1}}]}`,
			wantErr: ErrSchemaViolation,
		},
		{
			name:    "unknown item field",
			data:    `{"version": "1", "items": [{"item_code": 1, "name": "x", "price": 1, "rarity": "epic"}]}`,
			wantErr: ErrSchemaViolation,
			errPath: "/items/0",
		},
		{
			name:    "truncated document",
			data:    `{"version": "1", "items": [`,
			wantErr: ErrMalformedJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ACT
			err := v.ValidateBytes([]byte(tt.data), catalogSchema)

			// ASSERT
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			if tt.errPath != "" {
				assert.Contains(t, err.Error(), tt.errPath)
			}
		})
	}
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	v := NewSchemaValidator()
	dataPath := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(dataPath, []byte(`{"version": "2", "items": [{"item_code": 9, "name": "Helm", "price": 300}]}`), 0644))

	assert.NoError(t, v.ValidateFile(dataPath, catalogSchema))
}

func TestSchemaValidator_MissingFiles(t *testing.T) {
	v := NewSchemaValidator()
	dataPath := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(dataPath, []byte(`{}`), 0644))

	err := v.ValidateFile(dataPath, "configs/schemas/missing.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")

	err = v.ValidateFile(filepath.Join(t.TempDir(), "missing.json"), catalogSchema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read data file")
}

func TestSchemaValidator_CachesCompiledSchemas(t *testing.T) {
	v := NewSchemaValidator().(*validator)
	data := []byte(`{"version": "1", "items": [{"item_code": 1, "name": "x", "price": 1}]}`)

	require.NoError(t, v.ValidateBytes(data, catalogSchema))
	require.NoError(t, v.ValidateBytes(data, catalogSchema))

	assert.Len(t, v.schemas, 1)
}

func TestSchemaValidator_ConcurrentUse(t *testing.T) {
	v := NewSchemaValidator()
	data := []byte(`{"version": "1", "items": [{"item_code": 1, "name": "x", "price": 1}]}`)

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, v.ValidateBytes(data, catalogSchema))
		}()
	}
	wg.Wait()
}
