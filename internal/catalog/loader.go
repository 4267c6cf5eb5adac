package catalog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/osse101/Outfitter_Go/internal/domain"
	"github.com/osse101/Outfitter_Go/internal/logger"
	"github.com/osse101/Outfitter_Go/internal/repository"
	"github.com/osse101/Outfitter_Go/internal/validation"
)

// Sentinel errors for the catalog loader
var (
	ErrDuplicateCode = errors.New("duplicate item code")
	ErrDuplicateName = errors.New("duplicate item name")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config represents the JSON catalog file
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`
	Items       []Def  `json:"items"`
}

// Def is a single item definition in the catalog file
type Def struct {
	Code  int            `json:"item_code"`
	Name  string         `json:"name"`
	Price int            `json:"price"`
	Stats map[string]int `json:"stats,omitempty"`
}

// ToItem converts the definition to its domain form
func (d Def) ToItem() domain.Item {
	stats := domain.Stats{}
	for k, v := range d.Stats {
		stats[k] = v
	}
	return domain.Item{Code: d.Code, Name: d.Name, Price: d.Price, Stats: stats}
}

// Loader handles loading, validating and syncing the catalog file
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
	SyncToDatabase(ctx context.Context, config *Config, repo repository.Item, configPath string) (*SyncResult, error)
}

// SyncResult contains the result of syncing items to the database
type SyncResult struct {
	ItemsInserted int
	ItemsUpdated  int
	ItemsSkipped  int
}

type itemLoader struct {
	schemaValidator validation.SchemaValidator
	schemaPath      string
}

// NewLoader creates a Loader that validates files against schemaPath
func NewLoader(schemaPath string) Loader {
	return &itemLoader{
		schemaValidator: validation.NewSchemaValidator(),
		schemaPath:      schemaPath,
	}
}

// Load reads and parses a catalog JSON file
func (l *itemLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, l.schemaPath); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaValidationFmt, path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	return &config, nil
}

// Validate checks rules the schema cannot express
func (l *itemLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}
	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	codes := make(map[int]bool, len(config.Items))
	names := make(map[string]bool, len(config.Items))
	for i, def := range config.Items {
		if def.Code < 1 {
			return fmt.Errorf(ErrFmtItemInvalidCode, ErrInvalidConfig, i, def.Code)
		}
		if def.Name == "" {
			return fmt.Errorf(ErrFmtItemEmptyName, ErrInvalidConfig, def.Code)
		}
		if def.Price < 0 {
			return fmt.Errorf(ErrFmtItemNegativePrice, ErrInvalidConfig, def.Code)
		}
		if def.Price > domain.MaxItemPrice {
			return fmt.Errorf(ErrFmtItemPriceTooHigh, ErrInvalidConfig, def.Code, domain.MaxItemPrice)
		}
		if codes[def.Code] {
			return fmt.Errorf(ErrFmtDuplicateCode, ErrDuplicateCode, def.Code)
		}
		if names[def.Name] {
			return fmt.Errorf(ErrFmtDuplicateName, ErrDuplicateName, def.Name)
		}
		codes[def.Code] = true
		names[def.Name] = true
	}

	return nil
}

// SyncToDatabase upserts changed definitions. It is a no-op when the file
// hash and mod time match the last recorded sync.
func (l *itemLoader) SyncToDatabase(ctx context.Context, config *Config, repo repository.Item, configPath string) (*SyncResult, error) {
	log := logger.FromContext(ctx)

	hasChanged, err := hasFileChanged(ctx, repo, configPath)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCheckFileChangeFail, err)
	}
	if !hasChanged {
		log.Info(LogMsgConfigUnchanged, "path", configPath)
		return &SyncResult{}, nil
	}

	existing, err := repo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListItemsFailed, err)
	}
	byCode := make(map[int]domain.Item, len(existing))
	for _, it := range existing {
		byCode[it.Code] = it
	}

	result := &SyncResult{}
	var changed []domain.Item
	for _, def := range config.Items {
		item := def.ToItem()
		current, ok := byCode[def.Code]
		switch {
		case !ok:
			result.ItemsInserted++
			changed = append(changed, item)
		case current.Name != item.Name || current.Price != item.Price || !current.Stats.Equal(item.Stats):
			result.ItemsUpdated++
			changed = append(changed, item)
		default:
			result.ItemsSkipped++
		}
	}

	if len(changed) > 0 {
		if err := repo.UpsertItems(ctx, changed); err != nil {
			return nil, fmt.Errorf(ErrMsgUpsertItemsFailed, err)
		}
	}

	if err := updateSyncMetadata(ctx, repo, configPath); err != nil {
		log.Warn(LogMsgUpdateMetadataFailed, "error", err)
	}

	log.Info(LogMsgSyncCompleted,
		"inserted", result.ItemsInserted,
		"updated", result.ItemsUpdated,
		"skipped", result.ItemsSkipped)

	return result, nil
}

func fileFingerprint(configPath string) (string, time.Time, error) {
	fileInfo, err := os.Stat(configPath)
	if err != nil {
		return "", time.Time{}, fmt.Errorf(ErrMsgStatConfigFileFailed, err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return "", time.Time{}, fmt.Errorf(ErrMsgReadForHashFailed, err)
	}

	// Postgres stores timestamps at microsecond precision
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:]), fileInfo.ModTime().Truncate(time.Microsecond), nil
}

// hasFileChanged checks if the config file has changed since last sync
func hasFileChanged(ctx context.Context, repo repository.Item, configPath string) (bool, error) {
	fileHash, modTime, err := fileFingerprint(configPath)
	if err != nil {
		return false, err
	}

	syncMeta, err := repo.GetSyncMetadata(ctx, ConfigFileName)
	if err != nil || syncMeta == nil {
		// First sync - no metadata exists
		return true, nil
	}

	return syncMeta.FileHash != fileHash || !syncMeta.FileModTime.Equal(modTime), nil
}

func updateSyncMetadata(ctx context.Context, repo repository.Item, configPath string) error {
	fileHash, modTime, err := fileFingerprint(configPath)
	if err != nil {
		return err
	}

	return repo.UpsertSyncMetadata(ctx, &domain.SyncMetadata{
		ConfigName:   ConfigFileName,
		LastSyncTime: time.Now(),
		FileHash:     fileHash,
		FileModTime:  modTime,
	})
}
