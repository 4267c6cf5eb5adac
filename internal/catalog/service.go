package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/osse101/Outfitter_Go/internal/domain"
	"github.com/osse101/Outfitter_Go/internal/logger"
	"github.com/osse101/Outfitter_Go/internal/repository"
)

// Service is the read-only item catalog
type Service interface {
	List(ctx context.Context) ([]domain.ItemSummary, error)
	Lookup(ctx context.Context, itemCode int) (*domain.Item, error)
	// LookupMany resolves every code or fails with domain.ErrItemNotFound
	LookupMany(ctx context.Context, itemCodes []int) (map[int]domain.Item, error)
	InvalidateCache()
}

type service struct {
	repo  repository.Item
	cache *itemCache
}

// NewService creates a catalog service with an LRU in front of repo
func NewService(repo repository.Item, cacheSize int, cacheTTL time.Duration) Service {
	return &service{
		repo:  repo,
		cache: newItemCache(cacheSize, cacheTTL),
	}
}

func (s *service) List(ctx context.Context) ([]domain.ItemSummary, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListItemsFailed, err)
	}

	summaries := make([]domain.ItemSummary, 0, len(items))
	for i := range items {
		summaries = append(summaries, items[i].Summary())
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Code < summaries[j].Code })
	return summaries, nil
}

func (s *service) Lookup(ctx context.Context, itemCode int) (*domain.Item, error) {
	if itemCode < 1 {
		return nil, fmt.Errorf("%w: item code %d", domain.ErrInvalidInput, itemCode)
	}
	if item, ok := s.cache.Get(itemCode); ok {
		return &item, nil
	}

	item, err := s.repo.GetItemByCode(ctx, itemCode)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgGetItemFailed, itemCode, err)
	}

	s.cache.Set(*item)
	return item, nil
}

func (s *service) LookupMany(ctx context.Context, itemCodes []int) (map[int]domain.Item, error) {
	found := make(map[int]domain.Item, len(itemCodes))
	queued := make(map[int]struct{})
	var missing []int
	for _, code := range itemCodes {
		if _, seen := found[code]; seen {
			continue
		}
		if _, seen := queued[code]; seen {
			continue
		}
		if item, ok := s.cache.Get(code); ok {
			found[code] = item
			continue
		}
		queued[code] = struct{}{}
		missing = append(missing, code)
	}

	if len(missing) == 0 {
		return found, nil
	}

	items, err := s.repo.GetItemsByCodes(ctx, missing)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetItemsFailed, err)
	}
	for _, item := range items {
		s.cache.Set(item)
		found[item.Code] = item
	}

	for _, code := range missing {
		if _, ok := found[code]; !ok {
			return nil, fmt.Errorf("%w: %d", domain.ErrItemNotFound, code)
		}
	}
	return found, nil
}

func (s *service) InvalidateCache() {
	s.cache.Clear()
	logger.FromContext(context.Background()).Info(LogMsgCacheInvalidated)
}
