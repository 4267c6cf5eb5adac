package economy

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/osse101/Outfitter_Go/internal/domain"
	"github.com/osse101/Outfitter_Go/internal/repository"
)

// memStore is an in-memory repository.Economy. Each transaction works on a
// private copy of one character's rows, taken after the character's row lock
// is acquired, and publishes it only on Commit.
type memStore struct {
	mu         sync.Mutex
	characters map[int64]*domain.Character
	lines      map[int64]map[int]int
	equipped   map[int64]map[int]domain.EquippedItem
	items      map[int]domain.Item
	rowLocks   map[int64]*sync.Mutex
	nextEquip  int64

	// failOn makes the named tx method return the error
	failOn map[string]error
}

func newMemStore(items ...domain.Item) *memStore {
	s := &memStore{
		characters: make(map[int64]*domain.Character),
		lines:      make(map[int64]map[int]int),
		equipped:   make(map[int64]map[int]domain.EquippedItem),
		items:      make(map[int]domain.Item),
		rowLocks:   make(map[int64]*sync.Mutex),
		failOn:     make(map[string]error),
	}
	for _, item := range items {
		s.items[item.Code] = item
	}
	return s
}

func (s *memStore) addCharacter(id, accountID int64, money int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.characters[id] = &domain.Character{
		ID:        id,
		AccountID: accountID,
		Name:      "hero",
		Money:     money,
		Stats:     domain.BaseStats(),
	}
	s.lines[id] = make(map[int]int)
	s.equipped[id] = make(map[int]domain.EquippedItem)
	s.rowLocks[id] = &sync.Mutex{}
}

func (s *memStore) setLine(characterID int64, itemCode, count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines[characterID][itemCode] = count
}

func (s *memStore) inject(method string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failOn[method] = err
}

func (s *memStore) injected(method string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failOn[method]
}

// snapshot returns a committed copy of a character
func (s *memStore) snapshot(characterID int64) domain.Character {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *s.characters[characterID]
	c.Stats = c.Stats.Clone()
	return c
}

func (s *memStore) lineCount(characterID int64, itemCode int) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	count, ok := s.lines[characterID][itemCode]
	return count, ok
}

func (s *memStore) isEquipped(characterID int64, itemCode int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.equipped[characterID][itemCode]
	return ok
}

func (s *memStore) GetCharacter(_ context.Context, characterID int64) (*domain.Character, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.characters[characterID]
	if !ok {
		return nil, domain.ErrCharacterNotFound
	}
	out := *c
	out.Stats = c.Stats.Clone()
	return &out, nil
}

func (s *memStore) ListInventory(_ context.Context, characterID int64) ([]domain.InventoryLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.InventoryLine, 0, len(s.lines[characterID]))
	for code, count := range s.lines[characterID] {
		out = append(out, domain.InventoryLine{CharacterID: characterID, ItemCode: code, Name: s.items[code].Name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemCode < out[j].ItemCode })
	return out, nil
}

func (s *memStore) ListEquipment(_ context.Context, characterID int64) ([]domain.EquippedItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.EquippedItem, 0, len(s.equipped[characterID]))
	for _, item := range s.equipped[characterID] {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemCode < out[j].ItemCode })
	return out, nil
}

func (s *memStore) BeginTx(_ context.Context) (repository.EconomyTx, error) {
	if err := s.injected("BeginTx"); err != nil {
		return nil, err
	}
	return &memTx{store: s}, nil
}

// memTx is a unit of work over a single character
type memTx struct {
	store  *memStore
	locked *sync.Mutex
	closed bool

	characterID int64
	character   domain.Character
	lines       map[int]int
	equipped    map[int]domain.EquippedItem
}

var errTxClosed = errors.New(domain.ErrMsgTxClosed)

func (t *memTx) release() {
	t.closed = true
	if t.locked != nil {
		t.locked.Unlock()
		t.locked = nil
	}
}

func (t *memTx) Commit(_ context.Context) error {
	if t.closed {
		return errTxClosed
	}
	if err := t.store.injected("Commit"); err != nil {
		return err
	}
	if t.locked != nil {
		t.store.mu.Lock()
		c := t.character
		t.store.characters[t.characterID] = &c
		t.store.lines[t.characterID] = t.lines
		t.store.equipped[t.characterID] = t.equipped
		t.store.mu.Unlock()
	}
	t.release()
	return nil
}

func (t *memTx) Rollback(_ context.Context) error {
	if t.closed {
		return errTxClosed
	}
	t.release()
	return nil
}

func (t *memTx) GetCharacterForUpdate(_ context.Context, characterID int64) (*domain.Character, error) {
	if err := t.store.injected("GetCharacterForUpdate"); err != nil {
		return nil, err
	}
	t.store.mu.Lock()
	rowLock, ok := t.store.rowLocks[characterID]
	t.store.mu.Unlock()
	if !ok {
		return nil, domain.ErrCharacterNotFound
	}

	rowLock.Lock()
	t.locked = rowLock
	t.characterID = characterID

	// Re-read after the lock, like a row lock under read committed
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	t.character = *t.store.characters[characterID]
	t.character.Stats = t.character.Stats.Clone()
	t.lines = make(map[int]int, len(t.store.lines[characterID]))
	for code, count := range t.store.lines[characterID] {
		t.lines[code] = count
	}
	t.equipped = make(map[int]domain.EquippedItem, len(t.store.equipped[characterID]))
	for code, item := range t.store.equipped[characterID] {
		t.equipped[code] = item
	}

	out := t.character
	out.Stats = t.character.Stats.Clone()
	return &out, nil
}

func (t *memTx) AdjustMoney(_ context.Context, _ int64, delta int) (int, error) {
	if err := t.store.injected("AdjustMoney"); err != nil {
		return 0, err
	}
	if t.character.Money+delta < 0 {
		return 0, domain.ErrInsufficientFunds
	}
	t.character.Money += delta
	return t.character.Money, nil
}

func (t *memTx) AdjustStats(_ context.Context, _ int64, stats domain.Stats) error {
	if err := t.store.injected("AdjustStats"); err != nil {
		return err
	}
	t.character.Stats = stats.Clone()
	return nil
}

func (t *memTx) GetInventoryLine(_ context.Context, characterID int64, itemCode int) (*domain.InventoryLine, error) {
	count, ok := t.lines[itemCode]
	if !ok {
		return nil, nil
	}
	return &domain.InventoryLine{CharacterID: characterID, ItemCode: itemCode, Name: t.store.items[itemCode].Name, Count: count}, nil
}

func (t *memTx) AddInventory(_ context.Context, _ int64, itemCode, count int) (int, error) {
	if err := t.store.injected("AddInventory"); err != nil {
		return 0, err
	}
	t.lines[itemCode] += count
	return t.lines[itemCode], nil
}

func (t *memTx) RemoveInventory(_ context.Context, _ int64, itemCode, count int) (int, error) {
	current, ok := t.lines[itemCode]
	if !ok {
		return 0, domain.ErrItemNotOwned
	}
	if current < count {
		return 0, domain.ErrInsufficientStock
	}
	if current == count {
		delete(t.lines, itemCode)
		return 0, nil
	}
	t.lines[itemCode] = current - count
	return t.lines[itemCode], nil
}

func (t *memTx) GetEquippedItem(_ context.Context, _ int64, itemCode int) (*domain.EquippedItem, error) {
	item, ok := t.equipped[itemCode]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (t *memTx) InsertEquippedItem(_ context.Context, characterID int64, itemCode int, stats domain.Stats) (*domain.EquippedItem, error) {
	if _, ok := t.equipped[itemCode]; ok {
		return nil, domain.ErrAlreadyEquipped
	}
	t.store.mu.Lock()
	t.store.nextEquip++
	id := t.store.nextEquip
	t.store.mu.Unlock()

	item := domain.EquippedItem{ID: id, CharacterID: characterID, ItemCode: itemCode, Name: t.store.items[itemCode].Name, Stats: stats.Clone()}
	t.equipped[itemCode] = item
	return &item, nil
}

func (t *memTx) DeleteEquippedItem(_ context.Context, _ int64, itemCode int) (*domain.EquippedItem, error) {
	item, ok := t.equipped[itemCode]
	if !ok {
		return nil, domain.ErrNotEquipped
	}
	delete(t.equipped, itemCode)
	return &item, nil
}

// memCatalog serves items straight from the store
type memCatalog struct {
	store *memStore
}

func (c memCatalog) Lookup(_ context.Context, itemCode int) (*domain.Item, error) {
	item, ok := c.store.items[itemCode]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	item.Stats = item.Stats.Clone()
	return &item, nil
}

func (c memCatalog) LookupMany(ctx context.Context, itemCodes []int) (map[int]domain.Item, error) {
	out := make(map[int]domain.Item, len(itemCodes))
	for _, code := range itemCodes {
		item, err := c.Lookup(ctx, code)
		if err != nil {
			return nil, err
		}
		out[code] = *item
	}
	return out, nil
}
