package concurrency

import (
	"strconv"
	"sync"
)

// LockManager hands out one mutex per key. Holders of different keys never contend.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns a mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// LockCharacter acquires the mutex for a character and returns its release func
func (lm *LockManager) LockCharacter(characterID int64) func() {
	mu := lm.GetLock(CharacterKey(characterID))
	mu.Lock()
	return mu.Unlock
}

// Forget drops the mutex for a key that will never be used again (e.g. a deleted character).
// Callers must not hold the lock.
func (lm *LockManager) Forget(key string) {
	lm.locks.Delete(key)
}

// CharacterKey is the lock key for a character id
func CharacterKey(characterID int64) string {
	return "character:" + strconv.FormatInt(characterID, 10)
}
