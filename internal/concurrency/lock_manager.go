package concurrency

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/semaphore"
)

// LockManager именованные блокировки. Запись живёт, пока её кто-то держит
// или ждёт, после последнего освобождения удаляется.
type LockManager struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	sem  *semaphore.Weighted
	refs int
}

func NewLockManager() *LockManager {
	return &LockManager{locks: make(map[string]*entry)}
}

// Lock ждёт блокировку key не дольше ctx. Вернувшуюся функцию вызвать один раз.
func (lm *LockManager) Lock(ctx context.Context, key string) (func(), error) {
	e := lm.acquire(key)
	if err := e.sem.Acquire(ctx, 1); err != nil {
		lm.release(key, e)
		return nil, fmt.Errorf("lock %s: %w", key, err)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			e.sem.Release(1)
			lm.release(key, e)
		})
	}, nil
}

// LockPlayer все изменения баланса одного игрока идут по очереди
func (lm *LockManager) LockPlayer(ctx context.Context, playerID int64) (func(), error) {
	return lm.Lock(ctx, fmt.Sprintf("player:%d", playerID))
}

// Len число живых записей
func (lm *LockManager) Len() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.locks)
}

func (lm *LockManager) acquire(key string) *entry {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	e, ok := lm.locks[key]
	if !ok {
		e = &entry{sem: semaphore.NewWeighted(1)}
		lm.locks[key] = e
	}
	e.refs++
	return e
}

func (lm *LockManager) release(key string, e *entry) {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(lm.locks, key)
	}
}
