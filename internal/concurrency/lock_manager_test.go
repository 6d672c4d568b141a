package concurrency

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockPlayer_Serializes(t *testing.T) {
	lm := NewLockManager()
	counter := 0

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := lm.LockPlayer(context.Background(), 7)
			if !assert.NoError(t, err) {
				return
			}
			defer unlock()
			v := counter
			counter = v + 1
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
	assert.Zero(t, lm.Len(), "entries must be dropped once nobody holds them")
}

func TestLockPlayer_PlayersIndependent(t *testing.T) {
	lm := NewLockManager()
	ctx := context.Background()

	unlock1, err := lm.LockPlayer(ctx, 1)
	require.NoError(t, err)
	defer unlock1()

	ctx2, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	unlock2, err := lm.LockPlayer(ctx2, 2)
	require.NoError(t, err)
	unlock2()

	assert.Equal(t, 1, lm.Len())
}

func TestLockPlayer_ContextCancelled(t *testing.T) {
	lm := NewLockManager()

	unlock, err := lm.LockPlayer(context.Background(), 7)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = lm.LockPlayer(ctx, 7)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	// ожидавший не оставляет запись за собой, держатель её сохраняет
	assert.Equal(t, 1, lm.Len())

	unlock()
	unlock()
	assert.Zero(t, lm.Len())

	again, err := lm.LockPlayer(context.Background(), 7)
	require.NoError(t, err)
	again()
}
