package concurrency

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockManager_SerializesSameKey(t *testing.T) {
	lm := NewLockManager()
	ctx := context.Background()

	var inside int32
	var maxInside int32
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := lm.Lock(ctx, "player-1")
			require.NoError(t, err)
			defer unlock()

			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxInside)
				if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside, "only one holder at a time")
}

func TestLockManager_DifferentKeysDoNotBlock(t *testing.T) {
	lm := NewLockManager()
	ctx := context.Background()

	unlockA, err := lm.Lock(ctx, "player-a")
	require.NoError(t, err)
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB, err := lm.Lock(ctx, "player-b")
		if err == nil {
			unlockB()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on a different key should not block")
	}
}

func TestLockManager_LockHonoursContext(t *testing.T) {
	lm := NewLockManager()

	unlock, err := lm.Lock(context.Background(), "player-1")
	require.NoError(t, err)
	defer unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = lm.Lock(ctx, "player-1")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLockManager_UnlockIsIdempotent(t *testing.T) {
	lm := NewLockManager()

	unlock, ok := lm.TryLock("player-1")
	require.True(t, ok)

	_, ok = lm.TryLock("player-1")
	assert.False(t, ok)

	unlock()
	unlock()

	unlock2, ok := lm.TryLock("player-1")
	require.True(t, ok)
	unlock2()
}

func TestLockManager_ReleasesIdleKeys(t *testing.T) {
	lm := NewLockManager()
	ctx := context.Background()

	for i := 0; i < 100; i++ {
		unlock, err := lm.Lock(ctx, fmt.Sprintf("player-%d", i))
		require.NoError(t, err)
		unlock()
	}
	assert.Equal(t, 0, lm.Len(), "unlocked keys are forgotten")

	_, ok := lm.TryLock("player-x")
	require.True(t, ok)
	_, ok = lm.TryLock("player-x")
	assert.False(t, ok)
	assert.Equal(t, 1, lm.Len(), "a failed TryLock does not pin a second entry")
}

func TestLockManager_ContendedKeyStaysUntilLastRelease(t *testing.T) {
	lm := NewLockManager()

	unlock, err := lm.Lock(context.Background(), "player-1")
	require.NoError(t, err)

	// A waiter that gives up drops its reference without touching the holder
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = lm.Lock(ctx, "player-1")
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, lm.Len())

	waiterDone := make(chan struct{})
	go func() {
		defer close(waiterDone)
		unlockWaiter, err := lm.Lock(context.Background(), "player-1")
		if err == nil {
			unlockWaiter()
		}
	}()

	// Entry must survive the holder's release while the waiter still needs it
	unlock()
	<-waiterDone
	assert.Equal(t, 0, lm.Len())

	unlock()
	assert.Equal(t, 0, lm.Len(), "a repeated unlock is a no-op")
}
