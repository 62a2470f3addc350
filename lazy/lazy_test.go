package lazy

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLazy(t *testing.T) {
	t.Parallel()

	calls := 0
	val := New(func() string {
		calls++

		return "pod-1"
	})

	assert.False(t, val.Initialized())
	assert.Equal(t, "pod-1", val.Get())
	assert.Equal(t, "pod-1", val.Get())
	assert.True(t, val.Initialized())
	assert.Equal(t, 1, calls)
}

func TestLazySet(t *testing.T) {
	t.Parallel()

	val := New(func() int {
		t.Fatal("callback must not run after Set")

		return 0
	})

	val.Set(6)
	assert.Equal(t, 6, val.Get())
}

func TestLazyPanicRetries(t *testing.T) {
	t.Parallel()

	attempts := 0
	val := New(func() int {
		attempts++
		if attempts == 1 {
			panic("first attempt fails")
		}

		return attempts
	})

	assert.Panics(t, func() { val.Get() })
	assert.False(t, val.Initialized())
	assert.Equal(t, 2, val.Get())
}

func TestLazyConcurrency(t *testing.T) {
	t.Parallel()

	var (
		mu    sync.Mutex
		calls int
		wg    sync.WaitGroup
	)

	val := New(func() int {
		mu.Lock()
		defer mu.Unlock()

		calls++

		return 42
	})

	for range 20 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			assert.Equal(t, 42, val.Get())
		}()
	}

	wg.Wait()
	assert.Equal(t, 1, calls)
}
