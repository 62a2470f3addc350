// Package lazy defers computing a value until it is first needed.
package lazy

import (
	"sync"
)

// Of is a lazy value that is initialized at most once.
type Of[T any] struct {
	mu     sync.Mutex
	create func() T
	value  T
	done   bool
}

// New creates a new lazy value. The callback runs on the first Get.
func New[T any](f func() T) *Of[T] {
	return &Of[T]{create: f}
}

// Get returns the value, computing it if necessary. If the callback
// panics the value stays uninitialized and the next Get tries again.
func (t *Of[T]) Get() T { //nolint:ireturn
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.done && t.create != nil {
		t.value = t.create()
		t.done = true
		t.create = nil
	}

	return t.value
}

// Set replaces the value, skipping the callback if it has not run yet.
func (t *Of[T]) Set(value T) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.create = nil
	t.value = value
	t.done = true
}

// Initialized reports whether the value has been computed or set.
func (t *Of[T]) Initialized() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.done
}
