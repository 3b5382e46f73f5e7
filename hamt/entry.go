package hamt

import (
	"fmt"
	"sync/atomic"
)

// Entry is the value slot of a leaf. It keeps the full hash the entry was
// inserted under and a value that may be read and replaced concurrently.
//
// A new Entry holds the zero value of V until something is stored.
type Entry[V any] struct {
	hash  uint32
	value atomic.Pointer[V]
}

func newEntry[V any](hash uint32, value *V) *Entry[V] {
	e := &Entry[V]{hash: hash}
	if value != nil {
		e.value.Store(value)
	}

	return e
}

// Hash returns the full hash of the entry.
func (e *Entry[V]) Hash() uint32 {
	return e.hash
}

// Load returns the current value.
func (e *Entry[V]) Load() V {
	if p := e.value.Load(); p != nil {
		return *p
	}

	var zero V

	return zero
}

// Store replaces the value.
func (e *Entry[V]) Store(val V) {
	e.value.Store(&val)
}

// Swap replaces the value and returns the previous one.
func (e *Entry[V]) Swap(val V) V {
	if p := e.value.Swap(&val); p != nil {
		return *p
	}

	var zero V

	return zero
}

// Update replaces the value with fn(old) and returns what was installed.
// fn may be called more than once when other writers interleave.
func (e *Entry[V]) Update(fn func(old V) V) V {
	for {
		var (
			p   = e.value.Load()
			old V
		)

		if p != nil {
			old = *p
		}

		val := fn(old)

		if e.value.CompareAndSwap(p, &val) {
			return val
		}
	}
}

func (e *Entry[V]) String() string {
	return fmt.Sprintf("<hamt|Entry|hash:0x%08x|%v>", e.hash, e.Load())
}
