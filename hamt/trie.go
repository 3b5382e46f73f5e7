package hamt

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Trie is a concurrent hash-indexed map from 32-bit hashes to values.
//
// All methods may be called from multiple goroutines. Lookups never block and
// never retry; insertions are lock-free: they publish changes with a single
// compare-and-swap and retry on contention.
//
// Entries are identified by hash alone. The key-based methods hash the key
// with the configured hasher and then work on that hash, so two keys with
// equal hashes address the same entry.
//
// A Trie must be created with New. It must not be copied after first use.
type Trie[K comparable, V any] struct {
	root branch[V]
	hash func(K) uint32

	_     cpu.CacheLinePad
	count atomic.Int64
	_     cpu.CacheLinePad
}

// New returns an empty Trie.
//
// Parameters:
//   - options: configuration options (WithHasher)
func New[K comparable, V any](options ...func(*Config[K])) *Trie[K, V] {
	var cfg Config[K]

	for _, opt := range options {
		opt(&cfg)
	}

	var (
		empty    = &branch[V]{}
		children = make([]*twig[V], fanout)
	)

	for i := range children {
		children[i] = newIndirect(empty)
	}

	return &Trie[K, V]{
		root: branch[V]{
			bitmap:   ^uint64(0),
			children: children,
		},
		hash: cfg.keyHasher(),
	}
}

// Len returns the number of entries ever inserted.
func (t *Trie[K, V]) Len() int {
	return int(t.count.Load())
}

// Hash returns the hash the trie uses for key. A nil key hashes to zero.
func (t *Trie[K, V]) Hash(key K) uint32 {
	if any(key) == nil {
		return 0
	}

	return t.hash(key)
}

// Find returns the entry stored under hash, if any.
func (t *Trie[K, V]) Find(hash uint32) (*Entry[V], bool) {
	var (
		cur   = &t.root
		shift = hash
	)

	for {
		pos := position(shift)

		if cur.bitmap&pos == 0 {
			return nil, false // empty slot
		}

		child := cur.children[index(cur.bitmap, pos)]

		if child.isLeaf() {
			if child.entry.hash == hash {
				return child.entry, true
			}

			return nil, false // another hash owns the path
		}

		cur = child.next.Load()
		shift >>= chunkBits
	}
}

// GetOrInsert returns the entry stored under hash, inserting a new one that
// holds the zero value when absent.
//
// Concurrent calls with the same hash all return the same *Entry, and only
// one of them increments Len.
func (t *Trie[K, V]) GetOrInsert(hash uint32) *Entry[V] {
	e, _ := t.getOrInsert(hash, nil)

	return e
}

// GetOrInsertKey is GetOrInsert for the hash of key.
func (t *Trie[K, V]) GetOrInsertKey(key K) *Entry[V] {
	return t.GetOrInsert(t.Hash(key))
}

// Lookup returns the value stored under the hash of key.
// The ok result indicates whether an entry was found.
func (t *Trie[K, V]) Lookup(key K) (value V, ok bool) {
	e, ok := t.Find(t.Hash(key))
	if !ok {
		return value, false
	}

	return e.Load(), true
}

// Store sets the value under the hash of key, inserting an entry when absent.
func (t *Trie[K, V]) Store(key K, value V) {
	e, created := t.getOrInsert(t.Hash(key), func() V { return value })
	if !created {
		e.Store(value)
	}
}

// LoadOrStore returns the existing value under the hash of key if present.
// Otherwise, it inserts an entry holding value and returns value.
// The loaded result is true if the value was loaded, false if stored.
func (t *Trie[K, V]) LoadOrStore(key K, value V) (actual V, loaded bool) {
	return t.LoadOrCompute(key, func() V { return value })
}

// LoadOrCompute is similar to LoadOrStore, but computes the value lazily.
// fn is called at most once, and only when the call has to create an entry;
// its result is discarded if another goroutine inserts the same hash first.
func (t *Trie[K, V]) LoadOrCompute(key K, fn func() V) (actual V, loaded bool) {
	e, created := t.getOrInsert(t.Hash(key), fn)

	return e.Load(), !created
}

// getOrInsert finds the entry for hash or publishes a new one. A new entry is
// born holding init() (or the zero value when init is nil), so no reader can
// observe it empty. The created result reports whether this call published
// the entry.
func (t *Trie[K, V]) getOrInsert(hash uint32, init func() V) (e *Entry[V], created bool) {
	var value *V

	candidate := func() *Entry[V] {
		if value == nil && init != nil {
			v := init()
			value = &v
		}

		return newEntry(hash, value)
	}

	for {
		var (
			cell  *twig[V] // the indirection holding cur
			cur   = &t.root
			shift = hash
			level uint
			pos   = position(shift)
		)

		for cur.bitmap&pos != 0 {
			var (
				idx   = index(cur.bitmap, pos)
				child = cur.children[idx]
			)

			if !child.isLeaf() {
				// descend
				cell, cur = child, child.next.Load()
				shift >>= chunkBits
				level++
				pos = position(shift)

				continue
			}

			if child.entry.hash == hash {
				return child.entry, false
			}

			// a different hash owns the slot - push both one level down
			e = candidate()
			next := cur.replaced(idx, split(child, newLeaf(e), level+1))

			if cell.next.CompareAndSwap(cur, next) {
				t.count.Add(1)

				return e, true
			}

			// the branch changed under us - retry this level only
			cur = cell.next.Load()
		}

		// the slot is empty - add a leaf
		e = candidate()

		if cell.next.CompareAndSwap(cur, cur.inserted(pos, newLeaf(e))) {
			t.count.Add(1)

			return e, true
		}
	}
}
