package hamt

import (
	"github.com/dolthub/maphash"
	"github.com/spaolacci/murmur3"
)

// Config defines configurable options for Trie initialization.
type Config[K comparable] struct {
	// hasher maps a key to the 32-bit hash the trie is indexed by.
	// Equal keys must produce equal hashes. If nil, a seeded runtime
	// hasher is used.
	hasher func(K) uint32
}

// WithHasher sets the function used to hash keys in Lookup, Store and the
// other key-based methods. Pass nil to use the default hasher.
//
// Keys that hash equally are treated as the same key.
func WithHasher[K comparable](fn func(key K) uint32) func(*Config[K]) {
	return func(c *Config[K]) {
		c.hasher = fn
	}
}

func (c *Config[K]) keyHasher() func(K) uint32 {
	if c.hasher != nil {
		return c.hasher
	}

	h := maphash.NewHasher[K]()

	return func(key K) uint32 {
		sum := h.Hash(key)

		return uint32(sum ^ sum>>32) // fold the high half in
	}
}

// StringHasher hashes a string with 32-bit murmur3.
func StringHasher(key string) uint32 {
	return murmur3.Sum32([]byte(key))
}

// SeededStringHasher returns a murmur3 string hasher using the given seed.
func SeededStringHasher(seed uint32) func(string) uint32 {
	return func(key string) uint32 {
		return murmur3.Sum32WithSeed([]byte(key), seed)
	}
}

// Uint32Hasher uses a uint32 key as its own hash.
func Uint32Hasher(key uint32) uint32 {
	return key
}
