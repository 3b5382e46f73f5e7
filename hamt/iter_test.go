package hamt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRange(t *testing.T) {
	t.Parallel()

	var (
		tr     = newUint32Trie[uint32]()
		hashes = append(getHashes(1000), getColliding(100)...)
		state  = map[uint32]bool{}
	)

	for _, hash := range hashes {
		tr.GetOrInsert(hash).Store(hash)
		state[hash] = false
	}

	tr.Range(func(hash uint32, e *Entry[uint32]) bool {
		visited, ok := state[hash]

		require.True(t, ok, "unexpected hash %s", hashToChunkString(hash))
		require.False(t, visited, "hash %s visited twice", hashToChunkString(hash))
		assert.Equal(t, hash, e.Load())

		state[hash] = true

		return true
	})

	for hash, visited := range state {
		assert.True(t, visited, hashToChunkString(hash))
	}
}

func TestRange_Stop(t *testing.T) {
	t.Parallel()

	tr := newUint32Trie[int]()

	for _, hash := range getHashes(100) {
		tr.GetOrInsert(hash)
	}

	calls := 0

	tr.Range(func(uint32, *Entry[int]) bool {
		calls++

		return calls < 10
	})

	assert.Equal(t, 10, calls)
}

func TestRange_Empty(t *testing.T) {
	t.Parallel()

	tr := newUint32Trie[int]()

	tr.Range(func(uint32, *Entry[int]) bool {
		t.Fatal("empty trie yielded an entry")

		return false
	})
}

func TestAll(t *testing.T) {
	t.Parallel()

	tr := newUint32Trie[string]()

	tr.GetOrInsert(0x01).Store("a")
	tr.GetOrInsert(0x1001).Store("b")
	tr.GetOrInsert(0x3F).Store("c")

	got := map[uint32]string{}

	for hash, e := range tr.All() {
		got[hash] = e.Load()
	}

	assert.Equal(t, map[uint32]string{0x01: "a", 0x1001: "b", 0x3F: "c"}, got)

	// early break
	n := 0

	for range tr.All() {
		n++

		break
	}

	assert.Equal(t, 1, n)
}

func TestStats(t *testing.T) {
	t.Parallel()

	tr := newUint32Trie[int]()

	assert.Equal(t, Stats{}, tr.Stats())

	tr.GetOrInsert(0x01)
	assert.Equal(t, Stats{Leaves: 1, Branches: 1, Depth: 2}, tr.Stats())

	tr.GetOrInsert(0x41) // same level-1 branch
	assert.Equal(t, Stats{Leaves: 2, Branches: 1, Depth: 2}, tr.Stats())

	tr.GetOrInsert(0x1001) // splits 0x01
	assert.Equal(t, Stats{Leaves: 3, Branches: 2, Depth: 3}, tr.Stats())

	tr.GetOrInsert(0x02) // another root slot
	assert.Equal(t, Stats{Leaves: 4, Branches: 3, Depth: 3}, tr.Stats())
}

func TestString(t *testing.T) {
	t.Parallel()

	tr := newUint32Trie[string]()

	assert.Equal(t, "<hamt|Trie|len:0>\n", tr.String())

	tr.GetOrInsert(0x01).Store("a")
	tr.GetOrInsert(0x1001).Store("b")
	tr.GetOrInsert(0x05).Store("c")

	exp := "" +
		"<hamt|Trie|len:3>\n" +
		"  [01] <hamt|Branch|bmp:0x0000000000000001>\n" +
		"    [00] <hamt|Branch|bmp:0x0000000000000003>\n" +
		"      [00] <hamt|Entry|hash:0x00000001|a>\n" +
		"      [01] <hamt|Entry|hash:0x00001001|b>\n" +
		"  [05] <hamt|Branch|bmp:0x0000000000000001>\n" +
		"    [00] <hamt|Entry|hash:0x00000005|c>\n"

	assert.Equal(t, exp, tr.String())
}
