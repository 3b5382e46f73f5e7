package hamt

import (
	"fmt"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

// hashToChunkString renders a hash as its 6-bit chunks, lowest level first.
//
//	0x00001001 -> "000001_000000_000001_000000_000000_00"
func hashToChunkString(hash uint32) string {
	var buf strings.Builder

	for level := uint(0); level <= maxLevel; level++ {
		width := chunkBits
		if level == maxLevel {
			width = hashBits - maxLevel*chunkBits
		}

		buf.WriteString(fmt.Sprintf("%0*b", width, chunk(hash, level)))

		if level != maxLevel {
			buf.WriteByte('_')
		}
	}

	return buf.String()
}

// getHashes returns total distinct pseudo-random hashes.
func getHashes(total int) []uint32 {
	const seed = 1234567890

	var (
		faker  = gofakeit.New(seed)
		seen   = make(map[uint32]struct{}, total)
		hashes = make([]uint32, 0, total)
	)

	for len(hashes) < total {
		h := faker.Uint32()

		if _, ok := seen[h]; ok {
			continue
		}

		seen[h] = struct{}{}
		hashes = append(hashes, h)
	}

	return hashes
}

// getColliding returns total distinct hashes that share their two lowest
// chunks, so every one of them lands under the same root slot and the same
// level-1 slot.
func getColliding(total int) []uint32 {
	hashes := make([]uint32, total)

	for i := range hashes {
		hashes[i] = 0x2A | uint32(i)<<(2*chunkBits)
	}

	return hashes
}

func mustFind[V any](t testing.TB, tr *Trie[uint32, V], hash uint32) *Entry[V] {
	t.Helper()

	e, ok := tr.Find(hash)
	require.True(t, ok, "hash %s is missing", hashToChunkString(hash))
	require.NotNil(t, e)

	return e
}
