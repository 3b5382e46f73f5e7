package hamt

import (
	"sync/atomic"

	"github.com/hideo55/go-popcount"
)

const (
	chunkBits = 6                         // hash bits consumed per level
	fanout    = 1 << chunkBits            // children per branch (== bitmap width)
	chunkMask = fanout - 1                // 0b_111111
	hashBits  = 32                        // width of a hash key
	maxLevel  = (hashBits - 1) / chunkBits // deepest level that still has hash bits
)

// branch is an internal node. It is immutable once published.
type branch[V any] struct {
	bitmap   uint64     // bit i set <=> a child occupies chunk i
	children []*twig[V] // len(children) == popcount(bitmap)
}

// twig is a uniform child of a branch (meaning either a leaf or an
// indirection to a deeper branch).
type twig[V any] struct {
	entry *Entry[V]                 // leaf payload, nil for an indirection
	next  atomic.Pointer[branch[V]] // the branch below an indirection
}

func newLeaf[V any](e *Entry[V]) *twig[V] {
	return &twig[V]{entry: e}
}

func newIndirect[V any](b *branch[V]) *twig[V] {
	tw := &twig[V]{}
	tw.next.Store(b)

	return tw
}

func (tw *twig[V]) isLeaf() bool {
	return tw.entry != nil
}

// position returns the bitmap bit selected by the lowest chunk of shift.
func position(shift uint32) uint64 {
	return uint64(1) << (shift & chunkMask)
}

// chunk returns the 6-bit chunk of hash consumed at the given level.
func chunk(hash uint32, level uint) uint32 {
	return (hash >> (level * chunkBits)) & chunkMask
}

// index maps a bitmap position to the dense index of its child.
func index(bitmap, pos uint64) int {
	return int(popcount.Count(bitmap & (pos - 1)))
}

// inserted returns a copy of b with child added at pos.
func (b *branch[V]) inserted(pos uint64, child *twig[V]) *branch[V] {
	var (
		idx      = index(b.bitmap, pos)
		children = make([]*twig[V], len(b.children)+1)
	)

	copy(children[:idx], b.children[:idx])
	children[idx] = child
	copy(children[idx+1:], b.children[idx:])

	return &branch[V]{
		bitmap:   b.bitmap | pos,
		children: children,
	}
}

// replaced returns a copy of b with the child at idx swapped for child.
func (b *branch[V]) replaced(idx int, child *twig[V]) *branch[V] {
	children := make([]*twig[V], len(b.children))

	copy(children, b.children)
	children[idx] = child

	return &branch[V]{
		bitmap:   b.bitmap,
		children: children,
	}
}

// split builds the subtree holding two leaves whose hashes agree on every
// chunk below level. It nests one branch per equal chunk until they diverge.
func split[V any](a, b *twig[V], level uint) *twig[V] {
	if level > maxLevel {
		panic("hamt: ran out of hash bits while splitting")
	}

	var (
		ca = chunk(a.entry.hash, level)
		cb = chunk(b.entry.hash, level)
	)

	if ca == cb {
		return newIndirect(&branch[V]{
			bitmap:   uint64(1) << ca,
			children: []*twig[V]{split(a, b, level+1)},
		})
	}

	if ca > cb {
		a, b = b, a
		ca, cb = cb, ca
	}

	return newIndirect(&branch[V]{
		bitmap:   uint64(1)<<ca | uint64(1)<<cb,
		children: []*twig[V]{a, b},
	})
}
