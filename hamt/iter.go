package hamt

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

// Range calls fn sequentially for each entry present in the trie.
// If fn returns false, Range stops the iteration.
//
// Range does not correspond to a consistent snapshot: entries inserted
// concurrently may or may not be visited, but no entry is visited twice.
// Range never blocks writers, and fn may call any method on the trie.
func (t *Trie[K, V]) Range(fn func(hash uint32, e *Entry[V]) bool) {
	walk(&t.root, fn)
}

// All returns an iterator over each hash and entry present in the trie.
// It provides the same guarantees as Range.
func (t *Trie[K, V]) All() iter.Seq2[uint32, *Entry[V]] {
	return func(yield func(uint32, *Entry[V]) bool) {
		t.Range(yield)
	}
}

func walk[V any](b *branch[V], fn func(uint32, *Entry[V]) bool) bool {
	for _, child := range b.children {
		if child.isLeaf() {
			if !fn(child.entry.hash, child.entry) {
				return false
			}

			continue
		}

		if !walk(child.next.Load(), fn) {
			return false
		}
	}

	return true
}

// Stats describes the shape of a trie at the moment it was taken.
type Stats struct {
	Leaves   int // entries reachable from the root
	Branches int // non-empty branches below the root
	Depth    int // branches on the longest root-to-leaf path, root included
}

// Stats walks the trie and reports its shape.
func (t *Trie[K, V]) Stats() Stats {
	var st Stats

	census(&t.root, 1, &st)

	return st
}

func census[V any](b *branch[V], depth int, st *Stats) {
	for _, child := range b.children {
		if child.isLeaf() {
			st.Leaves++
			st.Depth = max(st.Depth, depth)

			continue
		}

		next := child.next.Load()
		if len(next.children) != 0 {
			st.Branches++
		}

		census(next, depth+1, st)
	}
}

// String dumps the trie one twig per line, skipping empty root slots.
func (t *Trie[K, V]) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "<hamt|Trie|len:%d>\n", t.Len())
	dump(&b, &t.root, "  ")

	return b.String()
}

func dump[V any](b *strings.Builder, br *branch[V], indent string) {
	bitmap := br.bitmap

	for _, child := range br.children {
		slot := bits.TrailingZeros64(bitmap)
		bitmap &= bitmap - 1 // drop the lowest set bit

		if child.isLeaf() {
			fmt.Fprintf(b, "%s[%02d] %v\n", indent, slot, child.entry)

			continue
		}

		next := child.next.Load()
		if len(next.children) == 0 {
			continue
		}

		fmt.Fprintf(b, "%s[%02d] <hamt|Branch|bmp:%#016x>\n", indent, slot, next.bitmap)
		dump(b, next, indent+"  ")
	}
}
