// Package hamt defines a lock-free concurrent Hash Array Mapped Trie that maps
// 32-bit hashes to values.
//
// A trie consists of immutable branches connected through twigs. Every twig is
// either a leaf or an indirection:
//
//   - leaf        - carries an *Entry holding the full original hash and a value;
//   - indirection - an atomic pointer to the branch one level below.
//
// Writers never modify a published branch. Growing the trie means building a
// new branch and compare-and-swapping it into the indirection that holds the
// old one. A losing writer throws its candidate away and retries, so readers
// never block and never see a half-built branch.
//
// Branch structure:
// ----------------
//
//	[        64-bit bitmap        ] [ children: popcount(bitmap) twigs ]
//	 bit i set <=> chunk i present   dense, ordered by chunk
//
// The child for chunk i lives at index popcount(bitmap & (1<<i - 1)).
//
// Hash consumption:
// ----------------
//
// Each level consumes the next 6 bits of the hash, least significant first:
//
//	level:     5    4      3      2      1      0
//	bits:     [31-30|29-24 |23-18 |17-12 |11-06 |05-00 ]
//
// The root sits at level 0. It always has all 64 bits set, and each of its
// children starts as an indirection to a shared empty branch, so the first
// descent never needs a special case.
//
// Two leaves only share a branch slot's prefix until their chunks diverge; a
// collision grows exactly as many nested branches as there are equal chunks
// below the current level.
//
// Example trie holding 0x00000001, 0x00001001 and 0x00000005:
// ----------------------------------------------------------
//
//	[root:all-ones] --+-- [01] -- [branch] --+-- [00] -- [branch] --+-- [00] -- [leaf:0x00000001]
//	                  |                                             `-- [01] -- [leaf:0x00001001]
//	                  `-- [05] -- [branch] ----- [00] -- [leaf:0x00000005]
//
// Entries are never removed, and the live count only grows.
package hamt
