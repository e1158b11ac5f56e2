// Package trie defines a generic mutable prefix tree keyed by Unicode code points.
//
// Every key is a string consumed one rune at a time; each edge of the tree is
// labelled by a single rune and each path from the root spells a key prefix.
// A key may carry an optional payload of the element type T.
//
// Node variants:
// -------------
//
//   - Empty  - no payload, not terminal, no children. Only the root of an
//     empty trie is Empty.
//   - Leaf   - optional payload and a terminal flag, never has children.
//   - Branch - optional payload, a terminal flag and at least one child.
//
// A Branch that loses its last child is compacted into a Leaf (when it still
// marks a key or holds a payload) or removed from its parent altogether, so
// no zero-child Branch ever survives an operation.
//
// Branch children:
// ---------------
//
// Children are kept in a slice sorted by rune. ASCII runes always sort first,
// and their presence is tracked in a 128-bit bitmap:
//
//	[      ascii[0]       ] [      ascii[1]       ] [ edges ............... ]
//	<bits for runes 0..63>  <bits for runes 64..127> <ascii...> <non-ascii...>
//
// The slot of an ASCII child is the popcount of the bitmap bits below it; the
// non-ASCII tail is binary searched.
//
// Example trie:
// ------------
//
//	[branch] --+-- 'a' [branch:terminal (1)] -- 'b' [branch] -- 'c' [leaf:terminal (2)]
//	           |
//	           +-- 'd' [leaf:terminal (3)]
//	           |
//	           `-- 'e' [leaf:terminal (4)]
//
// The trie above contains the keys "a", "abc", "d" and "e" and renders as:
//
//	a  (1)
//	 bc  (2)
//	d  (3)
//	e  (4)
//
// A Trie is not safe for concurrent use; callers sharing one must serialize
// access themselves.
package trie
