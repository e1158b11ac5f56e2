package trie

import (
	"fmt"
	"sort"

	"github.com/hideo55/go-popcount"
)

const asciiLimit = 128 // runes below this are tracked in the bitmap

// Kind tells which variant a node is.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindLeaf
	KindBranch
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindLeaf:
		return "Leaf"
	case KindBranch:
		return "Branch"
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

type node[T any] interface {
	kind() Kind
	isTerminal() bool
}

type payload[T any] struct {
	val T
	set bool
}

type empty[T any] struct{}

type leaf[T any] struct {
	payload[T]
	terminal bool
}

type branch[T any] struct {
	payload[T]
	terminal bool
	ascii    [2]uint64 // presence bitmap of ASCII children
	edges    []edge[T] // sorted by rune
}

type edge[T any] struct {
	r    rune
	node node[T]
}

func (empty[T]) kind() Kind       { return KindEmpty }
func (empty[T]) isTerminal() bool { return false }

func (*leaf[T]) kind() Kind         { return KindLeaf }
func (l *leaf[T]) isTerminal() bool { return l.terminal }

func (*branch[T]) kind() Kind         { return KindBranch }
func (b *branch[T]) isTerminal() bool { return b.terminal }

// grow returns a branch standing for n: a branch is returned as is, an empty
// node or a leaf is promoted keeping its payload and terminal flag.
func grow[T any](n node[T]) *branch[T] {
	switch n := n.(type) {
	case *branch[T]:
		return n
	case *leaf[T]:
		return &branch[T]{payload: n.payload, terminal: n.terminal}
	case empty[T]:
		return &branch[T]{}
	}

	panic(badNode(n))
}

// index returns a slot of the r child and whether it is present.
// When it is absent the slot is where it has to be inserted.
func (b *branch[T]) index(r rune) (int, bool) {
	if r >= 0 && r < asciiLimit {
		var (
			ofs = r >> 6
			bit = uint(r & 0x3F) // the lowest 6 bits (2**6 == 64)
			bmp = b.ascii[ofs]
			cnt = popcount.Count(bmp & (uint64(1)<<bit - 1))
		)

		if ofs == 1 {
			cnt += popcount.Count(b.ascii[0])
		}

		return int(cnt), (bmp>>bit)&1 != 0
	}

	var (
		num  = int(popcount.Count(b.ascii[0]) + popcount.Count(b.ascii[1]))
		tail = b.edges[num:]
		idx  = sort.Search(len(tail), func(i int) bool { return tail[i].r >= r })
	)

	return num + idx, idx < len(tail) && tail[idx].r == r
}

func (b *branch[T]) child(r rune) node[T] {
	if idx, ok := b.index(r); ok {
		return b.edges[idx].node
	}

	return nil
}

// put sets (or replaces) the r child.
func (b *branch[T]) put(r rune, n node[T]) {
	idx, ok := b.index(r)
	if ok {
		b.edges[idx].node = n
		return
	}

	b.edges = append(b.edges, edge[T]{})
	copy(b.edges[idx+1:], b.edges[idx:])
	b.edges[idx] = edge[T]{r: r, node: n}

	if r >= 0 && r < asciiLimit {
		b.ascii[r>>6] |= uint64(1) << uint(r&0x3F)
	}
}

// del drops the r child and reports whether it was there.
func (b *branch[T]) del(r rune) bool {
	idx, ok := b.index(r)
	if !ok {
		return false
	}

	copy(b.edges[idx:], b.edges[idx+1:])
	b.edges[len(b.edges)-1] = edge[T]{} // let the subtree go
	b.edges = b.edges[:len(b.edges)-1]

	if r >= 0 && r < asciiLimit {
		b.ascii[r>>6] &^= uint64(1) << uint(r&0x3F)
	}

	return true
}

func payloadOf[T any](n node[T]) payload[T] {
	switch n := n.(type) {
	case *leaf[T]:
		return n.payload
	case *branch[T]:
		return n.payload
	case empty[T]:
		panic("trie: payload of an empty node")
	}

	panic(badNode(n))
}

// countKeys returns the number of terminal nodes in the n subtree.
func countKeys[T any](n node[T]) int {
	num := 0
	if n.isTerminal() {
		num++
	}

	if b, ok := n.(*branch[T]); ok {
		for _, e := range b.edges {
			num += countKeys[T](e.node)
		}
	}

	return num
}

func badNode(n interface{}) string {
	if n == nil {
		return "trie: nil node"
	}

	return fmt.Sprintf("trie: unexpected node %T", n)
}
