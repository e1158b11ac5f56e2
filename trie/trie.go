package trie

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrKeyAlreadyExists is returned when inserting a key that is already stored.
var ErrKeyAlreadyExists = errors.New("key already exists")

// Item represents a key-payload pair.
type Item[T any] struct {
	Key string
	Val T
}

// Trie is a prefix tree keyed by runes. The zero value is an empty trie ready
// to use.
type Trie[T any] struct {
	root node[T]
	size int
}

// New returns an empty Trie.
func New[T any]() *Trie[T] {
	return &Trie[T]{root: empty[T]{}}
}

// From returns a new Trie initialized with the given items. It fails on the
// first duplicate key.
func From[T any](items ...Item[T]) (*Trie[T], error) {
	t := New[T]()

	for _, item := range items {
		if _, err := t.Insert(item.Key, item.Val); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Len returns the number of keys in the trie.
func (t *Trie[T]) Len() int {
	return t.size
}

func (t *Trie[T]) IsEmpty() bool {
	return t.top().kind() == KindEmpty
}

func (t *Trie[T]) top() node[T] {
	if t.root == nil {
		return empty[T]{}
	}

	return t.root
}

// Insert stores key with the val payload and returns a handle to its node.
// An already stored key is never overwritten: the call fails with
// ErrKeyAlreadyExists and the trie is left unchanged.
func (t *Trie[T]) Insert(key string, val T) (Node[T], error) {
	return t.insert(key, payload[T]{val: val, set: true})
}

// InsertKey stores key without a payload.
func (t *Trie[T]) InsertKey(key string) (Node[T], error) {
	return t.insert(key, payload[T]{})
}

func (t *Trie[T]) insert(key string, p payload[T]) (Node[T], error) {
	root, target, err := insert(t.top(), key, p)
	if err != nil {
		return Node[T]{}, fmt.Errorf("%w: %q", err, key)
	}

	t.root = root
	t.size++

	return Node[T]{target}, nil
}

// insert adds the key suffix below n. It returns the node replacing n in its
// parent and the node the key ends at.
func insert[T any](n node[T], key string, p payload[T]) (node[T], node[T], error) {
	if key == "" {
		switch n := n.(type) {
		case empty[T]:
			l := &leaf[T]{payload: p, terminal: true}
			return l, l, nil
		case *leaf[T]:
			if n.terminal {
				return n, nil, ErrKeyAlreadyExists
			}
			n.payload, n.terminal = p, true
			return n, n, nil
		case *branch[T]:
			if n.terminal {
				return n, nil, ErrKeyAlreadyExists
			}
			n.payload, n.terminal = p, true
			return n, n, nil
		}

		panic(badNode(n))
	}

	var (
		b       = grow[T](n)
		r, size = utf8.DecodeRuneInString(key)
		child   = b.child(r)
	)

	if child == nil {
		child = empty[T]{}
	}

	child, target, err := insert(child, key[size:], p)
	if err != nil {
		return n, nil, err
	}

	b.put(r, child)

	return b, target, nil
}

// Remove deletes key from the trie and reports whether anything was removed.
//
// With subtree set the key is dropped together with every key extending it.
// Otherwise only the key itself is unmarked and longer keys routed through it
// stay intact. Nodes left without children and without a key of their own are
// pruned all the way up to the nearest ancestor still in use.
func (t *Trie[T]) Remove(key string, subtree bool) bool {
	root, res := remove[T](t.top(), key, subtree)
	if !res.removed {
		return false
	}

	t.root = root
	t.size -= res.keys

	return true
}

// removal is what a remove step reports back to its caller.
type removal struct {
	removed bool // something was removed below
	prune   bool // the caller must drop its edge to this node
	keys    int  // number of keys removed
}

func remove[T any](n node[T], key string, subtree bool) (node[T], removal) {
	if key == "" {
		return removeHere[T](n, subtree)
	}

	b, ok := n.(*branch[T])
	if !ok {
		// a leaf or an empty node has nowhere to descend
		return n, removal{}
	}

	r, size := utf8.DecodeRuneInString(key)

	child := b.child(r)
	if child == nil {
		return n, removal{}
	}

	child, res := remove[T](child, key[size:], subtree)
	if !res.removed {
		return n, res
	}

	if res.prune {
		b.del(r)
	} else {
		b.put(r, child)
	}

	return compact(b, res)
}

func removeHere[T any](n node[T], subtree bool) (node[T], removal) {
	switch n := n.(type) {
	case *leaf[T]:
		if !subtree && !n.terminal {
			return n, removal{}
		}
		return empty[T]{}, removal{removed: true, prune: true, keys: countKeys[T](n)}
	case *branch[T]:
		if subtree {
			return empty[T]{}, removal{removed: true, prune: true, keys: countKeys[T](n)}
		}
		if !n.terminal {
			return n, removal{}
		}
		n.payload, n.terminal = payload[T]{}, false
		return n, removal{removed: true, keys: 1}
	case empty[T]:
		return n, removal{}
	}

	panic(badNode(n))
}

// compact turns a childless branch into a leaf, or asks the caller to prune
// it when it neither marks a key nor holds a payload.
func compact[T any](b *branch[T], res removal) (node[T], removal) {
	res.prune = false

	if len(b.edges) != 0 {
		return b, res
	}

	if b.terminal || b.set {
		return &leaf[T]{payload: b.payload, terminal: b.terminal}, res
	}

	res.prune = true

	return empty[T]{}, res
}
