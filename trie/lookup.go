package trie

import "unicode/utf8"

// Node is a read-only handle to a trie node. It stays valid until the next
// mutation of the trie.
type Node[T any] struct {
	n node[T]
}

func (h Node[T]) Kind() Kind {
	if h.n == nil {
		return KindEmpty
	}

	return h.n.kind()
}

// Terminal reports whether a key ends at the node.
func (h Node[T]) Terminal() bool {
	return h.n != nil && h.n.isTerminal()
}

// Value returns the node payload and whether it is set.
// It panics on an Empty node.
func (h Node[T]) Value() (T, bool) {
	if h.n == nil {
		panic("trie: payload of an empty node")
	}

	p := payloadOf[T](h.n)

	return p.val, p.set
}

// Children returns the runes of the node children in ascending order.
func (h Node[T]) Children() []rune {
	b, ok := h.n.(*branch[T])
	if !ok {
		return nil
	}

	runes := make([]rune, len(b.edges))
	for i, e := range b.edges {
		runes[i] = e.r
	}

	return runes
}

// Match is a result of a prefix search.
type Match[T any] struct {
	Prefix   string  // matched part of the searched key
	Node     Node[T] // node the prefix ends at
	Terminal bool    // a stored key ends at Node
	Full     bool    // the whole searched key was matched
}

type lookupOpts struct {
	mustBeTerminal bool
	mustMatchFully bool
}

// ContainsKey reports whether key is stored in the trie.
func (t *Trie[T]) ContainsKey(key string) bool {
	_, ok := t.Find(key, true)
	return ok
}

// Get returns the payload of a stored key. The flag is false when the key is
// not stored or was stored without a payload.
func (t *Trie[T]) Get(key string) (val T, ok bool) {
	h, found := t.Find(key, true)
	if !found {
		return
	}

	return h.Value()
}

// Find returns the node of exactly key. With mustBeTerminal set the node must
// also mark a stored key; there is no fallback to a shorter key.
func (t *Trie[T]) Find(key string, mustBeTerminal bool) (Node[T], bool) {
	m, ok := longestPrefix[T](t.top(), key, lookupOpts{
		mustBeTerminal: mustBeTerminal,
		mustMatchFully: true,
	})

	return m.Node, ok
}

// LongestPrefix returns the longest prefix of key present in the trie.
//
// With mustBeTerminal set the prefix must be a stored key: the search falls
// back to the last stored key passed on the way down and fails when there was
// none. Without it any path node qualifies, so the match is simply as deep as
// the trie lets key descend.
func (t *Trie[T]) LongestPrefix(key string, mustBeTerminal bool) (Match[T], bool) {
	return longestPrefix[T](t.top(), key, lookupOpts{
		mustBeTerminal: mustBeTerminal,
	})
}

func longestPrefix[T any](root node[T], key string, opts lookupOpts) (Match[T], bool) {
	var (
		cur  = root
		pos  int // bytes of key consumed
		last Match[T]
		seen bool // last is set
	)

	for {
		if cur.isTerminal() {
			last = Match[T]{Prefix: key[:pos], Node: Node[T]{cur}, Terminal: true, Full: pos == len(key)}
			seen = true
		}

		if pos == len(key) {
			// the key is exhausted
			if opts.mustBeTerminal && !cur.isTerminal() {
				if opts.mustMatchFully {
					return Match[T]{}, false
				}
				return last, seen
			}

			return Match[T]{Prefix: key, Node: Node[T]{cur}, Terminal: cur.isTerminal(), Full: true}, true
		}

		r, size := utf8.DecodeRuneInString(key[pos:])

		var next node[T]
		if b, ok := cur.(*branch[T]); ok {
			next = b.child(r)
		}

		if next == nil {
			// the trie has no such continuation
			if opts.mustMatchFully {
				return Match[T]{}, false
			}
			if opts.mustBeTerminal && !cur.isTerminal() {
				return last, seen
			}

			return Match[T]{Prefix: key[:pos], Node: Node[T]{cur}, Terminal: cur.isTerminal()}, true
		}

		cur, pos = next, pos+size
	}
}
