package trie

import "unicode/utf8"

// Iter calls fn for every stored key starting with prefix, in ascending
// code-point order, until fn returns false. Keys stored without a payload
// come with a zero Val.
func (t *Trie[T]) Iter(prefix string, fn func(Item[T]) bool) {
	h, ok := t.Find(prefix, false)
	if !ok {
		return
	}

	walk(h.n, []byte(prefix), fn)
}

func walk[T any](n node[T], key []byte, fn func(Item[T]) bool) bool {
	if n.isTerminal() {
		if !fn(Item[T]{Key: string(key), Val: payloadOf[T](n).val}) {
			return false
		}
	}

	b, ok := n.(*branch[T])
	if !ok {
		return true
	}

	for _, e := range b.edges {
		if !walk(e.node, utf8.AppendRune(key, e.r), fn) {
			return false
		}
	}

	return true
}

// Keys returns all the stored keys in ascending order.
func (t *Trie[T]) Keys() []string {
	keys := make([]string, 0, t.size)

	t.Iter("", func(item Item[T]) bool {
		keys = append(keys, item.Key)
		return true
	})

	return keys
}

// Items returns all the stored key-payload pairs in ascending key order.
func (t *Trie[T]) Items() []Item[T] {
	items := make([]Item[T], 0, t.size)

	t.Iter("", func(item Item[T]) bool {
		items = append(items, item)
		return true
	})

	return items
}
