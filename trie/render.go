package trie

import (
	"fmt"
	"strings"
)

const emptyMark = "[empty]"

// Render returns a human-readable picture of the trie.
//
// Every branching point starts a new line indented by its depth, while
// chains of single-child pass-through nodes are printed on one line. With
// showContent set each payload is printed as "  (<payload>)" next to its key.
func (t *Trie[T]) Render(showContent bool) string {
	root := t.top()
	if root.kind() == KindEmpty {
		return emptyMark + "\n"
	}

	r := renderer[T]{content: showContent}
	r.node(root, 0)

	return r.buf.String()
}

func (t *Trie[T]) String() string {
	return t.Render(false)
}

type renderer[T any] struct {
	buf     strings.Builder
	content bool
	open    bool // the current line has text
}

func (r *renderer[T]) node(n node[T], indent int) {
	switch n := n.(type) {
	case *leaf[T]:
		r.payload(n.payload)
		r.buf.WriteByte('\n')
		r.open = false
	case *branch[T]:
		r.payload(n.payload)
		fork := n.terminal || len(n.edges) > 1
		for _, e := range n.edges {
			if fork {
				r.newline(indent)
			}
			r.buf.WriteRune(e.r)
			r.open = true
			r.node(e.node, indent+1)
		}
	default:
		panic(badNode(n))
	}
}

func (r *renderer[T]) payload(p payload[T]) {
	if !r.content || !p.set {
		return
	}

	fmt.Fprintf(&r.buf, "  (%v)", p.val)
	r.open = true
}

// newline starts an indented line unless the current one is still blank.
func (r *renderer[T]) newline(indent int) {
	if r.open {
		r.buf.WriteByte('\n')
		r.open = false
	}

	r.buf.WriteString(strings.Repeat(" ", indent))
}
