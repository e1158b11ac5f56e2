package trie

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// checkShape walks the whole trie and fails t on any broken structural rule.
func checkShape[T any](t *testing.T, tr *Trie[T]) {
	t.Helper()

	root := tr.top()
	if _, ok := root.(empty[T]); ok {
		assert.Zero(t, tr.Len(), "an empty root must hold no keys")
		return
	}

	assert.Equal(t, tr.Len(), checkNode[T](t, root, ""), "number of keys")
}

func checkNode[T any](t *testing.T, n node[T], path string) int {
	t.Helper()

	switch n := n.(type) {
	case empty[T]:
		t.Errorf("an empty node below the root at %q", path)
	case *leaf[T]:
		assert.True(t, n.terminal, "a non-terminal leaf at %q", path)
		if n.terminal {
			return 1
		}
	case *branch[T]:
		if len(n.edges) == 0 {
			t.Errorf("a childless branch at %q", path)
			return 0
		}

		var bitmap [2]uint64

		isSorted := sort.SliceIsSorted(n.edges, func(i, j int) bool {
			return n.edges[i].r < n.edges[j].r
		})
		assert.True(t, isSorted, "unsorted children at %q", path)

		num := 0
		if n.terminal {
			num++
		}

		for _, e := range n.edges {
			if e.r < asciiLimit {
				bitmap[e.r>>6] |= uint64(1) << uint(e.r&0x3F)
			}
			num += checkNode[T](t, e.node, path+string(e.r))
		}

		assert.Equal(t, bitmap, n.ascii, "ascii bitmap at %q", path)

		return num
	default:
		t.Errorf("unexpected node %T at %q", n, path)
	}

	return 0
}

func hasPrefix(keys []string, prefix string) (with, without []string) {
	for _, k := range keys {
		if strings.HasPrefix(k, prefix) {
			with = append(with, k)
		} else {
			without = append(without, k)
		}
	}

	return
}
