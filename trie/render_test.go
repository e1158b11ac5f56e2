package trie

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Items      []Item[int]
		ExpContent string
		ExpPlain   string
	}{
		{
			nil,
			"[empty]\n",
			"[empty]\n",
		},
		{
			[]Item[int]{{"a", 1}, {"abc", 2}, {"d", 3}, {"e", 4}},
			"a  (1)\n bc  (2)\nd  (3)\ne  (4)\n",
			"a\n bc\nd\ne\n",
		},
		{
			[]Item[int]{{"a", 1}, {"ab", 1}, {"c", 1}, {"d", 1}},
			"a  (1)\n b  (1)\nc  (1)\nd  (1)\n",
			"a\n b\nc\nd\n",
		},
		{
			[]Item[int]{{"abc", 7}},
			"abc  (7)\n",
			"abc\n",
		},
		{
			[]Item[int]{{"", 0}, {"a", 1}},
			"  (0)\na  (1)\n",
			"a\n",
		},
		{
			[]Item[int]{{"", 0}},
			"  (0)\n",
			"\n",
		},
		{
			[]Item[int]{{"日本", 1}, {"日曜", 2}},
			"日\n 曜  (2)\n 本  (1)\n",
			"日\n 曜\n 本\n",
		},
		{
			[]Item[int]{{"abcd", 1}, {"abxy", 2}, {"b", 3}},
			"ab\n  cd  (1)\n  xy  (2)\nb  (3)\n",
			"ab\n  cd\n  xy\nb\n",
		},
	} {
		var (
			tcase = tcase
			name  = fmt.Sprintf("%v", tcase.Items)
		)

		t.Run(name, func(t *testing.T) {
			tr, err := From(tcase.Items...)
			require.NoError(t, err)

			assert.Equal(t, tcase.ExpContent, tr.Render(true))
			assert.Equal(t, tcase.ExpPlain, tr.Render(false))
			assert.Equal(t, tcase.ExpPlain, tr.String())
		})
	}
}

func TestRender_NoPayload(t *testing.T) {
	t.Parallel()

	tr := New[string]()
	_, _ = tr.InsertKey("ab")
	_, _ = tr.Insert("abc", "x")
	_, _ = tr.InsertKey("b")

	assert.Equal(t, "ab\n  c  (x)\nb\n", tr.Render(true))
}

func TestRender_AfterRemove(t *testing.T) {
	t.Parallel()

	tr := newWordsTrie(t, "a", "abc", "d", "e")

	require.True(t, tr.Remove("d", false))
	assert.Equal(t, "a  (1)\n bc  (2)\ne  (4)\n", tr.Render(true))

	require.True(t, tr.Remove("a", false))
	assert.Equal(t, "abc  (2)\ne  (4)\n", tr.Render(true))

	require.True(t, tr.Remove("", true))
	assert.Equal(t, "[empty]\n", tr.Render(true))
}
