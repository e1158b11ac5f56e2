package main

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aglyzov/go-trie/trie"
)

func run(args ...string) (string, error) {
	var (
		out bytes.Buffer
		cmd = newRootCmd(&app{log: zerolog.Nop()})
	)

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--file", filepath.Join("testdata", "keys.yaml"), "--log-level", "error"}, args...))

	err := cmd.Execute()

	return out.String(), err
}

func TestCommands(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Args []string
		Exp  string
	}{
		{
			[]string{"render", "--content"},
			"http\n" +
				"    ://wikipedia.org  (wikipedia)\n" +
				"    s://\n" +
				"        google.com  (google)\n" +
				"        imdb.com  (imdb)\n",
		},
		{
			[]string{"render"},
			"http\n    ://wikipedia.org\n    s://\n        google.com\n        imdb.com\n",
		},
		{
			[]string{"prefix", "-t", "https://imdb.com/title"},
			"\"https://imdb.com\" terminal=true full=false value=\"imdb\"\n",
		},
		{
			[]string{"prefix", "https://imdb.org"},
			"\"https://imdb.\" terminal=false full=false\n",
		},
		{
			[]string{"prefix", "-t", "https://yahoo.com"},
			"\"https://\" terminal=true full=false\n",
		},
		{
			[]string{"find", "-t", "https://"},
			"\"https://\" Branch terminal=true\n",
		},
		{
			[]string{"find", "https:"},
			"\"https:\" Branch terminal=false\n",
		},
		{
			[]string{"find", "https://google.com"},
			"\"https://google.com\" Leaf terminal=true value=\"google\"\n",
		},
		{
			[]string{"remove", "--subtree", "https://"},
			"http://wikipedia.org  (wikipedia)\n",
		},
		{
			[]string{"remove", "https://"},
			"http\n    ://wikipedia.org  (wikipedia)\n    s://\n        google.com  (google)\n        imdb.com  (imdb)\n",
		},
		{
			[]string{"keys", "https"},
			"https://\t\nhttps://google.com\tgoogle\nhttps://imdb.com\timdb\n",
		},
		{
			[]string{"keys"},
			"http://wikipedia.org\twikipedia\nhttps://\t\nhttps://google.com\tgoogle\nhttps://imdb.com\timdb\n",
		},
	} {
		var (
			tcase = tcase
			name  = fmt.Sprintf("%v", tcase.Args)
		)

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			out, err := run(tcase.Args...)
			require.NoError(t, err)
			assert.Equal(t, tcase.Exp, out)
		})
	}
}

func TestCommands_Errors(t *testing.T) {
	t.Parallel()

	_, err := run("find", "-t", "https:")
	assert.ErrorIs(t, err, errNotFound)

	_, err = run("prefix", "-t", "ftp://")
	assert.ErrorIs(t, err, errNotFound)

	_, err = run("remove", "https://yahoo.com")
	assert.ErrorIs(t, err, errNotFound)

	_, err = run("--strict", "render")
	assert.ErrorIs(t, err, trie.ErrKeyAlreadyExists)

	_, err = run("--file", filepath.Join("testdata", "missing.yaml"), "render")
	assert.Error(t, err)

	_, err = run("--log-level", "loud", "render")
	assert.Error(t, err)

	_, err = run("find")
	assert.Error(t, err)
}
