// Package table loads a YAML key table and builds a trie out of it.
//
// A key table looks like this:
//
//	keys:
//	  - key: "https://google.com"
//	    value: google
//	  - key: "https://"
//
// An entry without a value is stored as a bare key.
package table

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aglyzov/go-trie/trie"
)

type Entry struct {
	Key   string  `yaml:"key"`
	Value *string `yaml:"value,omitempty"`
}

type Table struct {
	Keys []Entry `yaml:"keys"`
}

// Load reads a key table from a file.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read key table: %w", err)
	}

	return Parse(data)
}

// Parse decodes a key table. Unknown fields are rejected, an empty document
// is an empty table.
func Parse(data []byte) (*Table, error) {
	var (
		tbl Table
		dec = yaml.NewDecoder(bytes.NewReader(data))
	)

	dec.KnownFields(true)

	if err := dec.Decode(&tbl); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse key table: %w", err)
	}

	return &tbl, nil
}

// Build inserts all the entries into a new trie in table order.
//
// A repeated key fails the build when strict is set. Otherwise the first
// occurrence wins and the repeated keys are returned as skipped.
func (tbl *Table) Build(strict bool) (*trie.Trie[string], []string, error) {
	var (
		tr      = trie.New[string]()
		skipped []string
	)

	for i, e := range tbl.Keys {
		var err error

		if e.Value != nil {
			_, err = tr.Insert(e.Key, *e.Value)
		} else {
			_, err = tr.InsertKey(e.Key)
		}

		switch {
		case err == nil:
		case errors.Is(err, trie.ErrKeyAlreadyExists) && !strict:
			skipped = append(skipped, e.Key)
		default:
			return nil, nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}

	return tr, skipped, nil
}
