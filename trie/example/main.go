package main

import (
	"fmt"

	"github.com/aglyzov/go-trie/trie"
)

func main() {
	t := trie.New[int]()
	t.Insert("https://google.com", 1)
	t.Insert("http://wikipedia.org", 2)
	t.Insert("https://imdb.com", 3)
	//t.Insert("https://imdb.com", 4)

	fmt.Print(t.Render(true))

	println("------")

	for _, q := range []string{"https://imdb.com/title", "https://", "ftp://"} {
		m, ok := t.LongestPrefix(q, true)
		fmt.Printf("LP(%q) -> %q %v\n", q, m.Prefix, ok)
	}

	println("------")

	t.Remove("https://", true)
	t.Iter("", func(item trie.Item[int]) bool {
		fmt.Printf("%s %d\n", item.Key, item.Val)
		return true
	})
}
