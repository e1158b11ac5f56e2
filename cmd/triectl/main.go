// Command triectl builds a rune trie out of a YAML key table and queries it.
package main

import (
	"os"

	"github.com/rs/zerolog"
)

func main() {
	a := &app{log: zerolog.New(os.Stderr).With().Timestamp().Logger()}

	if err := newRootCmd(a).Execute(); err != nil {
		a.log.Error().Err(err).Msg("triectl failed")
		os.Exit(1)
	}
}
