package main

import (
	"errors"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/aglyzov/go-trie/internal/logging"
	"github.com/aglyzov/go-trie/internal/table"
	"github.com/aglyzov/go-trie/trie"
)

var errNotFound = errors.New("not found")

// app holds the state shared by all the commands.
type app struct {
	file   string
	level  string
	strict bool
	log    zerolog.Logger
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "triectl",
		Short:         "Query a rune trie built from a YAML key table",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := logging.New(os.Stderr, a.level)
			if err != nil {
				return err
			}
			a.log = log
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.file, "file", "f", "keys.yaml", "YAML key table")
	flags.StringVar(&a.level, "log-level", logging.DefaultLevel, "log level (trace, debug, info, warn, error)")
	flags.BoolVar(&a.strict, "strict", false, "fail on duplicate keys instead of skipping them")

	cmd.AddCommand(
		newRenderCmd(a),
		newFindCmd(a),
		newPrefixCmd(a),
		newRemoveCmd(a),
		newKeysCmd(a),
	)

	return cmd
}

// load builds the trie out of the key table file.
func (a *app) load() (*trie.Trie[string], error) {
	tbl, err := table.Load(a.file)
	if err != nil {
		return nil, err
	}

	tr, skipped, err := tbl.Build(a.strict)
	if err != nil {
		return nil, err
	}

	for _, key := range skipped {
		a.log.Warn().Str("key", key).Msg("duplicate key skipped")
	}

	a.log.Debug().Str("file", a.file).Int("keys", tr.Len()).Msg("trie loaded")

	return tr, nil
}
