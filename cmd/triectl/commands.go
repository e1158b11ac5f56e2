package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aglyzov/go-trie/trie"
)

func newRenderCmd(a *app) *cobra.Command {
	var content bool

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the trie shape",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := a.load()
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), tr.Render(content))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&content, "content", "c", false, "print values next to keys")

	return cmd
}

func newFindCmd(a *app) *cobra.Command {
	var terminal bool

	cmd := &cobra.Command{
		Use:   "find KEY",
		Short: "Look up a node by its exact key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := a.load()
			if err != nil {
				return err
			}

			key := args[0]

			h, ok := tr.Find(key, terminal)
			if !ok {
				return fmt.Errorf("%q: %w", key, errNotFound)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%q %s terminal=%v%s\n", key, h.Kind(), h.Terminal(), valueOf(h))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&terminal, "terminal", "t", false, "the key must be stored, not just a path")

	return cmd
}

func newPrefixCmd(a *app) *cobra.Command {
	var terminal bool

	cmd := &cobra.Command{
		Use:   "prefix KEY",
		Short: "Find the longest prefix of KEY present in the trie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := a.load()
			if err != nil {
				return err
			}

			key := args[0]

			m, ok := tr.LongestPrefix(key, terminal)
			if !ok {
				return fmt.Errorf("prefix of %q: %w", key, errNotFound)
			}

			a.log.Debug().Str("key", key).Str("prefix", m.Prefix).Bool("full", m.Full).Msg("prefix matched")

			fmt.Fprintf(cmd.OutOrStdout(), "%q terminal=%v full=%v%s\n", m.Prefix, m.Terminal, m.Full, valueOf(m.Node))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&terminal, "terminal", "t", false, "the prefix must be a stored key")

	return cmd
}

func newRemoveCmd(a *app) *cobra.Command {
	var subtree bool

	cmd := &cobra.Command{
		Use:   "remove KEY",
		Short: "Remove a key and print the resulting trie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := a.load()
			if err != nil {
				return err
			}

			key, size := args[0], tr.Len()

			if !tr.Remove(key, subtree) {
				return fmt.Errorf("%q: %w", key, errNotFound)
			}

			a.log.Info().Str("key", key).Bool("subtree", subtree).Int("removed", size-tr.Len()).Msg("key removed")

			fmt.Fprint(cmd.OutOrStdout(), tr.Render(true))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&subtree, "subtree", "s", false, "also remove every key extending KEY")

	return cmd
}

func newKeysCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "keys [PREFIX]",
		Short: "List stored keys in code-point order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := a.load()
			if err != nil {
				return err
			}

			var prefix string
			if len(args) == 1 {
				prefix = args[0]
			}

			out := cmd.OutOrStdout()
			tr.Iter(prefix, func(item trie.Item[string]) bool {
				fmt.Fprintf(out, "%s\t%s\n", item.Key, item.Val)
				return true
			})

			return nil
		},
	}
}

func valueOf(h trie.Node[string]) string {
	if h.Kind() == trie.KindEmpty {
		return ""
	}

	if val, ok := h.Value(); ok {
		return fmt.Sprintf(" value=%q", val)
	}

	return ""
}
