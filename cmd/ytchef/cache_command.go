package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ytchef/internal/cachestore"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and manage cached playlist and video documents",
		Long: `Inspect and manage cached playlist and video documents.

Playlists are cached under their language key (for example "en"), videos
under their YouTube id. Removing a playlist forces the next build to fetch
it again.

Commands:
  list     - List every cached document
  show     - Print one cached document
  remove   - Delete one cached document`,
	}

	cacheCmd.AddCommand(newCacheListCommand(ctx))
	cacheCmd.AddCommand(newCacheShowCommand(ctx))
	cacheCmd.AddCommand(newCacheRemoveCommand(ctx))

	return cacheCmd
}

func newCacheListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every cached document",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, "cli-cache", false, func(s *session) error {
				entries, err := s.store.List(cmd.Context())
				if err != nil {
					return err
				}

				if ctx.JSONMode() {
					if entries == nil {
						entries = []cachestore.EntryInfo{}
					}
					return writeJSON(cmd, entries)
				}

				out := cmd.OutOrStdout()
				if len(entries) == 0 {
					fmt.Fprintln(out, "Cache: empty")
					return nil
				}

				const stampLayout = "2006-01-02 15:04"
				rows := make([][]string, 0, len(entries))
				for _, entry := range entries {
					updated := "unknown"
					if !entry.UpdatedAt.IsZero() {
						updated = entry.UpdatedAt.Local().Format(stampLayout)
					}
					rows = append(rows, []string{entry.Key, humanBytes(entry.Size), updated})
				}
				fmt.Fprintf(out, "Cache: %d entries\n", len(entries))
				fmt.Fprintln(out, renderTable(
					[]string{"Key", "Size", "Updated"},
					rows,
					[]columnAlignment{alignLeft, alignRight, alignLeft},
				))
				return nil
			})
		},
	}
}

func newCacheShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <key>",
		Short: "Print one cached document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, "cli-cache", false, func(s *session) error {
				data, ok, err := s.store.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("no cached document for %q", args[0])
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			})
		},
	}
}

func newCacheRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <key>",
		Short: "Delete one cached document",
		Long: `Delete one cached document.

Example:
  ytchef cache list          # Shows cached keys
  ytchef cache remove en     # Forces the English playlist to be refetched`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, "cli-cache", true, func(s *session) error {
				key := args[0]
				ok, err := s.store.Exists(cmd.Context(), key)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("no cached document for %q", key)
				}
				if err := s.store.Delete(cmd.Context(), key); err != nil {
					return err
				}
				if ctx.JSONMode() {
					return writeJSON(cmd, map[string]any{"removed": true, "key": key})
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed cached document %s\n", key)
				return nil
			})
		},
	}
}

func humanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
