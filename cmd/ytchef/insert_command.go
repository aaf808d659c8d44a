package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newInsertCommand(ctx *commandContext) *cobra.Command {
	var playlistLang string
	var videoIDs []string

	cmd := &cobra.Command{
		Use:   "insert",
		Short: "Patch videos into a cached playlist",
		Long: `Patch videos into a cached playlist.

Each video is fetched (or read from the cache) and appended to the cached
playlist of the given language. The playlist itself is not refetched, and a
video already in the playlist is appended again.

Example:
  ytchef insert --playlist en --video dQw4w9WgXcQ,9bZkp7q19f0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := splitIDs(videoIDs)
			if len(ids) == 0 {
				return fmt.Errorf("--video requires at least one video id")
			}
			return ctx.withSession(cmd, "cli-insert", true, func(s *session) error {
				pl, ok := s.cfg.PlaylistFor(playlistLang)
				if !ok {
					return fmt.Errorf("playlist %q is not configured", playlistLang)
				}
				summary, err := s.manager.InsertVideos(cmd.Context(), pl.Language, ids, ctx.bypassCache())
				if err != nil {
					return err
				}
				if ctx.JSONMode() {
					return writeJSON(cmd, summary)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Inserted %d of %d videos into %s\n", len(summary.Inserted), summary.Requested, pl.Language)
				for _, f := range summary.Failed {
					fmt.Fprintf(out, "  %s: %s\n", f.VideoID, f.Error)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&playlistLang, "playlist", "", "Language key of the configured playlist")
	cmd.Flags().StringSliceVar(&videoIDs, "video", nil, "Comma-separated YouTube video ids")
	_ = cmd.MarkFlagRequired("playlist")
	_ = cmd.MarkFlagRequired("video")
	return cmd
}

func splitIDs(values []string) []string {
	var ids []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if id := strings.TrimSpace(part); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}
