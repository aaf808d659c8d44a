package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ytchef/internal/channel"
	"ytchef/internal/config"
	"ytchef/internal/logging"
)

func newBuildCommand(ctx *commandContext) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the channel tree from the configured playlists",
		Long: `Build the channel tree from the configured playlists.

Each configured language becomes a topic. Playlists are read from the cache
and fetched with yt-dlp on a miss (or always, with --nocache). Videos that
have no entry in the descriptions table are left out of the tree.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, "cli-build", true, func(s *session) error {
				target := s.cfg.Paths.OutputPath
				if strings.TrimSpace(outputPath) != "" {
					expanded, err := config.ExpandPath(outputPath)
					if err != nil {
						return fmt.Errorf("resolve output path: %w", err)
					}
					target = expanded
				}

				table, err := ctx.loadDescriptions(cmd.Context(), s.cfg, s.logger)
				if err != nil {
					return fmt.Errorf("load descriptions: %w", err)
				}
				s.logger.Info("descriptions loaded", logging.Int("videos", table.Len()))

				builder := channel.NewBuilder(s.cfg, s.manager, table, ctx.bypassCache(), s.logger)
				result, err := builder.Build(cmd.Context())
				if err != nil {
					return err
				}
				if err := channel.Validate(result.Channel); err != nil {
					return fmt.Errorf("invalid channel tree: %w", err)
				}
				if err := channel.WriteTree(target, result.Channel); err != nil {
					return err
				}
				s.logger.Info("channel tree written",
					logging.String("path", target),
					logging.Int("topics", len(result.Channel.Children)),
					logging.Int("videos", result.Channel.VideoCount()),
				)

				if ctx.JSONMode() {
					return writeJSON(cmd, map[string]any{
						"output": target,
						"videos": result.Channel.VideoCount(),
						"topics": result.Topics,
					})
				}

				rows := make([][]string, 0, len(result.Topics))
				for _, topic := range result.Topics {
					rows = append(rows, []string{
						topic.Language,
						topic.Playlist,
						fmt.Sprintf("%d", topic.Videos),
						fmt.Sprintf("%d", topic.Excluded),
						yesNo(topic.Cached),
					})
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, renderTable(
					[]string{"Language", "Playlist", "Videos", "Excluded", "Cached"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft},
				))
				fmt.Fprintf(out, "Wrote %d videos to %s\n", result.Channel.VideoCount(), target)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Destination for the channel tree JSON (default paths.output_path)")
	return cmd
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
