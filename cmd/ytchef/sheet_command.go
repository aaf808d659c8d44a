package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ytchef/internal/config"
	"ytchef/internal/descriptions"
	"ytchef/internal/logging"
	"ytchef/internal/sheets"
)

func newSheetCommand(ctx *commandContext) *cobra.Command {
	sheetCmd := &cobra.Command{
		Use:   "sheet",
		Short: "Sync video descriptions with the review spreadsheet",
	}
	sheetCmd.AddCommand(newSheetUploadCommand(ctx))
	sheetCmd.AddCommand(newSheetPullCommand(ctx))
	return sheetCmd
}

func newSheetUploadCommand(ctx *commandContext) *cobra.Command {
	var sheetID string
	var clearFirst bool

	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Append every playlist video to the spreadsheet for review",
		Long: `Append every playlist video to the spreadsheet for review.

One row is written per video with its id, URL, title, language and YouTube
description. The title row is added when the sheet is empty; a sheet that
starts with anything else is rejected.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, "cli-sheet", true, func(s *session) error {
				w, err := ctx.sheetWriter(cmd.Context(), s.cfg, sheetID, s.logger)
				if err != nil {
					return err
				}
				if clearFirst {
					if err := w.Clear(cmd.Context()); err != nil {
						return err
					}
				}
				summary, err := sheets.UploadDescriptions(cmd.Context(), s.cfg, s.manager, w, ctx.bypassCache(), s.logger)
				if err != nil {
					return err
				}
				if ctx.JSONMode() {
					return writeJSON(cmd, summary)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %d rows for %d languages\n", summary.Total, len(summary.Languages))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&sheetID, "sheet-id", "", "Spreadsheet id (default sheets.spreadsheet_id)")
	cmd.Flags().BoolVar(&clearFirst, "clear", false, "Clear the sheet range before uploading")
	return cmd
}

func newSheetPullCommand(ctx *commandContext) *cobra.Command {
	var sheetID string
	var outputPath string

	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Write the reviewed descriptions to the descriptions file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			logger = logging.NewComponentLogger(logger, "cli-sheet")

			w, err := ctx.sheetWriter(cmd.Context(), cfg, sheetID, logger)
			if err != nil {
				return err
			}
			entries, err := w.ReadEntries(cmd.Context())
			if err != nil {
				return err
			}

			target := cfg.Paths.DescriptionsPath
			if strings.TrimSpace(outputPath) != "" {
				if target, err = config.ExpandPath(outputPath); err != nil {
					return fmt.Errorf("resolve output path: %w", err)
				}
			}
			if err := descriptions.WriteFile(target, entries); err != nil {
				return err
			}
			included := descriptions.FromEntries(entries).Len()
			if ctx.JSONMode() {
				return writeJSON(cmd, map[string]any{
					"output":   target,
					"entries":  len(entries),
					"included": included,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d descriptions (%d included) to %s\n", len(entries), included, target)
			return nil
		},
	}

	cmd.Flags().StringVar(&sheetID, "sheet-id", "", "Spreadsheet id (default sheets.spreadsheet_id)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Destination file (default paths.descriptions_path)")
	return cmd
}
