package sheets

import (
	"context"
	"fmt"
	"log/slog"

	"ytchef/internal/config"
	"ytchef/internal/language"
	"ytchef/internal/logging"
	"ytchef/internal/playlist"
)

// UploadSummary counts rows written per language.
type UploadSummary struct {
	Languages []LanguageRows `json:"languages"`
	Total     int            `json:"total"`
}

// LanguageRows is the per-language part of UploadSummary.
type LanguageRows struct {
	Language string `json:"language"`
	Playlist string `json:"playlist"`
	Rows     int    `json:"rows"`
	Cached   bool   `json:"cached"`
}

// UploadDescriptions fetches every configured playlist (honouring bypass)
// and appends one row per video to the sheet. Languages are processed in
// configuration order; an unknown language, a language without playlist ids
// or an unfetchable playlist stops the upload.
func UploadDescriptions(ctx context.Context, cfg *config.Config, mgr *playlist.Manager, w *Writer, bypass bool, logger *slog.Logger) (UploadSummary, error) {
	logger = logging.NewComponentLogger(logger, "sheets")
	summary := UploadSummary{Languages: []LanguageRows{}}

	for _, pl := range cfg.Playlists {
		lang, err := language.Resolve(pl.Language)
		if err != nil {
			return summary, err
		}
		playlistID, err := pl.RequireID()
		if err != nil {
			return summary, err
		}

		res, err := mgr.FetchPlaylist(ctx, pl.Language, playlistID, bypass)
		if err != nil {
			return summary, fmt.Errorf("playlist %s (%s): %w", playlistID, pl.Language, err)
		}
		if res.Document.Children == nil {
			return summary, fmt.Errorf("playlist %s (%s): %w", playlistID, pl.Language, playlist.ErrNoChildren)
		}

		recs := make([]Record, 0, len(res.Document.Children))
		for _, child := range res.Document.Children {
			recs = append(recs, Record{
				VideoID:     child.ID,
				VideoURL:    child.SourceURL,
				VideoTitle:  child.Title,
				Language:    lang.Name,
				Description: child.Description,
			})
		}
		if err := w.WriteRecords(ctx, recs); err != nil {
			return summary, err
		}

		summary.Languages = append(summary.Languages, LanguageRows{
			Language: pl.Language,
			Playlist: playlistID,
			Rows:     len(recs),
			Cached:   res.Cached,
		})
		summary.Total += len(recs)
		logger.Info("descriptions uploaded",
			logging.String(logging.FieldLanguage, pl.Language),
			logging.String(logging.FieldPlaylistID, playlistID),
			logging.Int("rows", len(recs)),
		)
	}
	return summary, nil
}
