package channel

import (
	"context"
	"fmt"
	"log/slog"

	"ytchef/internal/config"
	"ytchef/internal/descriptions"
	"ytchef/internal/language"
	"ytchef/internal/logging"
	"ytchef/internal/playlist"
)

// Builder turns the configured playlists into a Channel.
type Builder struct {
	cfg    *config.Config
	mgr    *playlist.Manager
	table  *descriptions.Table
	bypass bool
	logger *slog.Logger
}

// NewBuilder returns a builder. bypass forces every playlist to be refetched.
func NewBuilder(cfg *config.Config, mgr *playlist.Manager, table *descriptions.Table, bypass bool, logger *slog.Logger) *Builder {
	return &Builder{
		cfg:    cfg,
		mgr:    mgr,
		table:  table,
		bypass: bypass,
		logger: logging.NewComponentLogger(logger, "channel"),
	}
}

// TopicStats summarises one topic of a build.
type TopicStats struct {
	Language string `json:"language"`
	Playlist string `json:"playlist"`
	SourceID string `json:"source_id"`
	Videos   int    `json:"videos"`
	Excluded int    `json:"excluded"`
	Cached   bool   `json:"cached"`
}

// Result is a built channel and per-topic statistics.
type Result struct {
	Channel *Channel     `json:"-"`
	Topics  []TopicStats `json:"topics"`
}

// Build fetches every configured playlist in order and assembles the tree.
// Videos without an entry in the description table are left out, and a video
// repeated within a playlist keeps only its first occurrence. An
// unresolvable language, a language with no playlist ids or a failed
// playlist fetch aborts the build.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	ch := b.cfg.Channel
	license, err := NewLicense(ch.License, ch.CopyrightHolder)
	if err != nil {
		return nil, fmt.Errorf("channel license: %w", err)
	}

	root := &Channel{
		SourceDomain: ch.Domain,
		SourceID:     ch.SourceID,
		Title:        ch.Name,
		Language:     ch.Language,
		Description:  ch.Description,
		Thumbnail:    ch.Thumbnail,
		Children:     []Topic{},
	}
	result := &Result{Channel: root, Topics: []TopicStats{}}

	for _, pl := range b.cfg.Playlists {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lang, err := language.Resolve(pl.Language)
		if err != nil {
			return nil, err
		}
		playlistID, err := pl.RequireID()
		if err != nil {
			return nil, err
		}

		topic, stats, err := b.buildTopic(ctx, pl.Language, playlistID, lang, license)
		if err != nil {
			return nil, err
		}
		root.Children = append(root.Children, topic)
		result.Topics = append(result.Topics, stats)
		b.logger.Info("topic added",
			logging.String(logging.FieldLanguage, pl.Language),
			logging.String("source_id", topic.SourceID),
			logging.Int("videos", stats.Videos),
			logging.Int("excluded", stats.Excluded),
		)
	}
	return result, nil
}

func (b *Builder) buildTopic(ctx context.Context, key, playlistID string, lang language.Language, license License) (Topic, TopicStats, error) {
	ch := b.cfg.Channel
	topic := Topic{
		Kind:        KindTopic,
		SourceID:    fmt.Sprintf("%s-%s", ch.TopicSourcePrefix, lang.Name),
		Title:       lang.NativeName,
		Description: ch.Description,
		Author:      ch.Author,
		Provider:    ch.Author,
		Language:    lang.Code,
		Children:    []Video{},
	}
	stats := TopicStats{Language: key, Playlist: playlistID, SourceID: topic.SourceID}

	res, err := b.mgr.FetchPlaylist(ctx, key, playlistID, b.bypass)
	if err != nil {
		return Topic{}, stats, fmt.Errorf("playlist %s (%s): %w", playlistID, key, err)
	}
	stats.Cached = res.Cached

	seen := make(map[string]struct{}, len(res.Document.Children))
	for _, child := range res.Document.Children {
		if _, dup := seen[child.ID]; dup {
			stats.Excluded++
			b.logger.Debug("duplicate video skipped",
				logging.String(logging.FieldVideoID, child.ID),
				logging.String(logging.FieldLanguage, key),
			)
			continue
		}
		seen[child.ID] = struct{}{}
		desc, ok := b.table.Lookup(child.ID)
		if !ok {
			stats.Excluded++
			b.logger.Debug("video excluded",
				logging.String(logging.FieldVideoID, child.ID),
				logging.String(logging.FieldLanguage, key),
			)
			continue
		}
		topic.Children = append(topic.Children, Video{
			Kind:        KindVideo,
			SourceID:    fmt.Sprintf("%s-%s-%s", ch.VideoSourcePrefix, lang.Name, child.ID),
			Title:       child.Title,
			Description: desc,
			Author:      ch.Author,
			Provider:    ch.Author,
			Language:    lang.Code,
			Thumbnail:   child.Thumbnail,
			License:     license,
			Files: []VideoFile{{
				FileType:  FileTypeYouTubeVideo,
				YouTubeID: child.ID,
				Language:  lang.Code,
			}},
		})
	}
	stats.Videos = len(topic.Children)
	return topic, stats, nil
}
