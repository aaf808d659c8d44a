package playlist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ytchef/internal/cachestore"
	"ytchef/internal/logging"
	"ytchef/internal/youtube"
)

// ErrNotCached is returned by InsertVideo when the playlist or the video has
// no cached document.
var ErrNotCached = errors.New("document not cached")

// ErrNoChildren is returned by callers that require a playlist document to
// list its videos.
var ErrNoChildren = errors.New("playlist document has no children")

// Manager fetches playlists and videos through a cache.
type Manager struct {
	cache   *cachestore.Cache
	fetcher youtube.Fetcher
	logger  *slog.Logger
}

// NewManager wires a cache and a fetcher together.
func NewManager(cache *cachestore.Cache, fetcher youtube.Fetcher, logger *slog.Logger) *Manager {
	return &Manager{
		cache:   cache,
		fetcher: fetcher,
		logger:  logging.NewComponentLogger(logger, "playlist"),
	}
}

// FetchPlaylist returns the playlist stored under key. On a miss, or when
// bypass is set, the playlist is fetched, de-duplicated and stored before
// being returned. A cached document is returned as stored.
func (m *Manager) FetchPlaylist(ctx context.Context, key, playlistID string, bypass bool) (*PlaylistResult, error) {
	var doc youtube.PlaylistDocument
	ok, err := m.cache.Load(ctx, key, bypass, &doc)
	if err != nil {
		return nil, err
	}
	if ok {
		m.logger.Debug("playlist served from cache",
			logging.String(logging.FieldCacheKey, key),
			logging.Int("children", len(doc.Children)),
		)
		return &PlaylistResult{Document: &doc, Cached: true}, nil
	}

	m.logger.Info("fetching playlist",
		logging.String(logging.FieldCacheKey, key),
		logging.String(logging.FieldPlaylistID, playlistID),
	)
	fetched, err := m.fetcher.FetchPlaylist(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("fetch playlist %s: %w", playlistID, err)
	}

	before := len(fetched.Children)
	fetched.Children = Dedup(fetched.Children)
	if removed := before - len(fetched.Children); removed > 0 {
		m.logger.Info("removed duplicate videos",
			logging.String(logging.FieldPlaylistID, playlistID),
			logging.Int("removed", removed),
		)
	}

	if err := m.cache.Save(ctx, key, fetched); err != nil {
		return nil, err
	}
	return &PlaylistResult{Document: fetched}, nil
}

// PlaylistResult is a playlist document and where it came from.
type PlaylistResult struct {
	Document *youtube.PlaylistDocument
	Cached   bool
}

// Dedup drops every child whose id was already seen earlier in the slice.
// Order of the survivors is preserved.
func Dedup(children []youtube.VideoRecord) []youtube.VideoRecord {
	if children == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(children))
	out := make([]youtube.VideoRecord, 0, len(children))
	for _, child := range children {
		if _, dup := seen[child.ID]; dup {
			continue
		}
		seen[child.ID] = struct{}{}
		out = append(out, child)
	}
	return out
}

// FetchVideo returns the video identified by videoURL, cached under its
// video id.
func (m *Manager) FetchVideo(ctx context.Context, videoURL string, bypass bool) (*youtube.VideoRecord, error) {
	id, err := youtube.ParseVideoID(videoURL)
	if err != nil {
		return nil, err
	}

	var rec youtube.VideoRecord
	ok, err := m.cache.Load(ctx, id, bypass, &rec)
	if err != nil {
		return nil, err
	}
	if ok {
		return &rec, nil
	}

	m.logger.Info("fetching video", logging.String(logging.FieldVideoID, id))
	fetched, err := m.fetcher.FetchVideo(ctx, videoURL)
	if err != nil {
		return nil, fmt.Errorf("fetch video %s: %w", id, err)
	}
	if err := m.cache.Save(ctx, id, fetched); err != nil {
		return nil, err
	}
	return fetched, nil
}

// InsertVideo appends the cached video document to the cached playlist stored
// under playlistKey and rewrites the playlist. Nothing is fetched. When either
// document is missing ErrNotCached is returned and the cache is untouched.
// The video is appended even if the playlist already lists it.
func (m *Manager) InsertVideo(ctx context.Context, playlistKey, videoID string) error {
	var doc youtube.PlaylistDocument
	ok, err := m.cache.Load(ctx, playlistKey, false, &doc)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("playlist %q: %w", playlistKey, ErrNotCached)
	}

	var rec youtube.VideoRecord
	ok, err = m.cache.Load(ctx, videoID, false, &rec)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("video %q: %w", videoID, ErrNotCached)
	}

	doc.Children = append(doc.Children, rec)
	if err := m.cache.Save(ctx, playlistKey, &doc); err != nil {
		return err
	}
	m.logger.Info("video inserted into playlist",
		logging.String(logging.FieldCacheKey, playlistKey),
		logging.String(logging.FieldVideoID, videoID),
		logging.Int("children", len(doc.Children)),
	)
	return nil
}

// InsertSummary reports the outcome of InsertVideos.
type InsertSummary struct {
	Requested int             `json:"requested"`
	Inserted  []string        `json:"inserted"`
	Failed    []InsertFailure `json:"failed,omitempty"`
}

// InsertFailure records why one video was not inserted.
type InsertFailure struct {
	VideoID string `json:"video_id"`
	Error   string `json:"error"`
}

// InsertVideos fetches each video (honouring bypass) and patches it into the
// playlist stored under playlistKey. Invalid ids and upstream failures are
// logged and skipped; a corrupt cache aborts the run.
func (m *Manager) InsertVideos(ctx context.Context, playlistKey string, videoIDs []string, bypass bool) (InsertSummary, error) {
	summary := InsertSummary{Requested: len(videoIDs), Inserted: []string{}}
	for _, id := range videoIDs {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		err := m.insertOne(ctx, playlistKey, id, bypass)
		if err == nil {
			summary.Inserted = append(summary.Inserted, id)
			continue
		}
		if errors.Is(err, cachestore.ErrCorrupt) {
			return summary, err
		}
		logging.WarnWithContext(m.logger, "video not inserted", "insert_video",
			logging.String(logging.FieldVideoID, id),
			logging.String(logging.FieldCacheKey, playlistKey),
			logging.Error(err),
		)
		summary.Failed = append(summary.Failed, InsertFailure{VideoID: id, Error: err.Error()})
	}
	return summary, nil
}

func (m *Manager) insertOne(ctx context.Context, playlistKey, id string, bypass bool) error {
	rec, err := m.FetchVideo(ctx, youtube.VideoURL(id), bypass)
	if err != nil {
		return err
	}
	return m.InsertVideo(ctx, playlistKey, rec.ID)
}
