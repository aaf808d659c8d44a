package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"ytchef/internal/config"
	"ytchef/internal/logging"
)

const (
	defaultYtdlpPath    = "yt-dlp"
	defaultYtdlpTimeout = 10 * time.Minute
)

// Runner executes a command and returns its captured output.
type Runner func(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)

// ExecRunner runs commands with os/exec.
func ExecRunner(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// YtdlpFetcher implements Fetcher by shelling out to yt-dlp.
type YtdlpFetcher struct {
	// Path is the yt-dlp executable. Defaults to "yt-dlp".
	Path string

	// Timeout bounds each yt-dlp invocation. Defaults to 10 minutes.
	Timeout time.Duration

	// ExtraArgs are appended before the URL.
	ExtraArgs []string

	// Run executes the command. Defaults to ExecRunner.
	Run Runner

	logger *slog.Logger
}

// NewYtdlpFetcher builds a fetcher from the youtube config section.
func NewYtdlpFetcher(cfg config.YouTube, logger *slog.Logger) *YtdlpFetcher {
	return &YtdlpFetcher{
		Path:      cfg.YtdlpPath,
		Timeout:   time.Duration(cfg.TimeoutSeconds) * time.Second,
		ExtraArgs: append([]string(nil), cfg.ExtraArgs...),
		Run:       ExecRunner,
		logger:    logging.NewComponentLogger(logger, "youtube"),
	}
}

// FetchPlaylist extracts every entry of a playlist. Entries yt-dlp could not
// extract are dropped.
func (y *YtdlpFetcher) FetchPlaylist(ctx context.Context, playlistID string) (*PlaylistDocument, error) {
	url := PlaylistURL(playlistID)
	data, err := y.dump(ctx, url, true)
	if err != nil {
		return nil, err
	}

	var raw ytdlpPlaylist
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("parse yt-dlp output: %w", err)}
	}

	doc := &PlaylistDocument{
		ID:        coalesce(raw.ID, playlistID),
		Title:     raw.Title,
		SourceURL: coalesce(raw.WebpageURL, url),
		Children:  make([]VideoRecord, 0, len(raw.Entries)),
	}
	dropped := 0
	for _, entry := range raw.Entries {
		if entry == nil || entry.ID == "" {
			dropped++
			continue
		}
		doc.Children = append(doc.Children, entry.record())
	}
	y.log().Debug("playlist extracted",
		logging.String(logging.FieldPlaylistID, playlistID),
		logging.Int("children", len(doc.Children)),
		logging.Int("dropped", dropped),
	)
	return doc, nil
}

// FetchVideo extracts a single video.
func (y *YtdlpFetcher) FetchVideo(ctx context.Context, videoURL string) (*VideoRecord, error) {
	data, err := y.dump(ctx, videoURL, false)
	if err != nil {
		return nil, err
	}
	var entry ytdlpEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, &FetchError{URL: videoURL, Err: fmt.Errorf("parse yt-dlp output: %w", err)}
	}
	if entry.ID == "" {
		return nil, &FetchError{URL: videoURL, Err: ErrUnavailable}
	}
	record := entry.record()
	return &record, nil
}

// dump runs yt-dlp -J against url. With partial set, a non-zero exit is
// tolerated as long as a JSON document was printed; yt-dlp exits non-zero
// when --ignore-errors skipped some playlist entries.
func (y *YtdlpFetcher) dump(ctx context.Context, url string, partial bool) ([]byte, error) {
	args := []string{"-J", "--skip-download", "--ignore-errors", "--no-warnings"}
	args = append(args, y.ExtraArgs...)
	args = append(args, url)

	timeout := y.Timeout
	if timeout <= 0 {
		timeout = defaultYtdlpTimeout
	}
	cmdCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	run := y.Run
	if run == nil {
		run = ExecRunner
	}
	stdout, stderr, err := run(cmdCtx, y.path(), args...)
	if err == nil {
		if len(bytes.TrimSpace(stdout)) == 0 || bytes.Equal(bytes.TrimSpace(stdout), []byte("null")) {
			return nil, &FetchError{URL: url, Err: classifyStderr(string(stderr), ErrUnavailable)}
		}
		return stdout, nil
	}

	if errors.Is(err, exec.ErrNotFound) {
		return nil, &FetchError{URL: url, Err: ErrNotInstalled}
	}
	if errors.Is(cmdCtx.Err(), context.DeadlineExceeded) {
		return nil, &FetchError{URL: url, Err: ErrTimeout}
	}
	if errors.Is(ctx.Err(), context.Canceled) {
		return nil, ctx.Err()
	}
	trimmed := bytes.TrimSpace(stdout)
	if partial && len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null")) {
		y.log().Warn("yt-dlp reported errors for some entries",
			logging.String("url", url),
			logging.String("stderr", lastLine(string(stderr))),
		)
		return stdout, nil
	}
	fallback := fmt.Errorf("yt-dlp failed: %w: %s", err, lastLine(string(stderr)))
	return nil, &FetchError{URL: url, Err: classifyStderr(string(stderr), fallback)}
}

func (y *YtdlpFetcher) path() string {
	if y.Path != "" {
		return y.Path
	}
	return defaultYtdlpPath
}

func (y *YtdlpFetcher) log() *slog.Logger {
	if y.logger == nil {
		return logging.NewNop()
	}
	return y.logger
}

// classifyStderr maps known yt-dlp error messages onto sentinel errors.
func classifyStderr(stderr string, fallback error) error {
	msg := strings.ToLower(stderr)
	switch {
	case strings.Contains(msg, "private video"), strings.Contains(msg, "playlist is private"):
		return ErrPrivate
	case strings.Contains(msg, "video unavailable"),
		strings.Contains(msg, "has been removed"),
		strings.Contains(msg, "not available in your country"),
		strings.Contains(msg, "blocked"),
		strings.Contains(msg, "does not exist"):
		return ErrUnavailable
	default:
		return fallback
	}
}

func lastLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.LastIndexByte(s, '\n'); idx >= 0 {
		return s[idx+1:]
	}
	return s
}

// ytdlpPlaylist is yt-dlp's JSON output for a playlist. Entries that failed
// extraction are null.
type ytdlpPlaylist struct {
	ID         string        `json:"id"`
	Title      string        `json:"title"`
	WebpageURL string        `json:"webpage_url"`
	Entries    []*ytdlpEntry `json:"entries"`
}

// ytdlpEntry is yt-dlp's JSON output for a single video.
type ytdlpEntry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	WebpageURL  string `json:"webpage_url"`
	License     string `json:"license"`
}

func (e *ytdlpEntry) record() VideoRecord {
	return VideoRecord{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Thumbnail:   e.Thumbnail,
		SourceURL:   coalesce(e.WebpageURL, VideoURL(e.ID)),
		License:     e.License,
	}
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
