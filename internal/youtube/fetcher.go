package youtube

import "context"

// Fetcher retrieves playlist and video metadata from YouTube.
type Fetcher interface {
	FetchPlaylist(ctx context.Context, playlistID string) (*PlaylistDocument, error)
	FetchVideo(ctx context.Context, videoURL string) (*VideoRecord, error)
}
