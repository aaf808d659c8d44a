package youtube

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidURL is returned when a URL does not identify a YouTube video.
	ErrInvalidURL = errors.New("not a youtube video url")
	// ErrUnavailable covers removed, region-blocked and otherwise unavailable videos.
	ErrUnavailable = errors.New("video unavailable")
	// ErrPrivate is returned for private videos and playlists.
	ErrPrivate = errors.New("private video")
	// ErrNotInstalled is returned when the yt-dlp binary cannot be executed.
	ErrNotInstalled = errors.New("yt-dlp is not installed")
	// ErrTimeout is returned when yt-dlp exceeds the configured timeout.
	ErrTimeout = errors.New("yt-dlp timed out")
)

// FetchError describes a failed upstream fetch.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsUpstream reports whether err came from the remote fetch rather than
// from local input or the cache.
func IsUpstream(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}
