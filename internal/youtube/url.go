package youtube

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	videoURLFormat    = "https://www.youtube.com/watch?v=%s"
	playlistURLFormat = "https://www.youtube.com/playlist?list=%s"
)

var videoIDPattern = regexp.MustCompile(
	`^(https?://)?(www\.)?(youtube|youtu|youtube-nocookie)\.(com|be)/(watch\?v=|embed/|v/|.+\?v=)?(?P<id>[A-Za-z0-9\-=_]{11})`,
)

// VideoURL returns the canonical watch URL for a video id.
func VideoURL(id string) string {
	return fmt.Sprintf(videoURLFormat, id)
}

// PlaylistURL returns the canonical playlist URL for a playlist id.
func PlaylistURL(id string) string {
	return fmt.Sprintf(playlistURLFormat, id)
}

// ParseVideoID extracts the 11 character video id from a YouTube URL.
func ParseVideoID(rawURL string) (string, error) {
	match := videoIDPattern.FindStringSubmatch(strings.TrimSpace(rawURL))
	if match == nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
	}
	return match[videoIDPattern.SubexpIndex("id")], nil
}
