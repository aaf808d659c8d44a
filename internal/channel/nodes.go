package channel

// Node kinds as written to the tree.
const (
	KindTopic = "topic"
	KindVideo = "video"

	FileTypeYouTubeVideo = "YouTubeVideoFile"
)

// Channel is the root of the tree.
type Channel struct {
	SourceDomain string  `json:"source_domain"`
	SourceID     string  `json:"source_id"`
	Title        string  `json:"title"`
	Language     string  `json:"language"`
	Description  string  `json:"description,omitempty"`
	Thumbnail    string  `json:"thumbnail,omitempty"`
	Children     []Topic `json:"children"`
}

// Topic groups the videos of one language.
type Topic struct {
	Kind        string  `json:"kind"`
	SourceID    string  `json:"source_id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Author      string  `json:"author,omitempty"`
	Provider    string  `json:"provider,omitempty"`
	Language    string  `json:"language"`
	Children    []Video `json:"children"`
}

// Video is a leaf node backed by a YouTube video.
type Video struct {
	Kind        string      `json:"kind"`
	SourceID    string      `json:"source_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Author      string      `json:"author,omitempty"`
	Provider    string      `json:"provider,omitempty"`
	Language    string      `json:"language"`
	Thumbnail   string      `json:"thumbnail,omitempty"`
	License     License     `json:"license"`
	Files       []VideoFile `json:"files"`
}

// VideoFile references the YouTube video the platform downloads.
type VideoFile struct {
	FileType  string `json:"file_type"`
	YouTubeID string `json:"youtube_id"`
	Language  string `json:"language,omitempty"`
}

// VideoCount returns the number of videos across all topics.
func (c *Channel) VideoCount() int {
	n := 0
	for _, topic := range c.Children {
		n += len(topic.Children)
	}
	return n
}
