package youtube

// VideoRecord is the cached description of one video.
type VideoRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	SourceURL   string `json:"source_url"`
	License     string `json:"license"`
}

// PlaylistDocument is the cached description of a playlist and its members.
// Documents round-trip through this type, so fields it does not declare are
// dropped when a cached playlist is rewritten. Every document in the cache is
// written by ytchef itself.
type PlaylistDocument struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	SourceURL string        `json:"source_url"`
	Children  []VideoRecord `json:"children"`
}

// ChildIDs returns the video ids of the playlist in order.
func (p *PlaylistDocument) ChildIDs() []string {
	ids := make([]string, 0, len(p.Children))
	for _, child := range p.Children {
		ids = append(ids, child.ID)
	}
	return ids
}
