// Package youtube models the playlist and video metadata ytchef caches and
// fetches it from YouTube through the yt-dlp command line tool.
//
// Fetching is deliberately thin: one yt-dlp invocation per playlist or video,
// no retries, and a per-call timeout. Playlist entries yt-dlp could not
// extract (private, blocked, removed) come back as nulls and are dropped
// without being reported individually.
package youtube
