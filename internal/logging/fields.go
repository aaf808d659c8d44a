package logging

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID identifies one CLI invocation.
	FieldRunID = "run_id"
	// FieldEventType classifies warnings and errors for filtering.
	FieldEventType = "event_type"
	// FieldErrorHint tells the operator what to try next.
	FieldErrorHint = "error_hint"
	// FieldImpact is the standardized key for user-facing consequence of a warning.
	FieldImpact = "impact"
	// FieldAlert flags warnings or anomalies that should stand out in structured logs.
	FieldAlert = "alert"
	// FieldCacheKey is the cache entry key (language tag or video id).
	FieldCacheKey = "cache_key"
	// FieldPlaylistID is the upstream playlist identifier.
	FieldPlaylistID = "playlist_id"
	// FieldVideoID is the upstream video identifier.
	FieldVideoID = "video_id"
	// FieldLanguage is the language tag a playlist or topic belongs to.
	FieldLanguage = "language"
)
