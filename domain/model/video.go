package model

// VideoRef is the only value persisted into a content record: the id of the
// linked remote video.
type VideoRef struct {
	VideoID string `json:"video_id"`
}

// PlaylistSummary is an ephemeral projection of a provider playlist.
type PlaylistSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// VideoSummary is an ephemeral projection of a provider video.
type VideoSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// PlaylistEntry is a raw catalog row as returned by the provider, before
// privacy filtering and de-duplication.
type PlaylistEntry struct {
	ID      string
	Title   string
	Privacy PrivacyStatus
}

// VideoEntry is a raw playlist-item row with its resolved video id.
type VideoEntry struct {
	ID      string
	Title   string
	Privacy PrivacyStatus
}

// VideoSnapshot is the mutable remote metadata of a single video, fetched
// before an update so unchanged fields are preserved.
type VideoSnapshot struct {
	ID          string
	Title       string
	Description string
	CategoryID  string
	Tags        []string
	Privacy     PrivacyStatus
}

// UploadSession is a provider-issued resumable-upload URL. Single use, never
// persisted server-side: the browser pushes the bytes directly against it.
type UploadSession struct {
	UploadURL string `json:"upload_url"`
}

// AccountInfo identifies the connected provider account.
type AccountInfo struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// SyncResult reports the outcome of a lifecycle sync. Sync failures never
// abort the record save or delete; callers may inspect the result for
// telemetry but are not required to handle it.
type SyncResult struct {
	Action  string `json:"action"`
	VideoID string `json:"video_id"`
	Synced  bool   `json:"synced"`
	Reason  string `json:"reason,omitempty"`
}
