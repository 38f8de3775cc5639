package dto

import "video-field/domain/model"

// UploadSessionRequest carries the metadata for a new resumable upload. The
// file bytes never pass through this service.
type UploadSessionRequest struct {
	Title         string              `json:"title" binding:"required"`
	Description   string              `json:"description"`
	CategoryID    int                 `json:"category_id"`
	Tags          []string            `json:"tags"`
	PrivacyStatus model.PrivacyStatus `json:"privacy_status"`
	MadeForKids   bool                `json:"made_for_kids"`
}

// UploadMetadata is the snippet part of the upload initiation body.
type UploadMetadata struct {
	Title       string
	Description string
	CategoryID  string
	Tags        []string
}

// UploadStatusFlags is the status part of the upload initiation body.
type UploadStatusFlags struct {
	PrivacyStatus model.PrivacyStatus
	MadeForKids   bool
}

// ConfirmVideoRequest asks the service to validate a freshly uploaded video id
// before it is persisted into the record.
type ConfirmVideoRequest struct {
	VideoID string `json:"video_id" binding:"required"`
}

// PlaylistListResponse is a single page of privacy-filtered playlists.
// NextPageToken is passed through as-is; the caller decides whether to page.
type PlaylistListResponse struct {
	Items         []model.PlaylistSummary `json:"items"`
	NextPageToken string                  `json:"next_page_token,omitempty"`
}

// PlaylistVideosResponse is a single page of privacy-filtered videos.
type PlaylistVideosResponse struct {
	Items         []model.VideoSummary `json:"items"`
	NextPageToken string               `json:"next_page_token,omitempty"`
}

// RecordSnapshot is the slice of a content record the sync hooks need.
type RecordSnapshot struct {
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
}

// RecordSavedRequest is posted by the record-lifecycle hook after a record
// holding a video reference is saved.
type RecordSavedRequest struct {
	VideoID string            `json:"video_id" binding:"required"`
	Record  RecordSnapshot    `json:"record"`
	Field   model.FieldConfig `json:"field"`
}

// RecordDeletedRequest is posted after a record holding a video reference is
// deleted.
type RecordDeletedRequest struct {
	VideoID string            `json:"video_id" binding:"required"`
	Field   model.FieldConfig `json:"field"`
}

// ValidateReferenceRequest checks a video id before the record is persisted.
type ValidateReferenceRequest struct {
	VideoID string `json:"video_id" binding:"required"`
}

// AuthStatusResponse reports the credential state to the frontend.
type AuthStatusResponse struct {
	Status string `json:"status"` // authorized | unauthorized
	Detail string `json:"detail,omitempty"`
}
