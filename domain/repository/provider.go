package repository

import (
	"context"

	"video-field/domain/dto"
	"video-field/domain/model"
)

// IVideoProvider is the read/write surface of the hosting provider's data
// API. Implementations take a ready access token; token lifecycle is the
// auth use case's problem.
type IVideoProvider interface {
	// ListPlaylists returns one page of the channel's playlists plus the
	// provider's next-page token.
	ListPlaylists(ctx context.Context, accessToken string) ([]model.PlaylistEntry, string, error)
	// ListPlaylistItems returns one page of a playlist's videos.
	ListPlaylistItems(ctx context.Context, accessToken, playlistID string) ([]model.VideoEntry, string, error)
	// GetVideo returns nil when the id does not resolve under this credential.
	GetVideo(ctx context.Context, accessToken, videoID string) (*model.VideoSnapshot, error)
	UpdateVideo(ctx context.Context, accessToken string, snapshot *model.VideoSnapshot) error
	DeleteVideo(ctx context.Context, accessToken, videoID string) error
	GetAccountInfo(ctx context.Context, accessToken string) (*model.AccountInfo, error)
}

// IUploadBroker opens provider-side resumable upload sessions.
type IUploadBroker interface {
	CreateSession(ctx context.Context, accessToken string, meta dto.UploadMetadata, flags dto.UploadStatusFlags) (*model.UploadSession, error)
}
