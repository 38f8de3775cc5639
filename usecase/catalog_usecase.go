package usecase

import (
	"context"
	"fmt"

	"video-field/domain/dto"
	"video-field/domain/model"
	"video-field/domain/repository"
)

// ICatalogUseCase defines the channel catalog queries backing the picker UI
type ICatalogUseCase interface {
	// ListPlaylists returns one privacy-filtered page. Zero matches is a
	// valid empty listing.
	ListPlaylists(ctx context.Context, privacy model.PrivacyStatus) (*dto.PlaylistListResponse, error)
	// ListPlaylistVideos returns one privacy-filtered page of a playlist.
	// Zero matches is an EmptyResultError.
	ListPlaylistVideos(ctx context.Context, playlistID string, privacy model.PrivacyStatus) (*dto.PlaylistVideosResponse, error)
}

// CatalogUseCase implements the catalog queries
type CatalogUseCase struct {
	auth     IAuthUseCase
	provider repository.IVideoProvider
}

// NewCatalogUseCase creates a new catalog use case instance
func NewCatalogUseCase(auth IAuthUseCase, provider repository.IVideoProvider) ICatalogUseCase {
	return &CatalogUseCase{auth: auth, provider: provider}
}

func (uc *CatalogUseCase) ListPlaylists(ctx context.Context, privacy model.PrivacyStatus) (*dto.PlaylistListResponse, error) {
	if !privacy.Valid() {
		return nil, fmt.Errorf("invalid privacy status %q", privacy)
	}
	accessToken, err := uc.auth.EnsureValid(ctx)
	if err != nil {
		return nil, err
	}
	entries, nextPage, err := uc.provider.ListPlaylists(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	items := make([]model.PlaylistSummary, 0, len(entries))
	seen := map[string]struct{}{}
	for _, entry := range entries {
		// First occurrence wins, even when it fails the privacy filter:
		// later duplicates of the same id never resurrect it
		if _, dup := seen[entry.ID]; dup {
			continue
		}
		seen[entry.ID] = struct{}{}
		if entry.Privacy != privacy {
			continue
		}
		items = append(items, model.PlaylistSummary{ID: entry.ID, Title: entry.Title})
	}
	return &dto.PlaylistListResponse{Items: items, NextPageToken: nextPage}, nil
}

func (uc *CatalogUseCase) ListPlaylistVideos(ctx context.Context, playlistID string, privacy model.PrivacyStatus) (*dto.PlaylistVideosResponse, error) {
	if playlistID == "" {
		return nil, fmt.Errorf("playlist id is required")
	}
	if !privacy.Valid() {
		return nil, fmt.Errorf("invalid privacy status %q", privacy)
	}
	accessToken, err := uc.auth.EnsureValid(ctx)
	if err != nil {
		return nil, err
	}
	entries, nextPage, err := uc.provider.ListPlaylistItems(ctx, accessToken, playlistID)
	if err != nil {
		return nil, err
	}

	items := make([]model.VideoSummary, 0, len(entries))
	seen := map[string]struct{}{}
	for _, entry := range entries {
		if entry.ID == "" {
			continue
		}
		// First occurrence wins, even when it fails the privacy filter
		if _, dup := seen[entry.ID]; dup {
			continue
		}
		seen[entry.ID] = struct{}{}
		if entry.Privacy != privacy {
			continue
		}
		items = append(items, model.VideoSummary{ID: entry.ID, Title: entry.Title})
	}
	if len(items) == 0 {
		return nil, &model.EmptyResultError{PlaylistID: playlistID, Privacy: privacy}
	}
	return &dto.PlaylistVideosResponse{Items: items, NextPageToken: nextPage}, nil
}
