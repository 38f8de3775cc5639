package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"video-field/domain/model"
	"video-field/usecase"
)

func TestCatalogUseCase_ListPlaylists_FiltersAndDedupes(t *testing.T) {
	provider := new(MockVideoProvider)
	provider.On("ListPlaylists", mock.Anything, "token").Return([]model.PlaylistEntry{
		{ID: "pl-1", Title: "First", Privacy: model.PrivacyUnlisted},
		{ID: "pl-2", Title: "Public one", Privacy: model.PrivacyPublic},
		{ID: "pl-1", Title: "Duplicate with other title", Privacy: model.PrivacyUnlisted},
		{ID: "pl-3", Title: "Third", Privacy: model.PrivacyUnlisted},
	}, "next-token", nil)

	uc := usecase.NewCatalogUseCase(&stubAuth{token: "token"}, provider)

	resp, err := uc.ListPlaylists(context.Background(), model.PrivacyUnlisted)
	require.NoError(t, err)
	// First occurrence wins; the public playlist is filtered out
	require.Len(t, resp.Items, 2)
	assert.Equal(t, model.PlaylistSummary{ID: "pl-1", Title: "First"}, resp.Items[0])
	assert.Equal(t, model.PlaylistSummary{ID: "pl-3", Title: "Third"}, resp.Items[1])
	assert.Equal(t, "next-token", resp.NextPageToken)
}

func TestCatalogUseCase_ListPlaylists_FirstSeenWinsBeforeFilter(t *testing.T) {
	provider := new(MockVideoProvider)
	provider.On("ListPlaylists", mock.Anything, "token").Return([]model.PlaylistEntry{
		{ID: "pl-1", Title: "Public first", Privacy: model.PrivacyPublic},
		{ID: "pl-1", Title: "Unlisted duplicate", Privacy: model.PrivacyUnlisted},
	}, "", nil)

	uc := usecase.NewCatalogUseCase(&stubAuth{token: "token"}, provider)

	// The first occurrence claims the id; since it fails the filter, the
	// later unlisted duplicate must not resurrect it
	resp, err := uc.ListPlaylists(context.Background(), model.PrivacyUnlisted)
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}

func TestCatalogUseCase_ListPlaylists_EmptyIsValid(t *testing.T) {
	provider := new(MockVideoProvider)
	provider.On("ListPlaylists", mock.Anything, "token").Return([]model.PlaylistEntry{
		{ID: "pl-1", Title: "Public", Privacy: model.PrivacyPublic},
	}, "", nil)

	uc := usecase.NewCatalogUseCase(&stubAuth{token: "token"}, provider)

	resp, err := uc.ListPlaylists(context.Background(), model.PrivacyPrivate)
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}

func TestCatalogUseCase_ListPlaylists_InvalidPrivacy(t *testing.T) {
	uc := usecase.NewCatalogUseCase(&stubAuth{token: "token"}, new(MockVideoProvider))

	_, err := uc.ListPlaylists(context.Background(), "secret")
	require.Error(t, err)
}

func TestCatalogUseCase_ListPlaylists_Unauthorized(t *testing.T) {
	authErr := &model.TokenRefreshError{Reason: "no credential stored; authorize first"}
	uc := usecase.NewCatalogUseCase(&stubAuth{err: authErr}, new(MockVideoProvider))

	_, err := uc.ListPlaylists(context.Background(), model.PrivacyUnlisted)
	var refreshErr *model.TokenRefreshError
	require.ErrorAs(t, err, &refreshErr)
}

func TestCatalogUseCase_ListPlaylistVideos_FiltersAndDedupes(t *testing.T) {
	provider := new(MockVideoProvider)
	provider.On("ListPlaylistItems", mock.Anything, "token", "pl-1").Return([]model.VideoEntry{
		{ID: "vid-1", Title: "Keep me", Privacy: model.PrivacyUnlisted},
		{ID: "vid-2", Title: "Wrong privacy", Privacy: model.PrivacyPrivate},
		{ID: "vid-1", Title: "Same video again", Privacy: model.PrivacyUnlisted},
		{ID: "", Title: "Deleted upstream", Privacy: model.PrivacyUnlisted},
	}, "", nil)

	uc := usecase.NewCatalogUseCase(&stubAuth{token: "token"}, provider)

	resp, err := uc.ListPlaylistVideos(context.Background(), "pl-1", model.PrivacyUnlisted)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, model.VideoSummary{ID: "vid-1", Title: "Keep me"}, resp.Items[0])
}

func TestCatalogUseCase_ListPlaylistVideos_FirstSeenWinsBeforeFilter(t *testing.T) {
	provider := new(MockVideoProvider)
	provider.On("ListPlaylistItems", mock.Anything, "token", "PL123").Return([]model.VideoEntry{
		{ID: "vid-1", Title: "Public first", Privacy: model.PrivacyPublic},
		{ID: "vid-1", Title: "Unlisted duplicate", Privacy: model.PrivacyUnlisted},
	}, "", nil)

	uc := usecase.NewCatalogUseCase(&stubAuth{token: "token"}, provider)

	// First-seen entry wins de-dup and fails the filter, so nothing matches
	_, err := uc.ListPlaylistVideos(context.Background(), "PL123", model.PrivacyUnlisted)
	var emptyErr *model.EmptyResultError
	require.ErrorAs(t, err, &emptyErr)
}

func TestCatalogUseCase_ListPlaylistVideos_UnlistedFirstDuplicateKept(t *testing.T) {
	provider := new(MockVideoProvider)
	provider.On("ListPlaylistItems", mock.Anything, "token", "PL123").Return([]model.VideoEntry{
		{ID: "vid-1", Title: "Unlisted first", Privacy: model.PrivacyUnlisted},
		{ID: "vid-1", Title: "Public duplicate", Privacy: model.PrivacyPublic},
	}, "", nil)

	uc := usecase.NewCatalogUseCase(&stubAuth{token: "token"}, provider)

	resp, err := uc.ListPlaylistVideos(context.Background(), "PL123", model.PrivacyUnlisted)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, model.VideoSummary{ID: "vid-1", Title: "Unlisted first"}, resp.Items[0])
}

func TestCatalogUseCase_ListPlaylistVideos_EmptyResult(t *testing.T) {
	provider := new(MockVideoProvider)
	provider.On("ListPlaylistItems", mock.Anything, "token", "pl-1").Return([]model.VideoEntry{
		{ID: "vid-1", Title: "Public only", Privacy: model.PrivacyPublic},
	}, "", nil)

	uc := usecase.NewCatalogUseCase(&stubAuth{token: "token"}, provider)

	_, err := uc.ListPlaylistVideos(context.Background(), "pl-1", model.PrivacyUnlisted)
	var emptyErr *model.EmptyResultError
	require.ErrorAs(t, err, &emptyErr)
	assert.Equal(t, "pl-1", emptyErr.PlaylistID)
	assert.Equal(t, model.PrivacyUnlisted, emptyErr.Privacy)
}

func TestCatalogUseCase_ListPlaylistVideos_RequiresPlaylistID(t *testing.T) {
	uc := usecase.NewCatalogUseCase(&stubAuth{token: "token"}, new(MockVideoProvider))

	_, err := uc.ListPlaylistVideos(context.Background(), "", model.PrivacyUnlisted)
	require.Error(t, err)
}
